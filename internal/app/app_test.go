package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"trafficlight/internal/config"
	"trafficlight/internal/light"
	"trafficlight/internal/shortcut"
	"trafficlight/internal/sizing"
)

type fakePlatform struct {
	mu       sync.Mutex
	events   chan<- shortcut.Event
	active   map[shortcut.Combination]bool
	rejected map[string]bool
}

type fakeHandle struct {
	p *fakePlatform
	c shortcut.Combination
}

func (h fakeHandle) Unregister() error {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	delete(h.p.active, h.c)
	return nil
}

func (p *fakePlatform) Register(c shortcut.Combination) (shortcut.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rejected[c.String()] {
		return nil, errors.New("grabbed by another application")
	}
	p.active[c] = true
	return fakeHandle{p: p, c: c}, nil
}

// press имитирует нажатие и отпускание клавиши в ОС.
func (p *fakePlatform) press(t *testing.T, combo string) {
	t.Helper()
	c, err := shortcut.Parse(combo)
	if err != nil {
		t.Fatal(err)
	}
	p.mu.Lock()
	active := p.active[c]
	p.mu.Unlock()
	if !active {
		return
	}
	p.events <- shortcut.Event{Combination: c, State: shortcut.Pressed}
	p.events <- shortcut.Event{Combination: c, State: shortcut.Released}
}

func newTestApp(t *testing.T, rejected ...string) (*App, *fakePlatform) {
	t.Helper()
	cfg := config.NewWithPath("")
	cfg.SetNotifications(false)
	cfg.SetSound(false)

	p := &fakePlatform{active: make(map[shortcut.Combination]bool), rejected: make(map[string]bool)}
	for _, r := range rejected {
		p.rejected[r] = true
	}
	a := NewWithPlatform(cfg, zerolog.Nop(), func(events chan<- shortcut.Event) shortcut.Platform {
		p.events = events
		return p
	})
	t.Cleanup(func() {
		a.cancel()
		a.registry.Close()
	})
	return a, p
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestDefaultShortcutsRegistered(t *testing.T) {
	a, _ := newTestApp(t)
	report := a.initShortcuts()
	if report.Registered != 5 || !report.OK() {
		t.Errorf("report = %+v, want 5 registered", report)
	}
	if got := a.currentBindings()["timerRed"]; got != "Alt+A" {
		t.Errorf("timerRed = %q, want Alt+A", got)
	}
}

func TestSkippedShortcutsReported(t *testing.T) {
	a, _ := newTestApp(t, "Alt+Y")
	report := a.initShortcuts()
	if report.Registered != 4 || len(report.Skipped) != 1 || report.Skipped[0].Action != "yellow" {
		t.Errorf("report = %+v, want yellow skipped", report)
	}
}

func TestHotkeyDrivesLight(t *testing.T) {
	a, p := newTestApp(t)
	a.startBackground()

	p.press(t, "Alt+R")
	waitFor(t, "red light", func() bool { return a.signal.View().Light == light.Red })

	p.press(t, "Alt+S")
	waitFor(t, "timer start", func() bool { return a.signal.View().Phase == light.PhaseGreen })

	// Сочетание сигнала ставит работающий таймер на паузу.
	p.press(t, "Alt+Y")
	waitFor(t, "pause", func() bool { return a.signal.View().Paused })
	if got := a.signal.View().Light; got != light.Green {
		t.Errorf("light = %v, want green while the timer runs", got)
	}
}

func TestRebindMovesShortcut(t *testing.T) {
	a, p := newTestApp(t)
	a.startBackground()

	canonical, err := a.applyRebind("green", "Control+1")
	if err != nil {
		t.Fatalf("applyRebind: %v", err)
	}
	if canonical != "Ctrl+1" {
		t.Errorf("canonical = %q, want Ctrl+1", canonical)
	}

	p.press(t, "Alt+G") // больше не зарегистрировано
	p.press(t, "Ctrl+1")
	waitFor(t, "green light", func() bool { return a.signal.View().Light == light.Green })
}

func TestRebindInvalidCombination(t *testing.T) {
	a, _ := newTestApp(t)
	a.initShortcuts()

	_, err := a.applyRebind("red", "Ctrl+Shift")
	if !errors.Is(err, shortcut.ErrInvalidCombination) {
		t.Fatalf("err = %v, want ErrInvalidCombination", err)
	}
	if _, ok := a.currentBindings()["red"]; ok {
		t.Error("red still bound after a failed rebind")
	}
}

func TestTimerToggleResizesWindow(t *testing.T) {
	a, _ := newTestApp(t)

	a.setTimerVisible(true)
	if !a.sizing.TimerVisible() {
		t.Error("sizing controller did not record the timer panel")
	}
	if _, h := a.window.Size(); h != sizing.TargetHeight(300, true) {
		t.Errorf("height = %v, want %v", h, sizing.TargetHeight(300, true))
	}

	a.setTimerVisible(false)
	if _, h := a.window.Size(); h != sizing.TargetHeight(300, false) {
		t.Errorf("height = %v, want %v", h, sizing.TargetHeight(300, false))
	}
}

func TestConfigChangeReinitializesShortcuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.NewWithPath(path)
	cfg.SetNotifications(false)
	cfg.SetSound(false)

	p := &fakePlatform{active: make(map[shortcut.Combination]bool), rejected: make(map[string]bool)}
	a := NewWithPlatform(cfg, zerolog.Nop(), func(events chan<- shortcut.Event) shortcut.Platform {
		p.events = events
		return p
	})
	t.Cleanup(func() {
		a.cancel()
		a.registry.Close()
	})
	a.initShortcuts()

	// Переназначение во время работы переживает перезагрузку без изменения карты.
	if _, err := a.applyRebind("green", "F2"); err != nil {
		t.Fatal(err)
	}
	a.onConfigChange()
	if got := a.currentBindings()["green"]; got != "F2" {
		t.Errorf("green = %q after an unrelated reload, want F2", got)
	}

	data := `{"notifications": false, "sound": false, "shortcuts": {"green": "F3", "timer": "F4"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	a.onConfigChange()

	got := a.currentBindings()
	if len(got) != 2 || got["green"] != "F3" || got["timer"] != "F4" {
		t.Errorf("bindings = %v, want green F3 and timer F4", got)
	}
}

func TestConfigChangeAppliesAlwaysOnTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.NewWithPath(path)
	cfg.SetNotifications(false)
	cfg.SetSound(false)

	a := NewWithPlatform(cfg, zerolog.Nop(), func(events chan<- shortcut.Event) shortcut.Platform {
		return &fakePlatform{events: events, active: make(map[shortcut.Combination]bool), rejected: make(map[string]bool)}
	})
	t.Cleanup(func() {
		a.cancel()
		a.registry.Close()
	})
	if !a.window.AlwaysOnTop() {
		t.Fatal("window should start above other windows")
	}

	data := `{"notifications": false, "sound": false, "window": {"width": 300, "always_on_top": false}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	a.onConfigChange()

	if a.window.AlwaysOnTop() {
		t.Error("always on top not switched off by the reloaded config")
	}
}

func TestHiddenWindowToggleAndClose(t *testing.T) {
	a, _ := newTestApp(t)

	// Скрытие непоказанного окна ничего не делает.
	a.setWindowVisible(false)
	if a.window.IsVisible() {
		t.Error("window became visible")
	}
	// Трей в тестах не запущен, обработчик закрытия не должен его трогать.
	a.onWindowClosed()
}
