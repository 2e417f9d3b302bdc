// Package hotkey регистрирует сочетания клавиш как глобальные горячие клавиши ОС.
package hotkey

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"trafficlight/internal/shortcut"
)

const (
	// debounceInterval подавляет автоповтор keydown.
	debounceInterval  = 300 * time.Millisecond
	unregisterTimeout = 500 * time.Millisecond
)

// Binder регистрирует сочетания в ОС и публикует их нажатия
// в канал событий. Реализует shortcut.Platform.
type Binder struct {
	events chan<- shortcut.Event
	log    zerolog.Logger
}

// NewBinder создаёт Binder, публикующий в events.
func NewBinder(events chan<- shortcut.Event, log zerolog.Logger) *Binder {
	return &Binder{
		events: events,
		log:    log.With().Str("component", "hotkey").Logger(),
	}
}

// Register захватывает c как глобальную горячую клавишу и начинает пересылать её события.
func (b *Binder) Register(c shortcut.Combination) (shortcut.Handle, error) {
	mods, key, err := convert(c)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	r := &registration{
		hk:     hk,
		combo:  c,
		stopCh: make(chan struct{}),
		log:    b.log,
	}
	go r.listen(b.events, r.stopCh, hk.Keydown(), hk.Keyup())

	b.log.Debug().Str("combo", c.String()).Msg("Hotkey registered")
	return r, nil
}

// registration - одна захваченная горячая клавиша и её горутина-слушатель.
type registration struct {
	mu     sync.Mutex
	hk     *hotkey.Hotkey
	combo  shortcut.Combination
	stopCh chan struct{}
	log    zerolog.Logger
}

// listen работает только с каналами клавиши: Unregister может обнулить r.hk в любой момент.
func (r *registration) listen(events chan<- shortcut.Event, stopCh <-chan struct{}, keydown, keyup <-chan hotkey.Event) {
	var lastKeydown time.Time

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			r.post(events, shortcut.Pressed)
		case _, ok := <-keyup:
			if !ok {
				return
			}
			r.post(events, shortcut.Released)
		}
	}
}

// post не блокирует слушателя: при полной очереди событие теряется.
func (r *registration) post(events chan<- shortcut.Event, state shortcut.KeyState) {
	select {
	case events <- shortcut.Event{Combination: r.combo, State: state}:
	default:
		r.log.Warn().Str("combo", r.combo.String()).Msg("Hotkey event dropped, queue full")
	}
}

// Unregister останавливает слушателя и освобождает горячую клавишу ОС.
func (r *registration) Unregister() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hk == nil {
		return nil
	}
	close(r.stopCh)
	hk := r.hk
	r.hk = nil

	// Некоторые бэкенды зависают, пока занят цикл событий
	done := make(chan error, 1)
	go func() {
		done <- hk.Unregister()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(unregisterTimeout):
		r.log.Warn().Str("combo", r.combo.String()).Msg("Hotkey unregister timeout")
		return fmt.Errorf("unregister %s: timeout", r.combo)
	}
}

// RunOnMainThread запускает fn, оставляя главный поток для вызовов ОС (нужно на macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

func convert(c shortcut.Combination) ([]hotkey.Modifier, hotkey.Key, error) {
	if !c.Valid() {
		return nil, 0, fmt.Errorf("invalid combination %+v", c)
	}

	mods := make([]hotkey.Modifier, 0, 4)
	for _, m := range c.Mods.List() {
		mod, ok := modifierMap[m]
		if !ok {
			return nil, 0, fmt.Errorf("modifier %s is not supported on this platform", m)
		}
		mods = append(mods, mod)
	}

	key, ok := keyMap[c.Key]
	if !ok {
		return nil, 0, fmt.Errorf("key %s is not supported on this platform", c.Key)
	}
	return mods, key, nil
}

// modifierMap и keyBackspace определены в платформенных файлах:
// - platform_linux.go
// - platform_darwin.go
// - platform_windows.go

// keyMap сопоставляет shortcut.Key -> hotkey.Key
var keyMap = map[shortcut.Key]hotkey.Key{
	shortcut.KeySpace:     hotkey.KeySpace,
	shortcut.KeyEnter:     hotkey.KeyReturn,
	shortcut.KeyTab:       hotkey.KeyTab,
	shortcut.KeyEscape:    hotkey.KeyEscape,
	shortcut.KeyBackspace: keyBackspace,
	shortcut.KeyDelete:    hotkey.KeyDelete,
	shortcut.KeyA:         hotkey.KeyA,
	shortcut.KeyB:         hotkey.KeyB,
	shortcut.KeyC:         hotkey.KeyC,
	shortcut.KeyD:         hotkey.KeyD,
	shortcut.KeyE:         hotkey.KeyE,
	shortcut.KeyF:         hotkey.KeyF,
	shortcut.KeyG:         hotkey.KeyG,
	shortcut.KeyH:         hotkey.KeyH,
	shortcut.KeyI:         hotkey.KeyI,
	shortcut.KeyJ:         hotkey.KeyJ,
	shortcut.KeyK:         hotkey.KeyK,
	shortcut.KeyL:         hotkey.KeyL,
	shortcut.KeyM:         hotkey.KeyM,
	shortcut.KeyN:         hotkey.KeyN,
	shortcut.KeyO:         hotkey.KeyO,
	shortcut.KeyP:         hotkey.KeyP,
	shortcut.KeyQ:         hotkey.KeyQ,
	shortcut.KeyR:         hotkey.KeyR,
	shortcut.KeyS:         hotkey.KeyS,
	shortcut.KeyT:         hotkey.KeyT,
	shortcut.KeyU:         hotkey.KeyU,
	shortcut.KeyV:         hotkey.KeyV,
	shortcut.KeyW:         hotkey.KeyW,
	shortcut.KeyX:         hotkey.KeyX,
	shortcut.KeyY:         hotkey.KeyY,
	shortcut.KeyZ:         hotkey.KeyZ,
	shortcut.Key0:         hotkey.Key0,
	shortcut.Key1:         hotkey.Key1,
	shortcut.Key2:         hotkey.Key2,
	shortcut.Key3:         hotkey.Key3,
	shortcut.Key4:         hotkey.Key4,
	shortcut.Key5:         hotkey.Key5,
	shortcut.Key6:         hotkey.Key6,
	shortcut.Key7:         hotkey.Key7,
	shortcut.Key8:         hotkey.Key8,
	shortcut.Key9:         hotkey.Key9,
	shortcut.KeyF1:        hotkey.KeyF1,
	shortcut.KeyF2:        hotkey.KeyF2,
	shortcut.KeyF3:        hotkey.KeyF3,
	shortcut.KeyF4:        hotkey.KeyF4,
	shortcut.KeyF5:        hotkey.KeyF5,
	shortcut.KeyF6:        hotkey.KeyF6,
	shortcut.KeyF7:        hotkey.KeyF7,
	shortcut.KeyF8:        hotkey.KeyF8,
	shortcut.KeyF9:        hotkey.KeyF9,
	shortcut.KeyF10:       hotkey.KeyF10,
	shortcut.KeyF11:       hotkey.KeyF11,
	shortcut.KeyF12:       hotkey.KeyF12,
}
