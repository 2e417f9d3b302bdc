package sizing

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type resize struct{ width, height float32 }

type fakeWindow struct {
	mu            sync.Mutex
	width, height float32
	resizes       []resize
}

func (w *fakeWindow) Size() (float32, float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

func (w *fakeWindow) Resize(width, height float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
	w.resizes = append(w.resizes, resize{width, height})
}

func (w *fakeWindow) calls() []resize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]resize(nil), w.resizes...)
}

func TestTimerHiddenInitially(t *testing.T) {
	c := New(&fakeWindow{}, zerolog.Nop())
	if c.TimerVisible() {
		t.Error("timer should be hidden initially")
	}
}

func TestResizeForTimer(t *testing.T) {
	win := &fakeWindow{width: 300, height: 520}
	c := New(win, zerolog.Nop())

	c.ResizeForTimer(true)
	if !c.TimerVisible() {
		t.Error("flag not updated")
	}
	calls := win.calls()
	if len(calls) != 1 || calls[0] != (resize{300, 620}) {
		t.Fatalf("resizes = %v, want [{300 620}]", calls)
	}

	c.ResizeForTimer(false)
	calls = win.calls()
	if len(calls) != 2 || calls[1] != (resize{300, 520}) {
		t.Fatalf("resizes = %v, want second {300 520}", calls)
	}
}

func TestSetTimerVisibleDoesNotResize(t *testing.T) {
	win := &fakeWindow{width: 300, height: 520}
	c := New(win, zerolog.Nop())

	c.SetTimerVisible(true)
	if len(win.calls()) != 0 {
		t.Error("SetTimerVisible resized the window")
	}
	// Следующее событие размера подхватывает флаг.
	if !c.HandleResize(300, 520) {
		t.Error("expected a correction to include the timer panel")
	}
	if got := win.calls(); got[len(got)-1] != (resize{300, 620}) {
		t.Errorf("last resize = %v, want {300 620}", got[len(got)-1])
	}
}

func TestHandleResizeHysteresis(t *testing.T) {
	tests := []struct {
		name    string
		width   float32
		height  float32
		timer   bool
		correct bool
	}{
		{name: "on target", width: 300, height: 520},
		{name: "at threshold above", width: 300, height: 530},
		{name: "at threshold below", width: 300, height: 510},
		{name: "past threshold", width: 300, height: 531, correct: true},
		{name: "width drag", width: 400, height: 520, correct: true},
		{name: "timer on target", width: 300, height: 620, timer: true},
		{name: "timer missing", width: 300, height: 520, timer: true, correct: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := &fakeWindow{width: tt.width, height: tt.height}
			c := New(win, zerolog.Nop())
			c.SetTimerVisible(tt.timer)

			if got := c.HandleResize(tt.width, tt.height); got != tt.correct {
				t.Errorf("HandleResize = %v, want %v", got, tt.correct)
			}
			calls := win.calls()
			if !tt.correct {
				if len(calls) != 0 {
					t.Errorf("unexpected resizes %v", calls)
				}
				return
			}
			want := resize{tt.width, TargetHeight(tt.width, tt.timer)}
			if len(calls) != 1 || calls[0] != want {
				t.Errorf("resizes = %v, want [%v]", calls, want)
			}
		})
	}
}

func TestCorrectionSettles(t *testing.T) {
	win := &fakeWindow{width: 420, height: 500}
	c := New(win, zerolog.Nop())

	if !c.HandleResize(win.Size()) {
		t.Fatal("expected first correction")
	}
	// Окно сообщает исправленный размер, новой коррекции нет.
	if c.HandleResize(win.Size()) {
		t.Error("correction oscillates")
	}
}
