package notify

import (
	"strings"
	"testing"
)

type recorder struct {
	titles   []string
	messages []string
	beeps    int
}

func newTestNotifier(enabled, sound bool) (*Notifier, *recorder) {
	r := &recorder{}
	n := New(enabled, sound)
	n.send = func(title, message, _ string) error {
		r.titles = append(r.titles, title)
		r.messages = append(r.messages, message)
		return nil
	}
	n.beep = func(float64, int) error {
		r.beeps++
		return nil
	}
	return n, r
}

func TestDisabledIsSilent(t *testing.T) {
	n, r := newTestNotifier(false, false)
	n.Ready()
	n.Error("boom")
	n.TimerFinished()
	if len(r.messages) != 0 || r.beeps != 0 {
		t.Errorf("sent %v and %d beeps while disabled", r.messages, r.beeps)
	}
}

func TestTimerNotificationsBeep(t *testing.T) {
	n, r := newTestNotifier(true, true)
	n.TimerWarning()
	n.TimerFinished()
	if r.beeps != 2 {
		t.Errorf("beeps = %d, want 2", r.beeps)
	}
	if len(r.messages) != 2 {
		t.Errorf("messages = %v, want 2", r.messages)
	}

	n.SetSound(false)
	n.TimerFinished()
	if r.beeps != 2 {
		t.Errorf("beeped with sound disabled")
	}
}

func TestShortcutsSkipped(t *testing.T) {
	n, r := newTestNotifier(true, false)
	n.ShortcutsSkipped(nil)
	if len(r.messages) != 0 {
		t.Fatal("notified about nothing")
	}
	n.ShortcutsSkipped([]string{"red (Alt+R)", "timer (Alt+?)"})
	if len(r.messages) != 1 || !strings.Contains(r.messages[0], "red (Alt+R), timer") {
		t.Errorf("messages = %v", r.messages)
	}
	if !strings.Contains(r.titles[0], ": ") {
		t.Errorf("title %q has no subject", r.titles[0])
	}
}

func TestSetEnabled(t *testing.T) {
	n, r := newTestNotifier(false, false)
	n.SetEnabled(true)
	n.Rebound("green", "Alt+G")
	if len(r.messages) != 1 {
		t.Errorf("messages = %v, want one", r.messages)
	}
}
