// Package notify предоставляет системные уведомления.
package notify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gen2brain/beeep"

	"trafficlight/internal/i18n"
)

// Notifier отправляет системные уведомления и звуковые сигналы.
type Notifier struct {
	mu      sync.Mutex
	enabled bool
	sound   bool

	send func(title, message, icon string) error
	beep func(freq float64, duration int) error
}

// New создаёт новый Notifier.
func New(enabled, sound bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		sound:   sound,
		send:    beeep.Notify,
		beep:    beeep.Beep,
	}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// SetSound включает/выключает звуковой сигнал.
func (n *Notifier) SetSound(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sound = enabled
}

// Ready показывает уведомление о запуске.
func (n *Notifier) Ready() {
	n.notify("", i18n.T("notify_ready"))
}

// ShortcutsSkipped сообщает о сочетаниях, которые не удалось зарегистрировать.
func (n *Notifier) ShortcutsSkipped(entries []string) {
	if len(entries) == 0 {
		return
	}
	n.notify(i18n.T("notify_skipped"), strings.Join(entries, ", "))
}

// Rebound сообщает о новом сочетании для действия.
func (n *Notifier) Rebound(action, combo string) {
	n.notify("", fmt.Sprintf(i18n.T("notify_rebound"), action, combo))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

// TimerWarning сообщает о начале жёлтой фазы.
func (n *Notifier) TimerWarning() {
	n.Beep()
	n.notify("", i18n.T("notify_timer_warning"))
}

// TimerFinished сообщает об окончании таймера.
func (n *Notifier) TimerFinished() {
	n.Beep()
	n.notify("", i18n.T("notify_timer_finished"))
}

// Beep подаёт звуковой сигнал, если звук включён.
func (n *Notifier) Beep() {
	n.mu.Lock()
	sound, beep := n.sound, n.beep
	n.mu.Unlock()
	if !sound {
		return
	}
	_ = beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

func (n *Notifier) notify(title, message string) {
	n.mu.Lock()
	enabled, send := n.enabled, n.send
	n.mu.Unlock()
	if !enabled {
		return
	}

	appName := i18n.T("app_name")
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = send(appName+": "+title, message, "")
	} else {
		_ = send(appName, message, "")
	}
}
