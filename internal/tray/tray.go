// Package tray предоставляет системный трей с меню.
package tray

import (
	"fmt"

	"github.com/getlantern/systray"

	"trafficlight/embedded"
	"trafficlight/internal/i18n"
	"trafficlight/internal/light"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnTimerToggle         func(visible bool)
	OnWindowToggle        func(visible bool)
	OnAlwaysOnTopToggle   func() bool
	OnRebindClick         func()
	OnNotificationsToggle func() bool
	OnSoundToggle         func() bool
	OnQuit                func()
}

// Options задаёт начальное состояние флажков меню.
type Options struct {
	Notifications bool
	Sound         bool
	WindowVisible bool
	AlwaysOnTop   bool
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	options   Options

	status    *systray.MenuItem
	timerOn   *systray.MenuItem
	windowOn  *systray.MenuItem
	onTopOn   *systray.MenuItem
	rebindBtn *systray.MenuItem
	notifyOn  *systray.MenuItem
	soundOn   *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, options Options) *Tray {
	return &Tray{
		callbacks: callbacks,
		options:   options,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(iconFor(light.Off))
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(statusText(light.Off), "")
	t.status.Disable()

	systray.AddSeparator()

	// Окно и таймер
	t.windowOn = systray.AddMenuItemCheckbox(i18n.T("tray_window"), i18n.T("tray_window_hint"), t.options.WindowVisible)
	t.onTopOn = systray.AddMenuItemCheckbox(i18n.T("tray_on_top"), i18n.T("tray_on_top_hint"), t.options.AlwaysOnTop)
	t.timerOn = systray.AddMenuItemCheckbox(i18n.T("tray_timer"), i18n.T("tray_timer_hint"), false)

	// Сочетания клавиш
	t.rebindBtn = systray.AddMenuItem(i18n.T("tray_rebind"), i18n.T("tray_rebind_hint"))

	systray.AddSeparator()

	// Уведомления и звук
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.options.Notifications)
	t.soundOn = systray.AddMenuItemCheckbox(i18n.T("tray_sound"), i18n.T("tray_sound_hint"), t.options.Sound)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Панель таймера
		case <-t.timerOn.ClickedCh:
			visible := !t.timerOn.Checked()
			setChecked(t.timerOn, visible)
			if t.callbacks.OnTimerToggle != nil {
				t.callbacks.OnTimerToggle(visible)
			}

		// Окно
		case <-t.windowOn.ClickedCh:
			visible := !t.windowOn.Checked()
			setChecked(t.windowOn, visible)
			if t.callbacks.OnWindowToggle != nil {
				t.callbacks.OnWindowToggle(visible)
			}

		// Поверх всех окон
		case <-t.onTopOn.ClickedCh:
			if t.callbacks.OnAlwaysOnTopToggle != nil {
				setChecked(t.onTopOn, t.callbacks.OnAlwaysOnTopToggle())
			}

		// Переназначение
		case <-t.rebindBtn.ClickedCh:
			if t.callbacks.OnRebindClick != nil {
				t.callbacks.OnRebindClick()
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				setChecked(t.notifyOn, t.callbacks.OnNotificationsToggle())
			}

		// Звук
		case <-t.soundOn.ClickedCh:
			if t.callbacks.OnSoundToggle != nil {
				setChecked(t.soundOn, t.callbacks.OnSoundToggle())
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
			return
		}
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// SetWindowVisible отмечает в меню, показано ли окно.
func (t *Tray) SetWindowVisible(visible bool) {
	if t.windowOn != nil {
		setChecked(t.windowOn, visible)
	}
}

// SetLight обновляет иконку и строку статуса по текущему сигналу.
func (t *Tray) SetLight(c light.Color) {
	systray.SetIcon(iconFor(c))
	systray.SetTooltip(i18n.T("app_name") + " - " + lightName(c))
	if t.status != nil {
		t.status.SetTitle(statusText(c))
	}
}

func iconFor(c light.Color) []byte {
	switch c {
	case light.Green:
		return embedded.IconGreen
	case light.Yellow:
		return embedded.IconYellow
	case light.Red:
		return embedded.IconRed
	default:
		return embedded.IconOff
	}
}

func lightName(c light.Color) string {
	return i18n.T("light_" + c.String())
}

func statusText(c light.Color) string {
	return fmt.Sprintf(i18n.T("tray_status"), lightName(c))
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
