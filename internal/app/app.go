// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"trafficlight/internal/config"
	"trafficlight/internal/dialog"
	"trafficlight/internal/hotkey"
	"trafficlight/internal/i18n"
	"trafficlight/internal/light"
	"trafficlight/internal/lightwin"
	"trafficlight/internal/notify"
	"trafficlight/internal/shortcut"
	"trafficlight/internal/sizing"
	"trafficlight/internal/tray"
)

// eventQueueSize - размер очереди событий горячих клавиш.
const eventQueueSize = 32

// PlatformFactory создаёт платформенный слой горячих клавиш,
// который публикует события в events.
type PlatformFactory func(events chan<- shortcut.Event) shortcut.Platform

// App представляет главное приложение.
type App struct {
	mu        sync.Mutex
	config    *config.Config
	log       zerolog.Logger
	notifier  *notify.Notifier
	tray      *tray.Tray
	events    chan shortcut.Event
	registry  *shortcut.Registry
	router    *shortcut.Router
	signal    *light.Signal
	window    *lightwin.Window
	sizing    *sizing.Controller
	trayReady bool
	rebinding bool // защита от нескольких открытых диалогов

	ctx    context.Context
	cancel context.CancelFunc
}

// New создаёт приложение с системными горячими клавишами.
func New(cfg *config.Config, log zerolog.Logger) *App {
	return NewWithPlatform(cfg, log, func(events chan<- shortcut.Event) shortcut.Platform {
		return hotkey.NewBinder(events, log)
	})
}

// NewWithPlatform создаёт приложение с заданным платформенным слоем.
func NewWithPlatform(cfg *config.Config, log zerolog.Logger, platform PlatformFactory) *App {
	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		config:   cfg,
		log:      log.With().Str("component", "app").Logger(),
		notifier: notify.New(cfg.NotificationsEnabled(), cfg.SoundEnabled()),
		events:   make(chan shortcut.Event, eventQueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	main, warning := cfg.TimerDurations()
	app.signal = light.NewSignal(light.Durations{Main: main, Warning: warning})

	winCfg := lightwin.DefaultConfig()
	winCfg.Width = cfg.WindowWidth()
	winCfg.AlwaysOnTop = cfg.AlwaysOnTop()
	app.window = lightwin.New(app.signal, winCfg, log)
	if mode, err := light.ParseMode(cfg.Timer().Mode); err == nil {
		app.window.SetMode(mode)
	}

	app.sizing = sizing.New(app.window, log)
	app.registry = shortcut.NewRegistry(platform(app.events), log)
	app.router = shortcut.NewRouter(app.registry, app.events, app.window, log)

	// Окно сообщает о каждом изменении размера
	app.window.OnResize(func(width, height float32) {
		app.sizing.HandleResize(width, height)
	})
	app.window.OnLightChange(app.onLightChange)
	app.window.OnTimerEvent(app.onTimerEvent)
	app.window.OnClose(app.onWindowClosed)

	// Создаём системный трей с обработчиками
	app.tray = tray.New(tray.Callbacks{
		OnTimerToggle:  app.setTimerVisible,
		OnWindowToggle: app.setWindowVisible,
		OnAlwaysOnTopToggle: func() bool {
			on := !app.config.AlwaysOnTop()
			app.config.SetAlwaysOnTop(on)
			app.window.SetAlwaysOnTop(on)
			return on
		},
		OnRebindClick: func() {
			go app.rebind()
		},
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnSoundToggle: func() bool {
			enabled := !app.config.SoundEnabled()
			app.config.SetSound(enabled)
			app.notifier.SetSound(enabled)
			return enabled
		},
		OnQuit: func() {
			app.Close()
		},
	}, tray.Options{
		Notifications: cfg.NotificationsEnabled(),
		Sound:         cfg.SoundEnabled(),
		WindowVisible: true,
		AlwaysOnTop:   cfg.AlwaysOnTop(),
	})

	return app
}

// Run запускает приложение. Блокирующая функция.
func (a *App) Run() {
	a.tray.Run(func() {
		a.mu.Lock()
		a.trayReady = true
		a.mu.Unlock()

		// Регистрируем горячие клавиши после инициализации трея
		a.startBackground()
		a.window.Show()
		a.notifier.Ready()
	})
}

// startBackground регистрирует сочетания и запускает маршрутизатор и таймер окна.
func (a *App) startBackground() {
	a.initShortcuts()
	go a.router.Run(a.ctx)
	go a.window.Run(a.ctx)
	go a.watchConfig()
}

// watchConfig применяет изменения файла конфигурации без перезапуска.
func (a *App) watchConfig() {
	if err := a.config.Watch(a.ctx, a.onConfigChange); err != nil {
		a.log.Warn().Err(err).Msg("Config watch disabled")
	}
}

func (a *App) onConfigChange() {
	shortcutsChanged := a.config.Reload()
	a.log.Info().Bool("shortcuts", shortcutsChanged).Msg("Config reloaded")

	a.notifier.SetEnabled(a.config.NotificationsEnabled())
	a.notifier.SetSound(a.config.SoundEnabled())
	main, warning := a.config.TimerDurations()
	a.signal.SetDurations(light.Durations{Main: main, Warning: warning})
	if mode, err := light.ParseMode(a.config.Timer().Mode); err == nil {
		a.window.SetMode(mode)
	}
	if onTop := a.config.AlwaysOnTop(); onTop != a.window.AlwaysOnTop() {
		a.window.SetAlwaysOnTop(onTop)
	}

	// Сочетания, изменённые во время работы, не сохраняются в файл,
	// поэтому карта переинициализируется только при её изменении в файле.
	if shortcutsChanged {
		a.initShortcuts()
	}
}

// initShortcuts заменяет все сочетания картой из конфига.
func (a *App) initShortcuts() shortcut.Report {
	report := a.registry.Initialize(a.config.Shortcuts())
	if !report.OK() {
		entries := make([]string, 0, len(report.Skipped))
		for _, s := range report.Skipped {
			entries = append(entries, fmt.Sprintf("%s (%s)", s.Action, s.Combination))
		}
		a.notifier.ShortcutsSkipped(entries)
	}
	return report
}

// setTimerVisible показывает или скрывает панель таймера и подгоняет высоту окна.
func (a *App) setTimerVisible(visible bool) {
	a.window.SetTimerVisible(visible)
	a.sizing.ResizeForTimer(visible)
}

// setWindowVisible показывает или скрывает окно светофора из меню трея.
func (a *App) setWindowVisible(visible bool) {
	if visible == a.window.IsVisible() {
		return
	}
	if visible {
		a.window.Show()
	} else {
		a.window.Hide()
	}
}

// onWindowClosed снимает отметку окна в трее, когда его закрыл пользователь.
func (a *App) onWindowClosed() {
	a.log.Debug().Msg("Window closed by user")
	a.mu.Lock()
	ready := a.trayReady
	a.mu.Unlock()
	if ready {
		a.tray.SetWindowVisible(false)
	}
}

func (a *App) onLightChange(c light.Color) {
	a.mu.Lock()
	ready := a.trayReady
	a.mu.Unlock()
	if ready {
		a.tray.SetLight(c)
	}
}

func (a *App) onTimerEvent(tr light.Transition, v light.View) {
	switch tr {
	case light.WarningStarted:
		go a.notifier.TimerWarning()
	case light.Completed:
		a.log.Info().Str("light", v.Light.String()).Msg("Timer finished")
		go a.notifier.TimerFinished()
	}
}

// rebind проводит пользователя через выбор действия и нового сочетания.
func (a *App) rebind() {
	a.mu.Lock()
	if a.rebinding {
		a.mu.Unlock()
		return
	}
	a.rebinding = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.rebinding = false
		a.mu.Unlock()
	}()

	current := a.currentBindings()
	action, err := dialog.SelectAction(light.Actions(), current)
	if err != nil {
		if !dialog.IsCanceled(err) {
			a.log.Error().Err(err).Msg("Action dialog failed")
		}
		return
	}

	combo, err := dialog.PromptCombination(action, current[action])
	if err != nil {
		if !dialog.IsCanceled(err) {
			a.log.Error().Err(err).Msg("Combination dialog failed")
		}
		return
	}

	if _, err := a.applyRebind(action, combo); err != nil {
		dialog.ShowError(i18n.T("dialog_error_title"), err.Error())
	}
}

// applyRebind переназначает действие и сообщает о результате.
func (a *App) applyRebind(action, combo string) (string, error) {
	canonical, err := a.registry.Update(action, combo)
	if err != nil {
		a.log.Warn().Err(err).Str("action", action).Str("combo", combo).Msg("Rebind failed")
		a.notifier.Error(err.Error())
		return "", err
	}
	a.log.Info().Str("action", action).Str("combo", canonical).Msg("Shortcut rebound")
	a.notifier.Rebound(action, canonical)
	return canonical, nil
}

// currentBindings возвращает каноническое сочетание для каждого действия.
func (a *App) currentBindings() map[string]string {
	bindings := a.registry.Bindings()
	m := make(map[string]string, len(bindings))
	for _, b := range bindings {
		m[b.Action] = b.Combination.String()
	}
	return m
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.cancel()
	a.registry.Close()

	// Скрываем окно, не дожидаясь дольше секунды
	done := make(chan struct{})
	go func() {
		a.window.Hide()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
	}
}
