// Package lightwin предоставляет плавающее окно светофора.
package lightwin

import (
	"context"
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"trafficlight/internal/i18n"
	"trafficlight/internal/light"
	"trafficlight/internal/sizing"
)

// Config хранит настройки окна.
type Config struct {
	Width        int           // Ширина окна в dp
	TickInterval time.Duration // Интервал тика таймера и перерисовки
	QueueSize    int           // Очередь действий от горячих клавиш
	AlwaysOnTop  bool          // Поверх всех окон
	BGColor      color.NRGBA
	HousingColor color.NRGBA
	PanelColor   color.NRGBA
	TextColor    color.NRGBA
	TextDimColor color.NRGBA
	AccentColor  color.NRGBA
	GreenColor   color.NRGBA
	YellowColor  color.NRGBA
	RedColor     color.NRGBA
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		Width:        300,
		TickInterval: 100 * time.Millisecond,
		QueueSize:    16,
		AlwaysOnTop:  true,
		BGColor:      color.NRGBA{R: 30, G: 30, B: 34, A: 245},
		HousingColor: color.NRGBA{R: 20, G: 20, B: 22, A: 255},
		PanelColor:   color.NRGBA{R: 45, G: 45, B: 50, A: 255},
		TextColor:    color.NRGBA{R: 240, G: 240, B: 245, A: 255},
		TextDimColor: color.NRGBA{R: 140, G: 140, B: 150, A: 255},
		AccentColor:  color.NRGBA{R: 88, G: 166, B: 255, A: 255},
		GreenColor:   color.NRGBA{R: 46, G: 204, B: 113, A: 255},
		YellowColor:  color.NRGBA{R: 241, G: 196, B: 15, A: 255},
		RedColor:     color.NRGBA{R: 231, G: 76, B: 60, A: 255},
	}
}

// lampOrder - порядок ламп сверху вниз.
var lampOrder = [3]light.Color{light.Red, light.Yellow, light.Green}

// controls - кликабельные виджеты, принадлежат циклу событий.
type controls struct {
	lamps    [3]widget.Clickable
	start    widget.Clickable
	pause    widget.Clickable
	clear    widget.Clickable
	minimize widget.Clickable
	close    widget.Clickable
}

// Window показывает светофор и принимает действия горячих клавиш.
// Реализует sizing.Window и shortcut.Notifier.
type Window struct {
	mu     sync.Mutex
	signal *light.Signal
	config Config
	log    zerolog.Logger
	theme  *material.Theme

	actions chan string

	mode          light.Mode
	timerVisible  bool
	onTop         bool
	width, height float32    // последний размер кадра в dp (до показа - запрошенный)
	dispatched    [2]float32
	resizeMu      sync.Mutex // OnResize вызывается строго по очереди
	lastLight     light.Color

	ctl controls

	onResize      func(width, height float32)
	onLightChange func(c light.Color)
	onTimerEvent  func(tr light.Transition, v light.View)
	onClose       func()

	window  *app.Window
	view    uintptr // системный дескриптор окна, если платформа его даёт
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New создаёт окно, управляющее signal.
func New(signal *light.Signal, cfg Config, log zerolog.Logger) *Window {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	width := float32(cfg.Width)
	height := sizing.TargetHeight(width, false)
	return &Window{
		signal:     signal,
		config:     cfg,
		log:        log.With().Str("component", "window").Logger(),
		actions:    make(chan string, cfg.QueueSize),
		onTop:      cfg.AlwaysOnTop,
		width:      width,
		height:     height,
		dispatched: [2]float32{width, height},
		lastLight:  signal.View().Light,
	}
}

// Notify ставит действие в очередь. Не блокирует: при полной очереди действие теряется.
func (w *Window) Notify(action string) {
	select {
	case w.actions <- action:
	default:
		w.log.Warn().Str("action", action).Msg("Action dropped, queue full")
	}
}

// Run применяет действия из очереди и двигает таймер до отмены ctx.
// Работает независимо от Show/Hide, поэтому горячие клавиши действуют и при скрытом окне.
func (w *Window) Run(ctx context.Context) {
	ticker := time.NewTicker(w.config.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case action := <-w.actions:
			if !w.signal.Apply(action) {
				w.log.Debug().Str("action", action).Msg("Unknown action ignored")
				continue
			}
			w.log.Debug().Str("action", action).Msg("Action applied")
			w.changed()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if tr := w.signal.Advance(dt); tr != light.NoTransition {
				w.timerEvent(tr)
			}
			w.changed()
		}
	}
}

// changed сообщает о смене основного сигнала и запрашивает перерисовку.
func (w *Window) changed() {
	view := w.signal.View()

	w.mu.Lock()
	lightChanged := view.Light != w.lastLight
	w.lastLight = view.Light
	fn := w.onLightChange
	win := w.window
	w.mu.Unlock()

	if lightChanged && fn != nil {
		fn(view.Light)
	}
	if win != nil {
		win.Invalidate()
	}
}

func (w *Window) timerEvent(tr light.Transition) {
	w.mu.Lock()
	fn := w.onTimerEvent
	w.mu.Unlock()

	w.log.Info().Int("transition", int(tr)).Msg("Timer transition")
	if fn != nil {
		fn(tr, w.signal.View())
	}
}

// Size возвращает последний размер окна в dp.
func (w *Window) Size() (float32, float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Resize запрашивает у оконной системы новый размер в dp.
// До показа окна размер запоминается для первого кадра.
func (w *Window) Resize(width, height float32) {
	w.mu.Lock()
	win := w.window
	if win == nil {
		w.width, w.height = width, height
	}
	w.mu.Unlock()

	if win != nil {
		win.Option(app.Size(unit.Dp(width), unit.Dp(height)))
	}
}

// SetTimerVisible показывает или скрывает панель таймера.
func (w *Window) SetTimerVisible(visible bool) {
	w.mu.Lock()
	w.timerVisible = visible
	win := w.window
	w.mu.Unlock()
	if win != nil {
		win.Invalidate()
	}
}

// SetMode задаёт режим, в котором стартует кнопка таймера.
func (w *Window) SetMode(mode light.Mode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mode = mode
}

// SetAlwaysOnTop включает или выключает режим поверх всех окон.
// До показа окна значение применяется при открытии.
func (w *Window) SetAlwaysOnTop(on bool) {
	w.mu.Lock()
	w.onTop = on
	shown := w.window != nil
	view := w.view
	w.mu.Unlock()

	if shown {
		go setAlwaysOnTop(i18n.T("window_title"), view, on)
	}
}

// AlwaysOnTop возвращает true, если окно держится поверх остальных.
func (w *Window) AlwaysOnTop() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onTop
}

// Minimize сворачивает показанное окно.
func (w *Window) Minimize() {
	w.mu.Lock()
	win := w.window
	w.mu.Unlock()
	if win != nil {
		win.Perform(system.ActionMinimize)
	}
}

// OnResize задаёт обработчик изменения размера кадра.
func (w *Window) OnResize(fn func(width, height float32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = fn
}

// OnLightChange задаёт обработчик смены основного сигнала.
func (w *Window) OnLightChange(fn func(c light.Color)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLightChange = fn
}

// OnTimerEvent задаёт обработчик переходов таймера.
func (w *Window) OnTimerEvent(fn func(tr light.Transition, v light.View)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onTimerEvent = fn
}

// OnClose задаёт обработчик закрытия окна пользователем.
func (w *Window) OnClose(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = fn
}

// IsVisible возвращает true, если окно сейчас показано.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Show показывает окно (не блокирует).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop(w.stopCh, w.doneCh)
}

// Hide закрывает окно. Таймер продолжает работать.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Ждём закрытия окна
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

func (w *Window) runEventLoop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	title := i18n.T("window_title")
	win := new(app.Window)

	w.mu.Lock()
	width, height := w.width, w.height
	onTop := w.onTop
	w.window = win
	if w.theme == nil {
		w.theme = material.NewTheme()
	}
	w.mu.Unlock()

	win.Option(
		app.Title(title),
		app.Size(unit.Dp(width), unit.Dp(height)),
		app.Decorated(false), // Без рамки
	)

	// Позиционируем окно после появления
	go positionWindow(title, int(width), onTop)

	go func() {
		select {
		case <-stopCh:
			win.Perform(system.ActionClose)
		case <-doneCh:
		}
	}()

	defer func() {
		w.mu.Lock()
		// Новый Show мог уже занять поля окна
		if w.window == win {
			w.window = nil
			w.view = 0
			if w.doneCh == doneCh {
				w.running = false
			}
		}
		w.mu.Unlock()
	}()

	var ops op.Ops
	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				w.log.Error().Err(e.Err).Msg("Window destroyed")
			}
			return
		case app.ViewEvent:
			view := viewHandle(e)
			w.mu.Lock()
			w.view = view
			onTop := w.onTop
			w.mu.Unlock()
			if view != 0 {
				go setAlwaysOnTop(title, view, onTop)
			}
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.reportSize(float32(e.Metric.PxToDp(e.Size.X)), float32(e.Metric.PxToDp(e.Size.Y)))

			w.mu.Lock()
			timerVisible := w.timerVisible
			w.mu.Unlock()

			w.draw(gtx, timerVisible)
			e.Frame(gtx.Ops)
		}
	}
}

// reportSize запоминает размер кадра и сообщает о нём, если он изменился.
func (w *Window) reportSize(width, height float32) {
	w.mu.Lock()
	resized := width != w.width || height != w.height
	w.width, w.height = width, height
	w.mu.Unlock()

	if resized {
		// Обработчик может вызвать Resize, цикл событий не ждёт его
		go w.dispatchResize()
	}
}

// dispatchResize передаёт в OnResize самый свежий размер. Вызовы идут по очереди
// и читают размер в момент вызова, поэтому устаревшая ширина не приходит после новой.
func (w *Window) dispatchResize() {
	w.resizeMu.Lock()
	defer w.resizeMu.Unlock()

	w.mu.Lock()
	size := [2]float32{w.width, w.height}
	fn := w.onResize
	last := w.dispatched
	w.dispatched = size
	w.mu.Unlock()

	if fn != nil && size != last {
		fn(size[0], size[1])
	}
}

func (w *Window) draw(gtx layout.Context, timerVisible bool) {
	// ESC скрывает окно
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			w.closeByUser()
			return
		}
	}

	if w.ctl.close.Clicked(gtx) {
		w.closeByUser()
		return
	}
	if w.ctl.minimize.Clicked(gtx) {
		go w.Minimize()
	}

	dirty := false
	for i, c := range lampOrder {
		if w.ctl.lamps[i].Clicked(gtx) {
			w.signal.SetLight(c)
			dirty = true
		}
	}
	if w.ctl.start.Clicked(gtx) {
		w.mu.Lock()
		mode := w.mode
		w.mu.Unlock()
		w.signal.Start(mode)
		dirty = true
	}
	if w.ctl.pause.Clicked(gtx) {
		w.signal.TogglePause()
		dirty = true
	}
	if w.ctl.clear.Clicked(gtx) {
		w.signal.Clear()
		dirty = true
	}
	if dirty {
		go w.changed()
	}

	drawLight(gtx, w.theme, w.config, w.signal.View(), timerVisible, &w.ctl)
}

func (w *Window) closeByUser() {
	w.mu.Lock()
	fn := w.onClose
	w.mu.Unlock()
	if fn != nil {
		go fn()
	}
	go w.Hide()
}
