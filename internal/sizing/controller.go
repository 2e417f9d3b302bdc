package sizing

import (
	"sync"

	"github.com/rs/zerolog"
)

// Window - окно с изменяемым размером в логических единицах.
type Window interface {
	Size() (width, height float32)
	Resize(width, height float32)
}

// Controller применяет политику размера к окну и хранит
// флаг видимости таймера, от которого она зависит.
type Controller struct {
	mu           sync.Mutex
	timerVisible bool

	win Window
	log zerolog.Logger
}

// New создаёт контроллер для win со скрытой панелью таймера.
func New(win Window, log zerolog.Logger) *Controller {
	return &Controller{
		win: win,
		log: log.With().Str("component", "sizing").Logger(),
	}
}

// SetTimerVisible запоминает флаг, он действует со следующего расчёта.
func (c *Controller) SetTimerVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timerVisible = visible
}

// TimerVisible возвращает текущий флаг.
func (c *Controller) TimerVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timerVisible
}

// ResizeForTimer запоминает include и подгоняет высоту окна
// при текущей ширине.
func (c *Controller) ResizeForTimer(include bool) {
	c.SetTimerVisible(include)

	width, _ := c.win.Size()
	height := TargetHeight(width, include)
	c.log.Debug().Float32("width", width).Float32("height", height).Bool("timer", include).Msg("Resize for timer")
	c.win.Resize(width, height)
}

// HandleResize вызывается на каждое изменение размера. Если высота ушла
// дальше Hysteresis, возвращает целевую высоту и сообщает,
// была ли коррекция.
func (c *Controller) HandleResize(width, height float32) bool {
	target := TargetHeight(width, c.TimerVisible())
	if !NeedsCorrection(height, target) {
		return false
	}

	c.log.Debug().Float32("width", width).Float32("height", height).Float32("target", target).Msg("Correcting window height")
	c.win.Resize(width, target)
	return true
}
