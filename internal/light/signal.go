// Package light описывает светофор и его таймер выступления.
package light

import (
	"fmt"
	"sync"
	"time"
)

// Color - лампа светофора.
type Color int

const (
	Off Color = iota
	Green
	Yellow
	Red
)

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "off"
	}
}

// Mode выбирает, на каком сигнале идёт обратный отсчёт.
type Mode int

const (
	ModeGreen Mode = iota
	ModeRed
)

func (m Mode) String() string {
	if m == ModeRed {
		return "red"
	}
	return "green"
}

// ParseMode принимает "green" и "red".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "green":
		return ModeGreen, nil
	case "red":
		return ModeRed, nil
	}
	return ModeGreen, fmt.Errorf("unknown timer mode %q", s)
}

// Phase - фаза работающего таймера.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseGreen
	PhaseRed
	PhaseWarning
)

func (p Phase) String() string {
	switch p {
	case PhaseGreen:
		return "GREEN"
	case PhaseRed:
		return "RED"
	case PhaseWarning:
		return "WARNING"
	default:
		return ""
	}
}

// Transition возвращается из Advance при смене фазы таймера.
type Transition int

const (
	NoTransition Transition = iota
	WarningStarted
	Completed
)

// Действия, которые понимает Apply.
const (
	ActionGreen    = "green"
	ActionYellow   = "yellow"
	ActionRed      = "red"
	ActionTimer    = "timer"
	ActionTimerRed = "timerRed"
)

// Actions возвращает все действия в порядке отображения.
func Actions() []string {
	return []string{ActionGreen, ActionYellow, ActionRed, ActionTimer, ActionTimerRed}
}

// Durations задаёт длительности таймера.
type Durations struct {
	Main    time.Duration // зелёная или красная фаза
	Warning time.Duration // фаза мигающего жёлтого
	Flash   time.Duration // интервал мигания жёлтой лампы
}

// DefaultDurations возвращает 30 с основной фазы, 20 с предупреждения и мигание 500 мс.
func DefaultDurations() Durations {
	return Durations{
		Main:    30 * time.Second,
		Warning: 20 * time.Second,
		Flash:   500 * time.Millisecond,
	}
}

// View - снимок состояния для отрисовки.
type View struct {
	Light     Color // основной сигнал
	Lit       Color // горящая сейчас лампа: при предупреждении мигает между Yellow и Off
	Phase     Phase
	Mode      Mode
	Active    bool
	Paused    bool
	Remaining time.Duration
}

// Countdown форматирует остаток как MM:SS с округлением секунд вверх.
func (v View) Countdown() string {
	secs := int((v.Remaining + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Signal - конечный автомат светофора. Безопасен для конкурентного использования.
type Signal struct {
	mu        sync.Mutex
	durations Durations

	light     Color
	mode      Mode
	phase     Phase
	paused    bool
	remaining time.Duration
	flashed   time.Duration // время в фазе предупреждения
}

// NewSignal создаёт погашенный светофор без таймера.
func NewSignal(d Durations) *Signal {
	def := DefaultDurations()
	if d.Main <= 0 {
		d.Main = def.Main
	}
	if d.Warning <= 0 {
		d.Warning = def.Warning
	}
	if d.Flash <= 0 {
		d.Flash = def.Flash
	}
	return &Signal{durations: d}
}

// SetDurations меняет длительности для следующего Start.
func (s *Signal) SetDurations(d Durations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.Main > 0 {
		s.durations.Main = d.Main
	}
	if d.Warning > 0 {
		s.durations.Warning = d.Warning
	}
	if d.Flash > 0 {
		s.durations.Flash = d.Flash
	}
}

// Apply выполняет действие горячей клавиши и сообщает, распознано ли оно.
// Действия сигналов ставят работающий таймер на паузу вместо смены сигнала.
func (s *Signal) Apply(action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.phase != PhaseIdle
	switch action {
	case ActionGreen, ActionYellow, ActionRed:
		if active {
			s.paused = true
			return true
		}
		s.light = colorFor(action)
	case ActionTimer, ActionTimerRed:
		if active {
			s.paused = !s.paused
			return true
		}
		mode := ModeGreen
		if action == ActionTimerRed {
			mode = ModeRed
		}
		s.startLocked(mode)
	default:
		return false
	}
	return true
}

func colorFor(action string) Color {
	switch action {
	case ActionGreen:
		return Green
	case ActionYellow:
		return Yellow
	case ActionRed:
		return Red
	}
	return Off
}

// Start запускает таймер в режиме mode. Если таймер уже идёт, ничего не делает.
func (s *Signal) Start(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseIdle {
		return
	}
	s.startLocked(mode)
}

func (s *Signal) startLocked(mode Mode) {
	s.mode = mode
	s.paused = false
	s.flashed = 0
	s.remaining = s.durations.Main
	if mode == ModeRed {
		s.phase = PhaseRed
		s.light = Red
	} else {
		s.phase = PhaseGreen
		s.light = Green
	}
}

func (s *Signal) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseIdle {
		s.paused = true
	}
}

func (s *Signal) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

func (s *Signal) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseIdle {
		s.paused = !s.paused
	}
}

// Stop отменяет таймер и оставляет текущий сигнал.
func (s *Signal) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Signal) stopLocked() {
	s.phase = PhaseIdle
	s.paused = false
	s.remaining = 0
	s.flashed = 0
}

// Clear останавливает таймер и гасит светофор.
func (s *Signal) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.light = Off
}

// SetLight включает сигнал вручную. Работающий таймер встаёт на паузу и сохраняет свой сигнал.
func (s *Signal) SetLight(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseIdle {
		s.paused = true
		return
	}
	s.light = c
}

// Advance сдвигает отсчёт на dt. Без таймера или на паузе ничего не делает.
func (s *Signal) Advance(dt time.Duration) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseIdle || s.paused || dt <= 0 {
		return NoTransition
	}

	s.remaining -= dt
	if s.phase == PhaseWarning {
		s.flashed += dt
	}
	if s.remaining > 0 {
		return NoTransition
	}

	if s.phase != PhaseWarning {
		s.phase = PhaseWarning
		s.light = Yellow
		s.remaining = s.durations.Warning
		s.flashed = 0
		return WarningStarted
	}

	s.stopLocked()
	if s.mode == ModeRed {
		s.light = Green
	} else {
		s.light = Red
	}
	return Completed
}

// View возвращает снимок текущего состояния.
func (s *Signal) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Light:     s.light,
		Lit:       s.light,
		Phase:     s.phase,
		Mode:      s.mode,
		Active:    s.phase != PhaseIdle,
		Paused:    s.paused,
		Remaining: s.remaining,
	}
	if s.phase == PhaseWarning && (s.flashed/s.durations.Flash)%2 == 1 {
		v.Lit = Off
	}
	return v
}
