package shortcut

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrRegistration возвращается, если платформа отвергла допустимое сочетание.
	ErrRegistration = errors.New("failed to register shortcut")
	// ErrEmptyAction возвращается из Update для пустого имени действия.
	ErrEmptyAction = errors.New("action name is empty")
)

// Handle - действующая регистрация горячей клавиши на платформе.
type Handle interface {
	Unregister() error
}

// Platform регистрирует сочетания в подсистеме горячих клавиш ОС.
type Platform interface {
	Register(c Combination) (Handle, error)
}

// Binding - действие вместе с привязанным к нему сочетанием.
type Binding struct {
	Action      string
	Combination Combination
}

// Skipped описывает запись Initialize, которая не применилась.
type Skipped struct {
	Action      string
	Combination string
	Err         error
}

// Report - итог вызова Initialize.
type Report struct {
	Registered int
	Skipped    []Skipped
}

// OK сообщает, зарегистрированы ли все записи.
func (r Report) OK() bool {
	return len(r.Skipped) == 0
}

// Registry владеет картой действие -> сочетание и регистрациями
// на платформе. Все карты меняются вместе под mu.
type Registry struct {
	mu       sync.RWMutex
	platform Platform
	log      zerolog.Logger

	bindings map[string]Binding // действие -> привязка
	actions  map[string]string  // каноническое сочетание -> действие
	handles  map[string]Handle  // каноническое сочетание -> регистрация
}

// NewRegistry создаёт пустой реестр поверх платформы.
func NewRegistry(platform Platform, log zerolog.Logger) *Registry {
	return &Registry{
		platform: platform,
		log:      log.With().Str("component", "shortcuts").Logger(),
		bindings: make(map[string]Binding),
		actions:  make(map[string]string),
		handles:  make(map[string]Handle),
	}
}

// Initialize заменяет всю карту. Записи, которые не разобрались или
// не зарегистрировались, пропускаются и попадают в отчёт, не прерывая остальные.
func (r *Registry) Initialize(mapping map[string]string) Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetLocked()

	actions := make([]string, 0, len(mapping))
	for action := range mapping {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var report Report
	for _, action := range actions {
		combo := mapping[action]
		c, err := Parse(combo)
		if err == nil {
			err = r.bindLocked(action, c)
		}
		if err != nil {
			r.log.Warn().Err(err).Str("action", action).Str("combo", combo).Msg("Shortcut skipped")
			report.Skipped = append(report.Skipped, Skipped{Action: action, Combination: combo, Err: err})
			continue
		}
		r.log.Debug().Str("action", action).Str("combo", c.String()).Msg("Shortcut registered")
	}
	report.Registered = len(r.bindings)

	r.log.Info().Int("registered", report.Registered).Int("skipped", len(report.Skipped)).Msg("Shortcuts initialized")
	return report
}

// Update переназначает action на combo и возвращает принятую каноническую форму.
// Прежняя привязка освобождается первой, поэтому при любой ошибке
// действие остаётся без сочетания.
func (r *Registry) Update(action, combo string) (string, error) {
	if action == "" {
		return "", ErrEmptyAction
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.releaseLocked(action)

	c, err := Parse(combo)
	if err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("Shortcut update rejected")
		return "", err
	}
	if err := r.bindLocked(action, c); err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("Shortcut update rejected")
		return "", err
	}

	r.log.Info().Str("action", action).Str("combo", c.String()).Msg("Shortcut updated")
	return c.String(), nil
}

// Lookup находит действие, привязанное к сочетанию.
func (r *Registry) Lookup(c Combination) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.actions[c.String()]
	return action, ok
}

// Binding возвращает текущую привязку действия.
func (r *Registry) Binding(action string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[action]
	return b, ok
}

// Bindings возвращает снимок всех привязок, отсортированный по действию.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Action < list[j].Action })
	return list
}

// Len возвращает число привязанных действий.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Close снимает все горячие клавиши и очищает реестр.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

func (r *Registry) resetLocked() {
	for key, h := range r.handles {
		if err := h.Unregister(); err != nil {
			r.log.Warn().Err(err).Str("combo", key).Msg("Failed to unregister shortcut")
		}
	}
	r.bindings = make(map[string]Binding)
	r.actions = make(map[string]string)
	r.handles = make(map[string]Handle)
}

// bindLocked регистрирует c для action. Другое действие, которое держит
// это сочетание, сначала его теряет.
func (r *Registry) bindLocked(action string, c Combination) error {
	key := c.String()

	if holder, ok := r.actions[key]; ok && holder != action {
		r.log.Info().Str("combo", key).Str("from", holder).Str("to", action).Msg("Shortcut taken over")
		r.releaseLocked(holder)
	}

	h, err := r.platform.Register(c)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrRegistration, key, err)
	}

	r.bindings[action] = Binding{Action: action, Combination: c}
	r.actions[key] = action
	r.handles[key] = h
	return nil
}

// releaseLocked снимает и забывает привязку действия, если она есть.
func (r *Registry) releaseLocked(action string) {
	b, ok := r.bindings[action]
	if !ok {
		return
	}
	delete(r.bindings, action)

	key := b.Combination.String()
	if r.actions[key] != action {
		return
	}
	if h, ok := r.handles[key]; ok {
		if err := h.Unregister(); err != nil {
			r.log.Warn().Err(err).Str("action", action).Str("combo", key).Msg("Failed to unregister shortcut")
		}
	}
	delete(r.handles, key)
	delete(r.actions, key)
}
