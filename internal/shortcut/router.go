package shortcut

import (
	"context"

	"github.com/rs/zerolog"
)

// KeyState - переход, о котором сообщает горячая клавиша платформы.
type KeyState int

const (
	Pressed KeyState = iota
	Released
)

// Event публикуется платформой при срабатывании зарегистрированного сочетания.
type Event struct {
	Combination Combination
	State       KeyState
}

// Resolver находит действие по сработавшему сочетанию.
type Resolver interface {
	Lookup(c Combination) (string, bool)
}

// Notifier получает сработавшие действия. Реализации не должны блокировать.
type Notifier interface {
	Notify(action string)
}

// NotifierFunc превращает функцию в Notifier.
type NotifierFunc func(action string)

// Notify вызывает f(action).
func (f NotifierFunc) Notify(action string) { f(action) }

// Router - единственный потребитель событий горячих клавиш.
type Router struct {
	resolver Resolver
	events   <-chan Event
	notifier Notifier
	log      zerolog.Logger
}

// NewRouter создаёт маршрутизатор, читающий events и передающий действия в n.
func NewRouter(resolver Resolver, events <-chan Event, n Notifier, log zerolog.Logger) *Router {
	return &Router{
		resolver: resolver,
		events:   events,
		notifier: n,
		log:      log.With().Str("component", "router").Logger(),
	}
}

// Run маршрутизирует события до отмены ctx или закрытия канала.
func (r *Router) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			r.Route(ev)
		}
	}
}

// Route обрабатывает одно событие и возвращает переданное действие.
// Отпускания и уже не привязанные сочетания отбрасываются.
func (r *Router) Route(ev Event) (string, bool) {
	if ev.State != Pressed {
		return "", false
	}

	action, ok := r.resolver.Lookup(ev.Combination)
	if !ok {
		r.log.Debug().Str("combo", ev.Combination.String()).Msg("No action for shortcut")
		return "", false
	}

	r.log.Debug().Str("combo", ev.Combination.String()).Str("action", action).Msg("Shortcut triggered")
	r.notifier.Notify(action)
	return action, true
}
