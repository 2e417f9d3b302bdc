// Package dialog предоставляет GUI диалоги для настройки сочетаний клавиш.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"trafficlight/internal/i18n"
)

// ErrCanceled возвращается, если пользователь закрыл диалог.
var ErrCanceled = zenity.ErrCanceled

// SelectAction открывает диалог выбора действия для переназначения.
// current содержит текущие сочетания в каноническом виде.
func SelectAction(actions []string, current map[string]string) (string, error) {
	items := actionItems(actions, current)

	selected, err := zenity.List(
		i18n.T("dialog_select_action"),
		items,
		zenity.Title(i18n.T("dialog_rebind_title")),
	)
	if err != nil {
		return "", err // Пользователь отменил
	}

	action, ok := actionForItem(actions, items, selected)
	if !ok {
		return "", fmt.Errorf("unknown selection %q", selected)
	}
	return action, nil
}

// PromptCombination запрашивает новое сочетание для действия.
func PromptCombination(action, current string) (string, error) {
	combo, err := zenity.Entry(
		fmt.Sprintf(i18n.T("dialog_enter_combo"), actionLabel(action)),
		zenity.Title(i18n.T("dialog_rebind_title")),
		zenity.EntryText(current),
	)
	if err != nil {
		return "", err
	}
	combo = strings.TrimSpace(combo)
	if combo == "" {
		return "", ErrCanceled
	}
	return combo, nil
}

// IsCanceled сообщает, что ошибка означает отмену диалога.
func IsCanceled(err error) bool {
	return errors.Is(err, zenity.ErrCanceled)
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}

// actionItems формирует строки списка: название действия и текущее сочетание.
func actionItems(actions []string, current map[string]string) []string {
	items := make([]string, 0, len(actions))
	for _, a := range actions {
		combo, ok := current[a]
		if !ok || combo == "" {
			combo = i18n.T("dialog_unbound")
		}
		items = append(items, fmt.Sprintf("%s (%s)", actionLabel(a), combo))
	}
	return items
}

func actionForItem(actions, items []string, selected string) (string, bool) {
	for i, item := range items {
		if item == selected {
			return actions[i], true
		}
	}
	return "", false
}

func actionLabel(action string) string {
	key := "action_" + action
	if label := i18n.T(key); label != key {
		return label
	}
	return action
}
