// Package i18n предоставляет переводы интерфейса.
package i18n

import "sync"

// Language - язык интерфейса.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = EN // Язык по умолчанию
)

// Переводы для всех поддерживаемых языков.
var translations = map[Language]map[string]string{
	EN: {
		// Приложение
		"app_name":    "Traffic Light",
		"app_tooltip": "Traffic Light - presentation timer",

		// Меню трея
		"tray_status":             "Light: %s",
		"tray_timer":              "Show timer",
		"tray_timer_hint":         "Show the countdown panel",
		"tray_window":             "Show window",
		"tray_window_hint":        "Show the traffic light window",
		"tray_on_top":             "Always on top",
		"tray_on_top_hint":        "Keep the window above other windows",
		"tray_rebind":             "Rebind shortcut...",
		"tray_rebind_hint":        "Change the key combination of an action",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_sound":              "Sound",
		"tray_sound_hint":         "Beep when the timer changes phase",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close the application",

		// Сигналы
		"light_off":    "off",
		"light_green":  "green",
		"light_yellow": "yellow",
		"light_red":    "red",

		// Действия
		"action_green":    "Green light",
		"action_yellow":   "Yellow light",
		"action_red":      "Red light",
		"action_timer":    "Start/pause timer",
		"action_timerRed": "Start/pause red timer",

		// Окно
		"window_title":  "Traffic Light",
		"timer_start":   "Start",
		"timer_pause":   "Pause",
		"timer_resume":  "Resume",
		"timer_clear":   "Clear",
		"phase_idle":    "READY",
		"phase_green":   "GREEN",
		"phase_red":     "RED",
		"phase_warning": "WARNING",
		"phase_paused":  "PAUSED",

		// Диалоги
		"dialog_rebind_title":  "Rebind shortcut",
		"dialog_select_action": "Choose the action to rebind:",
		"dialog_enter_combo":   "Enter the new combination for \"%s\" (for example Ctrl+Shift+G):",
		"dialog_unbound":       "not set",
		"dialog_error_title":   "Shortcut error",

		// Уведомления
		"notify_ready":          "Traffic Light is running",
		"notify_skipped":        "Some shortcuts could not be registered",
		"notify_rebound":        "%s is now %s",
		"notify_error":          "Error",
		"notify_timer_warning":  "Time is almost up",
		"notify_timer_finished": "Time is up",
	},
	RU: {
		// Приложение
		"app_name":    "Светофор",
		"app_tooltip": "Светофор - таймер для выступлений",

		// Меню трея
		"tray_status":             "Сигнал: %s",
		"tray_timer":              "Показывать таймер",
		"tray_timer_hint":         "Показать панель обратного отсчёта",
		"tray_window":             "Показать окно",
		"tray_window_hint":        "Показать окно светофора",
		"tray_on_top":             "Поверх всех окон",
		"tray_on_top_hint":        "Держать окно поверх остальных",
		"tray_rebind":             "Изменить сочетание...",
		"tray_rebind_hint":        "Изменить сочетание клавиш для действия",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_sound":              "Звук",
		"tray_sound_hint":         "Сигнал при смене фазы таймера",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Сигналы
		"light_off":    "выкл",
		"light_green":  "зелёный",
		"light_yellow": "жёлтый",
		"light_red":    "красный",

		// Действия
		"action_green":    "Зелёный сигнал",
		"action_yellow":   "Жёлтый сигнал",
		"action_red":      "Красный сигнал",
		"action_timer":    "Запуск/пауза таймера",
		"action_timerRed": "Запуск/пауза красного таймера",

		// Окно
		"window_title":  "Светофор",
		"timer_start":   "Старт",
		"timer_pause":   "Пауза",
		"timer_resume":  "Продолжить",
		"timer_clear":   "Сброс",
		"phase_idle":    "ГОТОВ",
		"phase_green":   "ЗЕЛЁНЫЙ",
		"phase_red":     "КРАСНЫЙ",
		"phase_warning": "ВНИМАНИЕ",
		"phase_paused":  "ПАУЗА",

		// Диалоги
		"dialog_rebind_title":  "Сочетание клавиш",
		"dialog_select_action": "Выберите действие:",
		"dialog_enter_combo":   "Введите новое сочетание для «%s» (например Ctrl+Shift+G):",
		"dialog_unbound":       "не задано",
		"dialog_error_title":   "Ошибка сочетания клавиш",

		// Уведомления
		"notify_ready":          "Светофор запущен",
		"notify_skipped":        "Не удалось зарегистрировать некоторые сочетания",
		"notify_rebound":        "%s: %s",
		"notify_error":          "Ошибка",
		"notify_timer_warning":  "Время почти вышло",
		"notify_timer_finished": "Время вышло",
	},
}

// T возвращает перевод для ключа.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Сначала английский, затем сам ключ
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// SetLanguage устанавливает язык интерфейса.
// Неизвестные языки заменяются английским.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; !ok {
		lang = EN
	}
	current = lang
}

// GetLanguage возвращает текущий язык интерфейса.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages возвращает список поддерживаемых языков.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}

// LanguageName возвращает отображаемое имя языка.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
