// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TimerConfig хранит настройки таймера.
type TimerConfig struct {
	GreenDurationMs       int    `json:"green_duration_ms"`
	YellowFlashDurationMs int    `json:"yellow_flash_duration_ms"`
	Mode                  string `json:"mode"` // green или red
}

// WindowConfig хранит настройки окна.
type WindowConfig struct {
	Width       int  `json:"width"`
	AlwaysOnTop bool `json:"always_on_top"`
}

// configData структура для сериализации.
type configData struct {
	UILanguage    string            `json:"ui_language,omitempty"`
	Notifications bool              `json:"notifications"`
	Sound         bool              `json:"sound"`
	LogLevel      string            `json:"log_level,omitempty"`
	Timer         TimerConfig       `json:"timer"`
	Window        WindowConfig      `json:"window"`
	Shortcuts     map[string]string `json:"shortcuts,omitempty"`
}

// DefaultShortcuts возвращает сочетания клавиш по умолчанию.
func DefaultShortcuts() map[string]string {
	return map[string]string{
		"green":    "Alt+G",
		"yellow":   "Alt+Y",
		"red":      "Alt+R",
		"timer":    "Alt+S",
		"timerRed": "Alt+A",
	}
}

// Config хранит настройки приложения.
type Config struct {
	mu            sync.RWMutex
	uiLanguage    string
	notifications bool
	sound         bool
	logLevel      string
	timer         TimerConfig
	window        WindowConfig
	shortcuts     map[string]string
	configPath    string
}

func defaults() *Config {
	return &Config{
		uiLanguage:    "en",
		notifications: true,
		sound:         true,
		logLevel:      "info",
		timer: TimerConfig{
			GreenDurationMs:       30000,
			YellowFlashDurationMs: 20000,
			Mode:                  "green",
		},
		window:    WindowConfig{Width: 300, AlwaysOnTop: true},
		shortcuts: DefaultShortcuts(),
	}
}

// New создаёт конфигурацию, загружая из файла рядом с бинарником
// или с настройками по умолчанию.
func New() *Config {
	path := ""
	// Резолвим симлинки
	if execPath, err := os.Executable(); err == nil {
		if execPath, err = filepath.EvalSymlinks(execPath); err == nil {
			path = filepath.Join(filepath.Dir(execPath), "config.json")
		}
	}
	return NewWithPath(path)
}

// NewWithPath создаёт конфигурацию с указанным путём к файлу.
// Пустой путь отключает загрузку и сохранение.
func NewWithPath(path string) *Config {
	c := defaults()
	c.configPath = path
	c.load()
	return c
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return // Файл не существует, используем defaults
	}

	// Отсутствующие поля сохраняют значения по умолчанию
	cfg := configData{
		Notifications: c.notifications,
		Sound:         c.sound,
		Timer:         c.timer,
		Window:        c.window,
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = cfg.Notifications
	c.sound = cfg.Sound
	if cfg.LogLevel != "" {
		c.logLevel = cfg.LogLevel
	}
	if cfg.Timer.GreenDurationMs > 0 {
		c.timer.GreenDurationMs = cfg.Timer.GreenDurationMs
	}
	if cfg.Timer.YellowFlashDurationMs > 0 {
		c.timer.YellowFlashDurationMs = cfg.Timer.YellowFlashDurationMs
	}
	if cfg.Timer.Mode == "green" || cfg.Timer.Mode == "red" {
		c.timer.Mode = cfg.Timer.Mode
	}
	if cfg.Window.Width > 0 {
		c.window.Width = cfg.Window.Width
	}
	c.window.AlwaysOnTop = cfg.Window.AlwaysOnTop
	if len(cfg.Shortcuts) > 0 {
		c.shortcuts = cfg.Shortcuts
	}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	cfg := configData{
		UILanguage:    c.uiLanguage,
		Notifications: c.notifications,
		Sound:         c.sound,
		LogLevel:      c.logLevel,
		Timer:         c.timer,
		Window:        c.window,
		Shortcuts:     c.shortcuts,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configPath
}

// SetNotifications включает/выключает уведомления.
func (c *Config) SetNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = enabled
	c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// SetSound включает/выключает звуковой сигнал таймера.
func (c *Config) SetSound(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sound = enabled
	c.save()
}

// SoundEnabled возвращает true если звук включён.
func (c *Config) SoundEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sound
}

// LogLevel возвращает уровень логирования.
func (c *Config) LogLevel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logLevel
}

// Timer возвращает настройки таймера.
func (c *Config) Timer() TimerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timer
}

// TimerDurations возвращает длительность основной фазы и фазы мигания.
func (c *Config) TimerDurations() (main, warning time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.timer.GreenDurationMs) * time.Millisecond,
		time.Duration(c.timer.YellowFlashDurationMs) * time.Millisecond
}

// SetTimerMode устанавливает режим таймера (green или red).
func (c *Config) SetTimerMode(mode string) {
	if mode != "green" && mode != "red" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timer.Mode = mode
	c.save()
}

// WindowWidth возвращает ширину окна.
func (c *Config) WindowWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.window.Width
}

// AlwaysOnTop возвращает true, если окно держится поверх остальных.
func (c *Config) AlwaysOnTop() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.window.AlwaysOnTop
}

// SetAlwaysOnTop включает или выключает режим поверх всех окон.
func (c *Config) SetAlwaysOnTop(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.window.AlwaysOnTop = on
	c.save()
}

// Shortcuts возвращает копию начальной карты сочетаний клавиш.
// Изменения сочетаний во время работы в файл не сохраняются.
func (c *Config) Shortcuts() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := make(map[string]string, len(c.shortcuts))
	for action, combo := range c.shortcuts {
		m[action] = combo
	}
	return m
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}
