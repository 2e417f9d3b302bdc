package config

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce объединяет серию событий от редактора в одно изменение.
const watchDebounce = 200 * time.Millisecond

// Watch следит за файлом конфигурации и вызывает onChange после его изменения.
// Блокирует до отмены ctx.
func (c *Config) Watch(ctx context.Context, onChange func()) error {
	path := c.Path()
	if path == "" {
		return errors.New("config has no file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Следим за каталогом: редакторы часто заменяют файл целиком
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Reload перечитывает файл конфигурации и сообщает, изменилась ли карта сочетаний.
func (c *Config) Reload() (shortcutsChanged bool) {
	fresh := defaults()
	fresh.configPath = c.Path()
	fresh.load()

	c.mu.Lock()
	defer c.mu.Unlock()

	shortcutsChanged = !maps.Equal(c.shortcuts, fresh.shortcuts)
	c.uiLanguage = fresh.uiLanguage
	c.notifications = fresh.notifications
	c.sound = fresh.sound
	c.logLevel = fresh.logLevel
	c.timer = fresh.timer
	c.window = fresh.window
	c.shortcuts = fresh.shortcuts
	return shortcutsChanged
}
