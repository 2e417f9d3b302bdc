package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReloadReportsShortcutChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := NewWithPath(path)
	c.SetSound(false) // записывает файл с сочетаниями по умолчанию

	if c.Reload() {
		t.Error("Reload() reported a change for an unchanged mapping")
	}
	if c.SoundEnabled() {
		t.Error("Reload() lost the saved sound setting")
	}

	data := `{"notifications": true, "sound": true, "shortcuts": {"green": "F5"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if !c.Reload() {
		t.Error("Reload() missed the new mapping")
	}
	if got := c.Shortcuts(); len(got) != 1 || got["green"] != "F5" {
		t.Errorf("Shortcuts() = %v", got)
	}
	if !c.SoundEnabled() {
		t.Error("sound not reloaded")
	}
}

func TestWatchCallsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := NewWithPath(path)

	changed := make(chan struct{}, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// Даём наблюдателю время запуститься.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"sound": false}`), 0644); err != nil {
		t.Fatal(err)
	}
	// Другие файлы в том же каталоге игнорируются.
	if err := os.WriteFile(filepath.Join(filepath.Dir(path), "other.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange not called")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchWithoutFile(t *testing.T) {
	if err := NewWithPath("").Watch(context.Background(), func() {}); err == nil {
		t.Error("Watch() without a file should fail")
	}
}
