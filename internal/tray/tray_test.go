package tray

import (
	"bytes"
	"testing"

	"trafficlight/internal/light"
)

func TestIconForEveryLight(t *testing.T) {
	pngMagic := []byte("\x89PNG\r\n\x1a\n")
	seen := make(map[string]light.Color)

	for _, c := range []light.Color{light.Off, light.Green, light.Yellow, light.Red} {
		icon := iconFor(c)
		if !bytes.HasPrefix(icon, pngMagic) {
			t.Errorf("icon for %v is not a PNG", c)
		}
		if other, ok := seen[string(icon)]; ok {
			t.Errorf("%v and %v share an icon", c, other)
		}
		seen[string(icon)] = c
	}
}

func TestStatusText(t *testing.T) {
	if got := statusText(light.Yellow); got != "Light: yellow" {
		t.Errorf("statusText(yellow) = %q", got)
	}
}

func TestSetWindowVisibleBeforeReady(t *testing.T) {
	// Пункты меню появляются после запуска systray, ранние вызовы игнорируются.
	New(Callbacks{}, Options{}).SetWindowVisible(true)
}
