//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"trafficlight/internal/shortcut"
)

// modifierMap сопоставляет shortcut.Modifier -> hotkey.Modifier для Windows
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.ModCtrl:  hotkey.ModCtrl,
	shortcut.ModShift: hotkey.ModShift,
	shortcut.ModAlt:   hotkey.ModAlt,
	shortcut.ModMeta:  hotkey.ModWin,
}

// keyBackspace - VK_BACK.
const keyBackspace = hotkey.Key(0x08)
