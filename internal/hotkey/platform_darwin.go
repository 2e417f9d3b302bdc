//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"trafficlight/internal/shortcut"
)

// modifierMap сопоставляет shortcut.Modifier -> hotkey.Modifier для macOS
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.ModCtrl:  hotkey.ModCtrl,
	shortcut.ModShift: hotkey.ModShift,
	shortcut.ModAlt:   hotkey.ModOption,
	shortcut.ModMeta:  hotkey.ModCmd,
}

// keyBackspace - kVK_Delete, клавиша "delete" на клавиатурах Mac.
const keyBackspace = hotkey.Key(0x33)
