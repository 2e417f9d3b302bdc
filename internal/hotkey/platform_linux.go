//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"trafficlight/internal/shortcut"
)

// modifierMap сопоставляет shortcut.Modifier -> hotkey.Modifier для X11
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.ModCtrl:  hotkey.ModCtrl,
	shortcut.ModShift: hotkey.ModShift,
	shortcut.ModAlt:   hotkey.Mod1, // Alt = Mod1 в X11
	shortcut.ModMeta:  hotkey.Mod4, // Super/Win = Mod4 в X11
}

// keyBackspace - XK_BackSpace.
const keyBackspace = hotkey.Key(0xff08)
