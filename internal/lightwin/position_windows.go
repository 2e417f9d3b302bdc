//go:build windows

package lightwin

import (
	"syscall"

	"gioui.org/app"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	procSetWindowPos = user32.NewProc("SetWindowPos")
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0) // HWND_TOPMOST (-1)
	hwndNoTopmost = ^uintptr(1) // HWND_NOTOPMOST (-2)
)

// positionWindow оставляет размещение окна системе; режим поверх всех окон
// применяется, когда приходит HWND.
func positionWindow(windowTitle string, width int, onTop bool) {}

// setAlwaysOnTop меняет порядок окна через SetWindowPos.
func setAlwaysOnTop(windowTitle string, view uintptr, onTop bool) {
	if view == 0 {
		return
	}
	after := hwndNoTopmost
	if onTop {
		after = hwndTopmost
	}
	procSetWindowPos.Call(view, after, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

// viewHandle возвращает HWND окна.
func viewHandle(e app.ViewEvent) uintptr {
	if v, ok := e.(app.Win32ViewEvent); ok {
		return v.HWND
	}
	return 0
}
