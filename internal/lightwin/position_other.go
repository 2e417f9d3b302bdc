//go:build !linux && !windows

package lightwin

import "gioui.org/app"

// positionWindow оставляет размещение окна оконному менеджеру.
func positionWindow(windowTitle string, width int, onTop bool) {}

// setAlwaysOnTop не поддерживается на этой платформе.
func setAlwaysOnTop(windowTitle string, view uintptr, onTop bool) {}

func viewHandle(e app.ViewEvent) uintptr { return 0 }
