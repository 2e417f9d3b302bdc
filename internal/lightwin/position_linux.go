//go:build linux

package lightwin

import (
	"os/exec"
	"strconv"
	"strings"
	"time"

	"gioui.org/app"
)

// positionWindow переносит окно в правый верхний угол экрана
// и применяет режим поверх всех окон.
func positionWindow(windowTitle string, width int, onTop bool) {
	// Даём окну время появиться
	time.Sleep(150 * time.Millisecond)

	windowID := findWindow(windowTitle)
	if windowID == "" {
		return
	}

	if screenWidth := getScreenWidth(); screenWidth > 0 {
		x := screenWidth - width - 20
		y := 50
		exec.Command("xdotool", "windowmove", windowID, strconv.Itoa(x), strconv.Itoa(y)).Run()
	}

	setAbove(windowID, onTop)
}

// setAlwaysOnTop меняет режим поверх всех окон у уже показанного окна.
func setAlwaysOnTop(windowTitle string, view uintptr, onTop bool) {
	if windowID := findWindow(windowTitle); windowID != "" {
		setAbove(windowID, onTop)
	}
}

// viewHandle не нужен: окно ищется по заголовку.
func viewHandle(e app.ViewEvent) uintptr { return 0 }

func findWindow(windowTitle string) string {
	output, err := exec.Command("xdotool", "search", "--name", windowTitle).Output()
	if err != nil {
		return ""
	}
	windowIDs := strings.Fields(string(output))
	if len(windowIDs) == 0 {
		return ""
	}
	return windowIDs[0]
}

func setAbove(windowID string, onTop bool) {
	action := "remove,above"
	if onTop {
		action = "add,above"
	}
	if err := exec.Command("wmctrl", "-i", "-r", windowID, "-b", action).Run(); err == nil {
		return
	}

	// wmctrl может быть не установлен
	if onTop {
		exec.Command("xprop", "-id", windowID, "-f", "_NET_WM_STATE", "32a",
			"-set", "_NET_WM_STATE", "_NET_WM_STATE_ABOVE").Run()
	} else {
		exec.Command("xprop", "-id", windowID, "-remove", "_NET_WM_STATE").Run()
	}
}

func getScreenWidth() int {
	output, err := exec.Command("xdotool", "getdisplaygeometry").Output()
	if err != nil {
		return 0
	}
	parts := strings.Fields(string(output))
	if len(parts) != 2 {
		return 0
	}
	width, _ := strconv.Atoi(parts[0])
	return width
}
