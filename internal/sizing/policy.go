// Package sizing согласует высоту окна с его шириной
// и панелью таймера.
package sizing

import "math"

// Константы раскладки в логических единицах (dp).
const (
	TitleBarHeight   = 40
	ControlBarHeight = 40
	TimerPanelHeight = 100
	HousingInset     = 80 // ширина, не занятая корпусом
	MinHousingHeight = 240
	MinWindowHeight  = 350

	// Hysteresis - допустимое отклонение высоты до коррекции.
	Hysteresis = 10
)

// HousingHeight возвращает высоту корпуса ламп для ширины окна.
func HousingHeight(width float32) float32 {
	return float32(math.Max(float64(width-HousingInset)*2, MinHousingHeight))
}

// TargetHeight возвращает высоту окна для ширины width.
func TargetHeight(width float32, timerVisible bool) float32 {
	height := float64(TitleBarHeight + ControlBarHeight + HousingHeight(width))
	if timerVisible {
		height += TimerPanelHeight
	}
	return float32(math.Round(math.Max(height, MinWindowHeight)))
}

// NeedsCorrection сообщает, достаточно ли высота отличается от целевой,
// чтобы её исправить.
func NeedsCorrection(reported, target float32) bool {
	return math.Abs(float64(reported-target)) > Hysteresis
}
