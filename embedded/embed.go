// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconOff - иконка без активного сигнала.
//
//go:embed icon_off.png
var IconOff []byte

// IconGreen - иконка с зелёным сигналом.
//
//go:embed icon_green.png
var IconGreen []byte

// IconYellow - иконка с жёлтым сигналом.
//
//go:embed icon_yellow.png
var IconYellow []byte

// IconRed - иконка с красным сигналом.
//
//go:embed icon_red.png
var IconRed []byte
