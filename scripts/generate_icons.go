//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

var (
	housing = color.RGBA{40, 40, 44, 255}
	lamps   = [3]color.RGBA{
		{231, 76, 60, 255},  // Красный
		{241, 196, 15, 255}, // Жёлтый
		{46, 204, 113, 255}, // Зелёный
	}
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name string
		lit  int // индекс горящей лампы, -1 - все погашены
	}{
		{"icon_off.png", -1},
		{"icon_red.png", 0},
		{"icon_yellow.png", 1},
		{"icon_green.png", 2},
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.lit); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

func generateIcon(path string, lit int) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Корпус светофора
	for y := 2; y < size-2; y++ {
		for x := 18; x < size-18; x++ {
			img.Set(x, y, housing)
		}
	}

	// Три лампы сверху вниз
	radius := 8.0
	for i, c := range lamps {
		if i != lit {
			c = color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255}
		}
		centerX, centerY := size/2, 12+i*20
		for y := centerY - 9; y <= centerY+9; y++ {
			for x := centerX - 9; x <= centerX+9; x++ {
				dx := float64(x - centerX)
				dy := float64(y - centerY)
				if dx*dx+dy*dy <= radius*radius {
					img.Set(x, y, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
