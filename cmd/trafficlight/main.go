// Traffic Light - плавающий светофор и таймер для выступлений.
//
// Работает в системном трее, переключается глобальными сочетаниями клавиш
// (по умолчанию Alt+G, Alt+Y, Alt+R, Alt+S и Alt+A).
package main

import (
	"trafficlight/internal/app"
	"trafficlight/internal/config"
	"trafficlight/internal/hotkey"
	"trafficlight/internal/logging"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	cfg := config.New()
	log := logging.New(cfg.LogLevel())
	log.Info().Str("version", Version).Str("config", cfg.Path()).Msg("Traffic Light starting")

	application := app.New(cfg, log)
	application.Run()

	log.Info().Msg("Traffic Light stopped")
}
