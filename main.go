package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-advisor/internal"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs one console session.
// The exit status is always 0, failures are only logged.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
		}
	}()

	conf := config.MustLoad()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		logger.Error("app run failed", "error", err)
	}
}

// initialize logger. Logs go to stderr, stdout belongs to the console.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
