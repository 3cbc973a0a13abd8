package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-advisor/internal/config"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-advisor/internal/usecase"
)

// RunApp - runs one interactive advisor session over in and out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	advisor := usecase.NewAdvisor(logger)
	session := console.New(logger, in, out, console.Options{
		ClearScreen: conf.Console.ClearScreen,
		ShowTree:    conf.Console.ShowTree,
		ShowLevels:  conf.Console.ShowLevels,
	})

	log.Debug("Starting console session")
	if err := session.Run(advisor); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}
	log.Debug("Console session finished")

	return nil
}
