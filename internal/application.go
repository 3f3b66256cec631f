package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/window"
)

// RunApp - runs the game until the window is closed or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board := entity.NewBoard(entity.Rect{
		X:      0,
		Y:      0,
		Width:  float32(conf.Window.Width),
		Height: float32(conf.Window.Height),
	})
	gameController := tictactoe.NewGameController(logger, board, tictactoe.DefaultPalette())

	windowServer := window.New(logger, gameController, conf.Window)
	if err := windowServer.Start(ctx); err != nil {
		return fmt.Errorf("window error: %w", err)
	}

	log.Info("Game finished", "turns", board.Turn())

	return nil
}
