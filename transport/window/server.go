package window

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

type gameController interface {
	Update(in tictactoe.Input) (entity.Position, bool)
	Draw(canvas tictactoe.Canvas)
}

// Server runs the game in a desktop window. It implements ebiten.Game.
type Server struct {
	logger     *slog.Logger
	controller gameController
	conf       config.Window

	// ctx is the context passed to Start; ebiten.Game methods have no context of their own.
	ctx   context.Context //nolint: containedctx // see above
	input tictactoe.Input
}

func New(logger *slog.Logger, controller gameController, conf config.Window) *Server {
	return &Server{
		logger:     logger.With("component", "window"),
		controller: controller,
		conf:       conf,
		ctx:        context.Background(),
		input:      ebitenInput{},
	}
}

// Start - opens the window and runs the frame loop until the window is closed or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	that.ctx = ctx

	ebiten.SetWindowTitle(that.conf.Title)
	ebiten.SetWindowSize(that.conf.Width, that.conf.Height)
	ebiten.SetTPS(that.conf.FrameRate)

	that.logger.Info("Opening window",
		"title", that.conf.Title,
		"width", that.conf.Width,
		"height", that.conf.Height,
		"tps", that.conf.FrameRate,
	)

	// RunGame owns the graphics context and releases it on every exit path.
	err := ebiten.RunGame(that)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %w", apperror.ErrWindowInit, err)
	}

	that.logger.Info("Window closed")

	return nil
}

func (that *Server) Update() error {
	if err := that.ctx.Err(); err != nil {
		that.logger.Info("Context done, closing window", "reason", err)
		return ebiten.Termination
	}

	that.controller.Update(that.input)

	return nil
}

func (that *Server) Draw(screen *ebiten.Image) {
	that.controller.Draw(imageCanvas{dst: screen})
}

// Layout - keeps the logical screen at the configured size so cursor positions map straight onto the board.
func (that *Server) Layout(_, _ int) (int, int) {
	return that.conf.Width, that.conf.Height
}
