package tictactoe

import (
	"image/color"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Input is the per-frame pointer state read from the windowing layer.
type Input interface {
	CursorPosition() (x, y float32)
	PrimaryJustPressed() bool
}

// Canvas is the set of drawing primitives the board needs.
type Canvas interface {
	Clear(clr color.Color)
	FillRect(rect entity.Rect, clr color.Color)
	StrokeRect(rect entity.Rect, width float32, clr color.Color)
}

type Palette struct {
	Background  color.Color
	Empty       color.Color
	MarkedX     color.Color
	MarkedO     color.Color
	Border      color.Color
	BorderWidth float32
}

func DefaultPalette() Palette {
	return Palette{
		Background:  color.Black,
		Empty:       color.RGBA{R: 130, G: 130, B: 130, A: 255},
		MarkedX:     color.RGBA{R: 230, G: 41, B: 55, A: 255},
		MarkedO:     color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Border:      color.Black,
		BorderWidth: 2,
	}
}

// Fill - returns the fill colour for a cell state.
func (that Palette) Fill(state entity.CellState) color.Color {
	switch state {
	case entity.MarkedX:
		return that.MarkedX
	case entity.MarkedO:
		return that.MarkedO
	default:
		return that.Empty
	}
}

// GameController drives one frame of the game: input handling and drawing.
// It is not safe for concurrent use; the frame loop is its only caller.
type GameController struct {
	logger  *slog.Logger
	board   *entity.Board
	palette Palette
}

func NewGameController(logger *slog.Logger, board *entity.Board, palette Palette) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		board:   board,
		palette: palette,
	}
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

// HoveredCell - returns the first empty cell, in row-major order, under the given point.
func (that *GameController) HoveredCell(x, y float32) (entity.Position, bool) {
	for cell := range that.board.Cells() {
		if cell.State == entity.Empty && cell.Bounds.Contains(x, y) {
			return cell.Position, true
		}
	}

	return entity.Position{}, false
}

// Update - applies one frame of input. Returns the marked cell, if a mark was placed this frame.
func (that *GameController) Update(in Input) (entity.Position, bool) {
	hovered, ok := that.HoveredCell(in.CursorPosition())

	if !in.PrimaryJustPressed() || !ok {
		return entity.Position{}, false
	}

	mark := that.board.NextMark()
	that.board.Mark(hovered.Row, hovered.Col)

	that.logger.Debug("cell marked",
		"row", hovered.Row,
		"col", hovered.Col,
		"mark", mark.String(),
		"turn", that.board.Turn(),
	)

	if that.board.Full() {
		that.logger.Info("board is full", "turns", that.board.Turn())
	}

	return hovered, true
}

// Draw - renders the background and every cell with its state colour and border.
func (that *GameController) Draw(canvas Canvas) {
	canvas.Clear(that.palette.Background)

	for cell := range that.board.Cells() {
		canvas.FillRect(cell.Bounds, that.palette.Fill(cell.State))
		canvas.StrokeRect(cell.Bounds, that.palette.BorderWidth, that.palette.Border)
	}
}
