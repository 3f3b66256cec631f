package entity

import (
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 3

// oneThird is used for both cell offsets and cell sizes so that neighbouring cells share edges exactly.
const oneThird float32 = 1.0 / 3.0

type CellState uint8

const (
	Empty CellState = iota
	MarkedX
	MarkedO
)

func (that CellState) String() string {
	switch that {
	case MarkedX:
		return "X"
	case MarkedO:
		return "O"
	default:
		return "-"
	}
}

// Position addresses a cell by row and column, both in [0, BoardSize).
type Position struct {
	Row uint8
	Col uint8
}

// Cell is a snapshot of one board cell together with its on-screen rectangle.
type Cell struct {
	Position
	Bounds Rect
	State  CellState
}

// Board holds the 3x3 grid and the turn counter. Cell geometry is never stored, it is derived from bounds.
type Board struct {
	turn   uint8
	bounds Rect
	states [BoardSize][BoardSize]CellState
}

// NewBoard - creates an empty board covering bounds. X moves first.
func NewBoard(bounds Rect) *Board {
	return &Board{bounds: bounds}
}

func (that *Board) Turn() uint8 {
	return that.turn
}

func (that *Board) Bounds() Rect {
	return that.bounds
}

// State - returns the state of a single cell. Panics on out-of-range indices.
func (that *Board) State(row, col uint8) CellState {
	mustBeOnBoard(row, col)

	return that.states[row][col]
}

// NextMark - returns the mark the next successful Mark call will place.
func (that *Board) NextMark() CellState {
	if that.turn&1 == 0 {
		return MarkedX
	}
	return MarkedO
}

// Mark - places the current player's mark on an empty cell and advances the turn.
// Marking an occupied cell does nothing. Out-of-range indices are a programming error and panic.
func (that *Board) Mark(row, col uint8) {
	mustBeOnBoard(row, col)

	if that.states[row][col] != Empty {
		return
	}

	that.states[row][col] = that.NextMark()
	that.turn++
}

// Full - reports whether every cell has been marked.
func (that *Board) Full() bool {
	return int(that.turn) >= BoardSize*BoardSize
}

// Geometry - yields the rectangle of every cell in row-major order, recomputed from the board bounds.
func (that *Board) Geometry() iter.Seq2[Position, Rect] {
	startX, startY := that.bounds.X, that.bounds.Y
	subWidth, subHeight := that.bounds.Width*oneThird, that.bounds.Height*oneThird

	return func(yield func(Position, Rect) bool) {
		for i := range uint8(BoardSize * BoardSize) {
			row, col := i/BoardSize, i%BoardSize
			rect := Rect{
				X:      startX + float32(col)*subWidth,
				Y:      startY + float32(row)*subHeight,
				Width:  subWidth,
				Height: subHeight,
			}

			if !yield(Position{Row: row, Col: col}, rect) {
				return
			}
		}
	}
}

// Cells - yields every cell's position, rectangle and current state in row-major order.
func (that *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for pos, rect := range that.Geometry() {
			cell := Cell{
				Position: pos,
				Bounds:   rect,
				State:    that.states[pos.Row][pos.Col],
			}

			if !yield(cell) {
				return
			}
		}
	}
}

func mustBeOnBoard(row, col uint8) {
	if row >= BoardSize || col >= BoardSize {
		panic(fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col))
	}
}
