package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

type imageCanvas struct {
	dst *ebiten.Image
}

func (that imageCanvas) Clear(clr color.Color) {
	that.dst.Fill(clr)
}

func (that imageCanvas) FillRect(rect entity.Rect, clr color.Color) {
	vector.DrawFilledRect(that.dst, rect.X, rect.Y, rect.Width, rect.Height, clr, false)
}

// StrokeRect - draws the outline inside rect so neighbouring cells' borders do not spill past the window edge.
func (that imageCanvas) StrokeRect(rect entity.Rect, width float32, clr color.Color) {
	half := width / 2
	vector.StrokeRect(that.dst, rect.X+half, rect.Y+half, rect.Width-width, rect.Height-width, width, clr, false)
}
