package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenInput reads pointer state from Ebitengine. Cursor coordinates are in logical screen pixels.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (float32, float32) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y)
}

func (ebitenInput) PrimaryJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
