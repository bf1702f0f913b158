package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputProvider yields the player's control intent for one frame.
type InputProvider interface {
	// ThrottleSteps returns the net number of throttle steps this frame:
	// positive to increase, negative to decrease.
	ThrottleSteps() int

	// Rotation returns the turn command for this frame in {-1, 0, 1}.
	// It must be re-read every frame; rotation does not latch.
	Rotation() float64
}

// KeyboardInput reads the keyboard and mouse wheel. Wheel up or the up
// arrow raises the throttle, wheel down or the down arrow lowers it; Z
// turns counter-clockwise and X clockwise while held.
type KeyboardInput struct{}

func (KeyboardInput) ThrottleSteps() int {
	steps := 0
	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		steps++
	} else if wheelY < 0 {
		steps--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		steps++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		steps--
	}
	return steps
}

func (KeyboardInput) Rotation() float64 {
	var r float64
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		r++
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		r--
	}
	return r
}
