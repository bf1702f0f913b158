package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var (
	colorHUD     = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
	colorWarning = color.NRGBA{R: 255, G: 80, B: 60, A: 255}
)

const (
	hudMarginX    = 12
	hudMarginY    = 20
	hudLineHeight = 16
)

// drawHUD prints the flight readout: fuel, throttle, speed split into
// horizontal and vertical components, and altitude. The descent line turns
// red once the ship is falling faster than the safe landing speed.
func (r *Renderer) drawHUD(screen *ebiten.Image, ship *Ship) {
	vx := ship.Vel.HorizontalComponent()
	vy := ship.Vel.VerticalComponent()

	lines := []string{
		fmt.Sprintf("FUEL     %7.0f kg", ship.Fuel),
		fmt.Sprintf("THROTTLE %6.0f %%", ship.Throttle*100),
		fmt.Sprintf("SPEED    %7.1f m/s  (h %+7.1f)", ship.Vel.Magnitude, vx),
		fmt.Sprintf("DESCENT  %+7.1f m/s", vy),
		fmt.Sprintf("ALTITUDE %7.1f m", ship.Pos.Y),
	}
	for i, line := range lines {
		clr := color.Color(colorHUD)
		if i == 3 && -vy > r.cfg.MaxSafeLandingVelocity {
			clr = colorWarning
		}
		text.Draw(screen, line, r.face, hudMarginX, hudMarginY+i*hudLineHeight, clr)
	}
}
