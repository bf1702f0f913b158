package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

// Renderer draws the ship, the spark field, and the HUD. The simulation is
// Y-up; the flip to Y-down screen space happens here and nowhere else.
type Renderer struct {
	cfg        Config
	shipSprite *ebiten.Image
	face       font.Face
}

// NewRenderer loads the ship sprite and HUD font.
func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	return &Renderer{
		cfg:        cfg,
		shipSprite: loadShipSprite(logger),
		face:       basicfont.Face7x13,
	}
}

// screenY converts a world Y coordinate to screen space.
func (r *Renderer) screenY(worldY float64) float64 {
	return float64(r.cfg.ScreenHeight) - worldY
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, ship *Ship, field *SparkField) {
	screen.Fill(colorBackground)
	r.drawShip(screen, ship)
	r.drawSparks(screen, field)
	r.drawHUD(screen, ship)
}

// drawShip draws the sprite centered on the ship's position, rotated by its
// orientation. The rotated geometry is a pure function of Orientation,
// recomputed every frame; nothing is cached. Screen space is Y-down, so a
// positive (counter-clockwise) world rotation is a negative screen one.
func (r *Renderer) drawShip(screen *ebiten.Image, ship *Ship) {
	w := float64(r.shipSprite.Bounds().Dx())
	h := float64(r.shipSprite.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-ship.Orientation)
	op.GeoM.Translate(ship.Pos.X, r.screenY(ship.Pos.Y))
	screen.DrawImage(r.shipSprite, op)
}

func (r *Renderer) drawSparks(screen *ebiten.Image, field *SparkField) {
	for _, s := range field.View() {
		vector.DrawFilledCircle(screen,
			float32(s.Pos.X), float32(r.screenY(s.Pos.Y)),
			float32(s.Radius), s.Color, true)
	}
}
