package game

import (
	"bytes"
	_ "embed"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
)

//go:embed assets/lander.svg
var landerSVGData []byte

const (
	spriteWidth  = 32
	spriteHeight = 32
)

// loadShipSprite rasterizes the embedded SVG. A broken asset falls back to
// a generated placeholder so the simulation still runs.
func loadShipSprite(logger *zap.Logger) *ebiten.Image {
	img, err := svgToImage(landerSVGData, spriteWidth, spriteHeight)
	if err != nil {
		logger.Warn("ship sprite fallback", zap.Error(err))
		img = placeholderShip(spriteWidth, spriteHeight)
	}
	return ebiten.NewImageFromImage(img)
}

// svgToImage rasterizes SVG data at the given size.
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

// placeholderShip draws a simple upward-pointing triangle.
func placeholderShip(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	hull := color.NRGBA{R: 100, G: 150, B: 255, A: 255}
	edge := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	centerX := float64(width) / 2
	for y := 0; y < height; y++ {
		// Triangle narrows toward the top of the image (the nose).
		halfSpan := float64(width) / 2 * float64(y) / float64(height)
		for x := 0; x < width; x++ {
			relX := float64(x) - centerX
			switch {
			case relX > -halfSpan && relX < halfSpan:
				img.Set(x, y, hull)
			case relX >= halfSpan-1 && relX <= halfSpan+1, relX <= -halfSpan+1 && relX >= -halfSpan-1:
				img.Set(x, y, edge)
			}
		}
	}
	return img
}
