package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	barBlue  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	rowDark  = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	rowLight = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	darkBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	arrowCol = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a miniature of the demo: a bar sliding off the top over a
// row list, with a downward arrow.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	fillRect(img, 0, 0, size, size, darkBG)

	barH := size / 4
	pad := size / 10

	// Rows behind the bar
	rowH := size / 8
	y := barH / 2
	for i := 0; y < size-pad; i++ {
		c := rowDark
		if i%2 == 1 {
			c = rowLight
		}
		fillRect(img, pad, y, size-2*pad, rowH, c)
		y += rowH + size/20
	}

	// Half-hidden top bar
	fillRect(img, 0, 0, size, barH/2, barBlue)

	// Downward arrow, centered
	drawArrow(img, size)

	return img
}

func drawArrow(img *image.RGBA, size int) {
	cx := size / 2
	top := size / 2
	half := size / 8
	for i := 0; i <= half; i++ {
		y := top + i
		fillRect(img, cx-(half-i), y, 2*(half-i)+1, 1, arrowCol)
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	b := img.Bounds()
	for yy := y; yy < y+h; yy++ {
		if yy < b.Min.Y || yy >= b.Max.Y {
			continue
		}
		for xx := x; xx < x+w; xx++ {
			if xx < b.Min.X || xx >= b.Max.X {
				continue
			}
			img.SetRGBA(xx, yy, c)
		}
	}
}
