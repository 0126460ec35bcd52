package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	primary    = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	accent     = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	surface    = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	rowLight   = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	handleGrey = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	glowCol    = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawSheet(img, s)
	drawArrow(img, s)

	return img
}

// drawSheet draws a bottom sheet rising from the lower edge, with a grab
// handle and a few list rows.
func drawSheet(img *image.RGBA, s float64) {
	top := s * 0.36
	x := s * 0.08
	w := s * 0.84

	// Glow along the top edge
	fillRoundedRect(img, x-s*0.02, top-s*0.02, w+s*0.04, s*0.2, s*0.1, glowCol)

	// Rounded top corners; the bottom runs off the icon.
	fillRoundedRect(img, x, top, w, s, s*0.1, surface)

	// Grab handle
	fillRoundedRect(img, s*0.40, top+s*0.05, s*0.20, s*0.04, s*0.02, handleGrey)

	// Rows
	rowH := s * 0.11
	for i := 0; i < 4; i++ {
		ry := top + s*0.14 + float64(i)*(rowH+s*0.02)
		clr := rowLight
		if i == 0 {
			clr = primary
		}
		fillRoundedRect(img, x+s*0.06, ry, w-s*0.12, rowH, s*0.02, clr)
	}
}

// drawArrow draws an upward chevron above the sheet.
func drawArrow(img *image.RGBA, s float64) {
	cx := s * 0.50
	tipY := s * 0.08
	arm := s * 0.16
	steps := int(arm * 4)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dx := t * arm
		dy := t * arm * 0.8
		r := s * 0.035
		fillCircle(img, cx-dx, tipY+dy, r, accent)
		fillCircle(img, cx+dx, tipY+dy, r, accent)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	r := image.Rect(x0, y0, x0+w, y0+h).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// fillRoundedRect fills the rectangle at (xf, yf) with corners of radius rf.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), 0); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), 0); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			// Distance past the nearest corner center on each axis.
			dx := max(xf+rf-float64(x), float64(x)-(xf+wf-rf), 0)
			dy := max(yf+rf-float64(y), float64(y)-(yf+hf-rf), 0)
			if dx*dx+dy*dy <= rf*rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
