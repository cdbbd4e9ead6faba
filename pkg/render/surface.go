package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Shared colors for the replay surfaces.
var (
	trackColor   = color.RGBA{52, 52, 60, 255}
	guideColor   = color.RGBA{90, 90, 100, 255}
	startColor   = color.RGBA{200, 200, 200, 255}
	finishDark   = color.RGBA{30, 30, 30, 255}
	finishLight  = color.RGBA{240, 240, 240, 255}
	labelColor   = color.RGBA{235, 235, 235, 255}
	ordinalColor = color.RGBA{25, 25, 25, 255}
)

// CarpetColors are the ordinal finish marker colors: gold, silver,
// bronze. Ordinals beyond three reuse bronze.
var CarpetColors = []color.RGBA{
	{212, 175, 55, 255},
	{192, 192, 192, 255},
	{205, 127, 50, 255},
}

func carpetColor(ordinal int) color.RGBA {
	if ordinal >= 1 && ordinal <= len(CarpetColors) {
		return CarpetColors[ordinal-1]
	}
	return CarpetColors[len(CarpetColors)-1]
}

// DrawTrack fills the track band and draws lane guides, a start line,
// sector boundary markers at the given track fractions, and a checkered
// finish column.
func DrawTrack(dst *ebiten.Image, x, y, w, h float64, lanes int, sectorMarks []float64) {
	band := ebiten.NewImage(int(w), int(h))
	band.Fill(trackColor)

	// Lane guides between lanes
	if lanes > 1 {
		laneH := h / float64(lanes)
		for l := 1; l < lanes; l++ {
			gy := int(float64(l) * laneH)
			for gx := 0; gx < int(w); gx += 14 {
				for d := 0; d < 7 && gx+d < int(w); d++ {
					band.Set(gx+d, gy, guideColor)
				}
			}
		}
	}

	// Start line
	for gy := 0; gy < int(h); gy++ {
		band.Set(0, gy, startColor)
		band.Set(1, gy, startColor)
	}

	// Sector boundary markers
	for _, mark := range sectorMarks {
		if mark <= 0 || mark >= 1 {
			continue
		}
		mx := int(mark * w)
		for gy := 0; gy < int(h); gy += 6 {
			for d := 0; d < 3 && gy+d < int(h); d++ {
				band.Set(mx, gy+d, guideColor)
			}
		}
	}

	// Checkered finish column
	square := 6
	fx := int(w) - 2*square
	for gy := 0; gy < int(h); gy += square {
		for gx := 0; gx < 2; gx++ {
			c := finishLight
			if (gy/square+gx)%2 == 0 {
				c = finishDark
			}
			for py := 0; py < square && gy+py < int(h); py++ {
				for px := 0; px < square; px++ {
					band.Set(fx+gx*square+px, gy+py, c)
				}
			}
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(band, op)
}

// DrawCar renders a small side-view car sprite centered at (x, y) with
// the driver label to its upper left.
func DrawCar(dst *ebiten.Image, x, y float64, carColor color.RGBA, label string) {
	carW, carH := 34, 16
	carImg := ebiten.NewImage(carW, carH)

	// Body
	for py := 4; py < 12; py++ {
		for px := 1; px < carW-1; px++ {
			carImg.Set(px, py, carColor)
		}
	}
	// Cabin
	cabin := color.RGBA{uint8(int(carColor.R) * 2 / 3), uint8(int(carColor.G) * 2 / 3), uint8(int(carColor.B) * 2 / 3), 255}
	for py := 1; py < 5; py++ {
		for px := 10; px < 24; px++ {
			carImg.Set(px, py, cabin)
		}
	}
	// Windshield
	windshield := color.RGBA{150, 200, 255, 230}
	for py := 2; py < 5; py++ {
		for px := 19; px < 23; px++ {
			carImg.Set(px, py, windshield)
		}
	}
	// Wheels
	wheel := color.RGBA{25, 25, 25, 255}
	for _, wx := range []int{6, 24} {
		for py := 10; py < 16; py++ {
			for px := wx; px < wx+6; px++ {
				dx, dy := float64(px-wx)-2.5, float64(py-10)-2.5
				if dx*dx+dy*dy <= 9 {
					carImg.Set(px, py, wheel)
				}
			}
		}
	}
	// Nose highlight
	for py := 6; py < 10; py++ {
		carImg.Set(carW-2, py, color.RGBA{255, 255, 255, 180})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(carW)/2, y-float64(carH)/2)
	dst.DrawImage(carImg, op)

	if label != "" {
		DrawLabel(dst, label, x-float64(carW)/2, y-float64(carH)/2-12, 1, labelColor)
	}
}

// DrawCarpet renders the ordinal finish marker for a classified entrant:
// a gold, silver or bronze pad with the ordinal printed on it.
func DrawCarpet(dst *ebiten.Image, x, y float64, ordinal int) {
	w, h := 26, 14
	pad := ebiten.NewImage(w, h)
	pad.Fill(carpetColor(ordinal))
	edge := color.RGBA{20, 20, 20, 255}
	for px := 0; px < w; px++ {
		pad.Set(px, 0, edge)
		pad.Set(px, h-1, edge)
	}
	for py := 0; py < h; py++ {
		pad.Set(0, py, edge)
		pad.Set(w-1, py, edge)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(w)/2, y-float64(h)/2)
	dst.DrawImage(pad, op)
	DrawLabel(dst, fmt.Sprintf("%d", ordinal), x-3, y-6, 1, ordinalColor)
}

// DrawGlowLane paints a translucent highlight across a finished
// entrant's lane, from x0 to x1 centered on y.
func DrawGlowLane(dst *ebiten.Image, x0, x1, y float64, c color.RGBA) {
	if x1 <= x0 {
		return
	}
	h := 22
	glow := ebiten.NewImage(int(x1-x0), h)
	glow.Fill(color.RGBA{c.R, c.G, c.B, 48})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x0, y-float64(h)/2)
	dst.DrawImage(glow, op)
}

// DrawAvatarBadge draws a circular marker at (x, y): the clipped avatar
// photo when one is ready, otherwise a solid disk in the entity color
// with the fallback number centered. A nil avatar always takes the
// badge path, so a failed or unfinished load degrades without error.
func DrawAvatarBadge(dst *ebiten.Image, x, y, radius float64, avatar *ebiten.Image, number int, c color.RGBA) {
	if avatar != nil {
		scale := radius * 2 / float64(avatar.Bounds().Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x-radius, y-radius)
		dst.DrawImage(avatar, op)
		return
	}

	d := int(radius*2) + 1
	disk := ebiten.NewImage(d, d)
	outline := color.RGBA{255, 255, 255, 255}
	for py := 0; py < d; py++ {
		for px := 0; px < d; px++ {
			dx := float64(px) - radius
			dy := float64(py) - radius
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= radius-1 {
				disk.Set(px, py, c)
			} else if dist <= radius {
				disk.Set(px, py, outline)
			}
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-radius, y-radius)
	dst.DrawImage(disk, op)

	label := fmt.Sprintf("%d", number)
	DrawLabel(dst, label, x-float64(len(label))*3, y-6, 1, labelColor)
}

// DrawLineSegment draws a solid line of the given width between two
// points.
func DrawLineSegment(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	steps := int(length) + 1
	half := width / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px, py := x0+dx*t, y0+dy*t
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				dst.Set(int(px+ox), int(py+oy), c)
			}
		}
	}
}

// DrawLabel renders text with the shared bitmap font at the given
// scale.
func DrawLabel(dst *ebiten.Image, s string, x, y, scale float64, c color.RGBA) {
	face := text.NewGoXFace(bitmapfont.Face)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x/scale, y/scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}
