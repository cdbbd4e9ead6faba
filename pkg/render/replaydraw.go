package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/paddockhq/gridreplay/pkg/points"
	"github.com/paddockhq/gridreplay/pkg/race"
)

// TrackLayout maps the race simulator's normalized coordinates to a
// rectangle on the surface. The car run spans startMargin..finishMargin
// inside the band so sprites never clip the edges.
type TrackLayout struct {
	X, Y, W, H float64
	Lanes      int
}

const (
	trackStartMargin  = 24
	trackFinishMargin = 52
)

// LaneCenterY converts a continuous lane position to a surface Y.
func (l TrackLayout) LaneCenterY(lane float64) float64 {
	if l.Lanes == 0 {
		return l.Y + l.H/2
	}
	laneH := l.H / float64(l.Lanes)
	return l.Y + (lane+0.5)*laneH
}

// CarX converts display progress to a surface X between the start line
// and the finish boundary.
func (l TrackLayout) CarX(progress float64) float64 {
	start := l.X + trackStartMargin
	length := l.W - trackStartMargin - trackFinishMargin
	return start + length*progress
}

// DrawRaceFrame executes one race frame's draw commands: track with
// sector guides first, then glow lanes behind finished cars, then the
// car sprites with labels, then the ordinal carpets in crossing order.
func DrawRaceFrame(dst *ebiten.Image, layout TrackLayout, f race.Frame) {
	DrawTrack(dst, layout.X, layout.Y, layout.W, layout.H, f.Lanes, f.SectorMarks)

	for _, g := range f.Glows {
		y := layout.LaneCenterY(g.Lane)
		DrawGlowLane(dst, layout.X+trackStartMargin, layout.CarX(1), y, g.Color)
	}

	for _, c := range f.Cars {
		x := layout.CarX(c.Progress)
		y := layout.LaneCenterY(c.Lane)
		DrawCar(dst, x, y, c.Color, c.Name)
	}

	carpetX := layout.X + layout.W - trackFinishMargin/2
	for i, carpet := range f.Carpets {
		y := layout.LaneCenterY(float64(i))
		DrawCarpet(dst, carpetX, y, carpet.Ordinal)
	}
}

// Chart frame colors.
var (
	chartBgColor   = color.RGBA{24, 24, 30, 255}
	axisColor      = color.RGBA{110, 110, 120, 255}
	axisLabelColor = color.RGBA{180, 180, 190, 255}
)

// DrawPointsFrame executes one progression frame: chart background and
// axes, every driver polyline, then the tip markers. Photos render only
// when the caller's show-photos flag permits and the avatar is already
// loaded; everything else gets the numeric badge. hover names a driver
// to emphasize once playback has settled; it is ignored while playing.
func DrawPointsFrame(dst *ebiten.Image, f points.Frame, chart *points.Chart, avatars *AvatarStore, showPhotos bool, hover string) {
	rect := chart.Rect()

	bg := ebiten.NewImage(int(rect.W), int(rect.H))
	bg.Fill(chartBgColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(rect.X, rect.Y)
	dst.DrawImage(bg, op)

	drawChartAxes(dst, chart)

	for _, line := range f.Lines {
		width := line.Width
		if !f.Playing && hover != "" && line.Name == hover {
			width += 2
		}
		for i := 1; i < len(line.Points); i++ {
			a, b := line.Points[i-1], line.Points[i]
			DrawLineSegment(dst, a.X, a.Y, b.X, b.Y, width, line.Color)
		}
	}

	for _, m := range f.Markers {
		var avatar *ebiten.Image
		if showPhotos && m.AvatarRef != "" {
			avatar = avatars.Image(m.AvatarRef)
		}
		DrawAvatarBadge(dst, m.At.X, m.At.Y, 11, avatar, m.Number, m.Color)
	}
}

// drawChartAxes draws the bottom round axis and the left value axis
// with a handful of guide labels.
func drawChartAxes(dst *ebiten.Image, chart *points.Chart) {
	rect := chart.Rect()
	bottom := chart.Point(0, 0)
	right := chart.Point(chart.RoundCount(), 0)
	DrawLineSegment(dst, bottom.X, bottom.Y, right.X, right.Y, 1, axisColor)

	for r := 0; r <= chart.RoundCount(); r++ {
		at := chart.Point(r, 0)
		DrawLineSegment(dst, at.X, at.Y, at.X, at.Y+4, 1, axisColor)
		DrawLabel(dst, fmt.Sprintf("R%d", r), at.X-6, at.Y+8, 1, axisLabelColor)
	}

	steps := 4
	for i := 0; i <= steps; i++ {
		v := chart.MaxValue() * float64(i) / float64(steps)
		at := chart.Point(0, v)
		DrawLineSegment(dst, at.X-4, at.Y, at.X, at.Y, 1, axisColor)
		DrawLabel(dst, fmt.Sprintf("%.0f", v), rect.X-28, at.Y-6, 1, axisLabelColor)
	}
}
