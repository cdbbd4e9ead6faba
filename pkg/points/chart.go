package points

import "math"

// Vec2 is a point in chart pixel space.
type Vec2 struct {
	X, Y float64
}

// Rect is the plot area in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Chart maps (round, cumulative points) to pixel space. The vertical
// axis keeps a headroom band above the maximum and a baseline band below
// zero, so the pixel scale is not linear-from-zero; any interpolation
// between chart points must therefore happen in pixel space, not in data
// space.
type Chart struct {
	rect       Rect
	roundCount int
	maxValue   float64
	headroom   float64
	baseline   float64
}

// NewChart builds a chart for roundCount rounds with the given maximum
// cumulative value. maxValue is lifted to the next multiple of 10 to
// keep the axis readable.
func NewChart(rect Rect, roundCount int, maxValue float64) *Chart {
	if maxValue <= 0 {
		maxValue = 1
	}
	maxValue = math.Ceil(maxValue/10) * 10
	return &Chart{
		rect:       rect,
		roundCount: roundCount,
		maxValue:   maxValue,
		headroom:   0.08,
		baseline:   0.06,
	}
}

// Rect returns the plot area.
func (c *Chart) Rect() Rect {
	return c.rect
}

// RoundCount returns the number of rounds on the horizontal axis.
func (c *Chart) RoundCount() int {
	return c.roundCount
}

// MaxValue returns the rounded axis maximum.
func (c *Chart) MaxValue() float64 {
	return c.maxValue
}

// Point maps a round index (0..roundCount) and cumulative value to
// pixel space. Round 0 sits on the left edge; value 0 sits on the
// baseline band above the bottom edge.
func (c *Chart) Point(round int, value float64) Vec2 {
	fx := 0.0
	if c.roundCount > 0 {
		fx = float64(round) / float64(c.roundCount)
	}
	usable := 1 - c.headroom - c.baseline
	fy := c.baseline + value/c.maxValue*usable
	return Vec2{
		X: c.rect.X + fx*c.rect.W,
		Y: c.rect.Y + c.rect.H - fy*c.rect.H,
	}
}

// Lerp interpolates between two pixel points.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
