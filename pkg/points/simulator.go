package points

import (
	"image/color"
	"math"

	"github.com/paddockhq/gridreplay/pkg/model"
)

// Line weights used while the progression is animating and once it has
// settled. Hover highlighting is suppressed at the thin weight so the
// moving markers stay the focal point.
const (
	playingLineWidth = 1.5
	settledLineWidth = 3.0
)

// Simulator animates cumulative season points as growing polylines with
// a moving marker per driver. Progress is raw wall-clock progress; no
// easing is applied. All interpolation happens on precomputed pixel
// points so the non-linear vertical scale cannot bend the motion.
type Simulator struct {
	series []model.DriverSeries
	chart  *Chart
	pixels [][]Vec2 // per series, rounds 0..roundCount
}

// Frame is one rendered moment of the progression.
type Frame struct {
	Lines      []Polyline
	Markers    []Marker
	Playing    bool // true while animating: thin lines, hover suppressed
	RoundsDone int  // fully drawn rounds, for the axis cursor
}

// Polyline is one driver's drawn segment chain.
type Polyline struct {
	Name   string
	Color  color.RGBA
	Points []Vec2
	Width  float64
}

// Marker is the avatar or badge at the tip of a driver's line.
type Marker struct {
	Name      string
	Number    int
	Color     color.RGBA
	AvatarRef string
	At        Vec2
}

// NewSimulator precomputes every series' pixel points against the
// chart. Series whose cumulative slice does not cover the chart's
// rounds are skipped.
func NewSimulator(series []model.DriverSeries, chart *Chart) *Simulator {
	s := &Simulator{chart: chart}
	for _, sr := range series {
		if len(sr.Cumulative) != chart.RoundCount()+1 {
			continue
		}
		pts := make([]Vec2, len(sr.Cumulative))
		for r, v := range sr.Cumulative {
			pts[r] = chart.Point(r, v)
		}
		s.series = append(s.series, sr)
		s.pixels = append(s.pixels, pts)
	}
	return s
}

// Empty reports whether there is nothing to animate.
func (s *Simulator) Empty() bool {
	return len(s.series) == 0 || s.chart.RoundCount() == 0
}

// Chart returns the chart geometry the simulator was built against.
func (s *Simulator) Chart() *Chart {
	return s.chart
}

// Series returns the animated series in standings order.
func (s *Simulator) Series() []model.DriverSeries {
	return s.series
}

// ComputeFrame returns the draw commands for raw progress p. Each line
// runs through every completed round and one fractional segment toward
// the next, interpolated in pixel space; the marker rides the tip.
func (s *Simulator) ComputeFrame(p float64) Frame {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	if s.Empty() {
		return Frame{}
	}

	roundCount := s.chart.RoundCount()
	posFloat := p * float64(roundCount)
	roundIndex := int(math.Floor(posFloat))
	frac := posFloat - float64(roundIndex)
	if roundIndex >= roundCount {
		roundIndex = roundCount
		frac = 0
	}

	playing := p < 1
	width := settledLineWidth
	if playing {
		width = playingLineWidth
	}

	f := Frame{Playing: playing, RoundsDone: roundIndex}
	for i, sr := range s.series {
		pts := s.pixels[i]
		line := make([]Vec2, 0, roundIndex+2)
		line = append(line, pts[:roundIndex+1]...)
		tip := pts[roundIndex]
		if roundIndex < roundCount && frac > 0 {
			tip = Lerp(pts[roundIndex], pts[roundIndex+1], frac)
			line = append(line, tip)
		}
		f.Lines = append(f.Lines, Polyline{
			Name:   sr.Name,
			Color:  sr.Color,
			Points: line,
			Width:  width,
		})
		f.Markers = append(f.Markers, Marker{
			Name:      sr.Name,
			Number:    sr.Number,
			Color:     sr.Color,
			AvatarRef: sr.AvatarRef,
			At:        tip,
		})
	}
	return f
}
