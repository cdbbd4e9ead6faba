package model

import (
	"image/color"
	"math"
	"sort"
)

// Palette is the fixed set of display colors handed out to competitors.
// Colors are assigned round-robin by input index so a driver keeps the
// same color for the whole playback.
var Palette = []color.RGBA{
	{226, 55, 68, 255},   // red
	{41, 121, 255, 255},  // blue
	{255, 193, 7, 255},   // amber
	{76, 175, 80, 255},   // green
	{156, 39, 176, 255},  // purple
	{0, 188, 212, 255},   // cyan
	{255, 112, 67, 255},  // deep orange
	{121, 85, 72, 255},   // brown
}

// PaletteColor returns the display color for the i-th competitor.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Finisher is one competitor in a single race replay. Sector times are
// seconds; TotalTime is always the exact sum of the three sectors.
type Finisher struct {
	Name      string
	Sector1   float64
	Sector2   float64
	Sector3   float64
	TotalTime float64
	Position  int         // official classification, 1-based
	Color     color.RGBA  // display color from the palette
	AvatarRef string      // image path, empty when no photo exists
	Number    int         // numeric badge fallback
}

// NewFinisher builds a Finisher with the derived total and the
// round-robin palette color for the given input index.
func NewFinisher(name string, s1, s2, s3 float64, position, index int) Finisher {
	return Finisher{
		Name:      name,
		Sector1:   s1,
		Sector2:   s2,
		Sector3:   s3,
		TotalTime: s1 + s2 + s3,
		Position:  position,
		Color:     PaletteColor(index),
		Number:    position,
	}
}

// Valid reports whether every sector time is finite and non-negative and
// the total is positive. Invalid finishers are dropped from the replay
// set entirely so non-finite values never reach a shared scale.
func (f Finisher) Valid() bool {
	for _, s := range []float64{f.Sector1, f.Sector2, f.Sector3} {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			return false
		}
	}
	return f.TotalTime > 0
}

// ValidFinishers filters out entrants with malformed sector data,
// preserving input order.
func ValidFinishers(in []Finisher) []Finisher {
	out := make([]Finisher, 0, len(in))
	for _, f := range in {
		if f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// SortByTotalTime returns a copy sorted by ascending total time, ties
// resolved by original input order.
func SortByTotalTime(in []Finisher) []Finisher {
	out := make([]Finisher, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalTime < out[j].TotalTime
	})
	return out
}
