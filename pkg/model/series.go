package model

import (
	"image/color"
	"math"
	"sort"
)

// RoundScore is a single scored round for one driver, as exported by the
// league results feed.
type RoundScore struct {
	DriverName string
	Round      int // 1-based round number
	Points     float64
}

// DriverSeries is one driver's cumulative points line across a season.
// Cumulative has length roundCount+1 and Cumulative[0] is always zero,
// regardless of when the driver first scored.
type DriverSeries struct {
	Name       string
	Cumulative []float64
	Color      color.RGBA
	AvatarRef  string
	Number     int // numeric badge fallback
}

// Total returns the driver's final point total.
func (s DriverSeries) Total() float64 {
	if len(s.Cumulative) == 0 {
		return 0
	}
	return s.Cumulative[len(s.Cumulative)-1]
}

// BuildSeries folds per-round scores into cumulative series, one per
// driver, ordered by descending final total (ties by first appearance in
// the input). Rounds without a score carry the previous total forward.
// Scores with a non-finite value or an out-of-range round are skipped.
func BuildSeries(scores []RoundScore, roundCount int) []DriverSeries {
	if roundCount <= 0 {
		return nil
	}

	perRound := make(map[string][]float64)
	var order []string
	for _, sc := range scores {
		if math.IsNaN(sc.Points) || math.IsInf(sc.Points, 0) {
			continue
		}
		if sc.Round < 1 || sc.Round > roundCount {
			continue
		}
		if _, ok := perRound[sc.DriverName]; !ok {
			perRound[sc.DriverName] = make([]float64, roundCount+1)
			order = append(order, sc.DriverName)
		}
		perRound[sc.DriverName][sc.Round] += sc.Points
	}

	series := make([]DriverSeries, 0, len(order))
	for _, name := range order {
		cum := make([]float64, roundCount+1)
		for r := 1; r <= roundCount; r++ {
			cum[r] = cum[r-1] + perRound[name][r]
		}
		series = append(series, DriverSeries{Name: name, Cumulative: cum})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Total() > series[j].Total()
	})
	for i := range series {
		series[i].Color = PaletteColor(i)
		series[i].Number = i + 1
	}
	return series
}

// MaxTotal returns the highest final total across all series, used to
// scale the chart's vertical axis. Returns 0 for an empty input.
func MaxTotal(series []DriverSeries) float64 {
	max := 0.0
	for _, s := range series {
		if t := s.Total(); t > max {
			max = t
		}
	}
	return max
}
