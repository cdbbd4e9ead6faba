package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/gridreplay/pkg/model"
)

func demoSeries(t *testing.T) []model.DriverSeries {
	t.Helper()
	series := model.BuildSeries([]model.RoundScore{
		{DriverName: "X", Round: 1, Points: 25},
		{DriverName: "X", Round: 2, Points: 18},
		{DriverName: "Y", Round: 1, Points: 10},
	}, 2)
	require.Len(t, series, 2)
	return series
}

func demoChart() *Chart {
	return NewChart(Rect{X: 0, Y: 0, W: 400, H: 200}, 2, 43)
}

func TestComputeFrameStart(t *testing.T) {
	sim := NewSimulator(demoSeries(t), demoChart())
	f := sim.ComputeFrame(0)

	require.Len(t, f.Lines, 2)
	assert.True(t, f.Playing)
	assert.Equal(t, 0, f.RoundsDone)
	for _, line := range f.Lines {
		require.Len(t, line.Points, 1)
	}
	// Every marker starts at the zero anchor.
	zero := demoChart().Point(0, 0)
	for _, m := range f.Markers {
		assert.Equal(t, zero, m.At)
	}
}

func TestComputeFrameInterpolatesInPixelSpace(t *testing.T) {
	chart := demoChart()
	sim := NewSimulator(demoSeries(t), chart)

	// p=0.25 over 2 rounds: posFloat=0.5, half-way into round 1.
	f := sim.ComputeFrame(0.25)
	require.Len(t, f.Lines, 2)

	x := f.Lines[0] // standings leader is X (43 points)
	require.Equal(t, "X", x.Name)
	require.Len(t, x.Points, 2)
	a := chart.Point(0, 0)
	b := chart.Point(1, 25)
	want := Lerp(a, b, 0.5)
	assert.InDelta(t, want.X, x.Points[1].X, 1e-9)
	assert.InDelta(t, want.Y, x.Points[1].Y, 1e-9)

	// The marker rides the interpolated tip.
	assert.Equal(t, x.Points[1], f.Markers[0].At)
}

func TestComputeFrameCompletion(t *testing.T) {
	sim := NewSimulator(demoSeries(t), demoChart())
	f := sim.ComputeFrame(1)

	assert.False(t, f.Playing)
	assert.Equal(t, 2, f.RoundsDone)
	for _, line := range f.Lines {
		assert.Len(t, line.Points, 3)
		assert.Equal(t, float64(settledLineWidth), line.Width)
	}
}

func TestLineWeightThinWhilePlaying(t *testing.T) {
	sim := NewSimulator(demoSeries(t), demoChart())
	f := sim.ComputeFrame(0.5)
	for _, line := range f.Lines {
		assert.Equal(t, float64(playingLineWidth), line.Width)
	}
}

func TestMismatchedSeriesSkipped(t *testing.T) {
	series := demoSeries(t)
	series = append(series, model.DriverSeries{Name: "short", Cumulative: []float64{0, 5}})
	sim := NewSimulator(series, demoChart())
	assert.Len(t, sim.Series(), 2)
}

func TestEmptyInput(t *testing.T) {
	sim := NewSimulator(nil, demoChart())
	assert.True(t, sim.Empty())
	f := sim.ComputeFrame(0.5)
	assert.Empty(t, f.Lines)
	assert.Empty(t, f.Markers)
}
