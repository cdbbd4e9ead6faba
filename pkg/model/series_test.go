package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeriesCumulative(t *testing.T) {
	scores := []RoundScore{
		{DriverName: "X", Round: 1, Points: 25},
		{DriverName: "X", Round: 2, Points: 18},
		{DriverName: "Y", Round: 1, Points: 10},
	}
	series := BuildSeries(scores, 2)
	require.Len(t, series, 2)

	byName := map[string]DriverSeries{}
	for _, s := range series {
		byName[s.Name] = s
	}
	assert.Equal(t, []float64{0, 25, 43}, byName["X"].Cumulative)
	assert.Equal(t, []float64{0, 10, 10}, byName["Y"].Cumulative)
}

func TestBuildSeriesAnchorsAtZeroForLateScorer(t *testing.T) {
	// First scored round is round 3: the series still starts at 0 and
	// stays flat until the first score.
	series := BuildSeries([]RoundScore{{DriverName: "Z", Round: 3, Points: 15}}, 4)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{0, 0, 0, 15, 15}, series[0].Cumulative)
}

func TestBuildSeriesOrdersByFinalTotal(t *testing.T) {
	scores := []RoundScore{
		{DriverName: "low", Round: 1, Points: 5},
		{DriverName: "high", Round: 1, Points: 25},
	}
	series := BuildSeries(scores, 1)
	require.Len(t, series, 2)
	assert.Equal(t, "high", series[0].Name)
	assert.Equal(t, 1, series[0].Number)
	assert.Equal(t, "low", series[1].Name)
}

func TestBuildSeriesSkipsBadRows(t *testing.T) {
	scores := []RoundScore{
		{DriverName: "X", Round: 1, Points: math.NaN()},
		{DriverName: "X", Round: 0, Points: 10},
		{DriverName: "X", Round: 5, Points: 10},
		{DriverName: "X", Round: 2, Points: 18},
	}
	series := BuildSeries(scores, 2)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{0, 0, 18}, series[0].Cumulative)
}

func TestBuildSeriesZeroRounds(t *testing.T) {
	assert.Nil(t, BuildSeries([]RoundScore{{DriverName: "X", Round: 1, Points: 1}}, 0))
}

func TestMaxTotal(t *testing.T) {
	series := BuildSeries([]RoundScore{
		{DriverName: "X", Round: 1, Points: 30},
		{DriverName: "Y", Round: 1, Points: 12},
	}, 1)
	assert.Equal(t, 30.0, MaxTotal(series))
	assert.Equal(t, 0.0, MaxTotal(nil))
}
