package race

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paddockhq/gridreplay/pkg/model"
)

func finishers(rows ...[4]interface{}) []model.Finisher {
	out := make([]model.Finisher, 0, len(rows))
	for i, r := range rows {
		out = append(out, model.NewFinisher(
			r[0].(string),
			r[1].(float64), r[2].(float64), r[3].(float64),
			i+1, i,
		))
	}
	return out
}

// finishOrder plays the replay in small steps and returns names in the
// order their display progress first reached the finish boundary.
func finishOrder(s *Simulator) []string {
	for i := 0; i <= 400; i++ {
		s.ComputeFrame(float64(i) / 400)
	}
	var names []string
	for _, e := range s.Classification() {
		names = append(names, e.Name)
	}
	return names
}

func TestFinishOrderMatchesAscendingTotalTime(t *testing.T) {
	cases := []struct {
		name string
		in   []model.Finisher
		want []string
	}{
		{
			name: "single entrant",
			in:   finishers([4]interface{}{"A", 10.0, 10.0, 10.0}),
			want: []string{"A"},
		},
		{
			name: "two entrants fastest first",
			in: finishers(
				[4]interface{}{"slow", 11.0, 11.0, 11.0},
				[4]interface{}{"fast", 10.0, 10.0, 10.0},
			),
			want: []string{"fast", "slow"},
		},
		{
			name: "three entrants",
			in: finishers(
				[4]interface{}{"mid", 10.0, 10.0, 10.5},
				[4]interface{}{"fast", 10.0, 10.0, 10.0},
				[4]interface{}{"slow", 10.0, 10.0, 11.0},
			),
			want: []string{"fast", "mid", "slow"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSimulator(tc.in, 0)
			assert.Equal(t, tc.want, finishOrder(s))
		})
	}
}

func TestFasterEntrantNeverFinishesLater(t *testing.T) {
	s := NewSimulator(finishers(
		[4]interface{}{"B", 11.0, 10.0, 10.0},
		[4]interface{}{"A", 10.0, 10.0, 10.0},
	), 0)
	var finishA, finishB float64
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		s.ComputeFrame(p)
		for _, e := range s.Classification() {
			if e.Name == "A" && e.Finished && finishA == 0 {
				finishA = e.FinishAt
			}
			if e.Name == "B" && e.Finished && finishB == 0 {
				finishB = e.FinishAt
			}
		}
	}
	require.NotZero(t, finishA)
	require.NotZero(t, finishB)
	assert.LessOrEqual(t, finishA, finishB)
}

func TestThreeWayTieResolvesByInputOrder(t *testing.T) {
	// All totals are exactly 30; carpets must come out 1,2,3 in input
	// order A,B,C.
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0},
		[4]interface{}{"B", 9.0, 10.0, 11.0},
		[4]interface{}{"C", 11.0, 9.0, 10.0},
	), 0)
	f := s.ComputeFrame(1)

	require.Len(t, f.Carpets, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{f.Carpets[0].Ordinal, f.Carpets[1].Ordinal, f.Carpets[2].Ordinal})
	assert.Equal(t, "A", f.Carpets[0].Name)
	assert.Equal(t, "B", f.Carpets[1].Name)
	assert.Equal(t, "C", f.Carpets[2].Name)
}

func TestBunchedFinalFrameFinishesByTotalTime(t *testing.T) {
	// Jump straight from mid-race to the end so all three cross within
	// a single frame. Carpets must still come out by ascending total
	// time, not by input order.
	s := NewSimulator(finishers(
		[4]interface{}{"slow", 11.0, 10.0, 12.0}, // 33
		[4]interface{}{"fast", 10.0, 10.0, 10.0}, // 30
		[4]interface{}{"mid", 10.0, 10.0, 11.0},  // 31
	), 0)
	s.ComputeFrame(0.85)
	f := s.ComputeFrame(1)

	require.Len(t, f.Carpets, 3)
	assert.Equal(t, "fast", f.Carpets[0].Name)
	assert.Equal(t, "mid", f.Carpets[1].Name)
	assert.Equal(t, "slow", f.Carpets[2].Name)
}

func TestFinalLaneOrderEqualsClassification(t *testing.T) {
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0}, // 30
		[4]interface{}{"B", 12.0, 8.0, 9.0},   // 29
		[4]interface{}{"C", 11.0, 9.0, 11.0},  // 31
	), 0)
	s.ComputeFrame(1)

	lanes := map[string]int{}
	for _, e := range s.Classification() {
		lanes[e.Name] = e.TargetLane
	}
	assert.Equal(t, 0, lanes["B"])
	assert.Equal(t, 1, lanes["A"])
	assert.Equal(t, 2, lanes["C"])
}

func TestPhaseDependentRanking(t *testing.T) {
	// fastestS1=10 (A), every S1+S2 sum is 20, fastest total 29 (B).
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0},
		[4]interface{}{"B", 12.0, 8.0, 9.0},
		[4]interface{}{"C", 11.0, 9.0, 11.0},
	), 0)

	laneOrder := func(p float64) []string {
		s.Reset()
		s.ComputeFrame(p)
		names := make([]string, s.Len())
		for _, e := range s.Classification() {
			names[e.TargetLane] = e.Name
		}
		return names
	}

	// globalElapsed = p*29 < 10: rank on sector 1 only.
	assert.Equal(t, []string{"A", "C", "B"}, laneOrder(0.3))
	// 10 <= globalElapsed < 20: all sums tie at 20, input order holds.
	assert.Equal(t, []string{"A", "B", "C"}, laneOrder(0.5))
	// globalElapsed >= 20: full lap times decide.
	assert.Equal(t, []string{"B", "A", "C"}, laneOrder(0.8))
}

func TestNonFiniteEntrantsExcludedFromScales(t *testing.T) {
	s := NewSimulator([]model.Finisher{
		model.NewFinisher("ok", 10, 10, 10, 1, 0),
		model.NewFinisher("nan", math.NaN(), 10, 10, 2, 1),
		model.NewFinisher("zero", 0, 0, 0, 3, 2),
	}, 0)
	require.Equal(t, 1, s.Len())

	f := s.ComputeFrame(0.5)
	require.Len(t, f.Cars, 1)
	assert.False(t, math.IsNaN(f.Cars[0].Progress))
	for _, mark := range f.SectorMarks {
		assert.False(t, math.IsNaN(mark))
	}
}

func TestEmptyInputIsNoOp(t *testing.T) {
	s := NewSimulator(nil, 0)
	assert.True(t, s.Empty())
	f := s.ComputeFrame(0.5)
	assert.Empty(t, f.Cars)
	assert.Empty(t, f.Carpets)
}

func TestLanePositionMovesByBoundedStep(t *testing.T) {
	step := 0.05
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0},
		[4]interface{}{"B", 12.0, 8.0, 9.0},
		[4]interface{}{"C", 11.0, 9.0, 11.0},
	), step)

	prev := map[string]float64{}
	for _, e := range s.Classification() {
		prev[e.Name] = e.LanePosition
	}
	for i := 1; i <= 100; i++ {
		s.ComputeFrame(float64(i) / 100)
		for _, e := range s.Classification() {
			delta := math.Abs(e.LanePosition - prev[e.Name])
			assert.LessOrEqual(t, delta, step+1e-12)
			prev[e.Name] = e.LanePosition
		}
	}
}

func TestResetClearsTransientState(t *testing.T) {
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0},
		[4]interface{}{"B", 9.0, 9.0, 9.0},
	), 0)
	s.ComputeFrame(1)

	s.Reset()
	middle := 0.5 // (2-1)/2
	for _, e := range s.Classification() {
		assert.False(t, e.Finished)
		assert.Zero(t, e.FinishOrder)
		assert.Zero(t, e.FinishAt)
		assert.Equal(t, middle, e.LanePosition)
	}

	// A second full playback reproduces the same finish order.
	f := s.ComputeFrame(1)
	require.Len(t, f.Carpets, 2)
	assert.Equal(t, "B", f.Carpets[0].Name)
	assert.Equal(t, "A", f.Carpets[1].Name)
}

func TestFinishCapturedExactlyOnce(t *testing.T) {
	s := NewSimulator(finishers(
		[4]interface{}{"A", 10.0, 10.0, 10.0},
		[4]interface{}{"B", 11.0, 11.0, 11.0},
	), 0)
	s.ComputeFrame(0.95) // A has finished (30/33 < 0.95), B has not
	var firstAt float64
	for _, e := range s.Classification() {
		if e.Name == "A" {
			require.True(t, e.Finished)
			firstAt = e.FinishAt
		}
	}
	s.ComputeFrame(0.97)
	s.ComputeFrame(1)
	for _, e := range s.Classification() {
		if e.Name == "A" {
			assert.Equal(t, firstAt, e.FinishAt)
			assert.Equal(t, 1, e.FinishOrder)
		}
	}
}
