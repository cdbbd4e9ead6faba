package race

import (
	"sort"

	"github.com/samber/lo"

	"github.com/paddockhq/gridreplay/pkg/model"
)

// DefaultLaneStep is the bounded per-frame lane movement, in lanes. A
// full swap between adjacent lanes takes about a third of a second at
// 60 ticks per second.
const DefaultLaneStep = 0.05

// Entrant is one finisher's mutable replay state. LanePosition is a
// continuous value tracking TargetLane so rank swaps glide instead of
// snapping.
type Entrant struct {
	model.Finisher
	Index           int // original input order, tie-breaker everywhere
	DisplayProgress float64
	LanePosition    float64
	TargetLane      int
	Finished        bool
	FinishOrder     int     // 1-based order of crossing, 0 = running
	FinishAt        float64 // playback progress at the crossing frame
}

// Simulator reconstructs a top-N race from fixed sector times. It is
// pure with respect to rendering: ComputeFrame returns draw commands in
// normalized coordinates and never touches a surface.
type Simulator struct {
	entrants []*Entrant
	laneStep float64

	slowestTotal float64
	fastestTotal float64
	fastestS1    float64
	fastestS1S2  float64

	nextFinish int
}

// NewSimulator builds a simulator over the valid subset of the given
// finishers. Entrants with a non-finite or negative sector are excluded
// entirely so they cannot poison the shared scales.
func NewSimulator(finishers []model.Finisher, laneStep float64) *Simulator {
	if laneStep <= 0 {
		laneStep = DefaultLaneStep
	}
	valid := model.ValidFinishers(finishers)
	s := &Simulator{laneStep: laneStep}
	for i, f := range valid {
		s.entrants = append(s.entrants, &Entrant{Finisher: f, Index: i})
	}
	if len(s.entrants) > 0 {
		s.slowestTotal = lo.Max(lo.Map(s.entrants, func(e *Entrant, _ int) float64 { return e.TotalTime }))
		s.fastestTotal = lo.Min(lo.Map(s.entrants, func(e *Entrant, _ int) float64 { return e.TotalTime }))
		s.fastestS1 = lo.Min(lo.Map(s.entrants, func(e *Entrant, _ int) float64 { return e.Sector1 }))
		s.fastestS1S2 = lo.Min(lo.Map(s.entrants, func(e *Entrant, _ int) float64 { return e.Sector1 + e.Sector2 }))
	}
	s.Reset()
	return s
}

// Empty reports whether there is nothing to replay.
func (s *Simulator) Empty() bool {
	return len(s.entrants) == 0
}

// Len returns the number of entrants in the replay set.
func (s *Simulator) Len() int {
	return len(s.entrants)
}

// Reset clears all transient replay state for a fresh playback: lane
// positions return to the neutral middle and finish captures are
// cleared.
func (s *Simulator) Reset() {
	middle := float64(len(s.entrants)-1) / 2
	for _, e := range s.entrants {
		e.DisplayProgress = 0
		e.LanePosition = middle
		e.TargetLane = e.Index
		e.Finished = false
		e.FinishOrder = 0
		e.FinishAt = 0
	}
	s.nextFinish = 0
}

// ComputeFrame advances the replay to eased progress p and returns the
// frame's draw commands. Display progress scales each entrant against
// the slowest total time, so the fastest entrant reaches the finish
// boundary first for any input. The finished flag is captured exactly
// once, on the frame display progress first reaches 1. Several entrants
// can cross within the same frame (the last frame in particular), so
// crossings inside a frame are ordered by total time, ties by input
// order, keeping finish order consistent with the classification.
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

	var crossed []*Entrant
	for _, e := range s.entrants {
		dp := p * s.slowestTotal / e.TotalTime
		if dp > 1 {
			dp = 1
		}
		e.DisplayProgress = dp
		if !e.Finished && dp >= 1 {
			crossed = append(crossed, e)
		}
	}
	sort.SliceStable(crossed, func(i, j int) bool {
		if crossed[i].TotalTime != crossed[j].TotalTime {
			return crossed[i].TotalTime < crossed[j].TotalTime
		}
		return crossed[i].Index < crossed[j].Index
	})
	for _, e := range crossed {
		e.Finished = true
		s.nextFinish++
		e.FinishOrder = s.nextFinish
		e.FinishAt = p
	}

	s.assignLanes(p)
	for _, e := range s.entrants {
		e.LanePosition = stepToward(e.LanePosition, float64(e.TargetLane), s.laneStep)
	}

	return s.frame()
}

// assignLanes sorts entrants by the phase-dependent ranking score and
// hands out target lanes 0..N-1, lane 0 on top. The score only controls
// vertical placement, never horizontal position.
func (s *Simulator) assignLanes(p float64) {
	globalElapsed := p * s.fastestTotal
	ranked := make([]*Entrant, len(s.entrants))
	copy(ranked, s.entrants)
	sort.SliceStable(ranked, func(i, j int) bool {
		si := s.phaseScore(ranked[i], globalElapsed)
		sj := s.phaseScore(ranked[j], globalElapsed)
		if si != sj {
			return si < sj
		}
		return ranked[i].Index < ranked[j].Index
	})
	for lane, e := range ranked {
		e.TargetLane = lane
	}
}

// phaseScore ranks an entrant only on sectors the leader has already
// completed: until the fastest sector 1 time has elapsed the score is
// sector 1, until the fastest S1+S2 sum it is the two-sector sum, after
// that the full lap. At p=1 every entrant scores its total time, so the
// final lane order always equals the final classification.
func (s *Simulator) phaseScore(e *Entrant, globalElapsed float64) float64 {
	switch {
	case globalElapsed < s.fastestS1:
		return e.Sector1
	case globalElapsed < s.fastestS1S2:
		return e.Sector1 + e.Sector2
	default:
		return e.TotalTime
	}
}

// Classification returns entrants in display finish order. Entrants
// still running come last, in input order.
func (s *Simulator) Classification() []Entrant {
	out := make([]Entrant, 0, len(s.entrants))
	for _, e := range s.entrants {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].FinishOrder, out[j].FinishOrder
		if oi == 0 {
			oi = len(s.entrants) + 1 + out[i].Index
		}
		if oj == 0 {
			oj = len(s.entrants) + 1 + out[j].Index
		}
		return oi < oj
	})
	return out
}

// stepToward moves cur toward target by at most step.
func stepToward(cur, target, step float64) float64 {
	diff := target - cur
	if diff > step {
		return cur + step
	}
	if diff < -step {
		return cur - step
	}
	return target
}
