package replay

import (
	"github.com/paddockhq/gridreplay/pkg/model"
	"github.com/paddockhq/gridreplay/pkg/playback"
	"github.com/paddockhq/gridreplay/pkg/points"
	"github.com/paddockhq/gridreplay/pkg/race"
)

// RaceHandle owns one race replay surface.
type RaceHandle struct {
	*handle
	sim   *race.Simulator
	frame race.Frame
}

// MountRace prepares a race replay over the given finishers. The handle
// arms its visibility trigger immediately; playback starts when the
// surface scrolls into view or on Replay. An empty (or fully invalid)
// finisher set yields a hidden no-op handle.
func MountRace(finishers []model.Finisher, opts Options) *RaceHandle {
	sim := race.NewSimulator(finishers, opts.LaneStep)
	rh := &RaceHandle{sim: sim}
	rh.handle = newHandle(opts, DefaultRaceDuration, playback.FinishLineEase, sim.Empty())
	rh.handle.reset = func() {
		sim.Reset()
		rh.frame = race.Frame{}
	}
	rh.handle.onFrame = func(progress float64) {
		rh.frame = sim.ComputeFrame(progress)
	}
	if !sim.Empty() {
		// Show the start grid until the surface scrolls into view.
		rh.frame = sim.ComputeFrame(0)
		sim.Reset()
	}
	return rh
}

// Frame returns the last computed frame's draw commands.
func (rh *RaceHandle) Frame() race.Frame {
	return rh.frame
}

// Lanes returns the number of entrants in the replay set.
func (rh *RaceHandle) Lanes() int {
	return rh.sim.Len()
}

// Classification returns the entrants in display finish order.
func (rh *RaceHandle) Classification() []race.Entrant {
	return rh.sim.Classification()
}

// PointsHandle owns one season progression surface.
type PointsHandle struct {
	*handle
	sim   *points.Simulator
	frame points.Frame
}

// MountPoints prepares a points progression over the given series,
// plotted against chart. Empty input yields a hidden no-op handle.
func MountPoints(series []model.DriverSeries, chart *points.Chart, opts Options) *PointsHandle {
	sim := points.NewSimulator(series, chart)
	ph := &PointsHandle{sim: sim}
	ph.handle = newHandle(opts, DefaultPointsDuration, playback.Linear, sim.Empty())
	ph.handle.reset = func() {
		ph.frame = points.Frame{}
	}
	ph.handle.onFrame = func(progress float64) {
		ph.frame = sim.ComputeFrame(progress)
	}
	return ph
}

// Frame returns the last computed frame's draw commands.
func (ph *PointsHandle) Frame() points.Frame {
	return ph.frame
}

// SettledFrame returns the completed chart, used after playback or for
// a static view.
func (ph *PointsHandle) SettledFrame() points.Frame {
	return ph.sim.ComputeFrame(1)
}

// Series returns the animated series in standings order.
func (ph *PointsHandle) Series() []model.DriverSeries {
	return ph.sim.Series()
}
