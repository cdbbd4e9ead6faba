// Package replay ties one rendering surface's simulator, scheduler and
// visibility trigger into a single owned handle. A handle runs at most
// one playback loop; mounting again or replaying cancels the prior loop
// and its watch before anything new starts.
package replay

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paddockhq/gridreplay/pkg/playback"
)

// Default playback durations.
const (
	DefaultRaceDuration   = 8 * time.Second
	DefaultPointsDuration = 6 * time.Second
)

// Options configures a mount.
type Options struct {
	Duration     time.Duration
	LaneStep     float64 // race only
	VisibleRatio float64 // arm threshold, 0 means the default
	Clock        func() time.Time
	Logger       *zap.Logger
}

func (o Options) clock() func() time.Time {
	if o.Clock != nil {
		return o.Clock
	}
	return time.Now
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// handle carries the lifecycle shared by both replay kinds.
type handle struct {
	id       uuid.UUID
	sched    *playback.Scheduler
	trigger  *playback.Trigger
	disarm   func()
	run      *playback.Run
	duration time.Duration
	ease     playback.Ease
	hidden   bool
	disposed bool
	logger   *zap.Logger

	reset   func()
	onFrame func(progress float64)
}

func newHandle(opts Options, duration time.Duration, ease playback.Ease, hidden bool) *handle {
	h := &handle{
		id:       uuid.New(),
		sched:    playback.NewSchedulerWithClock(opts.clock()),
		trigger:  playback.NewTrigger(),
		duration: duration,
		ease:     ease,
		hidden:   hidden,
		logger:   opts.logger(),
	}
	if opts.Duration > 0 {
		h.duration = opts.Duration
	}
	if !hidden {
		h.disarm = h.trigger.Arm(opts.VisibleRatio, h.start)
		h.logger.Debug("replay surface mounted", zap.String("handle", h.id.String()))
	} else {
		h.logger.Debug("replay surface hidden, nothing to animate", zap.String("handle", h.id.String()))
	}
	return h
}

func (h *handle) start() {
	if h.disposed || h.hidden {
		return
	}
	h.reset()
	h.run = h.sched.Start(h.duration, h.ease, h.onFrame, h.finish)
	h.logger.Debug("playback started", zap.String("handle", h.id.String()))
}

func (h *handle) finish() {
	h.trigger.Finish()
	h.logger.Debug("playback finished", zap.String("handle", h.id.String()))
}

// Observe feeds the surface's current visible fraction to the trigger.
func (h *handle) Observe(visibleRatio float64) {
	if h.disposed || h.hidden {
		return
	}
	h.trigger.Observe(visibleRatio)
}

// Tick advances the active playback by one host frame. Call once per
// update; it is a no-op when nothing is playing.
func (h *handle) Tick() {
	if h.disposed {
		return
	}
	h.sched.Tick()
}

// Replay restarts playback immediately, bypassing the visibility gate,
// and leaves the trigger marked fired so scrolling cannot start a
// second run.
func (h *handle) Replay() {
	if h.disposed || h.hidden {
		return
	}
	if h.run != nil {
		h.run.Cancel()
	}
	h.trigger.Replay(h.start)
}

// Dispose cancels any active run and the visibility watch, and clears
// the simulator's transient per-entrant state. Idempotent; no frame
// callback fires after it returns.
func (h *handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	if h.run != nil {
		h.run.Cancel()
	}
	if h.disarm != nil {
		h.disarm()
	}
	h.reset()
	h.logger.Debug("replay surface disposed", zap.String("handle", h.id.String()))
}

// Hidden reports whether the mount had nothing to animate; the surface
// should not be drawn at all.
func (h *handle) Hidden() bool {
	return h.hidden
}

// Playing reports whether a playback loop is currently producing
// frames.
func (h *handle) Playing() bool {
	return !h.disposed && h.run != nil && h.run.Running()
}

// State returns the trigger lifecycle state.
func (h *handle) State() playback.State {
	return h.trigger.State()
}

// ID returns the handle's correlation id.
func (h *handle) ID() string {
	return h.id.String()
}
