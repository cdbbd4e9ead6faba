package playback

import (
	"time"
)

// Scheduler drives a fixed-duration playback loop cooperatively: the
// host calls Tick once per display refresh and the active run invokes
// its frame callback with eased progress until progress reaches 1 or the
// run is cancelled. At most one run is active per scheduler; starting a
// new run cancels the prior one first.
type Scheduler struct {
	now    func() time.Time
	active *Run
}

// Run is a single playback of fixed duration.
type Run struct {
	start     time.Time
	duration  time.Duration
	ease      Ease
	onFrame   func(progress float64)
	onDone    func()
	now       func() time.Time
	raw       float64
	adjusted  float64
	cancelled bool
	done      bool
}

// NewScheduler creates a scheduler using the wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewSchedulerWithClock creates a scheduler with an injected clock.
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Start begins a new run. Any run already active on this scheduler is
// cancelled first so two loops never drive the same surface. A nil ease
// means linear. onDone fires once, on the frame progress reaches 1; it
// does not fire on cancellation.
func (s *Scheduler) Start(duration time.Duration, ease Ease, onFrame func(progress float64), onDone func()) *Run {
	if s.active != nil {
		s.active.Cancel()
	}
	if ease == nil {
		ease = Linear
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	run := &Run{
		start:    s.now(),
		duration: duration,
		ease:     ease,
		onFrame:  onFrame,
		onDone:   onDone,
		now:      s.now,
	}
	s.active = run
	return run
}

// Active returns the current run, or nil when none is running.
func (s *Scheduler) Active() *Run {
	if s.active == nil || !s.active.Running() {
		return nil
	}
	return s.active
}

// Tick advances the active run by one host frame.
func (s *Scheduler) Tick() {
	if s.active != nil {
		s.active.Tick()
	}
}

// Tick invokes the frame callback with the current eased progress. It is
// a no-op once the run is cancelled or finished; cancellation therefore
// stops the next frame rather than interrupting an in-flight one.
func (r *Run) Tick() {
	if r == nil || r.cancelled || r.done {
		return
	}
	elapsed := r.now().Sub(r.start)
	r.raw = clamp01(float64(elapsed) / float64(r.duration))
	r.adjusted = r.ease(r.raw)
	if r.onFrame != nil {
		r.onFrame(r.adjusted)
	}
	if r.raw >= 1 {
		r.done = true
		if r.onDone != nil {
			r.onDone()
		}
	}
}

// Cancel stops the run before its next frame. Idempotent and safe on a
// run that never ticked or has already finished.
func (r *Run) Cancel() {
	if r == nil {
		return
	}
	r.cancelled = true
}

// Running reports whether the run will still produce frames.
func (r *Run) Running() bool {
	return r != nil && !r.cancelled && !r.done
}

// Done reports whether the run reached progress 1.
func (r *Run) Done() bool {
	return r != nil && r.done
}

// RawProgress returns the last raw wall-clock progress in [0,1].
func (r *Run) RawProgress() float64 {
	if r == nil {
		return 0
	}
	return r.raw
}

// Progress returns the last eased progress in [0,1].
func (r *Run) Progress() float64 {
	if r == nil {
		return 0
	}
	return r.adjusted
}
