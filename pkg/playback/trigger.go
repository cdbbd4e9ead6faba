package playback

// State is the lifecycle of a replay surface's playback gate.
type State int

const (
	StateIdle State = iota
	StateArmed
	StatePlaying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// DefaultVisibleRatio is the fraction of a surface that must scroll into
// view before an armed trigger fires.
const DefaultVisibleRatio = 0.3

// Trigger is a one-shot gate that starts playback the first time its
// surface becomes sufficiently visible. Arming returns a disposer;
// re-arming before disposing replaces the old watch. Replay bypasses
// arming entirely and marks the trigger fired so a later scroll
// re-entry cannot double-start playback.
type Trigger struct {
	state     State
	threshold float64
	fire      func()
	watch     int // generation, invalidates stale disposers
}

// NewTrigger creates a trigger in the idle state.
func NewTrigger() *Trigger {
	return &Trigger{state: StateIdle}
}

// Arm installs a watch that fires at most once when Observe reports a
// visible ratio at or above threshold. A non-positive threshold falls
// back to DefaultVisibleRatio. Any previously installed watch is
// disposed first. The returned disposer is idempotent.
func (t *Trigger) Arm(threshold float64, fire func()) func() {
	if threshold <= 0 {
		threshold = DefaultVisibleRatio
	}
	t.watch++
	gen := t.watch
	t.threshold = threshold
	t.fire = fire
	if t.state == StateIdle {
		t.state = StateArmed
	}
	return func() {
		if t.watch != gen {
			return
		}
		t.fire = nil
		if t.state == StateArmed {
			t.state = StateIdle
		}
	}
}

// Observe feeds the current visible fraction of the surface. The watch
// fires exactly once, then self-disarms; further Observe calls are
// no-ops until the trigger is re-armed.
func (t *Trigger) Observe(visibleRatio float64) {
	if t.state != StateArmed || t.fire == nil {
		return
	}
	if visibleRatio < t.threshold {
		return
	}
	fire := t.fire
	t.fire = nil
	t.state = StatePlaying
	fire()
}

// Replay unconditionally (re)starts playback: it forces the playing
// state from any prior state, including done, and drops any pending
// watch so visibility cannot start a second run.
func (t *Trigger) Replay(start func()) {
	t.fire = nil
	t.watch++
	t.state = StatePlaying
	if start != nil {
		start()
	}
}

// Finish records playback completion.
func (t *Trigger) Finish() {
	if t.state == StatePlaying {
		t.state = StateDone
	}
}

// State returns the current lifecycle state.
func (t *Trigger) State() State {
	return t.state
}
