// Package timer implements the countdown coupled to an active quiz session.
//
// The controller is a plain state machine; it does not schedule anything
// itself. The owner drives it with one Tick per wall-clock second (the quiz
// screen uses a repeating Bubble Tea tick command) and is guaranteed that the
// expiry transition is reported exactly once, no matter how many state
// updates land on the same tick.
package timer

// Phase is the controller's lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Expired
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Controller is a single countdown timer.
type Controller struct {
	phase     Phase
	initial   int
	remaining int
}

// Start moves Idle→Running with the given budget in seconds. Restarting a
// stopped or expired controller re-arms it; restarting a running one resets
// the countdown.
func (c *Controller) Start(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.phase = Running
	c.initial = seconds
	c.remaining = seconds
}

// Tick consumes one second. It returns true exactly once, on the transition
// Running→Expired; every other call returns false.
func (c *Controller) Tick() bool {
	if c.phase != Running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.phase = Expired
		return true
	}
	return false
}

// Stop cancels the countdown. Idempotent; a no-op when not running.
func (c *Controller) Stop() {
	if c.phase == Running {
		c.phase = Stopped
	}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Running reports whether the countdown is active.
func (c *Controller) Running() bool { return c.phase == Running }

// Remaining returns the seconds left on the countdown.
func (c *Controller) Remaining() int { return c.remaining }

// Initial returns the budget the countdown was started with.
func (c *Controller) Initial() int { return c.initial }
