package timer

import "testing"

func TestStartSetsBudget(t *testing.T) {
	var c Controller
	c.Start(12)

	if c.Phase() != Running {
		t.Fatalf("phase = %v, want running", c.Phase())
	}
	if c.Initial() != 12 || c.Remaining() != 12 {
		t.Errorf("initial/remaining = %d/%d, want 12/12", c.Initial(), c.Remaining())
	}
}

func TestTickCountsDown(t *testing.T) {
	var c Controller
	c.Start(3)

	if c.Tick() {
		t.Error("tick 1 reported expiry")
	}
	if c.Remaining() != 2 {
		t.Errorf("remaining = %d, want 2", c.Remaining())
	}
	if c.Tick() {
		t.Error("tick 2 reported expiry")
	}
	if !c.Tick() {
		t.Error("tick 3 did not report expiry")
	}
	if c.Phase() != Expired {
		t.Errorf("phase = %v, want expired", c.Phase())
	}
}

func TestExpiryFiresExactlyOnce(t *testing.T) {
	var c Controller
	c.Start(1)

	fired := 0
	for i := 0; i < 5; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", fired)
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.Remaining())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	var c Controller
	c.Start(5)
	c.Stop()
	c.Stop()

	if c.Phase() != Stopped {
		t.Fatalf("phase = %v, want stopped", c.Phase())
	}
	if c.Tick() {
		t.Error("tick after stop reported expiry")
	}
}

func TestStopWhenIdleIsNoop(t *testing.T) {
	var c Controller
	c.Stop()
	if c.Phase() != Idle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
}

func TestTickWhenIdle(t *testing.T) {
	var c Controller
	if c.Tick() {
		t.Error("tick on idle controller reported expiry")
	}
}

func TestRestartReArms(t *testing.T) {
	var c Controller
	c.Start(1)
	c.Tick() // expires
	c.Start(4)

	if c.Phase() != Running || c.Remaining() != 4 {
		t.Errorf("phase/remaining = %v/%d, want running/4", c.Phase(), c.Remaining())
	}
}
