package core

// Clock returns the current time in seconds. glfw.GetTime satisfies it.
type Clock func() float64

// FrameTimer tracks per-frame delta time so movement speed does not depend
// on frame rate.
type FrameTimer struct {
	clock     Clock
	lastFrame float64
	started   bool
}

func NewFrameTimer(clock Clock) *FrameTimer {
	return &FrameTimer{clock: clock}
}

// Tick returns the current time and the seconds elapsed since the previous
// Tick. The first Tick reports a zero delta.
func (t *FrameTimer) Tick() (now, delta float32) {
	current := t.clock()
	if !t.started {
		t.lastFrame = current
		t.started = true
	}
	d := current - t.lastFrame
	if d < 0 {
		d = 0
	}
	t.lastFrame = current
	return float32(current), float32(d)
}
