package core

// MouseTracker turns absolute cursor positions into per-event offsets.
// The first sample only seeds the last position, otherwise the camera would
// jump when the cursor enters the window.
type MouseTracker struct {
	lastX, lastY float64
	firstMouse   bool
}

func NewMouseTracker() *MouseTracker {
	return &MouseTracker{firstMouse: true}
}

// Move records a cursor position and returns the offset since the last one.
// yOffset is inverted since window y-coordinates grow downwards.
func (m *MouseTracker) Move(x, y float64) (xOffset, yOffset float32) {
	if m.firstMouse {
		m.lastX = x
		m.lastY = y
		m.firstMouse = false
	}
	xOffset = float32(x - m.lastX)
	yOffset = float32(m.lastY - y)
	m.lastX = x
	m.lastY = y
	return xOffset, yOffset
}

// Reset makes the next sample a seed again, e.g. after recapturing the cursor.
func (m *MouseTracker) Reset() {
	m.firstMouse = true
}
