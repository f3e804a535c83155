package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

// vecApprox compares with an absolute tolerance. mgl32's ApproxEqual is
// relative and rejects float32 noise such as cos(-90°) next to zero.
func vecApprox(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func matApprox(a, b mgl32.Mat4) bool {
	for i := range a {
		if !approx(a[i], b[i]) {
			return false
		}
	}
	return true
}

func checkBasis(t *testing.T, c *Camera) {
	t.Helper()
	for name, v := range map[string]mgl32.Vec3{"front": c.Front, "right": c.Right, "up": c.Up} {
		if !approx(v.Len(), 1) {
			t.Errorf("%s not unit length: %v (len %v)", name, v, v.Len())
		}
	}
	if d := c.Front.Dot(c.Right); !approx(d, 0) {
		t.Errorf("front·right = %v, want 0", d)
	}
	if d := c.Front.Dot(c.Up); !approx(d, 0) {
		t.Errorf("front·up = %v, want 0", d)
	}
	if d := c.Right.Dot(c.Up); !approx(d, 0) {
		t.Errorf("right·up = %v, want 0", d)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("angles: got yaw %v pitch %v", c.Yaw, c.Pitch)
	}
	if c.MovementSpeed != 2.5 || c.MouseSensitivity != 0.1 || c.Zoom != 45 {
		t.Errorf("options: got speed %v sensitivity %v zoom %v", c.MovementSpeed, c.MouseSensitivity, c.Zoom)
	}
	want := mgl32.Vec3{0, 0, -1}
	if !vecApprox(c.Front, want) {
		t.Errorf("front: expected %v, got %v", want, c.Front)
	}
	if !vecApprox(c.Right, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("right: got %v", c.Right)
	}
	if !vecApprox(c.Up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("up: got %v", c.Up)
	}
	checkBasis(t, c)
}

func TestProcessKeyboard(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	c.ProcessKeyboard(Forward, 1)
	if !vecApprox(c.Position, mgl32.Vec3{0, 0, 0.5}) {
		t.Errorf("forward: got %v", c.Position)
	}
	c.ProcessKeyboard(Backward, 0.4)
	if !vecApprox(c.Position, mgl32.Vec3{0, 0, 1.5}) {
		t.Errorf("backward: got %v", c.Position)
	}
	c.ProcessKeyboard(Right, 2)
	if !vecApprox(c.Position, mgl32.Vec3{5, 0, 1.5}) {
		t.Errorf("right: got %v", c.Position)
	}
	c.ProcessKeyboard(Left, 2)
	if !vecApprox(c.Position, mgl32.Vec3{0, 0, 1.5}) {
		t.Errorf("left: got %v", c.Position)
	}
}

func TestProcessKeyboardZeroDelta(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	c.ProcessKeyboard(Forward, 0)
	if c.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("zero delta moved camera to %v", c.Position)
	}
}

func TestProcessMouseMovementScalesBySensitivity(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseMovement(100, 50, true)

	if !approx(c.Yaw, -80) {
		t.Errorf("yaw: expected -80, got %v", c.Yaw)
	}
	if !approx(c.Pitch, 5) {
		t.Errorf("pitch: expected 5, got %v", c.Pitch)
	}
	checkBasis(t, c)
}

func TestPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.ProcessMouseMovement(0, 10000, true)
	if c.Pitch != MaxPitch {
		t.Errorf("up: expected pitch %v, got %v", MaxPitch, c.Pitch)
	}

	c.ProcessMouseMovement(0, -10000, true)
	if c.Pitch != -MaxPitch {
		t.Errorf("down: expected pitch %v, got %v", -MaxPitch, c.Pitch)
	}
	checkBasis(t, c)
}

func TestPitchUnconstrained(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.ProcessMouseMovement(0, 1000, false)
	if !approx(c.Pitch, 100) {
		t.Errorf("expected pitch 100 without constraint, got %v", c.Pitch)
	}
}

func TestMouseInvariantsRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCamera(mgl32.Vec3{0, 0, 3})

	for i := 0; i < 2000; i++ {
		dx := float32(rng.NormFloat64() * 300)
		dy := float32(rng.NormFloat64() * 300)
		c.ProcessMouseMovement(dx, dy, true)

		if c.Pitch > MaxPitch || c.Pitch < -MaxPitch {
			t.Fatalf("step %d: pitch %v out of range", i, c.Pitch)
		}
		checkBasis(t, c)
		if t.Failed() {
			t.Fatalf("step %d: basis broken at yaw %v pitch %v", i, c.Yaw, c.Pitch)
		}
	}
}

func TestMouseIgnoresNonFinite(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := *c

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	c.ProcessMouseMovement(nan, 0, true)
	c.ProcessMouseMovement(0, inf, true)
	c.ProcessMouseScroll(nan)

	if *c != before {
		t.Errorf("non-finite input changed camera: %+v", *c)
	}
}

func TestProcessMouseScroll(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.ProcessMouseScroll(10)
	if c.Zoom != 35 {
		t.Errorf("expected zoom 35, got %v", c.Zoom)
	}
	c.ProcessMouseScroll(100)
	if c.Zoom != MinZoom {
		t.Errorf("expected zoom clamped to %v, got %v", MinZoom, c.Zoom)
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("expected zoom clamped to %v, got %v", MaxZoom, c.Zoom)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		c.ProcessMouseScroll(float32(rng.NormFloat64() * 20))
		if c.Zoom < MinZoom || c.Zoom > MaxZoom {
			t.Fatalf("step %d: zoom %v out of range", i, c.Zoom)
		}
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	c.ProcessMouseMovement(123, -45, true)

	view := c.GetViewMatrix()
	eye := view.Mul4x1(c.Position.Vec4(1))
	if !vecApprox(eye.Vec3(), mgl32.Vec3{}) {
		t.Errorf("camera position in view space: expected origin, got %v", eye)
	}

	// A point straight ahead lands on the -Z axis.
	ahead := view.Mul4x1(c.Position.Add(c.Front.Mul(5)).Vec4(1))
	if !vecApprox(ahead.Vec3(), mgl32.Vec3{0, 0, -5}) {
		t.Errorf("point ahead: expected (0,0,-5), got %v", ahead)
	}
}

func TestProjectionMatrixFollowsZoom(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	if got := c.GetProjectionMatrix(800.0 / 600.0); !matApprox(got, want) {
		t.Errorf("projection: expected %v, got %v", want, got)
	}

	c.ProcessMouseScroll(15)
	want = mgl32.Perspective(mgl32.DegToRad(30), 1, 0.1, 100)
	if got := c.GetProjectionMatrix(1); !matApprox(got, want) {
		t.Errorf("zoomed projection: expected %v, got %v", want, got)
	}
}
