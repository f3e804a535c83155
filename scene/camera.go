package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is an abstract camera direction, decoupled from any key binding.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Default camera values
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	MaxPitch float32 = 89
	MinZoom  float32 = 1
	MaxZoom  float32 = 45

	NearPlane float32 = 0.1
	FarPlane  float32 = 100
)

// Camera is an Euler-angle fly camera. Yaw and Pitch are in degrees; a yaw
// of -90 looks down -Z.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

func NewCamera(position mgl32.Vec3) *Camera {
	return NewCameraWithAngles(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func NewCameraWithAngles(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		Front:            mgl32.Vec3{0, 0, -1},
		WorldUp:          worldUp,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// GetViewMatrix returns the lookAt matrix for the current position and basis.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// GetProjectionMatrix is a perspective projection using Zoom as the
// vertical field of view.
func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, NearPlane, FarPlane)
}

func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement applies cursor offsets. With constrainPitch the
// pitch stays inside [-MaxPitch, MaxPitch] so the view never flips.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	if !finite(xOffset) || !finite(yOffset) {
		return
	}
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

func (c *Camera) ProcessMouseScroll(yOffset float32) {
	if !finite(yOffset) {
		return
	}
	c.Zoom = clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
