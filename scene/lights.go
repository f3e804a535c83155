package scene

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the subset of a shader program the lighting code writes to.
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
}

type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation covers a distance of roughly 50 units.
var DefaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

type Phong struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

type DirLight struct {
	Direction mgl32.Vec3
	Phong
}

type PointLight struct {
	Position mgl32.Vec3
	Phong
	Attenuation
}

// SpotLight is a flashlight attached to the camera. Cut-offs are half
// angles in degrees and are sent to shaders as cosines.
type SpotLight struct {
	Phong
	Attenuation
	CutOff      float32
	OuterCutOff float32
}

// NewPointLight derives the phong terms from a single color: a dim ambient
// term and full diffuse and specular.
func NewPointLight(position, color mgl32.Vec3) PointLight {
	return PointLight{
		Position: position,
		Phong: Phong{
			Ambient:  color.Mul(0.1),
			Diffuse:  color,
			Specular: color,
		},
		Attenuation: DefaultAttenuation,
	}
}

// NewFlashlight builds a spot light with the default 12.5/17.5 degree cone.
func NewFlashlight(ambient, diffuse, specular mgl32.Vec3) SpotLight {
	return SpotLight{
		Phong:       Phong{Ambient: ambient, Diffuse: diffuse, Specular: specular},
		Attenuation: DefaultAttenuation,
		CutOff:      12.5,
		OuterCutOff: 17.5,
	}
}

// Lighting is one dirLight, up to MaxPointLights point lights and a
// camera spot light, plus the clear color that goes with them.
type Lighting struct {
	Clear  mgl32.Vec3
	Dir    DirLight
	Points []PointLight
	Spot   SpotLight
}

// MaxPointLights matches the pointLights array size in the shaders.
const MaxPointLights = 4

// Apply writes the lights to u. The spot light is placed at the camera
// looking along its front vector.
func (l Lighting) Apply(u Uniforms, cam *Camera) {
	u.SetVec3("dirLight.direction", l.Dir.Direction)
	setPhong(u, "dirLight", l.Dir.Phong)

	for i, p := range l.Points {
		if i >= MaxPointLights {
			break
		}
		prefix := fmt.Sprintf("pointLights[%d]", i)
		u.SetVec3(prefix+".position", p.Position)
		setPhong(u, prefix, p.Phong)
		setAttenuation(u, prefix, p.Attenuation)
	}

	ApplySpot(u, "spotLight", l.Spot, cam)
}

// ApplySpot writes a single spot light under prefix, following the camera.
func ApplySpot(u Uniforms, prefix string, s SpotLight, cam *Camera) {
	u.SetVec3(prefix+".position", cam.Position)
	u.SetVec3(prefix+".direction", cam.Front)
	setPhong(u, prefix, s.Phong)
	setAttenuation(u, prefix, s.Attenuation)
	u.SetFloat(prefix+".cutOff", cosDeg(s.CutOff))
	u.SetFloat(prefix+".outerCutOff", cosDeg(s.OuterCutOff))
}

func setPhong(u Uniforms, prefix string, p Phong) {
	u.SetVec3(prefix+".ambient", p.Ambient)
	u.SetVec3(prefix+".diffuse", p.Diffuse)
	u.SetVec3(prefix+".specular", p.Specular)
}

func setAttenuation(u Uniforms, prefix string, a Attenuation) {
	u.SetFloat(prefix+".constant", a.Constant)
	u.SetFloat(prefix+".linear", a.Linear)
	u.SetFloat(prefix+".quadratic", a.Quadratic)
}

// LampColors returns the point light diffuse colors, used to tint the lamp
// cubes.
func (l Lighting) LampColors() []mgl32.Vec3 {
	colors := make([]mgl32.Vec3, len(l.Points))
	for i, p := range l.Points {
		colors[i] = p.Diffuse
	}
	return colors
}

// Mood selects one of the multi-light presets.
type Mood int

const (
	Desert Mood = iota
	Factory
	Horror
	Biochemical
)

var moodNames = [...]string{"desert", "factory", "horror", "biochemical"}

func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodNames) {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodNames[m]
}

func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range moodNames {
		if name == s {
			return Mood(i), nil
		}
	}
	return Desert, fmt.Errorf("unknown mood %q", s)
}

// MoodLightPositions are where the four lamps stand among the containers.
var MoodLightPositions = []mgl32.Vec3{
	{0.7, 0.2, 2.0},
	{2.3, -3.3, -4.0},
	{-4.0, 2.0, -12.0},
	{0.0, 0.0, -3.0},
}

func gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

func pointLights(positions, colors []mgl32.Vec3) []PointLight {
	out := make([]PointLight, len(positions))
	for i := range positions {
		out[i] = NewPointLight(positions[i], colors[i])
	}
	return out
}

func repeat(c mgl32.Vec3, n int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// MoodLighting returns the preset for m. Unknown moods fall back to Desert.
func MoodLighting(m Mood) Lighting {
	n := len(MoodLightPositions)
	switch m {
	case Factory:
		return Lighting{
			Clear: gray(0.1),
			Dir: DirLight{
				Direction: mgl32.Vec3{0.2, 0.2, 0.6},
				Phong:     Phong{mgl32.Vec3{0.4, 0.2, 0.8}, mgl32.Vec3{0.7, 0.4, 0.3}, gray(0.5)},
			},
			Points: pointLights(MoodLightPositions, repeat(mgl32.Vec3{0.3, 0.1, 0.8}, n)),
			Spot:   NewFlashlight(gray(0), gray(1), gray(1)),
		}
	case Horror:
		return Lighting{
			Clear: gray(0),
			Dir: DirLight{
				Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
				Phong:     Phong{gray(0), gray(0.05), gray(0.2)},
			},
			Points: pointLights(MoodLightPositions, repeat(mgl32.Vec3{0.4, 0.1, 0.1}, n)),
			Spot:   NewFlashlight(gray(0), gray(0.8), gray(0.8)),
		}
	case Biochemical:
		return Lighting{
			Clear: gray(0.8),
			Dir: DirLight{
				Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
				Phong:     Phong{gray(0.5), gray(0.7), gray(0.5)},
			},
			Points: pointLights(MoodLightPositions, repeat(mgl32.Vec3{0.3, 0.6, 0.1}, n)),
			Spot:   NewFlashlight(gray(0), mgl32.Vec3{0.2, 0.8, 0}, mgl32.Vec3{0.2, 0.8, 0}),
		}
	default:
		return Lighting{
			Clear: mgl32.Vec3{0.8, 0.5, 0.2},
			Dir: DirLight{
				Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
				Phong:     Phong{mgl32.Vec3{0.05, 0.05, 0.1}, mgl32.Vec3{0.2, 0.2, 0.7}, gray(0.7)},
			},
			Points: pointLights(MoodLightPositions, []mgl32.Vec3{
				{0.8, 0.1, 0.1},
				{0.8, 0.4, 0.2},
				{0.8, 0.4, 0.2},
				{0.8, 0.1, 0.1},
			}),
			Spot: NewFlashlight(gray(0), mgl32.Vec3{0.8, 0.8, 0}, mgl32.Vec3{0.8, 0.8, 0}),
		}
	}
}

// ModelLighting is the dim rig used around a loaded model: two white lamps
// above it, a red and a green one in front, and a switched-off flashlight.
func ModelLighting() Lighting {
	return Lighting{
		Clear: gray(0.05),
		Dir: DirLight{
			Direction: mgl32.Vec3{-0.2, -0.2, -0.6},
			Phong:     Phong{gray(0.1), gray(0.1), gray(0.1)},
		},
		Points: pointLights(
			[]mgl32.Vec3{
				{0.8, 1.5, 0.4},
				{-0.8, 1.5, 0.4},
				{0.0, 0.0, 0.4},
				{0.0, 0.0, 0.4},
			},
			[]mgl32.Vec3{
				{0.8, 0.8, 0.8},
				{0.8, 0.8, 0.8},
				{0.8, 0.1, 0.1},
				{0.1, 0.8, 0.1},
			},
		),
		Spot: NewFlashlight(gray(0), gray(0), gray(0)),
	}
}

// FlashlightOnly is the single camera light of the lighting maps scene.
func FlashlightOnly() (clear mgl32.Vec3, spot SpotLight) {
	return gray(0.1), NewFlashlight(gray(0.2), gray(0.5), gray(1))
}

func cosDeg(deg float32) float32 {
	return math32.Cos(mgl32.DegToRad(deg))
}
