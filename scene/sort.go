package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// SortBackToFront returns a copy of positions ordered from farthest to
// nearest relative to eye, the order blended geometry must be drawn in.
// Equal distances keep their input order.
func SortBackToFront(positions []mgl32.Vec3, eye mgl32.Vec3) []mgl32.Vec3 {
	out := slices.Clone(positions)
	slices.SortStableFunc(out, func(a, b mgl32.Vec3) int {
		da := distSqr(a, eye)
		db := distSqr(b, eye)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return out
}

func distSqr(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}
