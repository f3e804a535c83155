package scene

import (
	"fmt"
	"strings"
)

// PostEffect is the full-screen filter applied when compositing the
// offscreen framebuffer. Values match the `effect` uniform of the screen
// shader.
type PostEffect int32

const (
	EffectNone PostEffect = iota
	EffectInversion
	EffectGrayscale
	EffectSharpen
	EffectBlur
	EffectEdge

	effectCount
)

var effectNames = [...]string{"none", "inversion", "grayscale", "sharpen", "blur", "edge"}

func (e PostEffect) String() string {
	if !e.Valid() {
		return fmt.Sprintf("PostEffect(%d)", int32(e))
	}
	return effectNames[e]
}

func (e PostEffect) Valid() bool {
	return e >= EffectNone && e < effectCount
}

func ParsePostEffect(s string) (PostEffect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range effectNames {
		if name == s {
			return PostEffect(i), nil
		}
	}
	return EffectNone, fmt.Errorf("unknown post effect %q", s)
}

// EffectForDigit maps the number keys 0-5 onto effects.
func EffectForDigit(d int) (PostEffect, bool) {
	e := PostEffect(d)
	return e, e.Valid()
}
