package scrollstage

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// MapRange maps v from [inMin, inMax] onto [outMin, outMax], clamping the
// result to the output range. A degenerate input range maps everything at or
// past inMax to outMax and everything else to outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		if v >= inMax {
			return outMax
		}
		return outMin
	}
	return Lerp(outMin, outMax, Clamp01((v-inMin)/(inMax-inMin)))
}

// Easing shapes a normalized fraction t in [0, 1]. Built-in curves satisfy
// Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float64) float64

// FromTweenFunc adapts a gween easing equation to an Easing by evaluating it
// over a unit change and unit duration.
func FromTweenFunc(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Linear is the identity curve. It stays in float64 so that scroll-linked
// values land exactly on their interpolated targets.
var Linear Easing = func(t float64) float64 { return t }

// Named curves backed by gween.
var (
	InQuad     = FromTweenFunc(ease.InQuad)
	OutQuad    = FromTweenFunc(ease.OutQuad)
	InOutQuad  = FromTweenFunc(ease.InOutQuad)
	InCubic    = FromTweenFunc(ease.InCubic)
	OutCubic   = FromTweenFunc(ease.OutCubic) // 1 - (1-t)^3
	InOutCubic = FromTweenFunc(ease.InOutCubic)
	InQuart    = FromTweenFunc(ease.InQuart)
	OutQuart   = FromTweenFunc(ease.OutQuart)
	InOutQuart = FromTweenFunc(ease.InOutQuart)
	InQuint    = FromTweenFunc(ease.InQuint)
	OutQuint   = FromTweenFunc(ease.OutQuint)
	InOutQuint = FromTweenFunc(ease.InOutQuint)
	InSine     = FromTweenFunc(ease.InSine)
	OutSine    = FromTweenFunc(ease.OutSine)
	InOutSine  = FromTweenFunc(ease.InOutSine)
	InExpo     = FromTweenFunc(ease.InExpo)
	OutExpo    = FromTweenFunc(ease.OutExpo)
	InOutExpo  = FromTweenFunc(ease.InOutExpo)
	InCirc     = FromTweenFunc(ease.InCirc)
	OutCirc    = FromTweenFunc(ease.OutCirc)
	InOutCirc  = FromTweenFunc(ease.InOutCirc)
	InBack     = FromTweenFunc(ease.InBack)
	OutBack    = FromTweenFunc(ease.OutBack)
	InOutBack  = FromTweenFunc(ease.InOutBack)
	OutBounce  = FromTweenFunc(ease.OutBounce)
	InBounce   = FromTweenFunc(ease.InBounce)
	OutElastic = FromTweenFunc(ease.OutElastic)
)

type easeFamily struct {
	in, out, inOut Easing
}

var easeFamilies = map[string]easeFamily{
	"quad":    {InQuad, OutQuad, InOutQuad},
	"cubic":   {InCubic, OutCubic, InOutCubic},
	"quart":   {InQuart, OutQuart, InOutQuart},
	"quint":   {InQuint, OutQuint, InOutQuint},
	"sine":    {InSine, OutSine, InOutSine},
	"expo":    {InExpo, OutExpo, InOutExpo},
	"circ":    {InCirc, OutCirc, InOutCirc},
	"back":    {InBack, OutBack, InOutBack},
	"bounce":  {InBounce, OutBounce, nil},
	"elastic": {nil, OutElastic, nil},
}

// powerAliases maps the authoring names used on the web ("power3.out") to the
// polynomial degree they stand for.
var powerAliases = map[string]string{
	"power1": "quad",
	"power2": "cubic",
	"power3": "quart",
	"power4": "quint",
}

// EaseByName resolves a curve name such as "linear", "none", "cubic.out",
// "quad.inOut" or "power3.out". Names are case-insensitive; a family name
// without a suffix means ".out".
func EaseByName(name string) (Easing, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "linear", "none", "power0":
		return Linear, true
	}
	family, variant, found := strings.Cut(name, ".")
	if !found {
		variant = "out"
	}
	if alias, ok := powerAliases[family]; ok {
		family = alias
	}
	f, ok := easeFamilies[family]
	if !ok {
		return nil, false
	}
	var e Easing
	switch variant {
	case "in":
		e = f.in
	case "out":
		e = f.out
	case "inout":
		e = f.inOut
	}
	return e, e != nil
}
