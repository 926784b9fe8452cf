package anim

import "math"

// Inverse returns 1/n.
func Inverse(n int) float64 {
	return 1 / float64(n)
}

// MaxScale returns how far x has progressed past the start of stage i of n,
// never less than zero.
func MaxScale(x float64, i, n int) float64 {
	return math.Max(0, x-float64(i)*Inverse(n))
}

// DivideScale maps global progress x in [0,1] to the local progress of stage i
// out of n equal stages. It stays 0 until the stage begins and reaches 1 when
// the stage ends.
func DivideScale(x float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(x, i, n)) * float64(n)
}

// Sinify turns linear progress into a 0 -> 1 -> 0 pulse.
func Sinify(x float64) float64 {
	return math.Sin(x * math.Pi)
}

// Reciprocal returns 1/x. At x == 0 the result is +Inf, which DivideScale
// clamps to a fully revealed stage.
func Reciprocal(x float64) float64 {
	return 1 / x
}

// Easing selects the transform applied to a node's scale before it is split
// into reveal stages.
type Easing int

const (
	EaseReciprocal Easing = iota
	EaseSinusoidal
)

func (e Easing) Apply(x float64) float64 {
	switch e {
	case EaseReciprocal:
		return Reciprocal(x)
	default:
		return Sinify(x)
	}
}

func (e Easing) String() string {
	switch e {
	case EaseReciprocal:
		return "reciprocal"
	case EaseSinusoidal:
		return "sinusoidal"
	}
	return "unknown"
}
