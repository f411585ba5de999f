package raster

import "math"

// Quantize converts an accumulated float64 back to the channel type T.
// Integer channels are rounded to nearest (ties away from zero) and
// clamped to the type's valid range; floating-point channels pass through
// unchanged. Every filtering engine funnels its output through this single
// function so rounding is applied consistently.
func Quantize[T Channel](v float64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(clampFloat(math.Round(v), 0, math.MaxUint8))
	case uint16:
		return T(clampFloat(math.Round(v), 0, math.MaxUint16))
	case int32:
		return T(clampFloat(math.Round(v), math.MinInt32, math.MaxInt32))
	default: // float32, float64
		return T(v)
	}
}

// MaxValue returns the largest representable channel value for T, widened
// to float64. For floating-point channels this is +Inf (no clamping).
func MaxValue[T Channel]() float64 {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return math.MaxUint8
	case uint16:
		return math.MaxUint16
	case int32:
		return math.MaxInt32
	default:
		return math.Inf(1)
	}
}

// MinValue returns the smallest representable channel value for T, widened
// to float64. For floating-point channels this is -Inf.
func MinValue[T Channel]() float64 {
	var zero T
	switch any(zero).(type) {
	case uint8, uint16:
		return 0
	case int32:
		return math.MinInt32
	default:
		return math.Inf(-1)
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
