package vmath

import (
	"math/bits"
	"time"
)

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Round returns the nearest integer, halves rounding up
func Round(f int64) int { return int((f + Half) >> Shift) }

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Rate converts a per-second speed (Q32.32) into the distance covered during dt
func Rate(speed int64, dt time.Duration) int64 {
	if speed <= 0 || dt <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(speed), uint64(dt))
	q, _ := bits.Div64(hi, lo, uint64(time.Second))
	return int64(q)
}
