package rational

import "math"

// DefaultTolerance is the tolerance used where an inexact result has to be
// turned back into a Fraction and the caller did not pick one, e.g. by
// Complex.Modulus.
const DefaultTolerance = 1e-9

// FromFloat64 returns the simplest fraction within tolerance of value.
//
// The fractional part of value is located in the Stern–Brocot tree: starting
// from the bounds 0/1 and 1/1, the mediant (a+c)/(b+d) replaces whichever
// bound lies on the same side of the target, until a mediant falls within
// tolerance. Every step narrows the interval, and the first fraction found is
// the one with the smallest denominator in range.
//
// Warning: this is an approximation; the result is only exact when value is a
// fraction with a small denominator. The integer part is truncated to 32 bits.
//
// Example:
//
//	FromFloat64(0.33333, 0.00001) → 1/3
//	FromFloat64(144.2, 1e-9) → 721/5
//
// FromFloat64 panics if value is NaN or infinite or if tolerance is not
// positive.
func FromFloat64(value, tolerance float64) Fraction {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic("rational: cannot convert NaN or Inf to a fraction")
	}
	if !(tolerance > 0) {
		panic("rational: tolerance must be positive")
	}

	whole := math.Floor(value)
	rem := value - whole
	intPart := int64(int32(int64(whole)))

	if rem < tolerance {
		return FromInt(int32(intPart))
	}
	if rem > 1-tolerance {
		return FromInt(int32(intPart + 1))
	}

	var (
		loNum, loDen uint64 = 0, 1
		hiNum, hiDen uint64 = 1, 1
	)
	for {
		num, den := loNum+hiNum, loDen+hiDen
		switch {
		case float64(num) > float64(den)*(rem+tolerance):
			hiNum, hiDen = num, den
		case float64(num) < float64(den)*(rem-tolerance):
			loNum, loDen = num, den
		default:
			return reduce(intPart*int64(den)+int64(num), den)
		}
	}
}

// Sqrt returns the principal square root of f.
//
// When |f| in lowest terms has a perfect square numerator and denominator the
// root is exact (9/4 → 3/2). Otherwise it is FromFloat64 of the floating-point
// root with the given tolerance. The root of a negative fraction is returned
// as a purely imaginary Complex; for f >= 0 the imaginary part is zero.
func (f Fraction) Sqrt(tolerance float64) Complex {
	root := sqrtMagnitude(f.Simplify(), tolerance)
	if f.num < 0 {
		return NewComplex(Fraction{}, root)
	}
	return ComplexFromFraction(root)
}

// sqrtMagnitude returns the square root of |f|.
func sqrtMagnitude(f Fraction, tolerance float64) Fraction {
	num, den := abs64(int64(f.num)), f.operandDenominator()
	if rn, ok := exactSqrt(num); ok {
		if rd, ok := exactSqrt(den); ok {
			return reduce(int64(rn), rd)
		}
	}
	return FromFloat64(math.Sqrt(float64(num)/float64(den)), tolerance)
}

// exactSqrt returns floor(sqrt(x)) and whether x is a perfect square.
func exactSqrt(x uint64) (uint64, bool) {
	r := uint64(math.Sqrt(float64(x)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r, r*r == x
}
