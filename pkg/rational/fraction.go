package rational

import "cmp"

// Fraction represents a rational number as a signed 32-bit numerator over an
// unsigned 32-bit denominator. Used for exact arithmetic where floating-point
// rounding is not acceptable.
//
// Fractions built by New, by FromInt, by FromFloat64 or returned by arithmetic
// are in canonical form:
//   - denominator > 0 (the sign lives in the numerator)
//   - GCD(|numerator|, denominator) = 1
//
// NewUnsimplified keeps the components as given and Unchecked skips
// validation entirely. The zero value is 0/1.
//
// Fraction has value semantics: no method modifies its receiver, so values
// can be copied and shared between goroutines freely. Use Equal or Cmp to
// compare values; == compares the raw components, so 1/2 != 2/4 under ==.
//
// Numerators and denominators are fixed width. Intermediate results are
// computed in 64 bits and reduced before being narrowed back, and a reduced
// result that still does not fit wraps the way int32 arithmetic does.
type Fraction struct {
	num int32
	den uint32 // denominator minus one, so the zero value is 0/1
}

// makeFraction stores num/den verbatim.
func makeFraction(num int32, den uint32) Fraction {
	return Fraction{num: num, den: den - 1}
}

// reduce builds the canonical fraction num/den from 64-bit intermediates.
// Add, Mul and FromFloat64 build their results here. A zero denominator
// means an operand bypassed validation and panics with ErrDivByZero.
func reduce(num int64, den uint64) Fraction {
	if den == 0 {
		panic(ErrDivByZero)
	}
	neg := num < 0
	m := abs64(num)
	g := GCD(m, den)
	m, den = m/g, den/g

	n := int64(m)
	if neg {
		n = -n
	}
	return makeFraction(int32(n), uint32(den))
}

// New creates the fraction num/den reduced to lowest terms.
// Returns ErrDivByZero if den is zero.
//
// Examples:
//
//	New(6, 8) → 3/4
//	New(-6, 8) → -3/4
//	New(0, 5) → 0
func New(num int32, den uint32) (Fraction, error) {
	f, err := NewUnsimplified(num, den)
	if err != nil {
		return Fraction{}, err
	}
	return f.Simplify(), nil
}

// NewUnsimplified creates the fraction num/den without reducing it.
// Returns ErrDivByZero if den is zero.
func NewUnsimplified(num int32, den uint32) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivByZero
	}
	return makeFraction(num, den), nil
}

// Unchecked creates num/den with no validation at all.
//
// A zero denominator is stored as given. Such a value is only good for
// inspection: Add, Sub and Mul panic on it, and Float64 reports ±Inf or NaN.
func Unchecked(num int32, den uint32) Fraction {
	return makeFraction(num, den)
}

// MustNew is like New but panics if den is zero.
// Intended for literals, e.g. package-level variables and tests.
func MustNew(num int32, den uint32) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns v/1.
func FromInt(v int32) Fraction {
	return Fraction{num: v}
}

// Simplify divides the numerator and the denominator by their greatest
// common divisor. Fractions from New are already simplified.
func (f Fraction) Simplify() Fraction {
	d := f.Denominator()
	g := GCD(uint32(abs64(int64(f.num))), d)
	if g <= 1 {
		return f
	}
	return makeFraction(int32(int64(f.num)/int64(g)), d/g)
}

// Numerator returns the numerator, which carries the sign.
func (f Fraction) Numerator() int32 {
	return f.num
}

// Denominator returns the denominator. It is 0 only for values made with
// Unchecked.
func (f Fraction) Denominator() uint32 {
	return f.den + 1
}

// Components returns the numerator and the denominator as stored.
// Useful to compare representations rather than values:
//
//	MustNew(1, 2).Components() == (1, 2)
//	Unchecked(2, 4).Components() == (2, 4), although it Equals 1/2
func (f Fraction) Components() (int32, uint32) {
	return f.num, f.Denominator()
}

// Float64 returns the numerator divided by the denominator.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// IsZero reports whether f is zero.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsPositive reports whether f is greater than zero.
func (f Fraction) IsPositive() bool {
	return f.num > 0
}

// IsNegative reports whether f is less than zero.
func (f Fraction) IsNegative() bool {
	return f.num < 0
}

// Cmp compares f and other by cross-multiplication and returns -1, 0 or +1.
// The products are formed in 64 bits, which is exact for any pair of
// 32-bit components, so no floating point is involved.
func (f Fraction) Cmp(other Fraction) int {
	lhs := int64(f.num) * int64(other.Denominator())
	rhs := int64(other.num) * int64(f.Denominator())
	return cmp.Compare(lhs, rhs)
}

// Equal reports whether f and other denote the same rational value.
func (f Fraction) Equal(other Fraction) bool {
	return f.Cmp(other) == 0
}

// Less reports whether f < other.
func (f Fraction) Less(other Fraction) bool {
	return f.Cmp(other) < 0
}

// Compare is Cmp as a function, for use with slices.SortFunc and friends.
func Compare(a, b Fraction) int {
	return a.Cmp(b)
}

// operandDenominator returns the denominator of an arithmetic operand,
// panicking if the operand violates the non-zero invariant.
func (f Fraction) operandDenominator() uint64 {
	d := f.Denominator()
	if d == 0 {
		panic(ErrDivByZero)
	}
	return uint64(d)
}

// Add returns f + other in lowest terms.
//
// Algorithm: a/b + c/d = (a*(d/g) + c*(b/g)) / lcm(b, d) with g = gcd(b, d).
//
// Example:
//
//	10/3 + -4/5 = (50 - 12) / 15 = 38/15
//
// Add panics with ErrDivByZero if either operand has a zero denominator.
func (f Fraction) Add(other Fraction) Fraction {
	b, d := f.operandDenominator(), other.operandDenominator()
	g := GCD(b, d)
	num := int64(f.num)*int64(d/g) + int64(other.num)*int64(b/g)
	return reduce(num, LCM(b, d))
}

// Sub returns f - other in lowest terms, computed as f + (-other).
func (f Fraction) Sub(other Fraction) Fraction {
	return f.Add(other.Neg())
}

// Mul returns f * other in lowest terms.
//
// Example:
//
//	(2/3) * (3/4) = 6/12 = 1/2
//
// Mul panics with ErrDivByZero if either operand has a zero denominator.
func (f Fraction) Mul(other Fraction) Fraction {
	num := int64(f.num) * int64(other.num)
	return reduce(num, f.operandDenominator()*other.operandDenominator())
}

// Div returns f / other, computed as f * other.Reciprocal().
// Returns ErrDivByZero if other is zero.
//
// Example:
//
//	(3/4) / (2/3) = (3/4) * (3/2) = 9/8
func (f Fraction) Div(other Fraction) (Fraction, error) {
	r, err := other.Reciprocal()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(r), nil
}

// Neg returns -f. The denominator is unchanged.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.den}
}

// Reciprocal returns d/n for f = n/d, with the sign of n moved onto the new
// numerator so the new denominator stays positive.
// Returns ErrDivByZero if f is zero.
//
// Examples:
//
//	1/2 → 2
//	-3/4 → -4/3
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, ErrDivByZero
	}
	num := int64(f.Denominator()) * int64(sign32(f.num))
	return makeFraction(int32(num), uint32(abs64(int64(f.num)))), nil
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.num < 0 {
		return f.Neg()
	}
	return f
}

// Signum returns -1, 0 or 1 according to the sign of the numerator.
func (f Fraction) Signum() int {
	return sign32(f.num)
}
