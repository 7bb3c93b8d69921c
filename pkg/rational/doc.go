// Package rational provides exact rational arithmetic on Fraction, a signed
// 32-bit numerator over an always-positive 32-bit denominator, and complex
// arithmetic on Complex, a pair of Fractions.
//
// Version: 0.1.0
//
// The package offers:
//   - Canonical fractions: reduced by their GCD, sign kept in the numerator
//   - Exact comparison by cross-multiplication, no floating point involved
//   - Add, Sub, Mul, Div, Neg, Reciprocal, Abs and Signum returning new values
//   - Parsing and formatting of the "n/d" text form
//   - FromFloat64, the simplest fraction within a tolerance of a float64
//   - Complex arithmetic with conjugate-based division and modulus
//
// All types are immutable values and safe for concurrent use.
//
// Error handling follows one rule: constructors, parsing, Reciprocal and Div
// return ErrDivByZero or ErrParseFraction, while Add, Sub and Mul panic with
// ErrDivByZero when an operand has a zero denominator. That state can only
// be reached through Unchecked, so such a panic is a programming error.
package rational
