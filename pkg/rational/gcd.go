package rational

import "golang.org/x/exp/constraints"

// GCD computes the greatest common divisor of a and b using Euclid's algorithm.
// GCD(0, n) is n, so GCD(0, 0) is 0.
func GCD[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM computes the least common multiple of a and b.
// Uses the identity: lcm(a, b) = a / gcd(a, b) * b, dividing first to keep
// the intermediate small. LCM with a zero argument is 0.
func LCM[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// OrderPair returns a and b as (min, max).
func OrderPair[T constraints.Ordered](a, b T) (lo, hi T) {
	if a < b {
		return a, b
	}
	return b, a
}

// abs64 returns the absolute value of x as an unsigned magnitude.
// It is exact for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// sign32 returns -1, 0 or 1 according to the sign of x.
func sign32(x int32) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
