package rational

// DivByZeroError reports an attempt to build a Fraction whose denominator
// would be zero: a checked constructor given 0, the reciprocal of zero, or a
// division by a zero Fraction or Complex.
type DivByZeroError struct{}

func (DivByZeroError) Error() string { return "rational: division by zero" }

// ParseFractionError reports text that does not match the "n/d" grammar
// accepted by Parse.
type ParseFractionError struct{}

func (ParseFractionError) Error() string { return "rational: invalid fraction syntax" }

// Sentinel values for use with errors.Is.
var (
	ErrDivByZero     error = DivByZeroError{}
	ErrParseFraction error = ParseFractionError{}
)
