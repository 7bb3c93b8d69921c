package rational

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns "n" when the denominator is 1 and "n/d" otherwise.
//
// Examples:
//
//	MustNew(3, 4).String() → "3/4"
//	MustNew(6, 1).String() → "6"
//	MustNew(-5, 2).String() → "-5/2"
func (f Fraction) String() string {
	d := f.Denominator()
	if d == 1 {
		return strconv.FormatInt(int64(f.num), 10)
	}
	return fmt.Sprintf("%d/%d", f.num, d)
}

// Parse reads a fraction in the form "n/d", where n is a base-10 signed
// integer and d a base-10 unsigned integer. Whitespace around either side of
// the slash is ignored, so "-4 / 5" is accepted. The result is in lowest terms.
//
// A missing slash, malformed or out of range digits and a zero denominator
// all yield an error wrapping ErrParseFraction. A bare integer such as "3" is
// rejected; use "3/1".
func Parse(s string) (Fraction, error) {
	numText, denText, ok := strings.Cut(s, "/")
	if !ok {
		return Fraction{}, fmt.Errorf("%w: missing '/' in %q", ErrParseFraction, s)
	}

	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: numerator: %v", ErrParseFraction, err)
	}
	den, err := strconv.ParseUint(strings.TrimSpace(denText), 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: denominator: %v", ErrParseFraction, err)
	}

	f, err := New(int32(num), uint32(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q: %v", ErrParseFraction, s, err)
	}
	return f, nil
}

// MarshalText implements encoding.TextMarshaler. Unlike String it always
// writes the "n/d" form, so the output is accepted by Parse.
func (f Fraction) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "%d/%d", f.num, f.Denominator()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// On success the whole value of *f is replaced; on failure *f is untouched.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
