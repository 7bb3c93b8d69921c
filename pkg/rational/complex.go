package rational

// Complex is a complex number whose real and imaginary parts are Fractions.
// Every operation delegates component-wise work to Fraction, so the parts
// of a result are in lowest terms and arithmetic is exact. The zero value is 0.
type Complex struct {
	re, im Fraction
}

// NewComplex returns re + im·i.
func NewComplex(re, im Fraction) Complex {
	return Complex{re: re, im: im}
}

// ComplexFromFraction returns re + 0i.
func ComplexFromFraction(re Fraction) Complex {
	return Complex{re: re}
}

// ComplexFromInt returns re + 0i.
func ComplexFromInt(re int32) Complex {
	return Complex{re: FromInt(re)}
}

// ComplexFromInts returns re + im·i.
func ComplexFromInts(re, im int32) Complex {
	return Complex{re: FromInt(re), im: FromInt(im)}
}

// Real returns the real part.
func (z Complex) Real() Fraction { return z.re }

// Imag returns the imaginary part.
func (z Complex) Imag() Fraction { return z.im }

// Equal reports whether both parts of z and w are equal as fractions.
func (z Complex) Equal(w Complex) bool {
	return z.re.Equal(w.re) && z.im.Equal(w.im)
}

// IsZero reports whether z is 0.
func (z Complex) IsZero() bool {
	return z.re.IsZero() && z.im.IsZero()
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: z.re.Neg(), im: z.im.Neg()}
}

// Mul returns z * w.
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (z Complex) Mul(w Complex) Complex {
	a, b, c, d := z.re, z.im, w.re, w.im
	return Complex{
		re: a.Mul(c).Sub(b.Mul(d)),
		im: a.Mul(d).Add(b.Mul(c)),
	}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: z.im.Neg()}
}

// Div returns z / w. The numerator is multiplied by the conjugate of w and
// both parts are divided by |w|²:
//
//	(a+bi)/(c+di) = (a+bi)(c-di) / (c²+d²)
//
// Returns ErrDivByZero if w is zero.
func (z Complex) Div(w Complex) (Complex, error) {
	m2 := w.ModulusSquared()
	if m2.IsZero() {
		return Complex{}, ErrDivByZero
	}
	p := z.Mul(w.Conj())
	re, err := p.re.Div(m2)
	if err != nil {
		return Complex{}, err
	}
	im, err := p.im.Div(m2)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: re, im: im}, nil
}

// ModulusSquared returns |z|² = re² + im², which is always exact.
func (z Complex) ModulusSquared() Fraction {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im))
}

// Modulus returns |z| using DefaultTolerance. See ModulusTolerance.
func (z Complex) Modulus() Fraction {
	return z.ModulusTolerance(DefaultTolerance)
}

// ModulusTolerance returns |z|, the real part of the square root of
// ModulusSquared. The result is exact when |z|² is the square of a fraction
// (|3+4i| = 5); otherwise it is the simplest fraction within tolerance of
// the true modulus.
func (z Complex) ModulusTolerance(tolerance float64) Fraction {
	return z.ModulusSquared().Sqrt(tolerance).Real()
}

// Signum returns the component-wise sign of z: each part is -1, 0 or 1.
func (z Complex) Signum() Complex {
	return ComplexFromInts(int32(z.re.Signum()), int32(z.im.Signum()))
}

// String formats z as "a", "bi", "a + bi" or "a - bi", leaving out a zero
// part. The parts use Fraction.String, e.g. "1/2 - 3/4i". Zero is "0".
func (z Complex) String() string {
	switch {
	case z.im.IsZero():
		return z.re.String()
	case z.re.IsZero():
		return z.im.String() + "i"
	case z.im.IsNegative():
		return z.re.String() + " - " + z.im.Abs().String() + "i"
	default:
		return z.re.String() + " + " + z.im.String() + "i"
	}
}
