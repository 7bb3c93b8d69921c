// Package main demonstrates basic usage of exact fractions and complex
// numbers built on them.
package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/gofraction/pkg/rational"
)

func main() {
	fmt.Printf("=== gofraction %s Examples ===\n", rational.GetVersion())
	fmt.Println()

	if err := parseAndAdd(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	floatApproximation()
	if err := complexArithmetic(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseAndAdd demonstrates parsing and exact addition.
func parseAndAdd() error {
	fmt.Println("1. Parsing and Addition:")

	const text = "-4 / 5"

	a, err := rational.New(10, 3)
	if err != nil {
		return err
	}
	b, err := rational.Parse(text)
	if err != nil {
		return fmt.Errorf("parse %q: %w", text, err)
	}

	fmt.Printf("   %q = %s\n", text, b)
	fmt.Printf("   %s + %s = %s\n", a, b, a.Add(b))
	fmt.Println()
	return nil
}

// floatApproximation demonstrates recovering a fraction from a float64.
func floatApproximation() {
	fmt.Println("2. Float Approximation:")

	const value = 144.2

	c := rational.FromFloat64(value, 1e-9)
	fmt.Printf("   %g = %s\n", value, c)
	fmt.Printf("   %s = %g\n", c, c.Float64())
	fmt.Println()
}

// complexArithmetic demonstrates subtraction and division of complex numbers.
func complexArithmetic() error {
	fmt.Println("3. Complex Arithmetic:")

	a := rational.ComplexFromInts(10, -4)
	b := rational.ComplexFromInts(-1, 9)
	fmt.Printf("   (%s) - (%s) = %s\n", a, b, a.Sub(b))

	c := rational.ComplexFromInts(20, -4)
	d := rational.ComplexFromInts(3, 2)
	q, err := c.Div(d)
	if err != nil {
		return fmt.Errorf("(%s) / (%s): %w", c, d, err)
	}
	fmt.Printf("   (%s) / (%s) = %s\n", c, d, q)

	z := rational.ComplexFromInts(3, 4)
	fmt.Printf("   |%s| = %s\n", z, z.Modulus())
	fmt.Println()
	return nil
}
