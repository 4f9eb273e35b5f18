package fourier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegativeOrder indicates a truncation order below 0.
	ErrNegativeOrder = errors.New("truncation order must not be negative")
	// ErrResolution indicates a quadrature or sampling resolution below 1.
	ErrResolution = errors.New("resolution must be at least 1")
	// ErrNilFunction indicates a missing curve function.
	ErrNilFunction = errors.New("periodic function must not be nil")
	// ErrEmptyCoefficients indicates a coefficient set without any terms.
	ErrEmptyCoefficients = errors.New("coefficient set is empty")
	// ErrMalformedCoefficients indicates a coefficient set of even length,
	// which has no center (DC) term.
	ErrMalformedCoefficients = errors.New("coefficient set must have odd length 2N+1")
)

// Coefficients holds the terms of a truncated Fourier series, ordered by
// frequency −N … N. Index Order() is the DC term.
//
// A coefficient set is treated as immutable: a client wanting a different
// truncation order computes a new set.
type Coefficients []complex128

// Order returns the truncation order N = (len−1)/2.
func (c Coefficients) Order() int {
	return (len(c) - 1) / 2
}

// DC returns the zero-frequency term, the average of the curve.
// It returns 0 for an invalid set.
func (c Coefficients) DC() complex128 {
	if c.check() != nil {
		return 0
	}
	return c[c.Order()]
}

// Term returns the coefficient of frequency k, or 0 if |k| > N.
func (c Coefficients) Term(k int) complex128 {
	if c.check() != nil {
		return 0
	}
	n := c.Order()
	if k < -n || k > n {
		return 0
	}
	return c[n+k]
}

// Validate reports whether c satisfies the 2N+1 layout.
func (c Coefficients) Validate() error {
	return c.check()
}

func (c Coefficients) check() error {
	if len(c) == 0 {
		return ErrEmptyCoefficients
	}
	if len(c)%2 == 0 {
		return fmt.Errorf("%w, have length %d", ErrMalformedCoefficients, len(c))
	}
	return nil
}

// String lists the terms as "k:c_k", lowest frequency first.
func (c Coefficients) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	n := c.Order()
	for i, z := range c {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d:(%.4g%+.4gi)", i-n, real(z), imag(z))
	}
	sb.WriteString("]")
	return sb.String()
}
