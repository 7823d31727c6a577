package math

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// ErrIllConditioned signals a least squares system that has no meaningful solution,
// either because there are fewer observations than coefficients,
// or because the observations are degenerate.
var ErrIllConditioned = errors.New("ill-conditioned fit")

// Polynomial is a list of coefficients for the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
type Polynomial []float64

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// At evaluates the polynomial at the given x.
// It is valid for any x, also outside the fitted range,
// although extrapolated values carry no guarantee of being meaningful.
func (p Polynomial) At(x float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Fit fits the given series of x and y into a polynomial function of the given degree.
// The least squares system is solved with a QR factorization of the vandermonde matrix.
func Fit(x, y []float64, degree int) (Polynomial, error) {

	if degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", ErrIllConditioned, degree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: size mismatch %d vs %d", ErrIllConditioned, len(x), len(y))
	}
	if len(x) < degree+1 {
		return nil, fmt.Errorf("%w: %d observations for %d coefficients", ErrIllConditioned, len(x), degree+1)
	}
	if degree > 0 && allEqual(x) {
		return nil, fmt.Errorf("%w: all observations at x = %f", ErrIllConditioned, x[0])
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		// a Condition error still carries a usable solution,
		// high degrees over wide size ranges trigger it routinely
		if _, ok := err.(mat.Condition); !ok {
			return nil, fmt.Errorf("%w: %s", ErrIllConditioned, err.Error())
		}
		log.Debug().Int("degree", degree).Err(err).Msg("near-singular fit")
	}

	v := c.ColView(0)
	cc := make(Polynomial, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, nil
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

func allEqual(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			return false
		}
	}
	return true
}
