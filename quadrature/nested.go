package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Func3 is an integrand over a 3-D box. A non-nil error aborts the integration.
type Func3 func(x0, x1, x2 float64) (float64, error)

// Integrator integrates f over the box ranges[0] x ranges[1] x ranges[2] and
// returns the value with an absolute error estimate. When the tolerance is not
// met the value and estimate are still returned along with ErrNonconvergence.
type Integrator interface {
	Integrate(f Func3, ranges [3][2]float64, opts Options) (value, abserr float64, err error)
}

// Nested performs iterated adaptive 1-D integration, innermost over ranges[2].
// Every level uses the same Options. The reported abserr bounds the error of
// the whole iterated integral: the outermost estimate plus the largest inner
// estimate of each level, carried outward by the width of the enclosing
// ranges. Non-convergence of any level is reported as ErrNonconvergence.
type Nested struct{}

func (Nested) Integrate(f Func3, ranges [3][2]float64, opts Options) (value, abserr float64, err error) {
	opts = opts.WithDefaults()
	if err = opts.Validate(); err != nil {
		return
	}
	var (
		rule                *Rule
		nonconverged        bool
		innerMax, middleMax float64
	)
	width0, width1 := abs(ranges[0][1]-ranges[0][0]), abs(ranges[1][1]-ranges[1][0])
	if rule, err = NewGaussLegendre(opts.Points); err != nil {
		return
	}
	level := func(fn Func1, rg [2]float64) (v, e float64, err error) {
		v, e, err = Integrate1D(fn, rg[0], rg[1], rule, opts)
		if errors.Is(err, ErrNonconvergence) {
			nonconverged = true
			err = nil
		}
		return
	}
	outer := func(x0 float64) (float64, error) {
		innerMax = 0
		middle := func(x1 float64) (float64, error) {
			inner := func(x2 float64) (float64, error) {
				return f(x0, x1, x2)
			}
			v, e, err := level(inner, ranges[2])
			innerMax = math.Max(innerMax, e)
			return v, err
		}
		v, e, err := level(middle, ranges[1])
		middleMax = math.Max(middleMax, e+width1*innerMax)
		return v, err
	}
	value, abserr, err = Integrate1D(outer, ranges[0][0], ranges[0][1], rule, opts)
	abserr += width0 * middleMax
	if err == nil && nonconverged {
		err = ErrNonconvergence
	}
	return
}

// FixedLegendre is a non-adaptive tensor product Gauss-Legendre rule with
// Points nodes per dimension, evaluated through gonum's fixed quadrature. The
// error estimate is the difference from the rule with half as many nodes, so
// each call costs 9/8 of a single tensor evaluation. A zero Points falls back
// to opts.Points; the opts tolerance decides whether ErrNonconvergence is
// reported.
type FixedLegendre struct {
	Points int
}

func (fl FixedLegendre) Integrate(f Func3, ranges [3][2]float64, opts Options) (value, abserr float64, err error) {
	n := fl.Points
	if n == 0 {
		n = opts.WithDefaults().Points
	}
	if n < 2 {
		err = fmt.Errorf("%w: FixedLegendre needs at least 2 points, have %d", ErrBadOptions, n)
		return
	}
	var fErr error
	tensor := func(np int) float64 {
		return quad.Fixed(func(x0 float64) float64 {
			return quad.Fixed(func(x1 float64) float64 {
				return quad.Fixed(func(x2 float64) float64 {
					if fErr != nil {
						return 0
					}
					v, e := f(x0, x1, x2)
					if e != nil {
						fErr = e
						return 0
					}
					return v
				}, ranges[2][0], ranges[2][1], np, quad.Legendre{}, 1)
			}, ranges[1][0], ranges[1][1], np, quad.Legendre{}, 1)
		}, ranges[0][0], ranges[0][1], np, quad.Legendre{}, 1)
	}
	value = tensor(n)
	if fErr != nil {
		err = fErr
		return
	}
	abserr = abs(value - tensor(n/2))
	if fErr != nil {
		err = fErr
		return
	}
	if o := opts.WithDefaults(); abserr > o.tolerance(value) {
		err = ErrNonconvergence
	}
	return
}
