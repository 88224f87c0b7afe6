package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrNonconvergence is returned, together with the best available value and
	// its error estimate, when the tolerance is not met within Options.Limit
	// subdivisions.
	ErrNonconvergence = errors.New("quadrature: tolerance not reached within subdivision limit")
	// ErrBadOptions reports options that cannot be used.
	ErrBadOptions = errors.New("quadrature: invalid options")
)

const (
	DefaultLimit  = 256
	DefaultEpsRel = 1.e-10
	DefaultEpsAbs = 1.49e-8
	DefaultPoints = 10
)

// Options configures an integration. Zero fields take the defaults.
type Options struct {
	Limit  int     `yaml:"Limit"`  // Max subdivisions per dimension
	EpsRel float64 `yaml:"EpsRel"` // Relative error tolerance
	EpsAbs float64 `yaml:"EpsAbs"` // Absolute error tolerance
	Points int     `yaml:"Points"` // Gauss-Legendre points per panel
}

// WithDefaults fills the unset fields.
func (o Options) WithDefaults() Options {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.EpsRel == 0 {
		o.EpsRel = DefaultEpsRel
	}
	if o.EpsAbs == 0 {
		o.EpsAbs = DefaultEpsAbs
	}
	if o.Points == 0 {
		o.Points = DefaultPoints
	}
	return o
}

// Validate checks options after defaults have been applied.
func (o Options) Validate() error {
	switch {
	case o.Limit < 1:
		return fmt.Errorf("%w: Limit = %d", ErrBadOptions, o.Limit)
	case o.EpsRel < 0 || o.EpsAbs < 0:
		return fmt.Errorf("%w: negative tolerance (EpsRel = %g, EpsAbs = %g)",
			ErrBadOptions, o.EpsRel, o.EpsAbs)
	case o.Points < 1:
		return fmt.Errorf("%w: Points = %d", ErrBadOptions, o.Points)
	}
	return nil
}

// tolerance is the QUADPACK acceptance criterion max(epsabs, epsrel |I|).
func (o Options) tolerance(value float64) float64 {
	tol := o.EpsRel * abs(value)
	if o.EpsAbs > tol {
		tol = o.EpsAbs
	}
	return tol
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
