package scf

import (
	"errors"
	"fmt"

	"github.com/notargets/goscf/quadrature"
)

// Computer carries the collaborators of a coefficient computation. The zero
// value integrates with quadrature.Nested and sums particles serially.
type Computer struct {
	Integrator quadrature.Integrator
	Workers    int // Particle partitions summed concurrently by the discrete path
}

// ComputeContinuous projects density onto basis function idx. The options are
// handed unchanged to the integrator. Index and scale are validated before
// any numerical work.
//
// If the integrator cannot meet the tolerance the coefficients and their error
// estimates are still returned, together with an error wrapping
// ErrQuadratureNonconvergence. Any other error is fatal and the result is zero.
func (c Computer) ComputeContinuous(density DensityFunc, idx Index, scale Scale,
	args []float64, opts quadrature.Options) (res ContinuousResult, err error) {
	if err = idx.Validate(); err != nil {
		return
	}
	if err = scale.Validate(); err != nil {
		return
	}
	if density == nil {
		err = errors.New("scf: nil density function")
		return
	}
	integ := c.Integrator
	if integ == nil {
		integ = quadrature.Nested{}
	}
	var (
		ig         = NewIntegrand(density, idx, scale, args)
		sErr, tErr error
	)
	res.S, res.SErr, sErr = integ.Integrate(ig.Cos, Domain(), opts)
	if fatal(sErr) {
		return ContinuousResult{}, fmt.Errorf("scf: S%v: %w", idx, sErr)
	}
	res.T, res.TErr, tErr = integ.Integrate(ig.Sin, Domain(), opts)
	if fatal(tErr) {
		return ContinuousResult{}, fmt.Errorf("scf: T%v: %w", idx, tErr)
	}
	if sErr != nil || tErr != nil {
		err = fmt.Errorf("scf: %v S err %.3g, T err %.3g: %w",
			idx, res.SErr, res.TErr, ErrQuadratureNonconvergence)
	}
	return
}

func fatal(err error) bool {
	return err != nil && !errors.Is(err, ErrQuadratureNonconvergence)
}

// ComputeDiscrete sums basis function idx over the particles. Masses are in
// the unit the coefficients are wanted in, usually the scale mass.
func (c Computer) ComputeDiscrete(p Particles, idx Index, rs float64) (res DiscreteResult, err error) {
	if err = idx.Validate(); err != nil {
		return
	}
	if err = validateRs(rs); err != nil {
		return
	}
	if err = validateParticles(p); err != nil {
		return
	}
	res = SumDiscreteParallel(p, idx, rs, c.Workers)
	return
}

// ComputeContinuous uses the default Computer.
func ComputeContinuous(density DensityFunc, idx Index, scale Scale,
	args []float64, opts quadrature.Options) (ContinuousResult, error) {
	return Computer{}.ComputeContinuous(density, idx, scale, args, opts)
}

// ComputeDiscrete uses the default Computer.
func ComputeDiscrete(p Particles, idx Index, rs float64) (DiscreteResult, error) {
	return Computer{}.ComputeDiscrete(p, idx, rs)
}
