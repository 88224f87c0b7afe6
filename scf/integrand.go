package scf

import (
	"fmt"
	"math"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/coords"
)

// Domain is the integration box in (phi, X, xi). It covers all of space
// exactly once.
func Domain() [3][2]float64 {
	return [3][2]float64{
		{0, 2 * math.Pi}, // phi
		{-1, 1},          // X = cos(theta)
		{-1, 1},          // xi
	}
}

// Integrand produces the cosine and sine weighted integrands of one (n, l, m)
// projection over Domain:
//
//	rho(x) K(n,l,m) Phi_nl(s) Ylm(X) {cos, sin}(m phi) rs^3 s^2 ds/dxi
type Integrand struct {
	density DensityFunc
	idx     Index
	scale   Scale
	args    []float64
	norm    float64
}

// NewIntegrand does not validate its inputs; ComputeContinuous does.
func NewIntegrand(density DensityFunc, idx Index, scale Scale, args []float64) *Integrand {
	return &Integrand{
		density: density,
		idx:     idx,
		scale:   scale,
		args:    args,
		norm:    basis.Normalization(idx.N, idx.L, idx.M),
	}
}

// Normalization is the K(n,l,m) folded into the integrand.
func (ig *Integrand) Normalization() float64 { return ig.norm }

func (ig *Integrand) weight(phi, X, xi float64) (float64, error) {
	// Both ends of the radial range carry zero measure: the volume element
	// vanishes at xi = -1 and an integrable density falls off faster than the
	// element grows at xi = 1.
	if xi <= -1 || xi >= 1 {
		return 0, nil
	}
	var (
		rs      = ig.scale.Rs
		x, y, z = coords.ToCartesian(xi, X, phi, rs)
	)
	rho, err := ig.density.Density(x, y, z, ig.scale.M, rs, ig.args)
	if err != nil {
		return 0, fmt.Errorf("scf: density at (%g, %g, %g): %w", x, y, z, err)
	}
	if rho == 0 {
		return 0, nil
	}
	var (
		n, l, m = ig.idx.N, ig.idx.L, ig.idx.M
		s       = coords.SFromXi(xi)
	)
	return rho * ig.norm * basis.RadialPotential(n, l, s) * basis.Legendre(l, m, X) *
		coords.Jacobian(xi, rs), nil
}

// Cos is the integrand of S_nlm.
func (ig *Integrand) Cos(phi, X, xi float64) (float64, error) {
	w, err := ig.weight(phi, X, xi)
	if err != nil || ig.idx.M == 0 {
		return w, err
	}
	return w * math.Cos(float64(ig.idx.M)*phi), nil
}

// Sin is the integrand of T_nlm; it is identically zero for m = 0 and the
// density is not evaluated in that case.
func (ig *Integrand) Sin(phi, X, xi float64) (float64, error) {
	if ig.idx.M == 0 {
		return 0, nil
	}
	w, err := ig.weight(phi, X, xi)
	if err != nil {
		return 0, err
	}
	return w * math.Sin(float64(ig.idx.M)*phi), nil
}
