package scf

import (
	"math"
	"sync/atomic"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/coords"
	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/quadrature"
)

// fixed is exact in xi for the polynomial integrands of basis densities; its
// 20 point error estimate is below looseOpts for the smooth models.
var fixed = Computer{Integrator: quadrature.FixedLegendre{Points: 40}}

var looseOpts = quadrature.Options{EpsAbs: 1.e-6}

// basisDensity is M/rs^3 rho_nl(s) P_l^m(X) {cos, sin}(m phi), whose only
// nonzero coefficient is M at (n, l, m).
func basisDensity(idx Index, sine bool) DensityFunc {
	return DensityFuncOf(func(x, y, z, M, rs float64, args []float64) (float64, error) {
		sp := coords.FromCartesian(x, y, z)
		ang := math.Cos(float64(idx.M) * sp.Phi)
		if sine {
			ang = math.Sin(float64(idx.M) * sp.Phi)
		}
		return M / (rs * rs * rs) * basis.RadialDensity(idx.N, idx.L, sp.R/rs) *
			basis.AssociatedLegendre(idx.L, idx.M, sp.X) * ang, nil
	})
}

var hernquist = DensityFuncOf(models.Hernquist)

// countingDensity counts its evaluations.
type countingDensity struct {
	calls atomic.Int64
	inner DensityFunc
}

func (cd *countingDensity) Density(x, y, z, M, rs float64, args []float64) (float64, error) {
	cd.calls.Add(1)
	return cd.inner.Density(x, y, z, M, rs, args)
}

// countingParticles counts particle accesses.
type countingParticles struct {
	calls atomic.Int64
	ParticleSet
}

func (cp *countingParticles) At(i int) ([3]float64, float64) {
	cp.calls.Add(1)
	return cp.ParticleSet.At(i)
}

func hernquistParticles(N int, M, rs float64, seed uint64) ParticleSet {
	sm, err := models.SampleHernquist(N, M, rs, seed)
	if err != nil {
		panic(err)
	}
	return ParticleSet{Positions: sm.Positions, Masses: sm.Masses}
}
