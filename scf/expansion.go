package scf

import (
	"fmt"
	"math"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/coords"
)

// Expansion is a full coefficient set for n <= NMax, m <= l <= LMax. The
// coefficient of (n, l, m) is stored at m + (LMax+1)(l + (LMax+1) n); slots
// with m > l stay zero.
type Expansion struct {
	Rs, G      float64
	NMax, LMax int
	S, T       []float64
	SErr, TErr []float64 // Quadrature error estimates, nil for particle expansions
}

// NewExpansion allocates a zero expansion with G = 1.
func NewExpansion(rs float64, nmax, lmax int) *Expansion {
	size := (nmax + 1) * (lmax + 1) * (lmax + 1)
	return &Expansion{
		Rs:   rs,
		G:    1,
		NMax: nmax,
		LMax: lmax,
		S:    make([]float64, size),
		T:    make([]float64, size),
	}
}

func (e *Expansion) Index(n, l, m int) int {
	return m + (e.LMax+1)*(l+(e.LMax+1)*n)
}

// Indices lists every valid (n, l, m) of the expansion in storage order.
func (e *Expansion) Indices() (idx []Index) {
	for n := 0; n <= e.NMax; n++ {
		for l := 0; l <= e.LMax; l++ {
			for m := 0; m <= l; m++ {
				idx = append(idx, Index{n, l, m})
			}
		}
	}
	return
}

func (e *Expansion) Coefficient(idx Index) (S, T float64) {
	i := e.Index(idx.N, idx.L, idx.M)
	return e.S[i], e.T[i]
}

func (e *Expansion) Set(idx Index, S, T float64) {
	i := e.Index(idx.N, idx.L, idx.M)
	e.S[i], e.T[i] = S, T
}

// Add accumulates other into e; both must share NMax, LMax and Rs.
func (e *Expansion) Add(other *Expansion) error {
	if e.NMax != other.NMax || e.LMax != other.LMax || e.Rs != other.Rs {
		return fmt.Errorf("%w: cannot add expansion (nmax %d, lmax %d, rs %g) to (nmax %d, lmax %d, rs %g)",
			ErrShapeMismatch, other.NMax, other.LMax, other.Rs, e.NMax, e.LMax, e.Rs)
	}
	for i := range e.S {
		e.S[i] += other.S[i]
		e.T[i] += other.T[i]
	}
	return nil
}

// Density evaluates the expanded density at a Cartesian position.
func (e *Expansion) Density(x, y, z float64) float64 {
	return e.sum(x, y, z, basis.RadialDensity) / (e.Rs * e.Rs * e.Rs)
}

// Potential evaluates the expanded gravitational potential.
func (e *Expansion) Potential(x, y, z float64) float64 {
	return e.G / e.Rs * e.sum(x, y, z, basis.RadialPotential)
}

func (e *Expansion) sum(x, y, z float64, radial func(n, l int, s float64) float64) (val float64) {
	var (
		sp   = coords.FromCartesian(x, y, z)
		s    = sp.R / e.Rs
		rad  = make([]float64, (e.NMax+1)*(e.LMax+1))
		lmx1 = e.LMax + 1
	)
	for n := 0; n <= e.NMax; n++ {
		for l := 0; l <= e.LMax; l++ {
			rad[l+lmx1*n] = radial(n, l, s)
		}
	}
	for m := 0; m <= e.LMax; m++ {
		var (
			Ylm  = basis.LegendreAll(e.LMax, m, sp.X)
			cosm = math.Cos(float64(m) * sp.Phi)
			sinm = math.Sin(float64(m) * sp.Phi)
		)
		for l := m; l <= e.LMax; l++ {
			Plm := Ylm[l-m] / basis.PlmNorm(l, m)
			if Plm == 0 {
				continue
			}
			for n := 0; n <= e.NMax; n++ {
				i := e.Index(n, l, m)
				if e.S[i] == 0 && e.T[i] == 0 {
					continue
				}
				val += rad[l+lmx1*n] * Plm * (e.S[i]*cosm + e.T[i]*sinm)
			}
		}
	}
	return
}

// Gradient returns the Cartesian gradient of Potential. The angular terms use
// Legendre identities that stay finite on the z axis and at the origin.
func (e *Expansion) Gradient(x, y, z float64) (grad [3]float64) {
	var (
		sp         = coords.FromCartesian(x, y, z)
		s          = sp.R / e.Rs
		X          = sp.X
		sinT       = math.Sqrt((1. - X) * (1. + X))
		cosP, sinP = math.Cos(sp.Phi), math.Sin(sp.Phi)
		rHat       = [3]float64{sinT * cosP, sinT * sinP, X}
		thetaHat   = [3]float64{X * cosP, X * sinP, -sinT}
		phiHat     = [3]float64{-sinP, cosP, 0}
	)
	// dPhi/dr, (1/r) dPhi/dtheta and (1/(r sin theta)) dPhi/dphi
	var dR, dT, dP float64
	for l := 0; l <= e.LMax; l++ {
		for m := 0; m <= l; m++ {
			var (
				P    = basis.AssociatedLegendre(l, m, X)
				dPdT = basis.DThetaAssociatedLegendre(l, m, X)
				cosm = math.Cos(float64(m) * sp.Phi)
				sinm = math.Sin(float64(m) * sp.Phi)
			)
			var PoSin float64
			if m > 0 {
				PoSin = basis.AssociatedLegendreOverSin(l, m, X)
			}
			for n := 0; n <= e.NMax; n++ {
				i := e.Index(n, l, m)
				if e.S[i] == 0 && e.T[i] == 0 {
					continue
				}
				ang := e.S[i]*cosm + e.T[i]*sinm
				dR += basis.GradRadialPotential(n, l, s) / e.Rs * P * ang
				if l == 0 {
					continue
				}
				// Phi_nl(s)/r
				over := basis.RadialPotentialOverS(n, l, s) / e.Rs
				dT += over * dPdT * ang
				if m > 0 {
					dP += over * PoSin * float64(m) * (e.T[i]*cosm - e.S[i]*sinm)
				}
			}
		}
	}
	for j := 0; j < 3; j++ {
		grad[j] = e.G / e.Rs * (dR*rHat[j] + dT*thetaHat[j] + dP*phiHat[j])
	}
	return
}
