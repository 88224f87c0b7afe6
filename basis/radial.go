package basis

import (
	"math"

	"github.com/notargets/goscf/utils"
)

// Alpha is the Gegenbauer order 2l + 3/2 of the radial functions of degree l.
func Alpha(l int) float64 {
	return 2.*float64(l) + 1.5
}

// Xi maps the dimensionless radius s onto the radial polynomial variable.
func Xi(s float64) float64 {
	if math.IsInf(s, 1) {
		return 1
	}
	return (s - 1.) / (s + 1.)
}

// RadialPotential is the potential basis function
//
//	Phi_nl(s) = -s^l / (1+s)^(2l+1) C_n^(2l+3/2)(xi)
//
// At s = 0 it returns the analytic limit (zero unless l = 0) and at s = +Inf
// it returns zero.
func RadialPotential(n, l int, s float64) float64 {
	if math.IsInf(s, 1) {
		return 0
	}
	return -radialProfile(l, s) * Gegenbauer(n, Alpha(l), Xi(s))
}

// RadialDensity is the density basis function paired with RadialPotential,
//
//	rho_nl(s) = K_nl/(2 pi) s^l / (s (1+s)^(2l+3)) C_n^(2l+3/2)(xi)
//
// so that Laplacian(Phi_nl Y_lm) = 4 pi rho_nl Y_lm. For l = 0 the function
// diverges as 1/s at the origin and +/-Inf is returned there.
func RadialDensity(n, l int, s float64) float64 {
	if math.IsInf(s, 1) {
		return 0
	}
	var prof float64
	if l == 0 {
		prof = 1. / (s * utils.POW(1.+s, 3))
	} else {
		// s^(l-1)/(1+s)^(2l+3) = (s/(1+s))^(l-1) (1+s)^-(l+4)
		prof = utils.POW(s/(1.+s), l-1) * utils.POW(1.+s, -(l + 4))
	}
	return Knl(n, l) / (2. * math.Pi) * prof * Gegenbauer(n, Alpha(l), Xi(s))
}

// GradRadialPotential is dPhi_nl/ds.
func GradRadialPotential(n, l int, s float64) float64 {
	if math.IsInf(s, 1) {
		return 0
	}
	var (
		alpha = Alpha(l)
		xi    = Xi(s)
		opS   = 1. + s
		C     = Gegenbauer(n, alpha, xi)
		dC    = GradGegenbauer(n, alpha, xi) * 2. / (opS * opS)
		prof  = radialProfile(l, s)
		dProf = -float64(2*l+1) / opS * prof
	)
	if l > 0 {
		// l s^(l-1)/(1+s)^(2l+1), written to stay finite at s = 0
		dProf += float64(l) * utils.POW(s/opS, l-1) * utils.POW(opS, -(l + 2))
	}
	return -(dProf*C + prof*dC)
}

// radialProfile is s^l/(1+s)^(2l+1) arranged so that neither factor overflows
// for large s or l.
func radialProfile(l int, s float64) float64 {
	return utils.POW(s/(1.+s), l) * utils.POW(1.+s, -(l + 1))
}

// RadialPotentialAll returns Phi_0l(s) through Phi_nmax,l(s) from one pass of
// the Gegenbauer recurrence.
func RadialPotentialAll(nmax, l int, s float64) (Phi []float64) {
	Phi = make([]float64, nmax+1)
	if math.IsInf(s, 1) {
		return
	}
	prof := radialProfile(l, s)
	for n, c := range GegenbauerAll(nmax, Alpha(l), Xi(s)) {
		Phi[n] = -prof * c
	}
	return
}

// RadialPotentialOverS is Phi_nl(s)/s for l >= 1, which stays finite at the
// origin.
func RadialPotentialOverS(n, l int, s float64) float64 {
	if math.IsInf(s, 1) {
		return 0
	}
	return -utils.POW(s/(1.+s), l-1) * utils.POW(1.+s, -(l+2)) * Gegenbauer(n, Alpha(l), Xi(s))
}
