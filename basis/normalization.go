package basis

import "math"

// Knl is the eigenvalue K_nl = n(n+4l+3)/2 + (l+1)(2l+1) of the radial
// Poisson equation for the pair (n, l).
func Knl(n, l int) float64 {
	fn, fl := float64(n), float64(l)
	return 0.5*fn*(fn+4.*fl+3.) + (fl+1.)*(2.*fl+1.)
}

// Inl is the radial biorthogonality integral
//
//	int_0^Inf rho_nl(s) Phi_nl(s) s^2 ds
//	    = -K_nl/2^(8l+6) Gamma(n+4l+3) / (n! (n+2l+3/2) Gamma(2l+3/2)^2)
func Inl(n, l int) float64 {
	return -math.Exp(lnAbsInl(n, l))
}

// Anl is 1/(4 pi I_nl), the radial factor of the coefficient normalization.
func Anl(n, l int) float64 {
	return -math.Exp(-lnAbsInl(n, l) - math.Log(4.*math.Pi))
}

func lnAbsInl(n, l int) float64 {
	var (
		fn, fl   = float64(n), float64(l)
		lgN4l, _ = math.Lgamma(fn + 4.*fl + 3.)
		lgN1, _  = math.Lgamma(fn + 1.)
		lg2l, _  = math.Lgamma(2.*fl + 1.5)
	)
	return math.Log(Knl(n, l)) - (8.*fl+6.)*math.Ln2 + lgN4l - lgN1 -
		math.Log(fn+2.*fl+1.5) - 2.*lg2l
}

// Normalization returns K(n,l,m) = 4 pi (2 - delta_m0) A_nl N_lm, the constant
// that turns the projection of a density onto Phi_nl(s) Ylm(X) {cos,sin}(m phi),
// with Ylm the orthonormal Legendre value, into the expansion coefficient of
//
//	rho(s, X, phi) = sum_nlm rho_nl(s) P_l^m(X) [S_nlm cos(m phi) + T_nlm sin(m phi)]
//
// The product is accumulated in log space; A_nl and N_lm individually leave
// the float64 range long before their product does.
func Normalization(n, l, m int) float64 {
	// 4 pi A_nl = 1/I_nl
	lnK := lnPlmNorm(l, m) - lnAbsInl(n, l)
	if m != 0 {
		lnK += math.Ln2
	}
	return -math.Exp(lnK)
}
