package basis

import "math"

// Legendre evaluates the orthonormal associated Legendre function
//
//	sqrt((2l+1)/(4 pi) (l-m)!/(l+m)!) P_l^m(x)
//
// including the Condon-Shortley phase, so that the squared value integrated
// over the sphere against cos^2(m phi) or sin^2(m phi) is of order unity.
// The value is seeded at P_m^m and recurred upward in l; intermediate values
// never leave the range of the final result, which avoids the factorial sized
// numbers of the closed form.
func Legendre(l, m int, x float64) float64 {
	if m < 0 || m > l || math.Abs(x) > 1 {
		return math.NaN()
	}
	if m > 0 && (x == 1 || x == -1) {
		// Every P_l^m with m > 0 carries a factor (1-x^2)^(m/2)
		return 0
	}
	pmm := legendreSeed(m, x)
	if l == m {
		return pmm
	}
	oldFact := math.Sqrt(2.*float64(m) + 3.)
	pmmp1 := x * oldFact * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	fm := float64(m)
	for ll := m + 2; ll <= l; ll++ {
		fl := float64(ll)
		fact := math.Sqrt((4.*fl*fl - 1.) / (fl*fl - fm*fm))
		pll = (x*pmmp1 - pmm/oldFact) * fact
		oldFact = fact
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}

// LegendreAll returns the orthonormal values for degrees m..lmax at fixed
// order m; entry i of the result holds degree m+i.
func LegendreAll(lmax, m int, x float64) (P []float64) {
	if m < 0 || m > lmax {
		return
	}
	P = make([]float64, lmax-m+1)
	if m > 0 && (x == 1 || x == -1) {
		return
	}
	P[0] = legendreSeed(m, x)
	if lmax == m {
		return
	}
	oldFact := math.Sqrt(2.*float64(m) + 3.)
	P[1] = x * oldFact * P[0]
	fm := float64(m)
	for ll := m + 2; ll <= lmax; ll++ {
		fl := float64(ll)
		fact := math.Sqrt((4.*fl*fl - 1.) / (fl*fl - fm*fm))
		i := ll - m
		P[i] = (x*P[i-1] - P[i-2]/oldFact) * fact
		oldFact = fact
	}
	return
}

// legendreSeed is the orthonormal P_m^m(x).
func legendreSeed(m int, x float64) float64 {
	pmm := 1.
	if m > 0 {
		omx2 := (1. - x) * (1. + x)
		fact := 1.
		for i := 1; i <= m; i++ {
			pmm *= omx2 * fact / (fact + 1.)
			fact += 2.
		}
	}
	pmm = math.Sqrt((2.*float64(m) + 1.) * pmm / (4. * math.Pi))
	if m&1 == 1 {
		pmm = -pmm
	}
	return pmm
}

// AssociatedLegendre is the conventional (unnormalized) P_l^m(x) with the
// Condon-Shortley phase.
func AssociatedLegendre(l, m int, x float64) float64 {
	return Legendre(l, m, x) / PlmNorm(l, m)
}

// PlmNorm returns N_lm = sqrt((2l+1)/(4 pi) (l-m)!/(l+m)!), the ratio between
// the orthonormal and the conventional associated Legendre functions.
func PlmNorm(l, m int) float64 {
	return math.Exp(lnPlmNorm(l, m))
}

func lnPlmNorm(l, m int) float64 {
	lgA, _ := math.Lgamma(float64(l-m) + 1.)
	lgB, _ := math.Lgamma(float64(l+m) + 1.)
	return 0.5 * (math.Log((2.*float64(l)+1.)/(4.*math.Pi)) + lgA - lgB)
}

// plm is AssociatedLegendre extended by zero outside 0 <= m <= l.
func plm(l, m int, x float64) float64 {
	if l < 0 || m < 0 || m > l {
		return 0
	}
	return AssociatedLegendre(l, m, x)
}

// DThetaAssociatedLegendre is dP_l^m(cos theta)/d theta at x = cos theta,
// from
//
//	dP_l^m/dtheta = (P_l^(m+1) - (l+m)(l-m+1) P_l^(m-1)) / 2
//
// which holds at the poles as well.
func DThetaAssociatedLegendre(l, m int, x float64) float64 {
	if m == 0 {
		return plm(l, 1, x)
	}
	return 0.5 * (plm(l, m+1, x) - float64((l+m)*(l-m+1))*plm(l, m-1, x))
}

// AssociatedLegendreOverSin is P_l^m(cos theta)/sin theta for m >= 1, from
//
//	P_l^m/sin theta = -(P_(l-1)^(m+1) + (l+m-1)(l+m) P_(l-1)^(m-1)) / 2m
//
// finite at the poles where the quotient itself is undefined.
func AssociatedLegendreOverSin(l, m int, x float64) float64 {
	if m == 0 {
		return math.NaN()
	}
	return -(plm(l-1, m+1, x) + float64((l+m-1)*(l+m))*plm(l-1, m-1, x)) / (2. * float64(m))
}
