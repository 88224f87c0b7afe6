package basis

// Gegenbauer evaluates the ultraspherical polynomial C_n^(alpha)(x) using the
// upward three term recurrence
//
//	n C_n = 2x(n+alpha-1) C_{n-1} - (n+2alpha-2) C_{n-2}
//
// seeded from C_0 = 1 and C_1 = 2 alpha x.
func Gegenbauer(n int, alpha, x float64) float64 {
	if n < 0 {
		return 0
	}
	cOld := 1.
	if n == 0 {
		return cOld
	}
	c := 2. * alpha * x
	for i := 2; i <= n; i++ {
		fi := float64(i)
		cNew := (2.*x*(fi+alpha-1.)*c - (fi+2.*alpha-2.)*cOld) / fi
		cOld, c = c, cNew
	}
	return c
}

// GegenbauerAll returns C_0^(alpha)(x) through C_n^(alpha)(x) from a single pass
// of the recurrence.
func GegenbauerAll(n int, alpha, x float64) (C []float64) {
	if n < 0 {
		return
	}
	C = make([]float64, n+1)
	C[0] = 1.
	if n == 0 {
		return
	}
	C[1] = 2. * alpha * x
	for i := 2; i <= n; i++ {
		fi := float64(i)
		C[i] = (2.*x*(fi+alpha-1.)*C[i-1] - (fi+2.*alpha-2.)*C[i-2]) / fi
	}
	return
}

// GradGegenbauer is dC_n^(alpha)/dx = 2 alpha C_{n-1}^(alpha+1)(x).
func GradGegenbauer(n int, alpha, x float64) float64 {
	if n == 0 {
		return 0
	}
	return 2. * alpha * Gegenbauer(n-1, alpha+1., x)
}
