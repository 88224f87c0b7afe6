package quadrature

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rule is a quadrature rule on the reference interval [-1, 1].
type Rule struct {
	X, W []float64
}

// JacobiGQ computes the N+1 point Gauss quadrature for the weight
// (1-x)^alpha (1+x)^beta on [-1, 1]. The nodes are the eigenvalues of the
// symmetric tridiagonal Jacobi matrix and the weights are the squared first
// components of the normalized eigenvectors times the weight's total mass.
func JacobiGQ(alpha, beta float64, N int) (X, W []float64, err error) {
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{gamma0(alpha, beta)}
		return
	}
	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}
	// main diagonal: -(alpha^2-beta^2) / ((h1+2) h1), the doubled diagonal of
	// J + J^T
	d0 := make([]float64, N+1)
	fac := -(alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}
	// 1st upper diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}
	JJ := mat.NewSymDense(N+1, nil)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		err = errors.New("quadrature: eigenvalue decomposition of the Jacobi matrix failed")
		return
	}
	X = eig.Values(nil)
	VV := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VV)
	g0 := gamma0(alpha, beta)
	W = make([]float64, N+1)
	for i := range W {
		v := VV.At(0, i)
		W[i] = v * v * g0
	}
	return
}

// NewGaussLegendre returns the points-point Gauss-Legendre rule, exact for
// polynomials of degree 2 points - 1.
func NewGaussLegendre(points int) (r *Rule, err error) {
	if points < 1 {
		err = ErrBadOptions
		return
	}
	r = &Rule{}
	r.X, r.W, err = JacobiGQ(0, 0, points-1)
	return
}

// Apply integrates f over [a, b]. The first error returned by f aborts the sum.
func (r *Rule) Apply(f Func1, a, b float64) (sum float64, err error) {
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (b + a)
		val  float64
	)
	for i, x := range r.X {
		if val, err = f(mid + half*x); err != nil {
			return
		}
		sum += r.W[i] * val
	}
	sum *= half
	return
}

// gamma0 is the integral of the Jacobi weight over [-1, 1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
