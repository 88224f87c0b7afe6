package models

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Sample holds N equal-mass particles drawn from a spherical model.
type Sample struct {
	Positions [][3]float64
	Masses    []float64
}

// SampleHernquist draws N particles of mass M/N from the Hernquist profile by
// inverting its cumulative mass M(<r) / M = r^2 / (r + rs)^2.
func SampleHernquist(N int, M, rs float64, seed uint64) (Sample, error) {
	return sampleSpherical(N, M, rs, seed, func(u float64) float64 {
		su := math.Sqrt(u)
		return rs * su / (1. - su)
	})
}

// SamplePlummer draws N particles of mass M/N from the Plummer sphere,
// M(<r) / M = r^3 / (r^2 + rs^2)^(3/2).
func SamplePlummer(N int, M, rs float64, seed uint64) (Sample, error) {
	return sampleSpherical(N, M, rs, seed, func(u float64) float64 {
		if u == 0 {
			return 0
		}
		return rs / math.Sqrt(math.Pow(u, -2./3.)-1.)
	})
}

func sampleSpherical(N int, M, rs float64, seed uint64, radius func(u float64) float64) (sm Sample, err error) {
	if N <= 0 {
		err = fmt.Errorf("models: need a positive particle count, have %d", N)
		return
	}
	if !(rs > 0) || !(M > 0) {
		err = fmt.Errorf("models: M = %g and rs = %g must be positive", M, rs)
		return
	}
	var (
		rng  = rand.New(rand.NewPCG(seed, seed+1))
		mass = M / float64(N)
	)
	sm.Positions = make([][3]float64, N)
	sm.Masses = make([]float64, N)
	for i := 0; i < N; i++ {
		var (
			r    = radius(rng.Float64())
			X    = 2.*rng.Float64() - 1.
			phi  = 2. * math.Pi * rng.Float64()
			sinT = math.Sqrt((1. - X) * (1. + X))
		)
		sm.Positions[i] = [3]float64{r * sinT * math.Cos(phi), r * sinT * math.Sin(phi), r * X}
		sm.Masses[i] = mass
	}
	return
}
