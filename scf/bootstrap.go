package scf

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/notargets/goscf/basis"
)

// BootstrapResult holds the mean and standard deviation of a discrete
// coefficient over the bootstrap resamples.
type BootstrapResult struct {
	Mean, StdDev DiscreteResult
	Samples      int
}

// Bootstrap estimates the sampling noise of coefficient idx by drawing
// nBoot resamples of the particles with replacement. The generator is seeded
// from seed, so equal inputs give equal results.
func Bootstrap(p Particles, idx Index, rs float64, nBoot int, seed uint64) (br BootstrapResult, err error) {
	if err = idx.Validate(); err != nil {
		return
	}
	if err = validateRs(rs); err != nil {
		return
	}
	if err = validateParticles(p); err != nil {
		return
	}
	if nBoot < 2 {
		err = fmt.Errorf("scf: bootstrap needs at least 2 resamples, have %d", nBoot)
		return
	}
	var (
		N     = p.Len()
		cTerm = make([]float64, N)
		sTerm = make([]float64, N)
		sVals = make([]float64, nBoot)
		tVals = make([]float64, nBoot)
		rng   = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	)
	for k := 0; k < N; k++ {
		pos, mass := p.At(k)
		cTerm[k], sTerm[k] = particleTerm(pos, mass, idx, rs)
	}
	K := basis.Normalization(idx.N, idx.L, idx.M)
	for b := 0; b < nBoot; b++ {
		var sSum, tSum float64
		for j := 0; j < N; j++ {
			k := rng.IntN(N)
			sSum += cTerm[k]
			tSum += sTerm[k]
		}
		sVals[b], tVals[b] = K*sSum, K*tSum
	}
	br.Samples = nBoot
	br.Mean.S, br.StdDev.S = stat.MeanStdDev(sVals, nil)
	br.Mean.T, br.StdDev.T = stat.MeanStdDev(tVals, nil)
	return
}
