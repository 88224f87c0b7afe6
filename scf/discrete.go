package scf

import (
	"fmt"
	"math"
	"sync"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/coords"
	"github.com/notargets/goscf/utils"
)

type validator interface {
	Validate() error
}

func validateParticles(p Particles) error {
	if p == nil {
		return fmt.Errorf("%w: nil particle set", ErrShapeMismatch)
	}
	if v, ok := p.(validator); ok {
		return v.Validate()
	}
	if p.Len() == 0 {
		return fmt.Errorf("%w: no particles", ErrShapeMismatch)
	}
	return nil
}

// particleTerm is the un-normalized contribution m Phi_nl(s) Ylm(X) {cos, sin}(m phi)
// of one particle. A particle at the origin uses X = 0, phi = 0; there
// Phi_nl vanishes for l > 0 and is finite for l = 0.
func particleTerm(pos [3]float64, mass float64, idx Index, rs float64) (c, s float64) {
	sp := coords.FromCartesian(pos[0], pos[1], pos[2])
	w := mass * basis.RadialPotential(idx.N, idx.L, sp.R/rs) * basis.Legendre(idx.L, idx.M, sp.X)
	if idx.M == 0 {
		return w, 0
	}
	mPhi := float64(idx.M) * sp.Phi
	return w * math.Cos(mPhi), w * math.Sin(mPhi)
}

func sumRange(p Particles, idx Index, rs float64, kMin, kMax int) (res DiscreteResult) {
	for k := kMin; k < kMax; k++ {
		pos, mass := p.At(k)
		c, s := particleTerm(pos, mass, idx, rs)
		res.S += c
		res.T += s
	}
	K := basis.Normalization(idx.N, idx.L, idx.M)
	res.S *= K
	res.T *= K
	return
}

// SumDiscrete sums the normalized basis terms of all particles serially. It
// does not validate its inputs; ComputeDiscrete does.
func SumDiscrete(p Particles, idx Index, rs float64) DiscreteResult {
	return sumRange(p, idx, rs, 0, p.Len())
}

// SumDiscreteParallel splits the particles into workers partitions with a
// maximum imbalance of one particle, sums each partition in its own goroutine
// and combines the partial results with DiscreteResult.Add in partition order.
func SumDiscreteParallel(p Particles, idx Index, rs float64, workers int) (res DiscreteResult) {
	N := p.Len()
	if workers > N {
		workers = N
	}
	if workers <= 1 {
		return SumDiscrete(p, idx, rs)
	}
	var (
		pm      = utils.NewPartitionMap(workers, N)
		partial = make([]DiscreteResult, pm.ParallelDegree)
		wg      = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			partial[np] = sumRange(p, idx, rs, kMin, kMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
	for _, pr := range partial {
		res = res.Add(pr)
	}
	return
}
