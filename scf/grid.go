package scf

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/coords"
	"github.com/notargets/goscf/quadrature"
	"github.com/notargets/goscf/utils"
)

func validateOrders(nmax, lmax int) error {
	if nmax < 0 || lmax < 0 {
		return fmt.Errorf("%w: nmax = %d, lmax = %d", ErrInvalidIndex, nmax, lmax)
	}
	return nil
}

func clampWorkers(workers, tasks int) int {
	if workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// ComputeGrid computes every coefficient with n <= nmax and m <= l <= lmax.
// Each (n, l, m) is one task; tasks are spread over workers goroutines.
//
// A fatal error from any task fails the grid. When some tasks only failed to
// converge, the full expansion is returned with an error wrapping
// ErrQuadratureNonconvergence that counts them.
func (c Computer) ComputeGrid(density DensityFunc, scale Scale, args []float64,
	nmax, lmax int, opts quadrature.Options, workers int) (e *Expansion, err error) {
	if err = validateOrders(nmax, lmax); err != nil {
		return
	}
	if err = scale.Validate(); err != nil {
		return
	}
	var (
		grid  = NewExpansion(scale.Rs, nmax, lmax)
		tasks = grid.Indices()
		errs  = make([]error, len(tasks))
		pm    = utils.NewPartitionMap(clampWorkers(workers, len(tasks)), len(tasks))
		wg    = sync.WaitGroup{}
	)
	grid.SErr = make([]float64, len(grid.S))
	grid.TErr = make([]float64, len(grid.T))
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				idx := tasks[i]
				res, tErr := c.ComputeContinuous(density, idx, scale, args, opts)
				k := grid.Index(idx.N, idx.L, idx.M)
				grid.S[k], grid.SErr[k] = res.S, res.SErr
				grid.T[k], grid.TErr[k] = res.T, res.TErr
				errs[i] = tErr
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	var unconverged int
	for _, tErr := range errs {
		switch {
		case tErr == nil:
		case errors.Is(tErr, ErrQuadratureNonconvergence):
			unconverged++
		default:
			return nil, tErr
		}
	}
	if unconverged > 0 {
		err = fmt.Errorf("scf: %d of %d coefficients: %w",
			unconverged, len(tasks), ErrQuadratureNonconvergence)
	}
	return grid, err
}

// ComputeGridDiscrete sums every coefficient with n <= nmax and m <= l <= lmax
// over the particles. The particles are partitioned over workers goroutines;
// each partition accumulates a whole grid and the partial grids are added.
func (c Computer) ComputeGridDiscrete(p Particles, rs float64, nmax, lmax, workers int) (e *Expansion, err error) {
	if err = validateOrders(nmax, lmax); err != nil {
		return
	}
	if err = validateRs(rs); err != nil {
		return
	}
	if err = validateParticles(p); err != nil {
		return
	}
	var (
		N       = p.Len()
		pm      = utils.NewPartitionMap(clampWorkers(workers, N), N)
		partial = make([]*Expansion, pm.ParallelDegree)
		wg      = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			partial[np] = gridRange(p, rs, nmax, lmax, kMin, kMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
	e = partial[0]
	for _, pe := range partial[1:] {
		floats.Add(e.S, pe.S)
		floats.Add(e.T, pe.T)
	}
	for _, idx := range e.Indices() {
		K := basis.Normalization(idx.N, idx.L, idx.M)
		k := e.Index(idx.N, idx.L, idx.M)
		e.S[k] *= K
		e.T[k] *= K
	}
	return
}

// gridRange accumulates the un-normalized sums of particles kMin..kMax-1.
func gridRange(p Particles, rs float64, nmax, lmax, kMin, kMax int) (e *Expansion) {
	e = NewExpansion(rs, nmax, lmax)
	Phi := make([][]float64, lmax+1)
	for k := kMin; k < kMax; k++ {
		pos, mass := p.At(k)
		sp := coords.FromCartesian(pos[0], pos[1], pos[2])
		s := sp.R / rs
		for l := 0; l <= lmax; l++ {
			Phi[l] = basis.RadialPotentialAll(nmax, l, s)
		}
		for m := 0; m <= lmax; m++ {
			var (
				Ylm  = basis.LegendreAll(lmax, m, sp.X)
				cosm = math.Cos(float64(m) * sp.Phi)
				sinm = math.Sin(float64(m) * sp.Phi)
			)
			for l := m; l <= lmax; l++ {
				w := mass * Ylm[l-m]
				if w == 0 {
					continue
				}
				for n := 0; n <= nmax; n++ {
					i := e.Index(n, l, m)
					e.S[i] += w * Phi[l][n] * cosm
					if m != 0 {
						e.T[i] += w * Phi[l][n] * sinm
					}
				}
			}
		}
	}
	return
}

// ComputeGrid uses the default Computer.
func ComputeGrid(density DensityFunc, scale Scale, args []float64,
	nmax, lmax int, opts quadrature.Options, workers int) (*Expansion, error) {
	return Computer{}.ComputeGrid(density, scale, args, nmax, lmax, opts, workers)
}

// ComputeGridDiscrete uses the default Computer.
func ComputeGridDiscrete(p Particles, rs float64, nmax, lmax, workers int) (*Expansion, error) {
	return Computer{}.ComputeGridDiscrete(p, rs, nmax, lmax, workers)
}
