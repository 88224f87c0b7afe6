package scf

import (
	"fmt"
	"math"
)

// Index selects one basis function: radial order N, degree L and azimuthal
// order M with 0 <= M <= L. Negative M is not used; the sine terms carry it.
type Index struct {
	N, L, M int
}

func (idx Index) Validate() error {
	if idx.N < 0 || idx.L < 0 || idx.M < 0 || idx.M > idx.L {
		return fmt.Errorf("%w: (n, l, m) = (%d, %d, %d)", ErrInvalidIndex, idx.N, idx.L, idx.M)
	}
	return nil
}

func (idx Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", idx.N, idx.L, idx.M)
}

// Scale holds the scale mass and scale radius of the expansion.
type Scale struct {
	M, Rs float64
}

func (sc Scale) Validate() error {
	if err := validateRs(sc.Rs); err != nil {
		return err
	}
	if !(sc.M > 0) || math.IsInf(sc.M, 0) {
		return fmt.Errorf("%w: M = %g", ErrInvalidScale, sc.M)
	}
	return nil
}

func validateRs(rs float64) error {
	if !(rs > 0) || math.IsInf(rs, 0) {
		return fmt.Errorf("%w: r_s = %g", ErrInvalidScale, rs)
	}
	return nil
}

// DensityFunc evaluates a mass density at a Cartesian position, given the
// scale mass and radius and any extra model parameters. Implementations must
// be deterministic and safe for concurrent use; the continuous path calls
// them once per quadrature node. A returned error aborts the computation.
type DensityFunc interface {
	Density(x, y, z, M, rs float64, args []float64) (float64, error)
}

// DensityFuncOf adapts a plain function to DensityFunc.
type DensityFuncOf func(x, y, z, M, rs float64, args []float64) (float64, error)

func (f DensityFuncOf) Density(x, y, z, M, rs float64, args []float64) (float64, error) {
	return f(x, y, z, M, rs, args)
}

// Particles is a read-only view of a set of point masses.
type Particles interface {
	Len() int
	At(i int) (pos [3]float64, mass float64)
}

// ParticleSet holds parallel position and mass slices. Masses may be of any
// sign.
type ParticleSet struct {
	Positions [][3]float64
	Masses    []float64
}

func (ps ParticleSet) Len() int { return len(ps.Positions) }

func (ps ParticleSet) At(i int) ([3]float64, float64) {
	return ps.Positions[i], ps.Masses[i]
}

func (ps ParticleSet) Validate() error {
	if len(ps.Positions) != len(ps.Masses) {
		return fmt.Errorf("%w: %d positions, %d masses",
			ErrShapeMismatch, len(ps.Positions), len(ps.Masses))
	}
	if len(ps.Positions) == 0 {
		return fmt.Errorf("%w: no particles", ErrShapeMismatch)
	}
	return nil
}

// Slice returns the particles [i, j) sharing the underlying storage.
func (ps ParticleSet) Slice(i, j int) ParticleSet {
	return ParticleSet{Positions: ps.Positions[i:j], Masses: ps.Masses[i:j]}
}

// ParticleSet32 is the single precision layout used by N-body snapshots.
type ParticleSet32 struct {
	Positions [][3]float32
	Masses    []float32
}

func (ps ParticleSet32) Len() int { return len(ps.Positions) }

func (ps ParticleSet32) At(i int) (pos [3]float64, mass float64) {
	p := ps.Positions[i]
	return [3]float64{float64(p[0]), float64(p[1]), float64(p[2])}, float64(ps.Masses[i])
}

func (ps ParticleSet32) Validate() error {
	if len(ps.Positions) != len(ps.Masses) {
		return fmt.Errorf("%w: %d positions, %d masses",
			ErrShapeMismatch, len(ps.Positions), len(ps.Masses))
	}
	if len(ps.Positions) == 0 {
		return fmt.Errorf("%w: no particles", ErrShapeMismatch)
	}
	return nil
}

// ContinuousResult holds the coefficients from quadrature with their absolute
// error estimates.
type ContinuousResult struct {
	S, SErr float64
	T, TErr float64
}

// DiscreteResult holds the coefficients of a particle sum. Partial results
// over disjoint particle subsets combine with Add.
type DiscreteResult struct {
	S, T float64
}

func (dr DiscreteResult) Add(other DiscreteResult) DiscreteResult {
	return DiscreteResult{S: dr.S + other.S, T: dr.T + other.T}
}
