package scf

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goscf/basis"
	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/quadrature"
)

func TestHernquistLowestOrder(t *testing.T) {
	// Hernquist is the n = l = 0 basis density, so S_000 = M and nothing else
	for _, M := range []float64{1, 2.5} {
		res, err := ComputeContinuous(hernquist, Index{0, 0, 0}, Scale{M: M, Rs: 1}, nil, quadrature.Options{})
		require.NoError(t, err)
		assert.InEpsilon(t, M, res.S, 1.e-9)
		assert.Equal(t, 0., res.T)
	}
	res, err := fixed.ComputeContinuous(hernquist, Index{1, 0, 0}, Scale{M: 1, Rs: 2}, nil, looseOpts)
	require.NoError(t, err)
	assert.InDelta(t, 0., res.S, 1.e-10)
}

func TestBiorthogonality(t *testing.T) {
	var (
		scale = Scale{M: 2, Rs: 1.5}
		probe = []Index{{0, 0, 0}, {1, 0, 0}, {2, 1, 0}, {1, 2, 1}, {0, 2, 2}, {2, 2, 1}}
	)
	for _, src := range []Index{{1, 0, 0}, {2, 1, 0}, {1, 2, 1}, {0, 2, 2}} {
		for _, sine := range []bool{false, true} {
			if sine && src.M == 0 {
				continue
			}
			density := basisDensity(src, sine)
			for _, idx := range probe {
				name := fmt.Sprintf("src %v sine %v probe %v", src, sine, idx)
				res, err := fixed.ComputeContinuous(density, idx, scale, nil, looseOpts)
				require.NoError(t, err, name)
				wantS, wantT := 0., 0.
				if idx == src {
					if sine {
						wantT = scale.M
					} else {
						wantS = scale.M
					}
				}
				assert.InDelta(t, wantS, res.S, 1.e-8, name)
				assert.InDelta(t, wantT, res.T, 1.e-8, name)
			}
		}
	}
}

func TestSineVanishesForAxisymmetricIndex(t *testing.T) {
	// Non-axisymmetric density; T_nl0 must still be exactly zero
	density := basisDensity(Index{0, 2, 1}, true)
	for _, idx := range []Index{{0, 0, 0}, {1, 1, 0}, {0, 2, 0}} {
		res, err := fixed.ComputeContinuous(density, idx, Scale{M: 1, Rs: 1}, nil, looseOpts)
		require.NoError(t, err)
		assert.Equal(t, 0., res.T)
		assert.Equal(t, 0., res.TErr)
	}
}

func TestLinearInMass(t *testing.T) {
	plummer := DensityFuncOf(models.Plummer)
	for _, idx := range []Index{{0, 0, 0}, {2, 0, 0}} {
		r1, err := fixed.ComputeContinuous(plummer, idx, Scale{M: 1, Rs: 1}, nil, looseOpts)
		require.NoError(t, err)
		r2, err := fixed.ComputeContinuous(plummer, idx, Scale{M: 3.5, Rs: 1}, nil, looseOpts)
		require.NoError(t, err)
		assert.InEpsilon(t, 3.5*r1.S, r2.S, 1.e-12)
	}
}

func TestFlattenedSymmetry(t *testing.T) {
	var (
		flat  = DensityFuncOf(models.FlattenedHernquist)
		scale = Scale{M: 1, Rs: 1}
		args  = []float64{0.5}
	)
	odd, err := fixed.ComputeContinuous(flat, Index{0, 1, 0}, scale, args, looseOpts)
	require.NoError(t, err)
	assert.InDelta(t, 0., odd.S, 1.e-10)
	quadrupole, err := fixed.ComputeContinuous(flat, Index{0, 2, 0}, scale, args, looseOpts)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(quadrupole.S), 1.e-3)
	nonAxi, err := fixed.ComputeContinuous(flat, Index{0, 2, 2}, scale, args, looseOpts)
	require.NoError(t, err)
	assert.InDelta(t, 0., nonAxi.S, 1.e-10)
	assert.InDelta(t, 0., nonAxi.T, 1.e-10)

	// Missing model arguments surface as a density error
	_, err = fixed.ComputeContinuous(flat, Index{0, 0, 0}, scale, nil, looseOpts)
	assert.Error(t, err)
}

func TestNestedErrorBoundsFlattened(t *testing.T) {
	var (
		flat  = DensityFuncOf(models.FlattenedHernquist)
		scale = Scale{M: 1, Rs: 1}
		args  = []float64{0.3}
		idx   = Index{2, 2, 0}
	)
	ref, err := ComputeContinuous(flat, idx, scale, args, quadrature.Options{EpsRel: 1.e-9, EpsAbs: 1.e-12})
	require.NoError(t, err)
	res, err := ComputeContinuous(flat, idx, scale, args, quadrature.Options{EpsRel: 1.e-3, Points: 3})
	require.NoError(t, err)
	// The density is axisymmetric, so all of the error sits in the inner integrals
	assert.Greater(t, res.SErr, 1.e-10)
	assert.GreaterOrEqual(t, res.SErr+ref.SErr, math.Abs(res.S-ref.S))
}

func TestNormalizationFolded(t *testing.T) {
	ig := NewIntegrand(hernquist, Index{0, 0, 0}, Scale{M: 1, Rs: 1}, nil)
	assert.Equal(t, basis.Normalization(0, 0, 0), ig.Normalization())
	for _, xi := range []float64{-1, 1} {
		v, err := ig.Cos(0.3, 0.2, xi)
		require.NoError(t, err)
		assert.Equal(t, 0., v)
	}
}

func TestInvalidInputsDoNoWork(t *testing.T) {
	cd := &countingDensity{inner: hernquist}
	_, err := ComputeContinuous(cd, Index{0, 1, 2}, Scale{M: 1, Rs: 1}, nil, quadrature.Options{})
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = ComputeContinuous(cd, Index{0, 0, 0}, Scale{M: 1, Rs: 0}, nil, quadrature.Options{})
	assert.ErrorIs(t, err, ErrInvalidScale)
	_, err = ComputeContinuous(cd, Index{0, 0, 0}, Scale{M: -1, Rs: 1}, nil, quadrature.Options{})
	assert.ErrorIs(t, err, ErrInvalidScale)
	assert.Equal(t, int64(0), cd.calls.Load())

	cp := &countingParticles{ParticleSet: hernquistParticles(10, 1, 1, 1)}
	_, err = ComputeDiscrete(cp, Index{1, 0, 1}, 1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = ComputeDiscrete(cp, Index{0, 0, 0}, -1)
	assert.ErrorIs(t, err, ErrInvalidScale)
	assert.Equal(t, int64(0), cp.calls.Load())

	_, err = ComputeContinuous(nil, Index{0, 0, 0}, Scale{M: 1, Rs: 1}, nil, quadrature.Options{})
	assert.Error(t, err)
}

func TestDensityErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	density := DensityFuncOf(func(x, y, z, M, rs float64, args []float64) (float64, error) {
		if z > 0.5 {
			return 0, boom
		}
		return 1, nil
	})
	res, err := ComputeContinuous(density, Index{0, 0, 0}, Scale{M: 1, Rs: 1}, nil, quadrature.Options{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrQuadratureNonconvergence))
	assert.Equal(t, ContinuousResult{}, res)
}

func TestNonconvergenceKeepsValues(t *testing.T) {
	var (
		plummer = DensityFuncOf(models.Plummer)
		coarse  = Computer{Integrator: quadrature.FixedLegendre{Points: 4}}
		strict  = quadrature.Options{EpsRel: 1.e-15, EpsAbs: 1.e-15}
	)
	res, err := coarse.ComputeContinuous(plummer, Index{0, 0, 0}, Scale{M: 1, Rs: 1}, nil, strict)
	require.ErrorIs(t, err, ErrQuadratureNonconvergence)
	assert.NotZero(t, res.S)
	assert.Greater(t, res.SErr, 0.)

	// The adaptive integrator with a one panel limit
	res, err = ComputeContinuous(plummer, Index{2, 0, 0}, Scale{M: 1, Rs: 1}, nil,
		quadrature.Options{Limit: 1, Points: 2, EpsRel: 1.e-15, EpsAbs: 1.e-15})
	require.ErrorIs(t, err, ErrQuadratureNonconvergence)
	assert.NotZero(t, res.S)
}
