package scf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscreteAdditivity(t *testing.T) {
	ps := hernquistParticles(1000, 1, 1, 11)
	for _, idx := range []Index{{0, 0, 0}, {2, 1, 1}, {1, 3, 2}} {
		var (
			whole = SumDiscrete(ps, idx, 1)
			a     = SumDiscrete(ps.Slice(0, 371), idx, 1)
			b     = SumDiscrete(ps.Slice(371, 1000), idx, 1)
			sum   = a.Add(b)
		)
		assert.InDelta(t, whole.S, sum.S, 1.e-12)
		assert.InDelta(t, whole.T, sum.T, 1.e-12)
	}
}

func TestDiscreteParallelMatchesSerial(t *testing.T) {
	ps := hernquistParticles(5003, 1, 1.3, 5)
	for _, idx := range []Index{{0, 0, 0}, {3, 2, 1}, {1, 4, 4}} {
		serial := SumDiscrete(ps, idx, 1.3)
		for _, workers := range []int{2, 7, 100000} {
			res, err := Computer{Workers: workers}.ComputeDiscrete(ps, idx, 1.3)
			require.NoError(t, err)
			assert.InDelta(t, serial.S, res.S, 1.e-12)
			assert.InDelta(t, serial.T, res.T, 1.e-12)
		}
		if idx.M == 0 {
			assert.Equal(t, 0., serial.T)
		}
	}
}

func TestDiscreteOriginParticle(t *testing.T) {
	ps := ParticleSet{Positions: [][3]float64{{0, 0, 0}}, Masses: []float64{2}}
	res, err := ComputeDiscrete(ps, Index{0, 0, 0}, 1)
	require.NoError(t, err)
	// K_000 Phi_00(0) Y_00 = 3 per unit mass
	assert.InDelta(t, 6., res.S, 1.e-12)
	for _, idx := range []Index{{1, 1, 0}, {0, 2, 1}, {2, 3, 3}} {
		res, err = ComputeDiscrete(ps, idx, 1)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(res.S) || math.IsNaN(res.T))
		assert.Equal(t, 0., res.S)
		assert.Equal(t, 0., res.T)
	}
}

func TestDiscreteShapeMismatch(t *testing.T) {
	ps := ParticleSet{Positions: [][3]float64{{1, 0, 0}, {0, 1, 0}}, Masses: []float64{1}}
	_, err := ComputeDiscrete(ps, Index{0, 0, 0}, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ComputeDiscrete(ParticleSet{}, Index{0, 0, 0}, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = ComputeDiscrete(nil, Index{0, 0, 0}, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDiscreteSinglePrecision(t *testing.T) {
	var (
		ps   = hernquistParticles(200, 1, 1, 3)
		ps32 ParticleSet32
	)
	for i, p := range ps.Positions {
		ps32.Positions = append(ps32.Positions, [3]float32{float32(p[0]), float32(p[1]), float32(p[2])})
		ps32.Masses = append(ps32.Masses, float32(ps.Masses[i]))
	}
	r64, err := ComputeDiscrete(ps, Index{1, 2, 1}, 1)
	require.NoError(t, err)
	r32, err := ComputeDiscrete(ps32, Index{1, 2, 1}, 1)
	require.NoError(t, err)
	assert.InDelta(t, r64.S, r32.S, 1.e-5)
	assert.InDelta(t, r64.T, r32.T, 1.e-5)
}

func TestDiscreteConvergesToContinuous(t *testing.T) {
	var (
		N  = 200000
		ps = hernquistParticles(N, 1, 1, 2024)
		pc = Computer{Workers: 8}
	)
	for _, idx := range []Index{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 2, 0}, {1, 1, 1}} {
		disc, err := pc.ComputeDiscrete(ps, idx, 1)
		require.NoError(t, err)
		cont, err := fixed.ComputeContinuous(hernquist, idx, Scale{M: 1, Rs: 1}, nil, looseOpts)
		require.NoError(t, err)
		// Shot noise is below 0.01 for all of these at this N
		assert.InDelta(t, cont.S, disc.S, 0.05, idx.String())
		assert.InDelta(t, cont.T, disc.T, 0.05, idx.String())
	}
}
