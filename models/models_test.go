package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

// enclosed integrates 4 pi r^2 rho(r) over r in [0, R] with r = R t^2 to tame
// the cusp of the Hernquist profile.
func enclosed(t *testing.T, d Density, R float64, args []float64) float64 {
	f := func(u float64) float64 {
		r := R * u * u
		rho, err := d(r, 0, 0, 1, 1, args)
		require.NoError(t, err)
		return 4. * math.Pi * r * r * rho * 2. * R * u
	}
	return quad.Fixed(f, 0, 1, 200, quad.Legendre{}, 1)
}

func TestDensityMass(t *testing.T) {
	// M(<R) for M = rs = 1
	R := 3.
	assert.InDelta(t, R*R/((R+1)*(R+1)), enclosed(t, Hernquist, R, nil), 1.e-8)
	assert.InDelta(t, R*R*R/math.Pow(R*R+1, 1.5), enclosed(t, Plummer, R, nil), 1.e-8)
}

func TestFlattenedHernquist(t *testing.T) {
	// q = 1 is the spherical profile
	for _, p := range [][3]float64{{0.3, -0.2, 0.5}, {2, 1, -4}} {
		sph, _ := Hernquist(p[0], p[1], p[2], 2, 1.5, nil)
		flat, err := FlattenedHernquist(p[0], p[1], p[2], 2, 1.5, []float64{1})
		require.NoError(t, err)
		assert.InEpsilon(t, sph, flat, 1.e-14)
	}
	// Oblate: denser along the major axis than the minor one at equal r
	onX, _ := FlattenedHernquist(1, 0, 0, 1, 1, []float64{0.5})
	onZ, _ := FlattenedHernquist(0, 0, 1, 1, 1, []float64{0.5})
	assert.Greater(t, onX, onZ)

	_, err := FlattenedHernquist(1, 0, 0, 1, 1, nil)
	assert.Error(t, err)
	_, err = FlattenedHernquist(1, 0, 0, 1, 1, []float64{-1})
	assert.Error(t, err)
}

func TestHernquistPotential(t *testing.T) {
	assert.InDelta(t, -1., HernquistPotential(0, 0, 0, 1, 1, 1), 1.e-15)
	assert.InDelta(t, -2./5., HernquistPotential(3, 0, 4, 1, 2, 0), 1.e-15)
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"flattened_hernquist", "hernquist", "plummer"}, Names())
	d, err := ByName("Hernquist")
	require.NoError(t, err)
	v, _ := d(1, 0, 0, 1, 1, nil)
	assert.InDelta(t, 1./(16.*math.Pi), v, 1.e-15)
	_, err = ByName("nfw")
	assert.Error(t, err)
}

func TestSampleHernquist(t *testing.T) {
	N := 20000
	sm, err := SampleHernquist(N, 2, 1, 7)
	require.NoError(t, err)
	require.Len(t, sm.Positions, N)
	var (
		total  float64
		inside int
	)
	for i, p := range sm.Positions {
		total += sm.Masses[i]
		if math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]) < 1 {
			inside++
		}
	}
	assert.InDelta(t, 2., total, 1.e-10)
	// Half the Hernquist mass lies inside r = (1 + sqrt 2) rs; a quarter inside rs
	assert.InDelta(t, 0.25, float64(inside)/float64(N), 0.02)

	again, err := SampleHernquist(N, 2, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, sm.Positions[:10], again.Positions[:10])

	_, err = SampleHernquist(0, 1, 1, 1)
	assert.Error(t, err)
	_, err = SampleHernquist(10, 1, -1, 1)
	assert.Error(t, err)
}

func TestSamplePlummer(t *testing.T) {
	N := 20000
	sm, err := SamplePlummer(N, 1, 1, 3)
	require.NoError(t, err)
	var inside int
	for _, p := range sm.Positions {
		if math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]) < 1 {
			inside++
		}
	}
	// M(<rs) = 2^(-3/2)
	assert.InDelta(t, math.Pow(2, -1.5), float64(inside)/float64(N), 0.02)
}
