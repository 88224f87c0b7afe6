// Package models provides analytic density profiles and particle samplers
// used to exercise the SCF coefficient computation.
package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Density has the signature of scf.DensityFuncOf, so a model converts
// directly: scf.DensityFuncOf(models.Hernquist).
type Density func(x, y, z, M, rs float64, args []float64) (float64, error)

// Hernquist is the Hernquist (1990) profile M rs / (2 pi r (r + rs)^3).
func Hernquist(x, y, z, M, rs float64, args []float64) (float64, error) {
	r := math.Sqrt(x*x + y*y + z*z)
	return hernquist(r, M, rs), nil
}

func hernquist(r, M, rs float64) float64 {
	if r == 0 {
		return math.Inf(1)
	}
	rrs := r + rs
	return M / (2. * math.Pi) * rs / (r * rrs * rrs * rrs)
}

// HernquistPotential is the potential -G M / (r + rs) of the Hernquist profile.
func HernquistPotential(x, y, z, G, M, rs float64) float64 {
	return -G * M / (math.Sqrt(x*x+y*y+z*z) + rs)
}

// Plummer is the Plummer sphere 3 M / (4 pi rs^3) (1 + r^2/rs^2)^(-5/2).
func Plummer(x, y, z, M, rs float64, args []float64) (float64, error) {
	r2 := (x*x + y*y + z*z) / (rs * rs)
	return 3. * M / (4. * math.Pi * rs * rs * rs) * math.Pow(1.+r2, -2.5), nil
}

// FlattenedHernquist is a Hernquist profile stratified on spheroids
// x^2 + y^2 + z^2/q^2 with axis ratio q = args[0]. Its total mass is M.
func FlattenedHernquist(x, y, z, M, rs float64, args []float64) (float64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("models: flattened hernquist needs the axis ratio q in args")
	}
	q := args[0]
	if !(q > 0) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("models: axis ratio q = %g must be positive and finite", q)
	}
	zq := z / q
	return hernquist(math.Sqrt(x*x+y*y+zq*zq), M, rs) / q, nil
}

var registry = map[string]Density{
	"hernquist":           Hernquist,
	"plummer":             Plummer,
	"flattened_hernquist": FlattenedHernquist,
}

// ByName looks a model up by its lower case name.
func ByName(name string) (Density, error) {
	if d, ok := registry[strings.ToLower(name)]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("models: unknown model %q, have %s", name, strings.Join(Names(), ", "))
}

// Names lists the registered models in sorted order.
func Names() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
