package cmd

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goscf/scf"
)

func writeInput(t *testing.T, body string) string {
	fileName := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(body), 0o644))
	return fileName
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const hernquistInput = `
Title: Test Case
Model: hernquist
NMax: 1
LMax: 1
Workers: 2
Integrator: fixed
FixedPoints: 16
Quadrature:
  EpsAbs: 1.e-6
Particles: 2000
Seed: 4
Bootstrap: 5
`

func TestCoeffsCmd(t *testing.T) {
	out, err := run(t, "coeffs", "-I", writeInput(t, hernquistInput))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus 2 * (1 + 2) coefficients
	require.Len(t, lines, 7)
	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"0", "0", "0"}, fields[:3])
	S000, err := strconv.ParseFloat(fields[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1., S000, 1.e-10)
}

func TestDiscreteCmd(t *testing.T) {
	out, err := run(t, "discrete", "-I", writeInput(t, hernquistInput), "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "bootstrap over 5 resamples")
	assert.Contains(t, out, "S quadrature")

	_, err = run(t, "discrete", "-I", writeInput(t, "Model: flattened_hernquist\nModelArgs: [0.5]\n"), "--compare=false")
	assert.Error(t, err)
}

func TestDiscreteCmdModelCase(t *testing.T) {
	const input = `
Model: Plummer
NMax: 1
LMax: 0
Workers: 2
Integrator: fixed
FixedPoints: 4
Quadrature:
  EpsRel: 1.e-15
  EpsAbs: 1.e-15
Particles: 500
`
	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)
	out, err := run(t, "discrete", "-I", writeInput(t, input), "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "S quadrature")
	// the coarse quadrature misses its tolerance and says so
	assert.Contains(t, logged.String(), "warning:")
	assert.Contains(t, logged.String(), "tolerance not reached")
}

func TestEvaluateCmd(t *testing.T) {
	out, err := run(t, "evaluate", "-I", writeInput(t, hernquistInput), "--x", "0.5", "--y", "0.2", "--z", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "expanded potential")
	assert.Contains(t, out, "relative error")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "coeffs", "-I", writeInput(t, "Model: nfw\n"))
	assert.Error(t, err)
	_, err = run(t, "coeffs", "-I", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConvergenceStudy(t *testing.T) {
	cs := NewConvergenceStudy("synthetic", scf.Index{N: 1, L: 2, M: 1})
	for _, N := range []int{100, 1000, 10000} {
		cs.Add(N, 3./math.Sqrt(float64(N)))
	}
	order, err := cs.Order()
	require.NoError(t, err)
	assert.InDelta(t, -0.5, order, 1.e-8)

	var buf bytes.Buffer
	require.NoError(t, cs.WriteCSV(&buf))
	studies, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, studies, 1)
	back := studies["synthetic(1,2,1)"]
	require.NotNil(t, back)
	assert.Equal(t, cs.numPTS, back.numPTS)
	assert.InDeltaSlice(t, cs.sRMS, back.sRMS, 1.e-8)

	_, err = NewConvergenceStudy("short", scf.Index{}).Order()
	assert.Error(t, err)
	_, err = ReadCSV(strings.NewReader("Title,N\nx,1\n"))
	assert.Error(t, err)
}

func TestConvergenceCmd(t *testing.T) {
	out, err := run(t, "convergence", "-I", writeInput(t, hernquistInput),
		"--counts", "500,2000,8000", "--trials", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Order =")

	fileName := filepath.Join(t.TempDir(), "study.csv")
	require.NoError(t, os.WriteFile(fileName, []byte(out[:strings.Index(out, "Title =")]), 0o644))
	out, err = run(t, "convergence", "--csvFile", fileName)
	require.NoError(t, err)
	assert.Contains(t, out, "Title = hernquist, Index = (0,0,0)")
}
