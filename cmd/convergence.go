/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/scf"
)

// ConvergenceStudy holds the RMS difference between particle and quadrature
// coefficients for a sequence of particle counts.
type ConvergenceStudy struct {
	title  string
	index  scf.Index
	numPTS []int
	sRMS   []float64
}

func NewConvergenceStudy(title string, index scf.Index) *ConvergenceStudy {
	return &ConvergenceStudy{title: title, index: index}
}

func (cs *ConvergenceStudy) Add(numPTS int, sRMS float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.sRMS = append(cs.sRMS, sRMS)
}

// Order is the least squares slope of log(error) against log(N); shot noise
// gives -1/2.
func (cs *ConvergenceStudy) Order() (order float64, err error) {
	if len(cs.numPTS) < 2 {
		err = fmt.Errorf("study %s needs at least 2 particle counts, have %d", cs.title, len(cs.numPTS))
		return
	}
	var (
		x = make([]float64, len(cs.numPTS))
		y = make([]float64, len(cs.numPTS))
	)
	for i := range cs.numPTS {
		if !(cs.sRMS[i] > 0) {
			err = fmt.Errorf("study %s has a non-positive error %g at N = %d", cs.title, cs.sRMS[i], cs.numPTS[i])
			return
		}
		x[i], y[i] = math.Log(float64(cs.numPTS[i])), math.Log(cs.sRMS[i])
	}
	_, order = stat.LinearRegression(x, y, nil, false)
	return
}

var csvHeader = []string{"Title", "N", "L", "M", "NumPTS", "SRMS"}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range cs.numPTS {
		rec := []string{cs.title,
			strconv.Itoa(cs.index.N), strconv.Itoa(cs.index.L), strconv.Itoa(cs.index.M),
			strconv.Itoa(cs.numPTS[i]), strconv.FormatFloat(cs.sRMS[i], 'e', 8, 64)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV groups the records of one or more studies by title and index.
func ReadCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var records [][]string
	if records, err = csv.NewReader(bufio.NewReader(r)).ReadAll(); err != nil {
		return
	}
	studies = make(map[string]*ConvergenceStudy)
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("record %d has %d fields, want %d", i, len(rec), len(csvHeader))
		}
		var (
			ints [4]int
			sRMS float64
		)
		for j := range ints {
			if ints[j], err = strconv.Atoi(rec[j+1]); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
		if sRMS, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		idx := scf.Index{N: ints[0], L: ints[1], M: ints[2]}
		key := rec[0] + idx.String()
		cs, ok := studies[key]
		if !ok {
			cs = NewConvergenceStudy(rec[0], idx)
			studies[key] = cs
		}
		cs.Add(ints[3], sRMS)
	}
	return
}

func printOrders(w io.Writer, studies map[string]*ConvergenceStudy) error {
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cs := studies[k]
		order, err := cs.Order()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Title = %s, Index = %v, Order = %6.3f\n", cs.title, cs.index, order)
	}
	return nil
}

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Convergence of particle coefficients toward the quadrature values",
	Long: `
Samples the model at each particle count, several times with different seeds,
and reports the RMS difference of one particle coefficient from its quadrature
value along with the fitted order in N. With --csvFile an existing study is
read and only the orders are reported.

goscf convergence -I input.yaml --counts 1000,4000,16000 --n 0 --l 0 --m 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if csvFile, _ := cmd.Flags().GetString("csvFile"); len(csvFile) != 0 {
			f, err := os.Open(csvFile)
			if err != nil {
				return err
			}
			defer f.Close()
			studies, err := ReadCSV(f)
			if err != nil {
				return err
			}
			return printOrders(w, studies)
		}
		ip, err := processInput(cmd)
		if err != nil {
			return err
		}
		var (
			idx    scf.Index
			counts []int
			trials int
		)
		idx.N, _ = cmd.Flags().GetInt("n")
		idx.L, _ = cmd.Flags().GetInt("l")
		idx.M, _ = cmd.Flags().GetInt("m")
		counts, _ = cmd.Flags().GetIntSlice("counts")
		trials, _ = cmd.Flags().GetInt("trials")
		density, err := models.ByName(ip.Model)
		if err != nil {
			return err
		}
		c := scf.Computer{Integrator: ip.GetIntegrator(), Workers: ip.Workers}
		exact, err := c.ComputeContinuous(scf.DensityFuncOf(density), idx,
			scf.Scale{M: ip.M, Rs: ip.Rs}, ip.ModelArgs, ip.Quadrature)
		if err != nil {
			return err
		}
		cs := NewConvergenceStudy(ip.Model, idx)
		for _, N := range counts {
			var sum2 float64
			for trial := 0; trial < trials; trial++ {
				ip.Particles, ip.Seed = N, uint64(trial+1)
				ps, err := sampleParticles(ip)
				if err != nil {
					return err
				}
				res, err := c.ComputeDiscrete(ps, idx, ip.Rs)
				if err != nil {
					return err
				}
				sum2 += (res.S - exact.S) * (res.S - exact.S)
			}
			cs.Add(N, math.Sqrt(sum2/float64(trials)))
		}
		if err = cs.WriteCSV(w); err != nil {
			return err
		}
		return printOrders(w, map[string]*ConvergenceStudy{cs.title: cs})
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().IntSlice("counts", []int{1000, 4000, 16000, 64000}, "particle counts")
	ConvergenceCmd.Flags().Int("trials", 8, "samples drawn per particle count")
	ConvergenceCmd.Flags().Int("n", 0, "radial order of the coefficient")
	ConvergenceCmd.Flags().Int("l", 0, "degree of the coefficient")
	ConvergenceCmd.Flags().Int("m", 0, "azimuthal order of the coefficient")
	ConvergenceCmd.Flags().String("csvFile", "", "file containing entries of a convergence study")
}
