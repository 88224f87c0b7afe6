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
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goscf/InputParameters"
	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/scf"
)

const exampleFile = `
########################################
Title: "Hernquist halo"
Model: hernquist # or plummer, flattened_hernquist (ModelArgs: [q])
M: 1.
Rs: 1.
NMax: 6
LMax: 4
Integrator: adaptive # or fixed (FixedPoints: 32)
Quadrature:
  EpsRel: 1.e-8
Particles: 100000
Seed: 1
########################################
`

// processInput reads the input file named by -I. Without one the defaults
// are used and an example file is printed.
func processInput(cmd *cobra.Command) (ip *InputParameters.InputParametersSCF, err error) {
	var (
		fileName = viper.GetString("inputConditionsFile")
		data     []byte
	)
	if len(fileName) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no input parameters file (-I, --inputConditionsFile), using defaults\nExample File:%s\n", exampleFile)
	} else if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = &InputParameters.InputParametersSCF{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}
	if w := viper.GetInt("workers"); w > 0 {
		ip.Workers = w
	}
	ip.Print()
	return
}

func continuousGrid(ip *InputParameters.InputParametersSCF) (e *scf.Expansion, err error) {
	var density models.Density
	if density, err = models.ByName(ip.Model); err != nil {
		return
	}
	c := scf.Computer{Integrator: ip.GetIntegrator()}
	e, err = c.ComputeGrid(scf.DensityFuncOf(density), scf.Scale{M: ip.M, Rs: ip.Rs},
		ip.ModelArgs, ip.NMax, ip.LMax, ip.Quadrature, ip.Workers)
	if e != nil {
		e.G = ip.G
	}
	return
}

// printTable writes one row per coefficient, with the quadrature error
// estimates when the expansion carries them.
func printTable(w io.Writer, e *scf.Expansion) {
	if e.SErr != nil {
		fmt.Fprintf(w, "%3s %3s %3s %22s %10s %22s %10s\n", "n", "l", "m", "S", "S err", "T", "T err")
	} else {
		fmt.Fprintf(w, "%3s %3s %3s %22s %22s\n", "n", "l", "m", "S", "T")
	}
	for _, idx := range e.Indices() {
		k := e.Index(idx.N, idx.L, idx.M)
		if e.SErr != nil {
			fmt.Fprintf(w, "%3d %3d %3d %22.15e %10.3e %22.15e %10.3e\n",
				idx.N, idx.L, idx.M, e.S[k], e.SErr[k], e.T[k], e.TErr[k])
		} else {
			fmt.Fprintf(w, "%3d %3d %3d %22.15e %22.15e\n", idx.N, idx.L, idx.M, e.S[k], e.T[k])
		}
	}
}

// summarize logs the dominant coefficient of the grid.
func summarize(e *scf.Expansion) {
	mag := make([]float64, len(e.S))
	for i := range mag {
		mag[i] = math.Hypot(e.S[i], e.T[i])
	}
	k := floats.MaxIdx(mag)
	n, l, m := k/((e.LMax+1)*(e.LMax+1)), (k/(e.LMax+1))%(e.LMax+1), k%(e.LMax+1)
	log.Printf("largest coefficient (%d,%d,%d) = %.6e, L2 norm of S = %.6e\n",
		n, l, m, mag[k], floats.Norm(e.S, 2))
}

// CoeffsCmd represents the coeffs command
var CoeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Expansion coefficients of an analytic density by quadrature",
	Long: `
Integrates the density model of the input file against every basis function
with n <= NMax, m <= l <= LMax and prints the coefficient table.

goscf coeffs -I input.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := processInput(cmd)
		if err != nil {
			return err
		}
		e, err := continuousGrid(ip)
		if e == nil {
			return err
		}
		if err != nil {
			log.Printf("warning: %v\n", err)
		}
		printTable(cmd.OutOrStdout(), e)
		summarize(e)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(CoeffsCmd)
}
