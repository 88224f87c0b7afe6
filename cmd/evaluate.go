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
	"log"

	"github.com/spf13/cobra"

	"github.com/notargets/goscf/models"
)

// EvaluateCmd represents the evaluate command
var EvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the expanded density and potential at a point",
	Long: `
Computes the coefficient grid of the model by quadrature, then evaluates the
expanded density and potential at (x, y, z) and compares the density with the
model itself.

goscf evaluate -I input.yaml --x 0.5 --y 0 --z 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := processInput(cmd)
		if err != nil {
			return err
		}
		var p [3]float64
		for i, name := range []string{"x", "y", "z"} {
			p[i], _ = cmd.Flags().GetFloat64(name)
		}
		e, err := continuousGrid(ip)
		if e == nil {
			return err
		}
		if err != nil {
			log.Printf("warning: %v\n", err)
		}
		density, err := models.ByName(ip.Model)
		if err != nil {
			return err
		}
		exact, err := density(p[0], p[1], p[2], ip.M, ip.Rs, ip.ModelArgs)
		if err != nil {
			return err
		}
		rho := e.Density(p[0], p[1], p[2])
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "position           = (%g, %g, %g)\n", p[0], p[1], p[2])
		fmt.Fprintf(w, "expanded density   = %.12e\n", rho)
		fmt.Fprintf(w, "model density      = %.12e\n", exact)
		if exact != 0 {
			fmt.Fprintf(w, "relative error     = %.3e\n", (rho-exact)/exact)
		}
		fmt.Fprintf(w, "expanded potential = %.12e\n", e.Potential(p[0], p[1], p[2]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(EvaluateCmd)
	EvaluateCmd.Flags().Float64("x", 1, "x coordinate")
	EvaluateCmd.Flags().Float64("y", 0, "y coordinate")
	EvaluateCmd.Flags().Float64("z", 0, "z coordinate")
}
