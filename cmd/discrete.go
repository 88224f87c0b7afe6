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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/goscf/InputParameters"
	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/scf"
)

func sampleParticles(ip *InputParameters.InputParametersSCF) (ps scf.ParticleSet, err error) {
	var sm models.Sample
	switch strings.ToLower(ip.Model) {
	case "hernquist":
		sm, err = models.SampleHernquist(ip.Particles, ip.M, ip.Rs, ip.Seed)
	case "plummer":
		sm, err = models.SamplePlummer(ip.Particles, ip.M, ip.Rs, ip.Seed)
	default:
		err = fmt.Errorf("no particle sampler for model %q", ip.Model)
	}
	ps = scf.ParticleSet{Positions: sm.Positions, Masses: sm.Masses}
	return
}

// DiscreteCmd represents the discrete command
var DiscreteCmd = &cobra.Command{
	Use:   "discrete",
	Short: "Expansion coefficients summed over particles sampled from a model",
	Long: `
Samples Particles equal mass particles from the model of the input file and
sums every basis function with n <= NMax, m <= l <= LMax over them. With
Bootstrap > 0 each coefficient also gets a resampling standard deviation, and
--compare adds the quadrature values of the same model.

goscf discrete -I input.yaml --compare`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ip, err := processInput(cmd)
		if err != nil {
			return err
		}
		compare, _ := cmd.Flags().GetBool("compare")
		ps, err := sampleParticles(ip)
		if err != nil {
			return err
		}
		start := time.Now()
		e, err := scf.Computer{Workers: ip.Workers}.ComputeGridDiscrete(ps, ip.Rs, ip.NMax, ip.LMax, ip.Workers)
		if err != nil {
			return err
		}
		log.Printf("summed %d particles in %v\n", ps.Len(), time.Since(start))
		printTable(cmd.OutOrStdout(), e)
		summarize(e)
		if ip.Bootstrap > 0 {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\nbootstrap over %d resamples\n%3s %3s %3s %12s %12s\n",
				ip.Bootstrap, "n", "l", "m", "S std", "T std")
			for _, idx := range e.Indices() {
				br, err := scf.Bootstrap(ps, idx, ip.Rs, ip.Bootstrap, ip.Seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%3d %3d %3d %12.4e %12.4e\n", idx.N, idx.L, idx.M, br.StdDev.S, br.StdDev.T)
			}
		}
		if compare {
			cont, err := continuousGrid(ip)
			if cont == nil {
				return err
			}
			if err != nil {
				log.Printf("warning: %v\n", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\n%3s %3s %3s %22s %22s %12s\n", "n", "l", "m", "S particles", "S quadrature", "difference")
			for _, idx := range e.Indices() {
				sd, _ := e.Coefficient(idx)
				sc, _ := cont.Coefficient(idx)
				fmt.Fprintf(w, "%3d %3d %3d %22.15e %22.15e %12.4e\n", idx.N, idx.L, idx.M, sd, sc, sd-sc)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(DiscreteCmd)
	DiscreteCmd.Flags().Bool("compare", false, "also compute the coefficients by quadrature and print the differences")
}
