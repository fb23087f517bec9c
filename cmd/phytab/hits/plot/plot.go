// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to plot
// the distribution of the BLAST hit identities
// of a PhyTab project.
package plot

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/project"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [--gene <gene>]
	[-o|--output <file>] <project-file>`,
	Short: "plot the distribution of hit identities",
	Long: `
Command plot reads the BLAST hits of a PhyTab project, prints a summary of
the percent identity values (mean, and the 0.025, 0.50, and 0.975 empirical
quantiles), and saves a histogram of the values as a PNG file.

The argument of the command is the name of the project file.

By default, all hits are used. If the flag --gene is set, only the hits of
the indicated gene will be used.

By default, the histogram will be saved with the name of the project file and
the suffix "-identity.png". Use the flag --output, or -o, to define a
different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var geneFlag string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&geneFlag, "gene", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	d, err := p.Hits()
	if err != nil {
		return err
	}

	genes := d.Genes()
	if geneFlag != "" {
		if !slices.Contains(genes, geneFlag) {
			return fmt.Errorf("project %q: gene %q without hits", args[0], geneFlag)
		}
		genes = []string{geneFlag}
	}

	var vals []float64
	for _, tax := range d.Taxa() {
		for _, g := range genes {
			if v, ok := d.Identity(tax, g); ok {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return fmt.Errorf("project %q: no hits defined", args[0])
	}

	slices.Sort(vals)
	weights := make([]float64, len(vals))
	for i := range weights {
		weights[i] = 1.0
	}

	fmt.Fprintf(c.Stdout(), "hits: %d\n", len(vals))
	fmt.Fprintf(c.Stdout(), "mean: %.3f\n", stat.Mean(vals, weights))
	fmt.Fprintf(c.Stdout(), "q0.025: %.3f\n", stat.Quantile(0.025, stat.Empirical, vals, weights))
	fmt.Fprintf(c.Stdout(), "median: %.3f\n", stat.Quantile(0.5, stat.Empirical, vals, weights))
	fmt.Fprintf(c.Stdout(), "q0.975: %.3f\n", stat.Quantile(0.975, stat.Empirical, vals, weights))

	if output == "" {
		output = fmt.Sprintf("%s-identity.png", args[0])
	}
	return histogram(vals)
}

func histogram(vals []float64) error {
	p := plot.New()
	p.X.Label.Text = "identity (%)"
	p.Y.Label.Text = "hits"

	h, err := plotter.NewHist(plotter.Values(vals), 20)
	if err != nil {
		return err
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}
