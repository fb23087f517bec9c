// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix implements a command to export
// the BLAST hits of a PhyTab project
// as a wide gene matrix.
package matrix

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/blast"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `matrix [--threshold <value>] [--genes <gene>,...]
	[-o|--output <file>] <project-file>`,
	Short: "export BLAST hits as a wide gene matrix",
	Long: `
Command matrix reads the BLAST hits of a PhyTab project, filters them with an
identity threshold, and pivots the retained hits into a wide matrix, with a
row per taxon and a column per gene, written as a TSV file. A taxon-gene pair
without a hit at or above the threshold is written as an empty field, which
is different from a hit with zero identity.

The argument of the command is the name of the project file.

By default hits with a percent identity of at least 80 are retained; use the
flag --threshold, with a value between 0 and 100, to change it. Hits at the
threshold are retained. Genes in which every hit falls below the threshold do
not appear in the matrix.

By default, gene columns appear in the order in which the genes were first
observed; use the flag --genes, with a comma-separated list of gene names, to
put the listed genes first.

By default, the matrix is printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var threshold float64
var genesFlag string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&threshold, "threshold", 80, "")
	c.Flags().StringVar(&genesFlag, "genes", "", "")
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

	var genes []string
	if genesFlag != "" {
		genes = strings.Split(genesFlag, ",")
	}

	m, err := blast.Pivot(d, threshold, genes)
	if err != nil {
		return err
	}

	if output == "" {
		if err := m.TSV(c.Stdout()); err != nil {
			return err
		}
		return nil
	}
	return writeMatrix(m)
}

func writeMatrix(m *blast.Matrix) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := m.TSV(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", output, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", output, err)
	}
	return nil
}
