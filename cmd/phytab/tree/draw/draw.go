// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// annotated trees in a PhyTab project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/earth/pixkey"
	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/blast"
	"github.com/js-arias/phytab/metadata"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--step <value>]
	[--threshold <value>] [--genes <gene>,...]
	[--field <field>]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw annotated project trees as SVG files",
	Long: `
Command draw reads a PhyTab project and draws the trees into SVG-encoded
files, with the tip labels and, if BLAST hits are defined in the project, a
heatmap with the percent identity of the hits of each gene.

The argument of the command is the name of the project file.

By default, 10 pixel units will be used per age unit; use the flag --step to
define a different value (it can have decimal points).

By default, all trees in the project will be drawn. If the flag --tree is
set, only the indicated tree will be printed.

If the project defines a hit file, hits with a percent identity of at least
the threshold (80 by default, use the flag --threshold to change it) will be
drawn as a heatmap block next to the tip labels. A cell without a hit at or
above the threshold is drawn as an empty box, which is different from a hit
with a low identity. By default, gene columns appear in the order in which
the genes were first observed; use the flag --genes, with a comma-separated
list of gene names, to put the listed genes first.

If the project defines a metadata file and a color key file, the flag --field
can be used to color the tip labels with the value of the indicated metadata
field. Terminals without metadata, or with a field value without a color key,
are drawn in black, and reported to the standard error.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepX float64
var threshold float64
var treeName string
var genesFlag string
var fieldFlag string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&stepX, "step", 10, "")
	c.Flags().Float64Var(&threshold, "threshold", 80, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&genesFlag, "genes", "", "")
	c.Flags().StringVar(&fieldFlag, "field", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Trees) == "" {
		return nil
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	var m *blast.Matrix
	if p.Path(project.Hits) != "" {
		hits, err := p.Hits()
		if err != nil {
			return err
		}
		var genes []string
		if genesFlag != "" {
			genes = strings.Split(genesFlag, ",")
		}
		m, err = blast.Pivot(hits, threshold, genes)
		if err != nil {
			return err
		}
	}

	var md *metadata.Data
	if p.Path(project.Metadata) != "" {
		md, err = p.Metadata()
		if err != nil {
			return err
		}
	}

	var keys *pixkey.PixKey
	if fieldFlag != "" {
		if md == nil {
			msg := fmt.Sprintf("metadata not defined in project %q", args[0])
			return c.UsageError(msg)
		}
		keys, err = p.Keys()
		if err != nil {
			return err
		}
	}

	ls := tc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}

		if md != nil {
			for _, tax := range annotate.MissingTerms(t.Terms(), md.Taxa()) {
				fmt.Fprintf(c.Stderr(), "tree %q: terminal without metadata: %s\n", tn, tax)
			}
		}

		s := copyTree(t, stepX)
		if m != nil {
			s.setHeat(m, threshold)
		}
		if keys != nil {
			s.setLabelColors(annotate.NewTable(t.Terms(), md), fieldFlag, keys)
		}
		if err := writeSVG(tn, s); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

	f, err := os.Create(name)
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
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// labelColor returns the color defined
// for a label of a color key file.
func labelColor(keys *pixkey.PixKey, label string) (color.RGBA, bool) {
	for _, k := range keys.Keys() {
		if keys.Label(k) != label {
			continue
		}
		c, ok := keys.Color(k)
		if !ok {
			return color.RGBA{}, false
		}
		r, g, b, _ := c.RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}, true
	}
	return color.RGBA{}, false
}
