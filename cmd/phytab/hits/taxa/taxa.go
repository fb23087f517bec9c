// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of taxa with BLAST hits in a PhyTab project.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: "taxa [--count] [--val] <project-file>",
	Short: "print a list of taxa with BLAST hits",
	Long: `
Command taxa reads the BLAST hits from a PhyTab project and print the name of
the taxa in the standard output.

The argument of the command is the name of the project file.

If the flag --count is defined, the number of genes with a hit will be
printed in front of each taxon name.

If the flag --val is defined, and all the tree terminals have at least one
hit, the command will finish silently. Otherwise, any terminal without hits
will be reported. Terminal names and hit names are matched by exact string
equality.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var countFlag bool
var valFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&countFlag, "count", false, "")
	c.Flags().BoolVar(&valFlag, "val", false, "")
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

	if !valFlag {
		for _, tax := range d.Taxa() {
			if countFlag {
				n := 0
				for _, g := range d.Genes() {
					if _, ok := d.Identity(tax, g); ok {
						n++
					}
				}
				fmt.Fprintf(c.Stdout(), "%s\t%d\n", tax, n)
				continue
			}
			fmt.Fprintf(c.Stdout(), "%s\n", tax)
		}
		return nil
	}

	if p.Path(project.Trees) == "" {
		return nil
	}
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	for _, tn := range tc.Names() {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range annotate.MissingTerms(t.Terms(), d.Taxa()) {
			fmt.Fprintf(c.Stdout(), "INVALID TAXON: no hits: %s\n", tax)
		}
	}
	return nil
}
