// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of taxa with metadata records in a PhyTab project.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: "taxa [--val] <project-file>",
	Short: "print a list of taxa with metadata records",
	Long: `
Command taxa reads the metadata records from a PhyTab project and print the
name of the taxa in the standard output.

The argument of the command is the name of the project file.

If the flag --val is defined, and all the tree terminals have a metadata
record, the command will finish silently. Otherwise, any terminal without a
record will be reported. Terminal names and record names are matched by exact
string equality.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var valFlag bool

func setFlags(c *command.Command) {
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

	md, err := p.Metadata()
	if err != nil {
		return err
	}

	if !valFlag {
		for _, tax := range md.Taxa() {
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
		for _, tax := range annotate.MissingTerms(t.Terms(), md.Taxa()) {
			fmt.Fprintf(c.Stdout(), "INVALID TAXON: no metadata: %s\n", tax)
		}
	}
	return nil
}
