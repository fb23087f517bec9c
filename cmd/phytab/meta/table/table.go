// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements a command to export
// the annotation table of a tree in a PhyTab project.
package table

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `table [--tree <tree-name>]
	[-o|--output <file>] <project-file>`,
	Short: "export the annotation table of a tree",
	Long: `
Command table joins the terminals of a tree with the metadata records of a
PhyTab project, and writes the resulting annotation table as a TSV file. The
table has a row per terminal, in the traversal order of the tree; terminals
without a metadata record get a row with every field empty.

The argument of the command is the name of the project file.

By default, the first tree of the project is used. If the flag --tree is set,
the indicated tree will be used.

By default, the table is printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
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

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	if treeName == "" {
		ls := tc.Names()
		if len(ls) == 0 {
			return fmt.Errorf("project %q: no trees defined", args[0])
		}
		treeName = ls[0]
	}
	t := tc.Tree(treeName)
	if t == nil {
		return fmt.Errorf("project %q: tree %q not found", args[0], treeName)
	}

	md, err := p.Metadata()
	if err != nil {
		return err
	}

	for _, tax := range annotate.MissingTerms(t.Terms(), md.Taxa()) {
		fmt.Fprintf(c.Stderr(), "tree %q: terminal without metadata: %s\n", treeName, tax)
	}

	tbl := annotate.NewTable(t.Terms(), md)
	if output == "" {
		if err := tbl.TSV(c.Stdout()); err != nil {
			return err
		}
		return nil
	}
	return writeTable(tbl)
}

func writeTable(tbl *annotate.Table) (err error) {
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
	if err := tbl.TSV(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", output, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", output, err)
	}
	return nil
}
