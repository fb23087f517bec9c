// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add BLAST hits
// to a PhyTab project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/blast"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <hits-file>]
	<project-file> [<input-file>...]`,
	Short: "add BLAST hits to a PhyTab project",
	Long: `
Command add reads one or more BLAST hit files and adds the hits to a PhyTab
project. A hit file is a tab-delimited file with a row per observed hit (see
"phytab help hit-files").

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more input files can be given as arguments. If no file is given the
hits will be read from the standard input. If a taxon-gene pair has several
hits, only the hit with the highest identity is kept.

By default the hits will be stored in the hit file currently defined for the
project. If the project does not have a hit file, a new one will be created
with the name 'hits.tab'. A different file name can be defined with the flag
--file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var hitFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&hitFile, "file", "", "")
	c.Flags().StringVar(&hitFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	d := blast.New()
	if hf := p.Path(project.Hits); hf != "" {
		d, err = readHits(nil, hf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", hf, err)
		}
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
		}
		nd, err := readHits(c.Stdin(), fn)
		if err != nil {
			return err
		}

		for _, tx := range nd.Taxa() {
			for _, g := range nd.Genes() {
				if v, ok := nd.Identity(tx, g); ok {
					d.Add(tx, g, v)
				}
			}
		}
	}

	if hitFile == "" {
		hitFile = p.Path(project.Hits)
		if hitFile == "" {
			hitFile = "hits.tab"
		}
	}

	if err := writeHits(d); err != nil {
		return err
	}
	p.Add(project.Hits, hitFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readHits(r io.Reader, name string) (*blast.Data, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	d, err := blast.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return d, nil
}

func writeHits(d *blast.Data) (err error) {
	f, err := os.Create(hitFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := d.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", hitFile, err)
	}
	return nil
}
