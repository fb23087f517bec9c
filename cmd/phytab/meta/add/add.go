// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add metadata records
// to a PhyTab project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytab/metadata"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <metadata-file>]
	<project-file> [<input-file>...]`,
	Short: "add metadata records to a PhyTab project",
	Long: `
Command add reads one or more metadata files and adds the records to a PhyTab
project. A metadata file is a tab-delimited file with a "taxon" column; any
other column is read as a descriptive field (see "phytab help metadata-files").

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more input files can be given as arguments. If no file is given the
records will be read from the standard input. A taxon can not have more than
one record, even across different input files.

By default the records will be stored in the metadata file currently defined
for the project. If the project does not have a metadata file, a new one will
be created with the name 'metadata.tab'. A different file name can be defined
with the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var metaFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&metaFile, "file", "", "")
	c.Flags().StringVar(&metaFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	d := metadata.New()
	if mf := p.Path(project.Metadata); mf != "" {
		d, err = readMetadata(nil, mf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", mf, err)
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
			a = "stdin"
		}
		nd, err := readMetadata(c.Stdin(), fn)
		if err != nil {
			return err
		}

		known := make(map[string]bool)
		for _, tx := range d.Taxa() {
			known[tx] = true
		}
		for _, tx := range nd.Taxa() {
			if known[tx] {
				return fmt.Errorf("when adding records from %q: duplicated taxon %q", a, tx)
			}
			for _, f := range nd.Fields() {
				d.Set(tx, f, nd.Value(tx, f))
			}
		}
	}

	if metaFile == "" {
		metaFile = p.Path(project.Metadata)
		if metaFile == "" {
			metaFile = "metadata.tab"
		}
	}

	if err := writeMetadata(d); err != nil {
		return err
	}
	p.Add(project.Metadata, metaFile)
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

func readMetadata(r io.Reader, name string) (*metadata.Data, error) {
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

	d, err := metadata.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return d, nil
}

func writeMetadata(d *metadata.Data) (err error) {
	f, err := os.Create(metaFile)
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
		return fmt.Errorf("while writing to %q: %v", metaFile, err)
	}
	return nil
}
