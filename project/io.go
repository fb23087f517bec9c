// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/earth/pixkey"
	"github.com/js-arias/phytab/blast"
	"github.com/js-arias/phytab/metadata"
	"github.com/js-arias/timetree"
)

// Hits reads the BLAST hit file
// as defined in a project.
func (p *Project) Hits() (*blast.Data, error) {
	name := p.Path(Hits)
	if name == "" {
		return nil, fmt.Errorf("hits not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := blast.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return d, nil
}

// Keys reads the color key file
// as defined in a project.
func (p *Project) Keys() (*pixkey.PixKey, error) {
	name := p.Path(Keys)
	if name == "" {
		return nil, fmt.Errorf("keys not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	keys, err := pixkey.Read(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return keys, nil
}

// Metadata reads the metadata file
// as defined in a project.
func (p *Project) Metadata() (*metadata.Data, error) {
	name := p.Path(Metadata)
	if name == "" {
		return nil, fmt.Errorf("metadata not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := metadata.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return d, nil
}

// Trees reads the tree file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return c, nil
}
