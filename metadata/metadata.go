// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metadata provides a table of descriptive fields
// (for example strain or serogroup)
// for the terminals of a phylogenetic tree.
package metadata

import "slices"

// Data is a collection of metadata records,
// a single record per terminal taxon,
// with an arbitrary set of descriptive fields.
type Data struct {
	fields []string
	taxon  map[string]map[string]string
}

// New creates a new empty metadata collection.
func New() *Data {
	return &Data{
		taxon: make(map[string]map[string]string),
	}
}

// Set stores a field value
// for a given taxon.
// Empty values are ignored,
// so a field can not be un-set.
//
// Taxon names are stored as given:
// matching with tree terminals is done
// by exact string equality.
func (d *Data) Set(taxon, field, value string) {
	if taxon == "" || field == "" || value == "" {
		return
	}

	rec, ok := d.taxon[taxon]
	if !ok {
		rec = make(map[string]string)
		d.taxon[taxon] = rec
	}
	rec[field] = value

	if !slices.Contains(d.fields, field) {
		d.fields = append(d.fields, field)
	}
}

// Fields returns the defined fields of the collection,
// in the order in which they were first defined.
func (d *Data) Fields() []string {
	return slices.Clone(d.fields)
}

// Taxa returns the taxa with a metadata record.
func (d *Data) Taxa() []string {
	taxa := make([]string, 0, len(d.taxon))
	for tx := range d.taxon {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}

// Value returns the value of a field
// for a given taxon,
// or an empty string if the field is not set.
func (d *Data) Value(taxon, field string) string {
	return d.taxon[taxon][field]
}

// Values returns the distinct values of a field
// across all taxa,
// sorted alphabetically.
func (d *Data) Values(field string) []string {
	vals := make(map[string]bool)
	for _, rec := range d.taxon {
		if v, ok := rec[field]; ok {
			vals[v] = true
		}
	}

	vs := make([]string, 0, len(vals))
	for v := range vals {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	return vs
}
