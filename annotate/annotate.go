// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotate joins the terminals of a phylogenetic tree
// with the tabular data defined for them.
//
// The tree topology is never touched:
// the join is an explicit new table value
// keyed by terminal name.
package annotate

import (
	"slices"

	"github.com/js-arias/phytab/metadata"
)

// MissingTerms returns the tree terminals
// without a record in a data set,
// given the list of terminals
// and the list of record keys.
//
// Matching is by exact string equality;
// no case or whitespace normalization is attempted.
// The result is sorted and without duplicates;
// an empty result means full coverage.
// A non-empty result is informational:
// the caller decides whether to stop
// or to proceed with a partial annotation.
func MissingTerms(terms, keys []string) []string {
	in := make(map[string]bool, len(keys))
	for _, k := range keys {
		in[k] = true
	}

	missing := make(map[string]bool)
	for _, t := range terms {
		if in[t] {
			continue
		}
		missing[t] = true
	}

	ms := make([]string, 0, len(missing))
	for t := range missing {
		ms = append(ms, t)
	}
	slices.Sort(ms)
	return ms
}

// A Table is an annotation table:
// the metadata fields of a data set
// aligned to the terminals of a tree,
// one row per terminal,
// in the order given at creation.
type Table struct {
	terms  []string
	fields []string
	rows   map[string]map[string]string
}

// NewTable creates an annotation table
// for a list of tree terminals,
// taking the field values from a metadata collection.
// Terminals without a metadata record
// get a row with every field empty.
func NewTable(terms []string, d *metadata.Data) *Table {
	fields := d.Fields()
	rows := make(map[string]map[string]string, len(terms))
	kept := make([]string, 0, len(terms))
	for _, tm := range terms {
		if _, dup := rows[tm]; dup {
			continue
		}
		r := make(map[string]string, len(fields))
		for _, f := range fields {
			if v := d.Value(tm, f); v != "" {
				r[f] = v
			}
		}
		rows[tm] = r
		kept = append(kept, tm)
	}

	return &Table{
		terms:  kept,
		fields: fields,
		rows:   rows,
	}
}

// Fields returns the fields of the table,
// in metadata order.
func (t *Table) Fields() []string {
	return slices.Clone(t.fields)
}

// Terms returns the terminals of the table,
// in the order given at creation.
func (t *Table) Terms() []string {
	return slices.Clone(t.terms)
}

// Value returns the value of a field
// for a given terminal,
// or an empty string if the field is not set
// or the terminal is not in the table.
func (t *Table) Value(term, field string) string {
	return t.rows[term][field]
}
