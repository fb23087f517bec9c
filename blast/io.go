// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package blast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ReadTSV reads a set of BLAST hit observations
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the name of the terminal taxon
//     (usually the name of the assembly file
//     used as the BLAST subject)
//   - gene, the name of the query gene
//   - identity, the percent of identical sites of the hit,
//     between 0 and 100
//
// Here is an example file:
//
//	taxon	gene	identity
//	GCF_000008865	ctxA	95.420000
//	GCF_000008865	ctxB	60.110000
//	GCF_000006745	ctxA	82.330000
func ReadTSV(r io.Reader) (*Data, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"taxon", "gene", "identity"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	d := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := row[fields[f]]
		if tax == "" {
			continue
		}

		f = "gene"
		gene := row[fields[f]]
		if gene == "" {
			continue
		}

		f = "identity"
		v, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %q: %v", ln, f, row[fields[f]], err)
		}
		if v < 0 || v > 100 {
			return nil, fmt.Errorf("on row %d: field %q: invalid identity value %.3f", ln, f, v)
		}

		d.Add(tax, gene, v)
	}
	return d, nil
}

// TSV writes hit observations as a TSV file.
func (d *Data) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"taxon", "gene", "identity"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range d.Taxa() {
		hits := d.taxon[tx]
		genes := make([]string, 0, len(hits))
		for g := range hits {
			genes = append(genes, g)
		}
		slices.Sort(genes)
		for _, g := range genes {
			row := []string{
				tx,
				g,
				strconv.FormatFloat(hits[g], 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
