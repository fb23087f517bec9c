// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a metadata collection
// from a TSV file.
//
// The TSV file must contain a "taxon" field
// with the name of the terminal taxon;
// every other field in the header
// is read as a descriptive field.
// A taxon can not have more than one record.
//
// Here is an example file:
//
//	taxon	strain	serogroup
//	GCF_000008865	N16961	O1
//	GCF_000006745	MO10	O139
func ReadTSV(r io.Reader) (*Data, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	cols := make([]string, 0, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		if h == "" {
			continue
		}
		if _, dup := fields[h]; dup {
			return nil, fmt.Errorf("duplicated field %q", h)
		}
		fields[h] = i
		if h != "taxon" {
			cols = append(cols, h)
		}
	}
	if _, ok := fields["taxon"]; !ok {
		return nil, fmt.Errorf("expecting field %q", "taxon")
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

		tax := row[fields["taxon"]]
		if tax == "" {
			continue
		}
		if _, dup := d.taxon[tax]; dup {
			return nil, fmt.Errorf("on row %d: duplicated taxon %q", ln, tax)
		}
		d.taxon[tax] = make(map[string]string)

		for _, f := range cols {
			d.Set(tax, f, row[fields[f]])
		}
	}
	return d, nil
}

// TSV writes a metadata collection as a TSV file.
func (d *Data) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, d.fields...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range d.Taxa() {
		row := make([]string, 0, len(d.fields)+1)
		row = append(row, tx)
		for _, f := range d.fields {
			row = append(row, d.taxon[tx][f])
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
