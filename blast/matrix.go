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
)

// ErrInvalidThreshold is returned by Pivot
// when the identity threshold is outside the [0,100] range.
var ErrInvalidThreshold = errors.New("threshold outside [0,100] range")

// ErrEmptyInput is returned by Pivot
// when no hit observation passes the identity threshold,
// so the resulting matrix would have no columns.
var ErrEmptyInput = errors.New("no hits above threshold")

// Matrix is a wide-format table of percent identity values,
// with a row per taxon
// and a column per gene.
// A taxon-gene cell without a hit at or above the threshold
// is absent,
// which is different from an identity of zero.
type Matrix struct {
	taxa  []string
	genes []string
	vals  map[string]map[string]float64
}

// Pivot filters a hit collection
// with an identity threshold
// (hits at the threshold are kept)
// and pivots the retained hits into a wide matrix.
//
// Only genes with at least one retained hit
// become matrix columns.
// The genes parameter defines a preferred column order:
// listed genes appear first,
// in the given order;
// any other gene is appended
// in the order in which it was first observed.
// Listed genes without retained hits are ignored.
func Pivot(d *Data, threshold float64, genes []string) (*Matrix, error) {
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("pivot: %w: %.3f", ErrInvalidThreshold, threshold)
	}

	vals := make(map[string]map[string]float64)
	kept := make(map[string]bool)
	for tx, hits := range d.taxon {
		for g, v := range hits {
			if v < threshold {
				continue
			}
			row, ok := vals[tx]
			if !ok {
				row = make(map[string]float64)
				vals[tx] = row
			}
			row[g] = v
			kept[g] = true
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("pivot: %w", ErrEmptyInput)
	}

	cols := make([]string, 0, len(kept))
	for _, g := range genes {
		if !kept[g] || slices.Contains(cols, g) {
			continue
		}
		cols = append(cols, g)
	}
	for _, g := range d.genes {
		if !kept[g] || slices.Contains(cols, g) {
			continue
		}
		cols = append(cols, g)
	}

	taxa := make([]string, 0, len(vals))
	for tx := range vals {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)

	return &Matrix{
		taxa:  taxa,
		genes: cols,
		vals:  vals,
	}, nil
}

// Genes returns the matrix columns,
// in column order.
func (m *Matrix) Genes() []string {
	return slices.Clone(m.genes)
}

// Taxa returns the matrix rows,
// sorted by taxon name.
func (m *Matrix) Taxa() []string {
	return slices.Clone(m.taxa)
}

// Value returns the percent of identity
// stored for a taxon-gene cell.
// It returns false if the cell is absent.
func (m *Matrix) Value(taxon, gene string) (float64, bool) {
	row, ok := m.vals[taxon]
	if !ok {
		return 0, false
	}
	v, ok := row[gene]
	return v, ok
}

// TSV writes a matrix as a TSV table,
// with a row per taxon
// and a column per gene.
// Absent cells are written as empty fields.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, m.genes...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range m.taxa {
		row := make([]string, 0, len(m.genes)+1)
		row = append(row, tx)
		for _, g := range m.genes {
			v, ok := m.vals[tx][g]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
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
