// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annotate

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TSV writes an annotation table as a TSV file,
// with a row per terminal,
// in table order.
// Unset fields are written as empty fields.
func (t *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"taxon"}, t.fields...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tm := range t.terms {
		row := make([]string, 0, len(t.fields)+1)
		row = append(row, tm)
		for _, f := range t.fields {
			row = append(row, t.rows[tm][f])
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
