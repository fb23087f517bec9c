// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annotate_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/metadata"
)

func TestMissingTerms(t *testing.T) {
	terms := []string{"A", "B", "C"}
	keys := []string{"A", "B"}

	missing := []string{"C"}
	if g := annotate.MissingTerms(terms, keys); !reflect.DeepEqual(g, missing) {
		t.Errorf("missing terms: got %v, want %v", g, missing)
	}

	// the result is independent of the input order
	terms = []string{"C", "A", "B"}
	keys = []string{"B", "A"}
	if g := annotate.MissingTerms(terms, keys); !reflect.DeepEqual(g, missing) {
		t.Errorf("missing terms (reordered): got %v, want %v", g, missing)
	}

	// matching is exact:
	// case and whitespace differences are misses
	terms = []string{"a", "B ", "C"}
	keys = []string{"A", "B", "C"}
	missing = []string{"B ", "a"}
	if g := annotate.MissingTerms(terms, keys); !reflect.DeepEqual(g, missing) {
		t.Errorf("missing terms (near-miss): got %v, want %v", g, missing)
	}

	if g := annotate.MissingTerms([]string{"A", "B"}, []string{"A", "B", "X"}); len(g) != 0 {
		t.Errorf("missing terms (full coverage): got %v, want an empty set", g)
	}
}

func TestTable(t *testing.T) {
	d := metadata.New()
	d.Set("GCF_000008865", "strain", "N16961")
	d.Set("GCF_000008865", "serogroup", "O1")
	d.Set("GCF_000006745", "strain", "MO10")
	d.Set("GCF_000006745", "serogroup", "O139")

	terms := []string{"GCF_000008865", "GCF_000021125", "GCF_000006745"}
	tbl := annotate.NewTable(terms, d)

	if g := tbl.Terms(); !reflect.DeepEqual(g, terms) {
		t.Errorf("terms: got %v, want %v", g, terms)
	}
	fields := []string{"strain", "serogroup"}
	if g := tbl.Fields(); !reflect.DeepEqual(g, fields) {
		t.Errorf("fields: got %v, want %v", g, fields)
	}

	if v := tbl.Value("GCF_000008865", "serogroup"); v != "O1" {
		t.Errorf("value: got %q, want %q", v, "O1")
	}

	// a terminal without metadata
	// keeps its row with empty fields
	if v := tbl.Value("GCF_000021125", "strain"); v != "" {
		t.Errorf("value: got %q, want empty", v)
	}
}

func TestTableTSV(t *testing.T) {
	d := metadata.New()
	d.Set("GCF_000008865", "strain", "N16961")
	d.Set("GCF_000006745", "strain", "MO10")

	terms := []string{"GCF_000008865", "GCF_000021125", "GCF_000006745"}
	tbl := annotate.NewTable(terms, d)

	var w bytes.Buffer
	if err := tbl.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}

	want := "taxon\tstrain\r\n" +
		"GCF_000008865\tN16961\r\n" +
		"GCF_000021125\t\r\n" +
		"GCF_000006745\tMO10\r\n"
	if w.String() != want {
		t.Errorf("table tsv: got:\n%s\nwant:\n%s\n", w.String(), want)
	}
}
