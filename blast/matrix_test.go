// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package blast_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/phytab/blast"
)

func TestPivot(t *testing.T) {
	d := blast.New()
	d.Add("f1", "ctxA", 95)
	d.Add("f1", "ctxB", 60)
	d.Add("f2", "ctxA", 82)

	m, err := blast.Pivot(d, 80, nil)
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}

	taxa := []string{"f1", "f2"}
	if g := m.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("taxa: got %v, want %v", g, taxa)
	}

	// every hit of ctxB is below the threshold,
	// so the gene is not a column of the matrix
	genes := []string{"ctxA"}
	if g := m.Genes(); !reflect.DeepEqual(g, genes) {
		t.Errorf("genes: got %v, want %v", g, genes)
	}

	vals := map[string]float64{
		"f1": 95,
		"f2": 82,
	}
	for tx, want := range vals {
		v, ok := m.Value(tx, "ctxA")
		if !ok {
			t.Errorf("taxon %q: gene %q: cell is absent", tx, "ctxA")
			continue
		}
		if v != want {
			t.Errorf("taxon %q: gene %q: got %.3f, want %.3f", tx, "ctxA", v, want)
		}
	}
	if _, ok := m.Value("f1", "ctxB"); ok {
		t.Errorf("taxon %q: gene %q: unexpected cell", "f1", "ctxB")
	}
}

func TestPivotBoundary(t *testing.T) {
	d := blast.New()
	d.Add("f1", "ctxA", 80)
	d.Add("f2", "ctxA", 79)

	m, err := blast.Pivot(d, 80, nil)
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}

	// a hit at the threshold is retained
	if v, ok := m.Value("f1", "ctxA"); !ok || v != 80 {
		t.Errorf("taxon %q: got %.3f (present %v), want %.3f", "f1", v, ok, 80.0)
	}

	// a hit below the threshold is dropped,
	// and its taxon has no row
	if _, ok := m.Value("f2", "ctxA"); ok {
		t.Errorf("taxon %q: unexpected cell", "f2")
	}
	taxa := []string{"f1"}
	if g := m.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("taxa: got %v, want %v", g, taxa)
	}
}

func TestPivotGeneOrder(t *testing.T) {
	d := blast.New()
	d.Add("f1", "tcpA", 90)
	d.Add("f1", "ctxA", 90)
	d.Add("f1", "ctxB", 90)

	// listed genes first,
	// then first-seen order;
	// unknown genes are ignored
	m, err := blast.Pivot(d, 80, []string{"ctxB", "toxR", "ctxB"})
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}
	genes := []string{"ctxB", "tcpA", "ctxA"}
	if g := m.Genes(); !reflect.DeepEqual(g, genes) {
		t.Errorf("genes: got %v, want %v", g, genes)
	}
}

func TestPivotIdempotence(t *testing.T) {
	d := newData()

	m1, err := blast.Pivot(d, 80, nil)
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}
	m2, err := blast.Pivot(d, 80, nil)
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}

	var w1, w2 bytes.Buffer
	if err := m1.TSV(&w1); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	if err := m2.TSV(&w2); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	if w1.String() != w2.String() {
		t.Errorf("pivot is not deterministic:\n%s\n---\n%s\n", w1.String(), w2.String())
	}
}

func TestPivotErrors(t *testing.T) {
	d := newData()

	if _, err := blast.Pivot(d, 150, nil); !errors.Is(err, blast.ErrInvalidThreshold) {
		t.Errorf("threshold 150: got error %v, want %v", err, blast.ErrInvalidThreshold)
	}
	if _, err := blast.Pivot(d, -1, nil); !errors.Is(err, blast.ErrInvalidThreshold) {
		t.Errorf("threshold -1: got error %v, want %v", err, blast.ErrInvalidThreshold)
	}

	empty := blast.New()
	if _, err := blast.Pivot(empty, 80, nil); !errors.Is(err, blast.ErrEmptyInput) {
		t.Errorf("empty data: got error %v, want %v", err, blast.ErrEmptyInput)
	}

	// no hit survives the threshold
	low := blast.New()
	low.Add("f1", "ctxA", 10)
	if _, err := blast.Pivot(low, 80, nil); !errors.Is(err, blast.ErrEmptyInput) {
		t.Errorf("all hits filtered: got error %v, want %v", err, blast.ErrEmptyInput)
	}
}

func TestMatrixTSV(t *testing.T) {
	d := blast.New()
	d.Add("f1", "ctxA", 95)
	d.Add("f1", "ctxB", 85)
	d.Add("f2", "ctxA", 82)

	m, err := blast.Pivot(d, 80, nil)
	if err != nil {
		t.Fatalf("unable to pivot: %v", err)
	}

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}

	want := "taxon\tctxA\tctxB\r\n" +
		"f1\t95.000000\t85.000000\r\n" +
		"f2\t82.000000\t\r\n"
	if w.String() != want {
		t.Errorf("matrix tsv: got:\n%s\nwant:\n%s\n", w.String(), want)
	}
}
