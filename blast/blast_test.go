// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package blast_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytab/blast"
)

func TestData(t *testing.T) {
	d := newData()

	testData(t, "data", d)
}

func TestDataDuplicates(t *testing.T) {
	d := newData()

	// only the highest identity
	// of a taxon-gene pair is kept,
	// in any addition order
	d.Add("GCF_000008865", "ctxA", 40.10)
	if v, _ := d.Identity("GCF_000008865", "ctxA"); v != 95.42 {
		t.Errorf("duplicated hit: got %.3f, want %.3f", v, 95.42)
	}
	d.Add("GCF_000008865", "ctxA", 99.99)
	if v, _ := d.Identity("GCF_000008865", "ctxA"); v != 99.99 {
		t.Errorf("duplicated hit: got %.3f, want %.3f", v, 99.99)
	}
}

func TestTSV(t *testing.T) {
	d := newData()

	var w bytes.Buffer
	if err := d.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nd, err := blast.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testData(t, "tsv", nd)
}

func TestReadTSVErrors(t *testing.T) {
	bad := map[string]string{
		"no taxon field":   "name\tgene\tidentity\nGCF_000008865\tctxA\t95.42\n",
		"invalid identity": "taxon\tgene\tidentity\nGCF_000008865\tctxA\thigh\n",
		"out of range":     "taxon\tgene\tidentity\nGCF_000008865\tctxA\t120.5\n",
	}
	for name, in := range bad {
		if _, err := blast.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func newData() *blast.Data {
	d := blast.New()

	d.Add("GCF_000008865", "ctxA", 95.42)
	d.Add("GCF_000008865", "ctxB", 60.11)
	d.Add("GCF_000006745", "ctxA", 82.33)
	d.Add("GCF_000021125", "tcpA", 91.07)
	return d
}

func testData(t testing.TB, name string, d *blast.Data) {
	t.Helper()

	taxa := []string{"GCF_000006745", "GCF_000008865", "GCF_000021125"}
	if g := d.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	genes := []string{"ctxA", "ctxB", "tcpA"}
	if g := d.Genes(); !reflect.DeepEqual(g, genes) {
		t.Errorf("%s: genes: got %v, want %v", name, g, genes)
	}

	vals := map[string]map[string]float64{
		"GCF_000008865": {"ctxA": 95.42, "ctxB": 60.11},
		"GCF_000006745": {"ctxA": 82.33},
		"GCF_000021125": {"tcpA": 91.07},
	}
	for tx, hits := range vals {
		for gene, want := range hits {
			v, ok := d.Identity(tx, gene)
			if !ok {
				t.Errorf("%s: taxon %q: gene %q: hit not found", name, tx, gene)
				continue
			}
			if v != want {
				t.Errorf("%s: taxon %q: gene %q: got %.3f, want %.3f", name, tx, gene, v, want)
			}
		}
	}

	if _, ok := d.Identity("GCF_000006745", "tcpA"); ok {
		t.Errorf("%s: taxon %q: gene %q: unexpected hit", name, "GCF_000006745", "tcpA")
	}
}
