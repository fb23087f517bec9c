// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metadata_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytab/metadata"
)

func TestData(t *testing.T) {
	d := newData()

	testData(t, "data", d)
}

func TestTSV(t *testing.T) {
	d := newData()

	var w bytes.Buffer
	if err := d.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nd, err := metadata.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testData(t, "tsv", nd)
}

func TestReadTSVErrors(t *testing.T) {
	bad := map[string]string{
		"no taxon field": "name\tstrain\nGCF_000008865\tN16961\n",
		"duplicated taxon": "taxon\tstrain\n" +
			"GCF_000008865\tN16961\n" +
			"GCF_000008865\tMO10\n",
	}
	for name, in := range bad {
		if _, err := metadata.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func newData() *metadata.Data {
	d := metadata.New()

	d.Set("GCF_000008865", "strain", "N16961")
	d.Set("GCF_000008865", "serogroup", "O1")
	d.Set("GCF_000006745", "strain", "MO10")
	d.Set("GCF_000006745", "serogroup", "O139")
	d.Set("GCF_000021125", "strain", "M66-2")
	return d
}

func testData(t testing.TB, name string, d *metadata.Data) {
	t.Helper()

	taxa := []string{"GCF_000006745", "GCF_000008865", "GCF_000021125"}
	if g := d.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	fields := []string{"strain", "serogroup"}
	if g := d.Fields(); !reflect.DeepEqual(g, fields) {
		t.Errorf("%s: fields: got %v, want %v", name, g, fields)
	}

	vals := map[string]map[string]string{
		"GCF_000008865": {"strain": "N16961", "serogroup": "O1"},
		"GCF_000006745": {"strain": "MO10", "serogroup": "O139"},
		"GCF_000021125": {"strain": "M66-2"},
	}
	for tx, rec := range vals {
		for f, want := range rec {
			if v := d.Value(tx, f); v != want {
				t.Errorf("%s: taxon %q: field %q: got %q, want %q", name, tx, f, v, want)
			}
		}
	}
	if v := d.Value("GCF_000021125", "serogroup"); v != "" {
		t.Errorf("%s: taxon %q: field %q: got %q, want empty", name, "GCF_000021125", "serogroup", v)
	}

	sg := []string{"O1", "O139"}
	if g := d.Values("serogroup"); !reflect.DeepEqual(g, sg) {
		t.Errorf("%s: values: got %v, want %v", name, g, sg)
	}
}
