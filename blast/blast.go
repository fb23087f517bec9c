// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package blast provides a collection of BLAST hits
// for the terminals of a phylogenetic tree.
package blast

import "slices"

// Data is a collection of BLAST hits,
// storing the percent of identity
// of the best hit of a gene
// in the genome of a terminal taxon.
type Data struct {
	taxon map[string]map[string]float64
	genes []string
}

// New creates a new empty hit collection.
func New() *Data {
	return &Data{
		taxon: make(map[string]map[string]float64),
	}
}

// Add adds a new hit observation
// for a given taxon and gene.
// If the pair already has a hit,
// only the highest identity value is kept,
// so the stored value is independent
// of the order of the additions.
//
// Taxon and gene names are stored as given:
// matching with tree terminals is done
// by exact string equality.
func (d *Data) Add(taxon, gene string, identity float64) {
	if taxon == "" || gene == "" {
		return
	}

	hits, ok := d.taxon[taxon]
	if !ok {
		hits = make(map[string]float64)
		d.taxon[taxon] = hits
	}
	if v, ok := hits[gene]; ok && v >= identity {
		return
	}
	hits[gene] = identity

	if !slices.Contains(d.genes, gene) {
		d.genes = append(d.genes, gene)
	}
}

// Genes returns the genes with at least one hit
// in the data set,
// in the order in which they were first observed.
func (d *Data) Genes() []string {
	return slices.Clone(d.genes)
}

// Identity returns the percent of identity
// of the best hit
// for a taxon-gene pair.
// It returns false if the pair has no hit.
func (d *Data) Identity(taxon, gene string) (float64, bool) {
	hits, ok := d.taxon[taxon]
	if !ok {
		return 0, false
	}
	v, ok := hits[gene]
	return v, ok
}

// Taxa returns the taxa with observed hits
// in the data set.
func (d *Data) Taxa() []string {
	taxa := make([]string, 0, len(d.taxon))
	for tx := range d.taxon {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}
