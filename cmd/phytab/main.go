// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyTab is a tool for drawing phylogenetic trees
// annotated with tabular metadata
// and BLAST search results.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytab/cmd/phytab/hits"
	"github.com/js-arias/phytab/cmd/phytab/meta"
	"github.com/js-arias/phytab/cmd/phytab/tree"
)

var app = &command.Command{
	Usage: "phytab <command> [<argument>...]",
	Short: "a tool for annotated phylogenetic trees",
}

func init() {
	app.Add(hits.Command)
	app.Add(meta.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
