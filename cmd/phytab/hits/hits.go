// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hits is a metapackage for commands
// that dealt with BLAST hit observations.
package hits

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytab/cmd/phytab/hits/add"
	"github.com/js-arias/phytab/cmd/phytab/hits/matrix"
	"github.com/js-arias/phytab/cmd/phytab/hits/plot"
	"github.com/js-arias/phytab/cmd/phytab/hits/taxa"
)

var Command = &command.Command{
	Usage: "hits <command> [<argument>...]",
	Short: "commands for BLAST hit observations",
}

func init() {
	Command.Add(add.Command)
	Command.Add(matrix.Command)
	Command.Add(plot.Command)
	Command.Add(taxa.Command)
}
