// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package meta is a metapackage for commands
// that dealt with metadata records.
package meta

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytab/cmd/phytab/meta/add"
	"github.com/js-arias/phytab/cmd/phytab/meta/keys"
	"github.com/js-arias/phytab/cmd/phytab/meta/table"
	"github.com/js-arias/phytab/cmd/phytab/meta/taxa"
)

var Command = &command.Command{
	Usage: "meta <command> [<argument>...]",
	Short: "commands for metadata records",
}

func init() {
	Command.Add(add.Command)
	Command.Add(keys.Command)
	Command.Add(table.Command)
	Command.Add(taxa.Command)
}
