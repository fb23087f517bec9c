// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(colorKeyGuide)
	app.Add(hitFilesGuide)
	app.Add(metadataFilesGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
PhyTab requires several files to read and process annotation data. To reduce
the burden of keeping track of many files, a single project file is used to
hold the reference of all files required by the commands. This guide explains
the structure of the file, but most of the time, the best and most secure way
to edit or view this file is by using phytab commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phytab project files
	dataset	path
	trees	trees.tab
	metadata	metadata.tab
	hits	hits.tab
	keys	keys.tab

The valid file types are:

- Phylogenetic trees. Defined by the dataset keyword "trees". This file
  contains one or more trees in the form of a tab-delimited file. The
  recommended way to add a tree file is by using the command
  'phytab tree add'.
- Metadata records. Defined by the dataset keyword "metadata". This file
  contains a single record per terminal with an arbitrary set of descriptive
  fields, in the form of a tab-delimited file. The recommended way to add a
  metadata file is by using the command 'phytab meta add'.
- BLAST hits. Defined by the dataset keyword "hits". This file contains the
  percent identity of the best hit per terminal-gene pair, in the form of a
  tab-delimited file. The recommended way to add a hit file is by using the
  command 'phytab hits add'.
- Color keys. Defined by the dataset keyword "keys". This file contains the
  colors assigned to the values of a metadata field in the form of a
  tab-delimited file. The recommended way to add a color key file is by
  using the command 'phytab meta keys'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In PhyTab, phylogenetic trees are stored in a tab-delimited file. The
advantage of using a tab-delimited file is that it would be easier to
manipulate trees than in traditional newick files; for example, it would be
easier for commands in PhyTab, as well as for third-party applications, to
understand the node IDs.

The recommended way to interact with trees in a PhyTab project is by using
the commands in "phytab tree".

A PhyTab tree file is a tab-delimited file with the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node.
	-taxon   the name of the terminal taxon of the node.

Here is an example file:

	# phylogenetic tree
	tree	node	parent	age	taxon
	vibrio	0	-1	3000000
	vibrio	1	0	0	GCF_000008865
	vibrio	2	0	2000000
	vibrio	3	2	0	GCF_000006745
	vibrio	4	2	0	GCF_000021125

In a PhyTab project, the file that contains the trees is indicated with the
"trees" keyword.
	`,
}

var metadataFilesGuide = &command.Command{
	Usage: "metadata-files",
	Short: "about metadata files",
	Long: `
A metadata file stores a single record per tree terminal, with an arbitrary
set of descriptive fields (for example, the strain or the serogroup of the
sequenced isolate).

A metadata file is a tab-delimited file with a "taxon" column for the name of
the terminal; any other column in the header is read as a descriptive field.
Terminal names must match the tree terminals exactly: no case or whitespace
normalization is made. A terminal can not have more than one record.

Here is an example file:

	taxon	strain	serogroup
	GCF_000008865	N16961	O1
	GCF_000006745	MO10	O139

In a PhyTab project, the file that contains the metadata is indicated with
the "metadata" keyword.
	`,
}

var hitFilesGuide = &command.Command{
	Usage: "hit-files",
	Short: "about BLAST hit files",
	Long: `
A hit file stores BLAST results in long format: one row per observed hit of a
query gene on the genome of a tree terminal.

A hit file is a tab-delimited file with the following columns:

	- taxon     the name of the terminal taxon
	- gene      the name of the query gene
	- identity  the percent of identical sites, between 0 and 100

Here is an example file:

	taxon	gene	identity
	GCF_000008865	ctxA	95.420000
	GCF_000008865	ctxB	60.110000
	GCF_000006745	ctxA	82.330000

If a terminal-gene pair has several hits, only the hit with the highest
identity is kept.

In a PhyTab project, the file that contains the hits is indicated with the
"hits" keyword.
	`,
}

var colorKeyGuide = &command.Command{
	Usage: "color-keys",
	Short: "about color keys file",
	Long: `
By default, the tip labels of a drawn tree are black. A color key file can be
defined to color the tip labels by the value of a metadata field.

A color key file is a tab-delimited file with the following columns:

	-key    an integer value used as an identifier
	-label  the metadata field value assigned to the key
	-color  a RGB value separated by commas, for example, "125,132,148".

Optionally, it can contain the following column:

	-gray   for a gray scale value (using the RGB scale)

Any other columns will be ignored.

Here is an example of a key file:

	key	label	color
	0	O1	54,75,154
	1	O139	74,123,154
	2	non-toxigenic	254,218,139

The recommended way to create a key file, with a random color for each value
of a metadata field, is the command "phytab meta keys".
	`,
}
