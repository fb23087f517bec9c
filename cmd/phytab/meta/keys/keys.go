// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package keys implements a command to manage
// the color keys defined for a project.
package keys

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/earth/pixkey"
	"github.com/js-arias/phytab/metadata"
	"github.com/js-arias/phytab/project"
)

var Command = &command.Command{
	Usage: `keys [--add <file>] [--field <field>]
	[--set <value>] [--label <value>]
	<project-file>`,
	Short: "manage color keys",
	Long: `
Command keys manages the color keys used to color the tip labels of a drawn
tree. The keys contains the labels assigned to the values of a metadata
field, and their colors.

The argument of the command is the name of the project file.

By default, the command will print the currently defined keys into the
standard output. If the flag --add is defined, the indicated file will be
used as the key file of the project. If the added file does not exists, a new
file will be created with a random color for each value of the metadata field
indicated with the flag --field.

If the flag --set is defined, it will set the color of a key. The sintaxis of
the definition is:

	"<key>=<red>,<green>,<blue>"

Always use the quotations, as comma can have a different meaning in your OS.
The color values are in RGB and should be between 0 and 255.

If the flag --label is defined, it will set the the label of a key. The
sintaxis of the definition is:

	"<key>=<label>"

Always use quotations.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var keysFile string
var fieldFlag string
var labelFlag string
var setFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&keysFile, "add", "", "")
	c.Flags().StringVar(&fieldFlag, "field", "", "")
	c.Flags().StringVar(&labelFlag, "label", "", "")
	c.Flags().StringVar(&setFlag, "set", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if keysFile != "" {
		md, err := p.Metadata()
		if err != nil {
			return err
		}
		if err := validKeyFile(md); err != nil {
			return err
		}
		p.Add(project.Keys, keysFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	setArgs := false
	if setFlag != "" {
		setArgs = true
	}
	if labelFlag != "" {
		setArgs = true
	}

	if !setArgs {
		if err := report(c.Stdout(), p); err != nil {
			return err
		}
		return nil
	}

	keys, err := p.Keys()
	if err != nil {
		return err
	}

	if setFlag != "" {
		v, cc, err := getKeyColor()
		if err != nil {
			return err
		}
		keys.SetColor(cc, v)
	}
	if labelFlag != "" {
		v, l, err := getKeyLabel()
		if err != nil {
			return err
		}
		keys.SetLabel(v, l)
	}

	if err := writeKeyFile(p.Path(project.Keys), keys); err != nil {
		return err
	}
	return nil
}

func report(w io.Writer, p *project.Project) error {
	k, err := p.Keys()
	if err != nil {
		return err
	}

	for _, v := range k.Keys() {
		l := k.Label(v)
		if l == "" {
			l = "undefined"
		}
		c, _ := k.Color(v)
		r, g, b, _ := c.RGBA()
		cv := fmt.Sprintf("%d,%d,%d", uint8(r>>8), uint8(g>>8), uint8(b>>8))

		fmt.Fprintf(w, "%d\t%s\t%s\n", v, l, cv)
	}

	return nil
}

func validKeyFile(md *metadata.Data) error {
	f, err := os.Open(keysFile)
	if errors.Is(err, os.ErrNotExist) {
		if fieldFlag == "" {
			return fmt.Errorf("undefined metadata field, use --field")
		}
		keys := buildRandomKey(md, fieldFlag)
		if err := writeKeyFile(keysFile, keys); err != nil {
			return err
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("on file %q: %v", keysFile, err)
	}
	defer f.Close()

	if _, err := pixkey.Read(f); err != nil {
		return fmt.Errorf("on file %q: %v", keysFile, err)
	}
	return nil
}

func buildRandomKey(md *metadata.Data, field string) *pixkey.PixKey {
	keys := pixkey.New()

	for i, v := range md.Values(field) {
		keys.SetColor(randColor(), i)
		keys.SetLabel(i, v)
	}

	return keys
}

func writeKeyFile(name string, keys *pixkey.PixKey) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := keys.TSV(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}

func randColor() color.RGBA {
	return blind.Sequential(blind.Iridescent, rand.Float64())
}

func getKeyColor() (key int, c color.Color, err error) {
	s := strings.Split(setFlag, "=")
	if len(s) < 2 {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q", setFlag)
	}
	key, err = strconv.Atoi(s[0])
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q: %v", setFlag, err)
	}

	vals := strings.Split(s[1], ",")
	if len(vals) < 3 {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q", setFlag)
	}

	r, err := strconv.Atoi(vals[0])
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q: %v", setFlag, err)
	}
	g, err := strconv.Atoi(vals[1])
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q: %v", setFlag, err)
	}
	b, err := strconv.Atoi(vals[2])
	if err != nil {
		return 0, color.RGBA{}, fmt.Errorf("invalid --set value: %q: %v", setFlag, err)
	}
	return key, color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

func getKeyLabel() (key int, label string, err error) {
	s := strings.Split(labelFlag, "=")
	if len(s) < 2 {
		return 0, "", fmt.Errorf("invalid --label value: %q", labelFlag)
	}
	key, err = strconv.Atoi(s[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid --label value: %q: %v", labelFlag, err)
	}
	return key, s[1], nil
}
