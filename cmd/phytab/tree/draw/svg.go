// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/js-arias/blind"
	"github.com/js-arias/earth/pixkey"
	"github.com/js-arias/phytab/annotate"
	"github.com/js-arias/phytab/blast"
	"github.com/js-arias/timetree"
)

const ageUnits = 1_000_000

const yStep = 12

// Heatmap cell geometry.
const cellStep = 12
const cellSize = 11

type node struct {
	x    float64
	y    int
	topY int
	botY int

	id  int
	tax string
	age float64

	anc  *node
	desc []*node
}

type heatCell struct {
	fill color.RGBA
	ok   bool
}

type svgTree struct {
	y     int
	x     float64
	taxSz int
	root  *node

	genes  []string
	geneSz int
	heat   map[string][]heatCell

	labColor map[string]color.RGBA
}

func copyTree(t *timetree.Tree, xStep float64) svgTree {
	maxSz := 0
	var root *node
	ids := make(map[int]*node)
	for _, id := range t.Nodes() {
		var anc *node
		p := t.Parent(id)
		if p >= 0 {
			anc = ids[p]
		}

		n := &node{
			id:  id,
			tax: t.Taxon(id),
			anc: anc,
			age: float64(t.Age(id)) / ageUnits,
		}
		if anc == nil {
			root = n
		} else {
			anc.desc = append(anc.desc, n)
		}
		ids[id] = n
		if len(n.tax) > maxSz {
			maxSz = len(n.tax)
		}
	}

	s := svgTree{root: root}
	s.prepare(root, xStep)
	s.y = s.y * yStep
	s.taxSz = maxSz

	return s
}

func (s *svgTree) prepare(n *node, xStep float64) {
	n.x = (s.root.age-n.age)*xStep + 10
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, xStep)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

// setHeat defines the heatmap cells of the terminals
// from a pivoted hit matrix.
// Cell colors are scaled between the threshold
// (the minimum value that can be present in the matrix)
// and a full identity.
func (s *svgTree) setHeat(m *blast.Matrix, threshold float64) {
	s.genes = m.Genes()
	for _, g := range s.genes {
		if len(g) > s.geneSz {
			s.geneSz = len(g)
		}
	}

	s.heat = make(map[string][]heatCell)
	s.root.setHeat(s, m, threshold)
}

func (n *node) setHeat(s *svgTree, m *blast.Matrix, threshold float64) {
	for _, d := range n.desc {
		d.setHeat(s, m, threshold)
	}
	if n.desc != nil {
		return
	}

	cells := make([]heatCell, len(s.genes))
	for i, g := range s.genes {
		v, ok := m.Value(n.tax, g)
		if !ok {
			continue
		}
		scale := 1.0
		if threshold < 100 {
			scale = (v - threshold) / (100 - threshold)
		}
		r, g, b, _ := blind.Gradient(scale).RGBA()
		cells[i] = heatCell{
			fill: color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255},
			ok:   true,
		}
	}
	s.heat[n.tax] = cells
}

// setLabelColors defines the colors of the tip labels
// from the value of a metadata field
// and a color key file.
func (s *svgTree) setLabelColors(tbl *annotate.Table, field string, keys *pixkey.PixKey) {
	s.labColor = make(map[string]color.RGBA)
	for _, tm := range tbl.Terms() {
		v := tbl.Value(tm, field)
		if v == "" {
			continue
		}
		c, ok := labelColor(keys, v)
		if !ok {
			fmt.Fprintf(os.Stderr, "field %q: value %q: no color key\n", field, v)
			continue
		}
		s.labColor[tm] = c
	}
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)

	height := s.y + 5
	width := int(s.x) + s.taxSz*6 + 10
	if s.genes != nil {
		// room for the heatmap block
		// and the rotated gene names below it
		width += len(s.genes)*cellStep + 15
		height += s.geneSz*6 + 10
	}

	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(height)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(width)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.label(e, s.labColor)
	if s.genes != nil {
		s.drawHeat(e)
	}

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (n node) draw(e *xml.Encoder) {
	// horizontal line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(int(n.x - 5))},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(int(n.y))},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(int(n.x))},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(int(n.y))},
		},
	}
	if n.anc != nil {
		ln.Attr[0].Value = strconv.Itoa(int(n.anc.x))
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	if n.desc == nil {
		return
	}

	// draws vertical line
	ln.Attr[0].Value = ln.Attr[2].Value
	ln.Attr[1].Value = strconv.Itoa(int(n.topY))
	ln.Attr[3].Value = strconv.Itoa(int(n.botY))
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) label(e *xml.Encoder, labColor map[string]color.RGBA) {
	if n.desc == nil {
		fill := "black"
		if c, ok := labColor[n.tax]; ok {
			fill = fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
		}
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(int(n.x + 10))},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(int(n.y + 5))},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "fill"}, Value: fill},
				{Name: xml.Name{Local: "font-style"}, Value: "italic"},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(n.tax))
		e.EncodeToken(tx.End())
	}

	for _, d := range n.desc {
		d.label(e, labColor)
	}
}

func (s *svgTree) drawHeat(e *xml.Encoder) {
	x0 := int(s.x) + s.taxSz*6 + 15

	s.root.drawCells(e, s, x0)

	// gene names,
	// rotated to read downwards
	// below the heatmap block
	for i, g := range s.genes {
		x := x0 + i*cellStep + 9
		y := s.y + 10
		tx := xml.StartElement{
			Name: xml.Name{Local: "text"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x)},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y)},
				{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
				{Name: xml.Name{Local: "transform"}, Value: fmt.Sprintf("rotate(90 %d %d)", x, y)},
			},
		}
		e.EncodeToken(tx)
		e.EncodeToken(xml.CharData(g))
		e.EncodeToken(tx.End())
	}
}

func (n node) drawCells(e *xml.Encoder, s *svgTree, x0 int) {
	for _, d := range n.desc {
		d.drawCells(e, s, x0)
	}
	if n.desc != nil {
		return
	}

	cells := s.heat[n.tax]
	for i := range s.genes {
		x := x0 + i*cellStep
		y := n.y - 5

		fill := "none"
		stroke := "lightgray"
		if i < len(cells) && cells[i].ok {
			c := cells[i].fill
			fill = fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
			stroke = "none"
		}
		rc := xml.StartElement{
			Name: xml.Name{Local: "rect"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x)},
				{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y)},
				{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(cellSize)},
				{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(cellSize)},
				{Name: xml.Name{Local: "fill"}, Value: fill},
				{Name: xml.Name{Local: "stroke"}, Value: stroke},
				{Name: xml.Name{Local: "stroke-width"}, Value: "1"},
			},
		}
		e.EncodeToken(rc)
		e.EncodeToken(rc.End())
	}
}
