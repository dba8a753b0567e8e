// seehuhn.de/go/starburst - radial starburst charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package svgsurface writes starburst charts as SVG documents.
//
// Arcs are written as native SVG elliptical arc commands, so the output is
// exact at every zoom level.  Every shape becomes one <g> element, holding
// a filled <path> and, for outlined wedges, a stroked <path>.
package svgsurface

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/starburst"
)

// Surface is a [starburst.Surface] which writes SVG.
type Surface struct {
	w   *errWriter
	doc *svg.SVG

	d    []string // path data of the current shape
	open bool

	fill        color.NRGBA
	stroke      color.NRGBA
	strokeWidth float64

	elems  []element // painted paths of the current shape
	shapes int
}

// New starts an SVG document of the given size on w.  The document is
// completed by calling [Surface.Close].
func New(w io.Writer, width, height int) *Surface {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(width, height)
	return &Surface{
		w:           ew,
		doc:         doc,
		fill:        color.NRGBA{A: 255},
		stroke:      color.NRGBA{A: 255},
		strokeWidth: 1,
	}
}

// Title adds a title to the document.  This must be called before any
// shapes are added.
func (s *Surface) Title(title string) {
	s.doc.Title(title)
}

// Close finishes the document.  Shapes which were not added to the
// document using AddShape are discarded.  The return value is the first
// error encountered while writing.
func (s *Surface) Close() error {
	s.doc.End()
	return s.w.err
}

// NewShape implements [starburst.Surface].
func (s *Surface) NewShape() {
	s.elems = s.elems[:0]
	s.resetPath()
}

// MoveTo implements [starburst.Surface].
func (s *Surface) MoveTo(p vec.Vec2) {
	s.d = append(s.d, "M", num(p.X), num(p.Y))
	s.open = true
}

// LineTo implements [starburst.Surface].
func (s *Surface) LineTo(p vec.Vec2) {
	if !s.open {
		s.MoveTo(p)
		return
	}
	s.d = append(s.d, "L", num(p.X), num(p.Y))
}

// Arc implements [starburst.Surface].
func (s *Surface) Arc(center vec.Vec2, radius, start, end float64) {
	sweep := starburst.Sweep(start, end)
	if !(radius >= 0) || math.IsInf(radius, 0) || math.IsNaN(sweep) {
		return
	}

	s.LineTo(starburst.ArcPoint(center, radius, start))
	if sweep == 0 || radius == 0 {
		return
	}

	// A single arc command cannot describe a full circle.
	if sweep >= 2*math.Pi {
		s.arcTo(radius, starburst.ArcPoint(center, radius, start+math.Pi), false)
		s.arcTo(radius, starburst.ArcPoint(center, radius, start), false)
		return
	}
	s.arcTo(radius, starburst.ArcPoint(center, radius, start+sweep), sweep > math.Pi)
}

func (s *Surface) arcTo(r float64, p vec.Vec2, large bool) {
	largeFlag := "0"
	if large {
		largeFlag = "1"
	}
	// sweep-flag 1 is the direction of increasing angles, which is
	// clockwise on screen.
	s.d = append(s.d, "A", num(r), num(r), "0", largeFlag, "1", num(p.X), num(p.Y))
}

// BeginFill implements [starburst.Surface].  Colours which cannot be
// parsed leave the previous fill colour in place.
func (s *Surface) BeginFill(col string) {
	if c, err := starburst.ParseColor(col); err == nil {
		s.fill = c
	}
	s.resetPath()
}

// EndFill implements [starburst.Surface].
func (s *Surface) EndFill() {
	if len(s.d) > 0 {
		s.elems = append(s.elems, s.pathElement(
			paint("fill", s.fill),
			`stroke="none"`,
		))
	}
	s.resetPath()
}

// SetStrokeWidth implements [starburst.Surface].
func (s *Surface) SetStrokeWidth(w float64) {
	s.strokeWidth = w
}

// BeginStroke implements [starburst.Surface].  Colours which cannot be
// parsed leave the previous stroke colour in place.
func (s *Surface) BeginStroke(col string) {
	if c, err := starburst.ParseColor(col); err == nil {
		s.stroke = c
	}
	s.resetPath()
}

// EndStroke implements [starburst.Surface].
func (s *Surface) EndStroke() {
	if len(s.d) > 0 {
		s.elems = append(s.elems, s.pathElement(
			`fill="none"`,
			paint("stroke", s.stroke),
			`stroke-width="`+num(s.strokeWidth)+`"`,
			`stroke-miterlimit="10"`,
		))
	}
	s.resetPath()
}

// AddShape implements [starburst.Surface].
func (s *Surface) AddShape() {
	s.doc.Gid("wedge-" + strconv.Itoa(s.shapes))
	for _, e := range s.elems {
		s.doc.Path(e.d, e.attr...)
	}
	s.doc.Gend()
	s.shapes++
	s.elems = s.elems[:0]
}

// Update implements [starburst.Surface].  SVG documents are only
// complete after Close, so there is nothing to do here.
func (s *Surface) Update() {}

// Shapes returns the number of shapes written so far.
func (s *Surface) Shapes() int {
	return s.shapes
}

// element is a painted path, waiting for the enclosing shape to be added.
type element struct {
	d    string
	attr []string
}

func (s *Surface) pathElement(attr ...string) element {
	return element{d: strings.Join(s.d, " "), attr: attr}
}

func (s *Surface) resetPath() {
	s.d = s.d[:0]
	s.open = false
}

// paint returns the attributes for a fill or stroke colour.
func paint(prop string, c color.NRGBA) string {
	attr := prop + `="` + starburst.FormatColor(c) + `"`
	if c.A != 255 {
		attr += " " + prop + `-opacity="` + num(float64(c.A)/255) + `"`
	}
	return attr
}

// num formats x with at most three decimals.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// errWriter remembers the first write error.  Subsequent writes are
// dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = fmt.Errorf("svgsurface: %w", err)
	}
	return n, err
}
