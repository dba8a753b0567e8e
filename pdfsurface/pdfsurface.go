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

// Package pdfsurface writes starburst charts as single page PDF files.
package pdfsurface

import (
	"fmt"
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/starburst"
)

// Surface is a [starburst.Surface] which draws onto a PDF page.  One unit
// of chart space corresponds to one PDF point.  The y-axis is flipped, so
// that the origin is the top-left corner of the page, as for the other
// surfaces.
//
// The alpha channel of colours is ignored.
type Surface struct {
	page    *document.Page
	outline starburst.Outline

	fill        imgcolor.NRGBA
	stroke      imgcolor.NRGBA
	strokeWidth float64
}

// Create starts a new PDF file with a single page of the given size,
// in PDF points.  The file is written by [Surface.Close].
func Create(filename string, width, height float64) (*Surface, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("pdfsurface: %w", err)
	}

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	// match the HTML canvas defaults
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetMiterLimit(10)

	return &Surface{
		page:        page,
		fill:        imgcolor.NRGBA{A: 255},
		stroke:      imgcolor.NRGBA{A: 255},
		strokeWidth: 1,
	}, nil
}

// Close writes the PDF file.
func (s *Surface) Close() error {
	return s.page.Close()
}

// NewShape implements [starburst.Surface].
func (s *Surface) NewShape() {
	s.outline.Reset()
}

// MoveTo implements [starburst.Surface].
func (s *Surface) MoveTo(p vec.Vec2) {
	s.outline.MoveTo(p)
}

// Arc implements [starburst.Surface].
func (s *Surface) Arc(center vec.Vec2, radius, start, end float64) {
	s.outline.Arc(center, radius, start, end)
}

// LineTo implements [starburst.Surface].
func (s *Surface) LineTo(p vec.Vec2) {
	s.outline.LineTo(p)
}

// BeginFill implements [starburst.Surface].  Colours which cannot be
// parsed leave the previous fill colour in place.
func (s *Surface) BeginFill(col string) {
	if c, err := starburst.ParseColor(col); err == nil {
		s.fill = c
	}
	s.outline.Reset()
}

// EndFill implements [starburst.Surface].
func (s *Surface) EndFill() {
	if !s.outline.IsEmpty() {
		s.page.SetFillColor(deviceRGB(s.fill))
		s.writePath(s.outline.Path())
		s.page.Fill()
	}
	s.outline.Reset()
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
	s.outline.Reset()
}

// EndStroke implements [starburst.Surface].
func (s *Surface) EndStroke() {
	if !s.outline.IsEmpty() {
		s.page.SetLineWidth(s.strokeWidth)
		s.page.SetStrokeColor(deviceRGB(s.stroke))
		s.writePath(s.outline.Path())
		s.page.Stroke()
	}
	s.outline.Reset()
}

// AddShape implements [starburst.Surface].
func (s *Surface) AddShape() {}

// Update implements [starburst.Surface].
func (s *Surface) Update() {}

func (s *Surface) writePath(p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			s.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			s.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			s.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			s.page.ClosePath()
		}
	}
}

func deviceRGB(c imgcolor.NRGBA) color.DeviceRGB {
	return color.DeviceRGB{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}
