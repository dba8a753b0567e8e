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

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/starburst"
)

// Canvas is a [starburst.Surface] which paints into an in-memory image.
// Device coordinates coincide with pixel coordinates: the origin is the
// top-left corner and y grows downwards.
//
// Strokes use butt caps and miter joins with miter limit 10.
type Canvas struct {
	// Background is painted over the whole image before the first shape
	// is drawn.  If nil, the image starts out transparent.
	Background color.Color

	// OnUpdate, if set, is called after every Update with the number of
	// the update (starting at 1) and the current image.  The image must
	// not be modified or retained after the call returns.
	OnUpdate func(frame int, img *image.NRGBA)

	img     *image.NRGBA
	r       *Rasterizer
	outline starburst.Outline

	fill        color.NRGBA
	stroke      color.NRGBA
	strokeWidth float64

	started bool
	frames  int
}

// NewCanvas allocates a transparent canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		r:           NewRasterizer(clip),
		fill:        color.NRGBA{A: 255},
		stroke:      color.NRGBA{A: 255},
		strokeWidth: 1,
	}
}

// Image returns the image painted so far.
func (c *Canvas) Image() *image.NRGBA {
	c.start()
	return c.img
}

// Frames returns the number of updates seen so far.
func (c *Canvas) Frames() int {
	return c.frames
}

// Save writes the image to a file.  The format is determined by the file
// name extension, see [imaging.FormatFromFilename].
func (c *Canvas) Save(filename string) error {
	return imaging.Save(c.Image(), filename)
}

// Encode writes the image to w in the given format.
func (c *Canvas) Encode(w io.Writer, format imaging.Format) error {
	return imaging.Encode(w, c.Image(), format)
}

// NewShape implements [starburst.Surface].
func (c *Canvas) NewShape() {
	c.outline.Reset()
}

// MoveTo implements [starburst.Surface].
func (c *Canvas) MoveTo(p vec.Vec2) {
	c.outline.MoveTo(p)
}

// Arc implements [starburst.Surface].
func (c *Canvas) Arc(center vec.Vec2, radius, start, end float64) {
	c.outline.Arc(center, radius, start, end)
}

// LineTo implements [starburst.Surface].
func (c *Canvas) LineTo(p vec.Vec2) {
	c.outline.LineTo(p)
}

// BeginFill implements [starburst.Surface].  Colours which cannot be
// parsed leave the previous fill colour in place.
func (c *Canvas) BeginFill(col string) {
	if nc, err := starburst.ParseColor(col); err == nil {
		c.fill = nc
	}
	c.outline.Reset()
}

// EndFill implements [starburst.Surface].
func (c *Canvas) EndFill() {
	if !c.outline.IsEmpty() {
		c.start()
		c.r.Fill(c.outline.Path(), c.painter(c.fill))
	}
	c.outline.Reset()
}

// SetStrokeWidth implements [starburst.Surface].
func (c *Canvas) SetStrokeWidth(w float64) {
	c.strokeWidth = w
}

// BeginStroke implements [starburst.Surface].  Colours which cannot be
// parsed leave the previous stroke colour in place.
func (c *Canvas) BeginStroke(col string) {
	if nc, err := starburst.ParseColor(col); err == nil {
		c.stroke = nc
	}
	c.outline.Reset()
}

// EndStroke implements [starburst.Surface].
func (c *Canvas) EndStroke() {
	if !c.outline.IsEmpty() {
		c.start()
		c.r.Width = c.strokeWidth
		c.r.Stroke(c.outline.Path(), c.painter(c.stroke))
	}
	c.outline.Reset()
}

// AddShape implements [starburst.Surface].  Shapes are painted as soon as
// their fill or stroke ends, so there is nothing left to do here.
func (c *Canvas) AddShape() {}

// Update implements [starburst.Surface].
func (c *Canvas) Update() {
	c.start()
	c.frames++
	if c.OnUpdate != nil {
		c.OnUpdate(c.frames, c.img)
	}
}

func (c *Canvas) start() {
	if c.started {
		return
	}
	c.started = true
	if c.Background != nil {
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	}
}

// painter returns an Emitter which composites col over the image, using
// the coverage as an additional alpha factor.
func (c *Canvas) painter(col color.NRGBA) Emitter {
	srcA := float32(col.A) / 255
	src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	return func(y, xMin int, coverage []float32) {
		row := c.img.Pix[c.img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			a := srcA * cov
			if a <= 0 {
				continue
			}
			px := row[4*i : 4*i+4 : 4*i+4]
			dstA := float32(px[3]) / 255
			outA := a + dstA*(1-a)
			for k := range 3 {
				v := (src[k]*a + float32(px[k])*dstA*(1-a)) / outA
				px[k] = uint8(v + 0.5)
			}
			px[3] = uint8(outA*255 + 0.5)
		}
	}
}
