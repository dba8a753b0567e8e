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

// Package raster converts starburst drawings to pixels.
//
// [Rasterizer] computes anti-aliased pixel coverage for filled and stroked
// paths.  [Canvas] uses a Rasterizer to implement [starburst.Surface] on
// top of an in-memory RGBA image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Emitter receives the coverage of one scanline.  Coverage values are in
// [0, 1] and coverage[i] belongs to pixel (xMin+i, y).  The slice is only
// valid during the call.
type Emitter func(y, xMin int, coverage []float32)

// Rasterizer computes the fraction of every pixel which is covered by a
// filled or stroked path.  All paths are filled using the nonzero winding
// rule.  Internal buffers are kept between calls, so that a Rasterizer
// which is reused does not allocate in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its approximating polygon.  Must be positive.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the style used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	// Joins exceeding the limit are bevelled.
	MiterLimit float64

	cover  []float32 // per-pixel change of winding; reused for the output
	area   []float32 // per-pixel partial area
	edges  []edge
	active []int

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
	crossings []float64
	strokeBuf strokeBuffers
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.  Stroke
// parameters are set to the defaults of the HTML canvas: width 1, butt
// caps, miter joins and miter limit 10.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of the path p under the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p path.Path, emit Emitter) {
	r.beginEdges()

	var current, start vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			r.addEdge(current, start)
		}
		current = start
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	r.scan(emit)
}

// beginEdges clears the edge list and the bounding box.
func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the segment p0-p1 to device space and adds it to the
// edge list.  Horizontal edges do not contribute to the coverage and are
// dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold || math.IsNaN(dy) {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments.
// The number of segments is chosen using Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage is accumulated per scanline in two buffers:
//
//	cover[i]: signed height of all edge pieces inside pixel column i
//	area[i]:  the same, weighted by the part of the pixel to the right
//	          of the edge
//
// Scanning from left to right, the coverage of pixel i is the sum of cover
// over all columns left of i, plus area[i].  Taking the absolute value and
// clamping to 1 implements the nonzero winding rule.

// scan converts the edge list into coverage values, one scanline at a time,
// using an active edge list.
func (r *Rasterizer) scan(emit Emitter) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if cov, offset := trimZeros(r.cover); cov != nil {
			emit(y, xMin+offset, cov)
		}
	}
}

// accumulate adds the contribution of edge e within scanline y to the
// coverage buffers, which hold pixel columns xMin to xMax-1.  Edge pieces
// left of xMin are credited to the first column, pieces right of xMax are
// irrelevant.  The return value reports whether the buffers changed.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left, right := min(xTop, xBottom), max(xTop, xBottom)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	if pixLeft >= xMax {
		return false
	}
	if pixLeft == pixRight || pixRight < xMin {
		r.addPiece(e, top, bottom, sign, xMin, xMax)
		return true
	}

	// Split the edge where it crosses pixel column boundaries.
	r.crossings = append(r.crossings[:0], top, bottom)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > top && yx < bottom {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i] > r.crossings[i-1] {
			r.addPiece(e, r.crossings[i-1], r.crossings[i], sign, xMin, xMax)
		}
	}
	return true
}

// addPiece adds the part of e between top and bottom, which must lie
// within a single pixel column.
func (r *Rasterizer) addPiece(e *edge, top, bottom float64, sign float32, xMin, xMax int) {
	h := sign * float32(bottom-top)
	xMid := e.x0 + e.dxdy*((top+bottom)/2-e.y0)
	pix := int(math.Floor(xMid))

	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		frac := xMid - float64(pix)
		r.cover[pix-xMin] += h
		r.area[pix-xMin] += h * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated buffers into coverage values,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, and the offset of this part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the HTML canvas and PDF.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for corners which need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths which reverse direction.
	cuspCosineThreshold = -0.9999
)
