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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a non-degenerate piece of a flattened subpath, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
}

type strokeBuffers struct {
	segs    []segment
	offsets []int  // start of each subpath in segs
	closed  []bool // whether each subpath was closed
	dots    []vec.Vec2
	poly    []vec.Vec2
}

// Stroke computes the coverage of the outline of p, using Width, Cap, Join
// and MiterLimit.  Non-positive widths draw nothing.
//
// The outline is built from one convex polygon per segment, plus polygons
// for joins and caps.  All polygons are given the same orientation, so that
// filling them together with the nonzero rule gives their union.
func (r *Rasterizer) Stroke(p path.Path, emit Emitter) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	r.flattenStroke(p)
	b := &r.strokeBuf
	if len(b.offsets) == 0 && len(b.dots) == 0 {
		return
	}

	r.beginEdges()
	if r.Cap == graphics.LineCapRound {
		for _, pt := range b.dots {
			r.addCircle(pt, d)
		}
	}
	for i, start := range b.offsets {
		end := len(b.segs)
		if i+1 < len(b.offsets) {
			end = b.offsets[i+1]
		}
		r.strokeSubpath(b.segs[start:end], b.closed[i], d)
	}
	r.scan(emit)
}

// flattenStroke splits p into subpaths of straight segments.  Subpaths
// which have no extent are recorded in dots.
func (r *Rasterizer) flattenStroke(p path.Path) {
	b := &r.strokeBuf
	b.segs = b.segs[:0]
	b.offsets = b.offsets[:0]
	b.closed = b.closed[:0]
	b.dots = b.dots[:0]

	var current, start vec.Vec2
	first := 0
	open := false
	drawn := false
	finish := func(closed bool) {
		if !open || !drawn && !closed {
			return
		}
		if len(b.segs) == first {
			b.dots = append(b.dots, start)
		} else {
			b.offsets = append(b.offsets, first)
			b.closed = append(b.closed, closed)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current, start = pts[0], pts[0]
			first = len(b.segs)
			open, drawn = true, false
		case path.CmdLineTo:
			if !open {
				continue
			}
			r.addSegment(current, pts[0])
			current, drawn = pts[0], true
		case path.CmdQuadTo:
			if !open {
				continue
			}
			r.flattenQuadratic(current, pts[0], pts[1], r.addSegment)
			current, drawn = pts[1], true
		case path.CmdCubeTo:
			if !open {
				continue
			}
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addSegment)
			current, drawn = pts[2], true
		case path.CmdClose:
			if !open {
				continue
			}
			r.addSegment(current, start)
			finish(true)
			current = start
			first = len(b.segs)
			open, drawn = false, false
		}
	}
	finish(false)
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.strokeBuf.segs = append(r.strokeBuf.segs, segment{
		A: a,
		B: b,
		T: t,
		N: vec.Vec2{X: -t.Y, Y: t.X},
	})
}

// strokeSubpath adds the polygons for one subpath.  d is half the line
// width.
func (r *Rasterizer) strokeSubpath(segs []segment, closed bool, d float64) {
	for _, s := range segs {
		off := s.N.Mul(d)
		r.addPolygon(s.A.Add(off), s.B.Add(off), s.B.Sub(off), s.A.Sub(off))
	}
	for i := 1; i < len(segs); i++ {
		r.addJoin(segs[i].A, segs[i-1], segs[i], d)
	}
	if closed {
		last := segs[len(segs)-1]
		r.addJoin(segs[0].A, last, segs[0], d)
		return
	}
	r.addCap(segs[0].A, segs[0].T.Mul(-1), d)
	last := segs[len(segs)-1]
	r.addCap(last.B, last.T, d)
}

// addJoin fills the gap between the polygons of s1 and s2 on the outer
// side of the corner at P.
func (r *Rasterizer) addJoin(P vec.Vec2, s1, s2 segment, d float64) {
	cosTheta := s1.T.Dot(s2.T)
	sinTheta := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X

	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}
	if cosTheta < cuspCosineThreshold {
		// The path turns back on itself; PDF viewers draw caps here.
		r.addCap(P, s1.T, d)
		r.addCap(P, s2.T.Mul(-1), d)
		return
	}

	// For a left turn the +N side is inside.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	a := P.Add(s1.N.Mul(side * d))
	b := P.Add(s2.N.Mul(side * d))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addCircle(P, d)
		return
	case graphics.LineJoinMiter:
		// The miter length, relative to the line width, is 1/sin(φ/2)
		// where φ is the angle between the segments.
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= r.MiterLimit+miterEpsilon {
			bisector := s1.N.Add(s2.N)
			if l := bisector.Length(); l > 0 {
				m := P.Add(bisector.Mul(side * d / (sinHalf * l)))
				r.addPolygon(P, a, m, b)
				return
			}
		}
	}
	r.addPolygon(P, a, b)
}

// addCap adds the cap at the end point P of an open subpath.  T is the
// unit tangent pointing away from the path.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)
		t := T.Mul(d)
		r.addPolygon(P.Add(n), P.Add(n).Add(t), P.Sub(n).Add(t), P.Sub(n))
	}
}

// addCircle adds a polygon approximating the disc of radius d around c.
func (r *Rasterizer) addCircle(c vec.Vec2, d float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: d}).Length(),
		r.linear(vec.Vec2{Y: d}).Length(),
	)
	n := 8
	if devRadius > r.Flatness {
		// A chord spanning angle θ deviates r(1-cos(θ/2)) from the circle.
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	poly := r.strokeBuf.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		poly = append(poly, c.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(d)))
	}
	r.strokeBuf.poly = poly
	r.addPolygon(poly...)
}

// addPolygon adds the closed polygon through pts to the edge list, with
// positive orientation.  Polygons without area are ignored.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	n := len(pts)
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case area > 0:
		for i := range n {
			r.addEdge(pts[i], pts[(i+1)%n])
		}
	case area < 0:
		for i := n - 1; i >= 0; i-- {
			r.addEdge(pts[(i+1)%n], pts[i])
		}
	}
}
