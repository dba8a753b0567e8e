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

package starburst

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Surface is a vector drawing target.
//
// Paths are built between BeginFill/EndFill or BeginStroke/EndStroke.  The
// finished paint operations of a shape become visible after AddShape and
// the next Update.  All coordinates are device coordinates with the y-axis
// pointing down.
type Surface interface {
	NewShape()
	MoveTo(p vec.Vec2)

	// Arc adds a circular arc around center from angle start to angle end,
	// in radians, running clockwise on the screen.  If the subpath already
	// has a current point, a straight line connects it to the start of the
	// arc.  If end-start is at least 2π, the arc is a full circle.
	Arc(center vec.Vec2, radius, start, end float64)

	LineTo(p vec.Vec2)
	BeginFill(color string)
	EndFill()
	SetStrokeWidth(w float64)
	BeginStroke(color string)
	EndStroke()
	AddShape()
	Update()
}

// Recorder is a [Surface] which records all calls as [Command] values.
type Recorder struct {
	Commands []Command
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) NewShape()         { r.add(NewShape{}) }
func (r *Recorder) MoveTo(p vec.Vec2) { r.add(MoveTo{P: p}) }
func (r *Recorder) LineTo(p vec.Vec2) { r.add(LineTo{P: p}) }
func (r *Recorder) EndFill()          { r.add(EndFill{}) }
func (r *Recorder) EndStroke()        { r.add(EndStroke{}) }
func (r *Recorder) AddShape()         { r.add(AddShape{}) }
func (r *Recorder) Update()           { r.add(Update{}) }

func (r *Recorder) Arc(center vec.Vec2, radius, start, end float64) {
	r.add(Arc{Center: center, Radius: radius, Start: start, End: end})
}

func (r *Recorder) BeginFill(color string)   { r.add(BeginFill{Color: color}) }
func (r *Recorder) BeginStroke(color string) { r.add(BeginStroke{Color: color}) }
func (r *Recorder) SetStrokeWidth(w float64) { r.add(SetStrokeWidth{Width: w}) }

func (r *Recorder) add(c Command) {
	r.Commands = append(r.Commands, c)
}

// Sweep returns the clockwise angle covered by an arc from start to end,
// following the rules of [Surface.Arc].  The result is in [0, 2π].
// It returns NaN if either angle is not finite.
func Sweep(start, end float64) float64 {
	d := end - start
	switch {
	case math.IsNaN(d) || math.IsInf(d, 0):
		return math.NaN()
	case d >= 2*math.Pi:
		return 2 * math.Pi
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Outline accumulates a path made of straight lines and circular arcs,
// for surfaces which have no native arc primitive.  Arcs are approximated
// by cubic Bézier curves.  The zero value is an empty path.
type Outline struct {
	cmds []path.Command
	pts  []vec.Vec2

	open bool
}

// Reset clears the outline, keeping the allocated memory.
func (o *Outline) Reset() {
	o.cmds = o.cmds[:0]
	o.pts = o.pts[:0]
	o.open = false
}

// IsEmpty reports whether no segments have been added.
func (o *Outline) IsEmpty() bool {
	return len(o.cmds) == 0
}

// MoveTo starts a new subpath.
func (o *Outline) MoveTo(p vec.Vec2) {
	o.cmds = append(o.cmds, path.CmdMoveTo)
	o.pts = append(o.pts, p)
	o.open = true
}

// LineTo adds a straight line.  Without current point this acts like
// MoveTo.
func (o *Outline) LineTo(p vec.Vec2) {
	if !o.open {
		o.MoveTo(p)
		return
	}
	o.cmds = append(o.cmds, path.CmdLineTo)
	o.pts = append(o.pts, p)
}

// Arc adds a clockwise circular arc, see [Surface.Arc].
// Arcs with negative or non-finite radius or angles are ignored.
func (o *Outline) Arc(center vec.Vec2, radius, start, end float64) {
	sweep := Sweep(start, end)
	if !(radius >= 0) || math.IsInf(radius, 0) || math.IsNaN(sweep) {
		return
	}

	o.LineTo(ArcPoint(center, radius, start))

	// split into pieces of at most a quarter turn
	n := max(1, int(math.Ceil(sweep/(math.Pi/2)-1e-9)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius
	theta := start
	for range n {
		next := theta + step
		p0 := ArcPoint(center, radius, theta)
		p3 := ArcPoint(center, radius, next)
		// tangent direction of a clockwise arc in y-down space
		t0 := vec2(-math.Sin(theta), math.Cos(theta))
		t3 := vec2(-math.Sin(next), math.Cos(next))
		o.cmds = append(o.cmds, path.CmdCubeTo)
		o.pts = append(o.pts, p0.Add(t0.Mul(k)), p3.Sub(t3.Mul(k)), p3)
		theta = next
	}
}

// Close closes the current subpath.
func (o *Outline) Close() {
	if !o.open {
		return
	}
	o.cmds = append(o.cmds, path.CmdClose)
	o.open = false
}

// Path returns an iterator over the outline.  The iterator remains valid
// until the next modification of o.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		idx := 0
		for _, cmd := range o.cmds {
			n := 0
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, o.pts[idx:idx+n]) {
				return
			}
			idx += n
		}
	}
}
