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
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Command is a single drawing instruction for a [Surface].
type Command interface {
	isCommand()
}

// NewShape starts a new, empty shape.
type NewShape struct{}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P vec.Vec2
}

// Arc adds a circular arc to the current subpath.  See [Surface.Arc].
type Arc struct {
	Center     vec.Vec2
	Radius     float64
	Start, End float64 // radians
}

// LineTo adds a straight line from the current point to P.
type LineTo struct {
	P vec.Vec2
}

// BeginFill starts a path which is filled with Color.
type BeginFill struct {
	Color string
}

// EndFill closes and fills the current path.
type EndFill struct{}

// SetStrokeWidth sets the line width for following strokes.
type SetStrokeWidth struct {
	Width float64
}

// BeginStroke starts a path which is stroked with Color.
type BeginStroke struct {
	Color string
}

// EndStroke strokes the current path.
type EndStroke struct{}

// AddShape adds the current shape to the surface.
type AddShape struct{}

// Update presents everything added to the surface so far.
type Update struct{}

func (NewShape) isCommand()       {}
func (MoveTo) isCommand()         {}
func (Arc) isCommand()            {}
func (LineTo) isCommand()         {}
func (BeginFill) isCommand()      {}
func (EndFill) isCommand()        {}
func (SetStrokeWidth) isCommand() {}
func (BeginStroke) isCommand()    {}
func (EndStroke) isCommand()      {}
func (AddShape) isCommand()       {}
func (Update) isCommand()         {}

// Options controls details of [Render].
// A nil *Options is valid and selects the defaults.
type Options struct {
	// Rand is used to generate fill colours for slices without a fill.
	// If this is nil, a randomly seeded generator is used.
	Rand *rand.Rand
}

func (opt *Options) rand() *rand.Rand {
	if opt == nil {
		return nil
	}
	return opt.Rand
}

// Render computes the drawing commands for a starburst chart.
//
// For every slice, in input order, a shape is constructed, added to the
// surface and presented.  A wedge with stroke width below 1 is only filled.
// A wedge with positive stroke width is filled first, and then the same
// outline is stroked on top.  Since a stroke is centred on the path, half of
// the stroke covers the fill.
//
// Render is a pure function of its arguments and the random generator in
// opt.  The inputs are not modified.
func Render(s Settings, slices []Slice, opt *Options) []Command {
	wedges := Layout(s, slices, opt.rand())
	if len(wedges) == 0 {
		return nil
	}
	o := Normalize(s).Origin

	cmds := make([]Command, 0, len(wedges)*18)
	for _, w := range wedges {
		cmds = append(cmds, NewShape{})
		cmds = appendWedge(cmds, o, w)
		cmds = append(cmds, AddShape{}, Update{})
	}
	return cmds
}

// appendWedge appends the paint commands for a single wedge.
// Wedges without fill are skipped.  A NaN stroke width is neither below 1
// nor above 0, so such wedges are skipped as well.
func appendWedge(cmds []Command, o vec.Vec2, w Wedge) []Command {
	if w.Fill == "" {
		return cmds
	}

	outline := func(cmds []Command) []Command {
		return append(cmds,
			MoveTo{P: o},
			Arc{Center: o, Radius: w.Radius, Start: w.Start, End: w.End},
			LineTo{P: o},
		)
	}

	switch {
	case w.StrokeWidth < 1:
		cmds = append(cmds, BeginFill{Color: w.Fill})
		cmds = outline(cmds)
		cmds = append(cmds, EndFill{})
	case w.StrokeWidth > 0:
		cmds = append(cmds, BeginFill{Color: w.Fill})
		cmds = outline(cmds)
		cmds = append(cmds,
			EndFill{},
			SetStrokeWidth{Width: w.StrokeWidth},
			BeginStroke{Color: w.StrokeColor},
		)
		cmds = outline(cmds)
		cmds = append(cmds, EndStroke{})
	}
	return cmds
}

// Draw replays cmds onto dst.
func Draw(cmds []Command, dst Surface) {
	for _, c := range cmds {
		switch c := c.(type) {
		case NewShape:
			dst.NewShape()
		case MoveTo:
			dst.MoveTo(c.P)
		case Arc:
			dst.Arc(c.Center, c.Radius, c.Start, c.End)
		case LineTo:
			dst.LineTo(c.P)
		case BeginFill:
			dst.BeginFill(c.Color)
		case EndFill:
			dst.EndFill()
		case SetStrokeWidth:
			dst.SetStrokeWidth(c.Width)
		case BeginStroke:
			dst.BeginStroke(c.Color)
		case EndStroke:
			dst.EndStroke()
		case AddShape:
			dst.AddShape()
		case Update:
			dst.Update()
		}
	}
}
