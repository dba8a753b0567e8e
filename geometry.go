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
	"math/rand/v2"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// AngleScale selects how angles given in degrees are converted to radians.
type AngleScale int

const (
	// LegacyScale multiplies degrees by π/200.  A full turn of 360 degrees
	// thus only covers 324 geometric degrees.  This is the historical
	// behaviour of starburst charts and the default.
	LegacyScale AngleScale = iota

	// DegreeScale is the usual conversion, multiplying degrees by π/180.
	DegreeScale
)

func (a AngleScale) factor() float64 {
	if a == DegreeScale {
		return math.Pi / 180
	}
	return math.Pi / 200
}

// ToRadians converts an angle in degrees to radians.
func (a AngleScale) ToRadians(deg float64) float64 {
	return deg * a.factor()
}

// FromRadians converts an angle in radians back to degrees.
func (a AngleScale) FromRadians(rad float64) float64 {
	return rad / a.factor()
}

func (a AngleScale) String() string {
	switch a {
	case LegacyScale:
		return "legacy"
	case DegreeScale:
		return "degree"
	default:
		return "AngleScale(" + strconv.Itoa(int(a)) + ")"
	}
}

// Wedge is the computed geometry and paint of one slice.
type Wedge struct {
	Index       int
	Fill        string
	StrokeColor string
	StrokeWidth float64

	// Value is the normalized value, before clamping.
	Value float64

	// Radius is Value clamped to the chart's radius range.
	Radius float64

	// Start and End are the angles of the two straight edges, in radians.
	// Angles increase clockwise in device space.
	Start, End float64
}

// Clamp restricts v to the interval [lo, hi].
// The lower bound is tested first, so if lo > hi every v below lo
// maps to lo and everything else maps to hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// Layout normalizes the inputs and computes the geometry of every wedge.
// All wedges have the same angular width 360/len(slices) degrees; the
// value of a slice only influences its radius.  Wedges are returned in input
// order.  The rng is used for fill colours which are not given.
func Layout(s Settings, slices []Slice, rng *rand.Rand) []Wedge {
	if len(slices) == 0 {
		return nil
	}
	g := Normalize(s)
	norm := NormalizeSlices(slices, rng)

	width := 360 / float64(len(norm))
	offset := g.Angles.ToRadians(g.ReferenceAngle)
	span := g.Angles.ToRadians(width)

	wedges := make([]Wedge, len(norm))
	for i, sl := range norm {
		start := g.Angles.ToRadians(float64(i)*width) + offset
		wedges[i] = Wedge{
			Index:       i,
			Fill:        sl.Fill,
			StrokeColor: sl.Stroke.Color,
			StrokeWidth: *sl.Stroke.Width,
			Value:       sl.Value,
			Radius:      Clamp(sl.Value, g.Radius.Min, g.Radius.Max),
			Start:       start,
			End:         start + span,
		}
	}
	return wedges
}

// ArcPoint returns the point at angle theta on the circle of radius r
// around c.  Angles are measured clockwise from the positive x-axis, in
// y-down device space.
func ArcPoint(c vec.Vec2, r, theta float64) vec.Vec2 {
	return vec2(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
}

func vec2(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
