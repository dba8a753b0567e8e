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

// Package starburst draws radial "starburst" charts.
//
// A starburst chart divides the full circle into equal wedges which share a
// common origin.  The angular width of every wedge is the same; the
// magnitude of each data value is shown only by the radius of its wedge.
//
// The package is split into three stages.  [Layout] merges the caller's
// [Settings] and [Slice] values with defaults and computes the geometry of
// every wedge.  [Render] turns this geometry into a list of [Command]
// values.  [Draw] replays such a list onto a [Surface].  A [Selection]
// applies the whole pipeline to several target surfaces and signals
// completion once.
package starburst

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/vec"
)

// Range is a closed interval of radii.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Settings holds the chart-wide parameters.
// The zero value is valid and describes a chart centred at (0, 0) where all
// radii collapse to zero.
type Settings struct {
	// Origin is the common centre of all wedges, in device coordinates.
	Origin vec.Vec2 `json:"origin"`

	// Radius bounds the radius of every wedge.  Values below Radius.Min
	// are drawn with radius Radius.Min, values above Radius.Max with
	// radius Radius.Max.  Min <= Max is not enforced.
	Radius Range `json:"radius"`

	// ReferenceAngle rotates the whole chart, in degrees.
	ReferenceAngle float64 `json:"referenceAngle"`

	// Angles selects the degree to radian conversion.
	Angles AngleScale `json:"-"`
}

// Stroke describes the outline of a wedge.
type Stroke struct {
	// Color is the outline colour.  The empty string selects
	// DefaultStrokeColor.
	Color string `json:"color,omitempty"`

	// Width is the outline width.  A nil pointer selects
	// DefaultStrokeWidth.  An explicit value is always kept, including
	// zero.  Widths below 1 suppress the outline.
	Width *float64 `json:"width,omitempty"`
}

// Slice describes one wedge of the chart, as given by the caller.
type Slice struct {
	// Fill is the fill colour, in any form understood by [ParseColor].
	// The empty string selects a random colour.
	Fill string `json:"fill,omitempty"`

	Stroke Stroke `json:"stroke"`

	// Value determines the radius of the wedge.
	Value float64 `json:"value"`
}

// LineWidth returns a pointer to w, for use in [Stroke.Width].
func LineWidth(w float64) *float64 {
	return &w
}
