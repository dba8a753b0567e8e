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

package testcases

import (
	"math"

	"seehuhn.de/go/starburst"
)

// degenerateCases contain invalid or missing input.  Drawing these must
// never fail.
var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Width:  32,
		Height: 32,
	},
	{
		Name:   "zero_settings",
		Slices: ramp(4, 10, 20, starburst.Stroke{}),
		Width:  32,
		Height: 32,
	},
	{
		Name:     "nan_values",
		Settings: centred(64, 5, 30),
		Slices: []starburst.Slice{
			{Fill: "#1f77b4", Value: math.NaN()},
			{Fill: "#ff7f0e", Value: 20},
			{Fill: "#2ca02c", Value: 30, Stroke: starburst.Stroke{Width: starburst.LineWidth(math.NaN())}},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "nan_settings",
		Settings: starburst.Settings{
			Origin:         pt(math.NaN(), 32),
			Radius:         starburst.Range{Min: math.NaN(), Max: 30},
			ReferenceAngle: math.Inf(1),
		},
		Slices: ramp(3, 10, 30, noStroke),
		Width:  64,
		Height: 64,
	},
	{
		Name:     "bad_colors",
		Settings: centred(64, 0, 30),
		Slices: []starburst.Slice{
			{Fill: "no such colour", Value: 30},
			{Fill: "#12345", Stroke: outlined("rgb(300, 0, 0)", 2), Value: 30},
			{Fill: "#00ff00", Stroke: outlined("bogus", 2), Value: 30},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "negative_radius",
		Settings: centred(64, -20, -10),
		Slices:   ramp(4, 10, 20, outlined("black", 2)),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "negative_width",
		Settings: centred(64, 0, 30),
		Slices:   ramp(4, 10, 30, outlined("black", -3)),
		Width:    64,
		Height:   64,
	},
}
