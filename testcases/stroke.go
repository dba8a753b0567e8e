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

import "seehuhn.de/go/starburst"

// strokeCases exercise the rule that only wedges with a stroke width of
// at least 1 are outlined.
var strokeCases = []TestCase{
	{
		Name: "example",
		Settings: starburst.Settings{
			Origin: pt(100, 100),
			Radius: starburst.Range{Min: 10, Max: 200},
		},
		Slices: []starburst.Slice{
			{Fill: "#aa0000", Stroke: starburst.Stroke{Width: starburst.LineWidth(5)}, Value: 35},
			{Fill: "#00aa00", Stroke: starburst.Stroke{Width: starburst.LineWidth(1)}, Value: 93},
			{Stroke: starburst.Stroke{Width: starburst.LineWidth(1)}, Value: 0},
		},
		Width:  200,
		Height: 200,
		Seed:   1,
	},
	{
		Name:     "default_width",
		Settings: centred(64, 0, 28),
		Slices:   ramp(4, 10, 28, starburst.Stroke{}),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "below_threshold",
		Settings: centred(64, 0, 28),
		Slices:   ramp(4, 10, 28, outlined("black", 0.999)),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "thick",
		Settings: centred(128, 10, 50),
		Slices:   ramp(5, 10, 50, outlined("#333", 8)),
		Width:    128,
		Height:   128,
	},
	{
		Name:     "thick_narrow",
		Settings: centred(128, 40, 50),
		Slices:   ramp(24, 40, 50, outlined("white", 3)),
		Width:    128,
		Height:   128,
	},
	{
		Name:     "mixed",
		Settings: centred(128, 0, 60),
		Slices: []starburst.Slice{
			{Fill: "#1f77b4", Stroke: outlined("red", 0), Value: 60},
			{Fill: "#ff7f0e", Stroke: outlined("red", 0.5), Value: 50},
			{Fill: "#2ca02c", Stroke: outlined("red", 1), Value: 40},
			{Fill: "#d62728", Stroke: outlined("red", 2), Value: 30},
			{Fill: "#9467bd", Stroke: outlined("red", 6), Value: 20},
		},
		Width:  128,
		Height: 128,
	},
}
