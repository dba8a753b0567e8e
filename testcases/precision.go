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

// precisionCases place wedges at sub-pixel positions and exercise the
// clamping of values to the radius range.
var precisionCases = []TestCase{
	{
		Name: "subpixel_origin",
		Settings: starburst.Settings{
			Origin: pt(32.3, 31.7),
			Radius: starburst.Range{Max: 25},
		},
		Slices: ramp(6, 5, 25, noStroke),
		Width:  64,
		Height: 64,
	},
	{
		Name:     "tiny_radius",
		Settings: centred(16, 0, 2),
		Slices:   ramp(4, 0.5, 2, noStroke),
		Width:    16,
		Height:   16,
	},
	{
		Name:     "fractional_values",
		Settings: centred(64, 0, 30),
		Slices:   ramp(7, 10.25, 29.75, outlined("black", 1.5)),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "clamp_both_ends",
		Settings: centred(64, 12, 24),
		Slices:   ramp(6, -50, 100, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		// The lower bound is tested first, so every radius is either 20
		// (for values below 20) or 10.
		Name:     "inverted_range",
		Settings: centred(64, 20, 10),
		Slices:   ramp(6, 0, 30, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "zero_radius",
		Settings: centred(64, 0, 0),
		Slices:   ramp(3, 10, 30, outlined("black", 2)),
		Width:    64,
		Height:   64,
	},
}
