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

// largeCases contain big canvases and many slices.
var largeCases = []TestCase{
	{
		Name:     "hundred",
		Settings: centred(512, 20, 250),
		Slices:   ramp(100, 20, 250, outlined("#ffffff", 1)),
		Width:    512,
		Height:   512,
	},
	{
		Name:     "thousand",
		Settings: centred(512, 0, 250),
		Slices:   randomFills(1000, noStroke),
		Width:    512,
		Height:   512,
		Seed:     3,
	},
	{
		Name: "huge_radius",
		Settings: starburst.Settings{
			Origin: pt(256, 256),
			Radius: starburst.Range{Max: 1e6},
			Angles: starburst.DegreeScale,
		},
		Slices: ramp(4, 100, 1e6, outlined("black", 4)),
		Width:  512,
		Height: 512,
	},
}
