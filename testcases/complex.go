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

func randomFills(n int, stroke starburst.Stroke) []starburst.Slice {
	slices := ramp(n, 10, 60, stroke)
	for i := range slices {
		slices[i].Fill = ""
	}
	return slices
}

// complexCases combine several features in one chart.
var complexCases = []TestCase{
	{
		Name:     "random_fills",
		Settings: centred(128, 0, 60),
		Slices:   randomFills(12, noStroke),
		Width:    128,
		Height:   128,
		Seed:     42,
	},
	{
		Name:     "random_fills_outlined",
		Settings: centred(128, 0, 60),
		Slices:   randomFills(12, starburst.Stroke{}),
		Width:    128,
		Height:   128,
		Seed:     7,
	},
	{
		Name: "clipped",
		Settings: starburst.Settings{
			Origin: pt(10, 118),
			Radius: starburst.Range{Min: 20, Max: 150},
		},
		Slices: ramp(9, 20, 150, outlined("#222", 2)),
		Width:  128,
		Height: 128,
	},
	{
		Name: "sunburst",
		Settings: starburst.Settings{
			Origin:         pt(64, 64),
			Radius:         starburst.Range{Min: 30, Max: 60},
			ReferenceAngle: -90,
			Angles:         starburst.DegreeScale,
		},
		Slices: []starburst.Slice{
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 60},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 35},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 55},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 40},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 60},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 35},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 55},
			{Fill: "gold", Stroke: outlined("orange", 2), Value: 40},
		},
		Width:  128,
		Height: 128,
	},
}
