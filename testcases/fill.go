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

var noStroke = outlined("", 0)

// fillCases contains charts where no wedge is outlined.
var fillCases = []TestCase{
	{
		Name:     "single",
		Settings: centred(64, 0, 30),
		Slices: []starburst.Slice{
			{Fill: "#d62728", Stroke: noStroke, Value: 30},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "two",
		Settings: centred(64, 0, 30),
		Slices: []starburst.Slice{
			{Fill: "#1f77b4", Stroke: noStroke, Value: 30},
			{Fill: "#ff7f0e", Stroke: noStroke, Value: 15},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:     "ramp",
		Settings: centred(128, 5, 60),
		Slices:   ramp(8, 5, 60, noStroke),
		Width:    128,
		Height:   128,
	},
	{
		Name: "translucent",
		Settings: starburst.Settings{
			Origin: pt(64, 64),
			Radius: starburst.Range{Min: 0, Max: 60},
			Angles: starburst.DegreeScale,
		},
		Slices: []starburst.Slice{
			{Fill: "rgba(31, 119, 180, 0.5)", Stroke: noStroke, Value: 60},
			{Fill: "rgba(255, 127, 14, 0.5)", Stroke: noStroke, Value: 40},
			{Fill: "rgba(44, 160, 44, 0.5)", Stroke: noStroke, Value: 50},
		},
		Width:  128,
		Height: 128,
	},
	{
		Name:     "keywords",
		Settings: centred(64, 0, 30),
		Slices: []starburst.Slice{
			{Fill: "steelblue", Stroke: noStroke, Value: 30},
			{Fill: "tomato", Stroke: noStroke, Value: 20},
			{Fill: "olivedrab", Stroke: noStroke, Value: 25},
			{Fill: "#fc0", Stroke: noStroke, Value: 10},
		},
		Width:  64,
		Height: 64,
	},
}
