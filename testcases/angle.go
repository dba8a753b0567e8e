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

func rotated(size float64, angle float64, scale starburst.AngleScale) starburst.Settings {
	s := centred(size, 0, size/2-4)
	s.ReferenceAngle = angle
	s.Angles = scale
	return s
}

// angleCases cover the reference angle and the two angle scales.  With the
// legacy scale, a full set of wedges only covers 324°.
var angleCases = []TestCase{
	{
		Name:     "legacy_four",
		Settings: rotated(64, 0, starburst.LegacyScale),
		Slices:   ramp(4, 28, 28, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "degree_four",
		Settings: rotated(64, 0, starburst.DegreeScale),
		Slices:   ramp(4, 28, 28, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "reference_90",
		Settings: rotated(64, 90, starburst.DegreeScale),
		Slices:   ramp(3, 28, 28, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "reference_negative",
		Settings: rotated(64, -45, starburst.DegreeScale),
		Slices:   ramp(3, 28, 28, noStroke),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "reference_large",
		Settings: rotated(64, 1000, starburst.LegacyScale),
		Slices:   ramp(5, 10, 28, outlined("black", 1)),
		Width:    64,
		Height:   64,
	},
}
