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
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/starburst"
)

// TestCase defines a single chart scenario.
type TestCase struct {
	Name     string // lowercase a-z, 0-9 and _ only
	Settings starburst.Settings
	Slices   []starburst.Slice
	Width    int // canvas width in pixels
	Height   int // canvas height in pixels

	// Seed initializes the generator for fill colours which are not
	// given, so that every scenario renders identically each time.
	Seed uint64
}

// Options returns the render options for the scenario.
func (tc TestCase) Options() *starburst.Options {
	return &starburst.Options{Rand: rand.New(rand.NewPCG(tc.Seed, 0))}
}

// Commands returns the drawing commands for the scenario.
func (tc TestCase) Commands() []starburst.Command {
	return starburst.Render(tc.Settings, tc.Slices, tc.Options())
}

// palette is used for scenarios with many slices.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// centred returns settings for a chart in the middle of a size×size canvas.
func centred(size, rMin, rMax float64) starburst.Settings {
	return starburst.Settings{
		Origin: pt(size/2, size/2),
		Radius: starburst.Range{Min: rMin, Max: rMax},
	}
}

// ramp returns n slices with palette colours and values growing linearly
// from lo to hi.
func ramp(n int, lo, hi float64, stroke starburst.Stroke) []starburst.Slice {
	slices := make([]starburst.Slice, n)
	for i := range slices {
		v := lo
		if n > 1 {
			v += (hi - lo) * float64(i) / float64(n-1)
		}
		slices[i] = starburst.Slice{
			Fill:   palette[i%len(palette)],
			Stroke: stroke,
			Value:  v,
		}
	}
	return slices
}

// outlined returns a stroke with the given colour and width.
func outlined(color string, width float64) starburst.Stroke {
	return starburst.Stroke{Color: color, Width: starburst.LineWidth(width)}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
