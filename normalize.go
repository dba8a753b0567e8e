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
	"fmt"
	"math"
	"math/rand/v2"
)

// Default values for unset slice fields.
const (
	DefaultStrokeColor = "#cccccc"
	DefaultStrokeWidth = 1.0
)

// maxRandomFill is the exclusive upper bound for generated fill colours.
// The value 0xffffff itself is never produced.
const maxRandomFill = 0xffffff

// Normalize returns a copy of s where all unset numeric fields are replaced
// by their defaults.  Since the default for every chart-wide number is zero,
// this only affects NaN values, which are treated as unset.
func Normalize(s Settings) Settings {
	return Settings{
		Origin: vec2(orZero(s.Origin.X), orZero(s.Origin.Y)),
		Radius: Range{
			Min: orZero(s.Radius.Min),
			Max: orZero(s.Radius.Max),
		},
		ReferenceAngle: orZero(s.ReferenceAngle),
		Angles:         s.Angles,
	}
}

// NormalizeSlices returns new slice records with all defaults filled in.
// The input is not modified.
//
//	Fill          ""   -> random colour from rng
//	Stroke.Color  ""   -> DefaultStrokeColor
//	Stroke.Width  nil  -> DefaultStrokeWidth (an explicit 0 is kept)
//	Value         NaN  -> 0
//
// If rng is nil, a randomly seeded generator is used.
func NormalizeSlices(slices []Slice, rng *rand.Rand) []Slice {
	if rng == nil {
		rng = newRand()
	}

	res := make([]Slice, len(slices))
	for i, in := range slices {
		out := Slice{
			Fill:  in.Fill,
			Value: orZero(in.Value),
			Stroke: Stroke{
				Color: in.Stroke.Color,
			},
		}
		if out.Fill == "" {
			out.Fill = RandomColor(rng)
		}
		if out.Stroke.Color == "" {
			out.Stroke.Color = DefaultStrokeColor
		}
		w := DefaultStrokeWidth
		if in.Stroke.Width != nil {
			w = *in.Stroke.Width
		}
		out.Stroke.Width = &w
		res[i] = out
	}
	return res
}

// RandomColor returns a random colour of the form "#rrggbb".
// The result always has six hex digits.
func RandomColor(rng *rand.Rand) string {
	return fmt.Sprintf("#%06x", rng.IntN(maxRandomFill))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// orZero maps NaN to 0 and leaves all other values unchanged.
func orZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
