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
	"math"
	"math/rand/v2"
	"regexp"
	"testing"
)

func TestNormalizeSettings(t *testing.T) {
	nan := math.NaN()
	in := Settings{
		Origin:         vec2(nan, 7),
		Radius:         Range{Min: nan, Max: 30},
		ReferenceAngle: nan,
		Angles:         DegreeScale,
	}
	got := Normalize(in)
	want := Settings{
		Origin: vec2(0, 7),
		Radius: Range{Min: 0, Max: 30},
		Angles: DegreeScale,
	}
	if got != want {
		t.Errorf("Normalize = %+v, want %+v", got, want)
	}
	if !math.IsNaN(in.Origin.X) {
		t.Error("input was modified")
	}
}

func TestNormalizeSlices(t *testing.T) {
	in := []Slice{
		{},
		{Fill: "red", Stroke: Stroke{Color: "blue", Width: LineWidth(0)}, Value: 4},
		{Stroke: Stroke{Width: LineWidth(2.5)}, Value: math.NaN()},
	}
	out := NormalizeSlices(in, rand.New(rand.NewPCG(7, 8)))

	if len(out) != len(in) {
		t.Fatalf("got %d slices, want %d", len(out), len(in))
	}

	// unset fields
	if out[0].Stroke.Color != DefaultStrokeColor {
		t.Errorf("stroke colour %q", out[0].Stroke.Color)
	}
	if out[0].Stroke.Width == nil || *out[0].Stroke.Width != DefaultStrokeWidth {
		t.Errorf("stroke width not defaulted")
	}
	if out[0].Value != 0 {
		t.Errorf("value %g", out[0].Value)
	}

	// explicit values, including a zero width, are kept
	if out[1].Fill != "red" || out[1].Stroke.Color != "blue" || out[1].Value != 4 {
		t.Errorf("explicit values changed: %+v", out[1])
	}
	if *out[1].Stroke.Width != 0 {
		t.Errorf("explicit zero width became %g", *out[1].Stroke.Width)
	}

	if out[2].Value != 0 {
		t.Errorf("NaN value became %g, want 0", out[2].Value)
	}
	if *out[2].Stroke.Width != 2.5 {
		t.Errorf("width %g, want 2.5", *out[2].Stroke.Width)
	}

	// the caller's records are untouched
	if in[0].Fill != "" || in[0].Stroke.Width != nil || in[0].Stroke.Color != "" {
		t.Errorf("input was modified: %+v", in[0])
	}
	if out[1].Stroke.Width == in[1].Stroke.Width {
		t.Error("output shares the width pointer with the input")
	}
}

func TestRandomColor(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	rng := rand.New(rand.NewPCG(9, 10))
	for range 1000 {
		c := RandomColor(rng)
		if !pattern.MatchString(c) {
			t.Fatalf("malformed colour %q", c)
		}
		if c == "#ffffff" {
			t.Fatalf("colour %q is out of range", c)
		}
	}
}

// lowSource makes rand.IntN return 0, to check that short values are padded.
type lowSource struct{}

func (lowSource) Uint64() uint64 { return 1 << 32 }

func TestRandomColorPadding(t *testing.T) {
	if c := RandomColor(rand.New(lowSource{})); c != "#000000" {
		t.Errorf("got %q, want #000000", c)
	}
}

func TestRandomFillsDiffer(t *testing.T) {
	out := NormalizeSlices([]Slice{{}, {}}, nil)
	if out[0].Fill == out[1].Fill {
		// one chance in 16 million
		t.Errorf("two generated fills are identical: %q", out[0].Fill)
	}
}

func TestRandomFillSeeded(t *testing.T) {
	a := NormalizeSlices([]Slice{{}, {}}, rand.New(rand.NewPCG(11, 12)))
	b := NormalizeSlices([]Slice{{}, {}}, rand.New(rand.NewPCG(11, 12)))
	for i := range a {
		if a[i].Fill != b[i].Fill {
			t.Errorf("slice %d: %q != %q with identical seeds", i, a[i].Fill, b[i].Fill)
		}
	}
}
