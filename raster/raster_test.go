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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/starburst"
)

func polyline(closed bool, pts ...vec.Vec2) *starburst.Outline {
	o := &starburst.Outline{}
	o.MoveTo(pts[0])
	for _, p := range pts[1:] {
		o.LineTo(p)
	}
	if closed {
		o.Close()
	}
	return o
}

// totalCoverage adds up the coverage of all pixels.
func totalCoverage(t *testing.T) (Emitter, *float64) {
	t.Helper()
	sum := new(float64)
	emit := func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c < 0 || c > 1 {
				t.Errorf("pixel (%d,%d): coverage %g out of range", xMin+i, y, c)
			}
			*sum += float64(c)
		}
	}
	return emit, sum
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := polyline(true,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 1},
	)

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.Fill(triangle.Path(), func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestFillArea(t *testing.T) {
	square := polyline(false,
		vec.Vec2{X: 2.5, Y: 2},
		vec.Vec2{X: 6.5, Y: 2},
		vec.Vec2{X: 6.5, Y: 6},
		vec.Vec2{X: 2.5, Y: 6},
	)
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	emit, sum := totalCoverage(t)
	r.Fill(square.Path(), emit)
	if math.Abs(*sum-16) > 1e-4 {
		t.Errorf("square: total coverage %g, want 16", *sum)
	}

	// Opposite orientation gives the same result under the nonzero rule.
	reversed := polyline(false,
		vec.Vec2{X: 2.5, Y: 6},
		vec.Vec2{X: 6.5, Y: 6},
		vec.Vec2{X: 6.5, Y: 2},
		vec.Vec2{X: 2.5, Y: 2},
	)
	emit, sum = totalCoverage(t)
	r.Fill(reversed.Path(), emit)
	if math.Abs(*sum-16) > 1e-4 {
		t.Errorf("reversed square: total coverage %g, want 16", *sum)
	}
}

func TestFillCircle(t *testing.T) {
	disc := &starburst.Outline{}
	disc.Arc(vec.Vec2{X: 20, Y: 20}, 10, 0, 2*math.Pi)

	r := NewRasterizer(rect.Rect{URx: 40, URy: 40})
	r.Flatness = 0.01
	emit, sum := totalCoverage(t)
	r.Fill(disc.Path(), emit)

	want := math.Pi * 100
	if math.Abs(*sum-want) > 0.01*want {
		t.Errorf("disc: total coverage %g, want %g", *sum, want)
	}
}

func TestFillClip(t *testing.T) {
	square := polyline(true,
		vec.Vec2{X: -10, Y: -10},
		vec.Vec2{X: 30, Y: -10},
		vec.Vec2{X: 30, Y: 30},
		vec.Vec2{X: -10, Y: 30},
	)
	r := NewRasterizer(rect.Rect{LLx: 2, LLy: 3, URx: 12, URy: 8})
	r.Fill(square.Path(), func(y, xMin int, coverage []float32) {
		if y < 3 || y >= 8 {
			t.Errorf("row %d outside clip", y)
		}
		if xMin != 2 || len(coverage) != 10 {
			t.Errorf("row %d: got columns %d to %d", y, xMin, xMin+len(coverage))
		}
		for i, c := range coverage {
			if c != 1 {
				t.Errorf("pixel (%d,%d): coverage %g", xMin+i, y, c)
			}
		}
	})
}

func TestFillCTM(t *testing.T) {
	unit := polyline(true,
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 1, Y: 1},
		vec.Vec2{X: 0, Y: 1},
	)
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.CTM = matrix.Matrix{4, 0, 0, 3, 5, 5}
	emit, sum := totalCoverage(t)
	r.Fill(unit.Path(), emit)
	if math.Abs(*sum-12) > 1e-4 {
		t.Errorf("scaled square: total coverage %g, want 12", *sum)
	}
}

func TestStrokeCaps(t *testing.T) {
	line := polyline(false, vec.Vec2{X: 2, Y: 5}, vec.Vec2{X: 12, Y: 5})

	cases := []struct {
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{graphics.LineCapButt, 20 - 1e-4, 20 + 1e-4},
		{graphics.LineCapSquare, 24 - 1e-4, 24 + 1e-4},
		// round caps are approximated by polygons inside the circle
		{graphics.LineCapRound, 22.5, 20 + math.Pi},
	}
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r.Width = 2
			r.Cap = tc.cap
			emit, sum := totalCoverage(t)
			r.Stroke(line.Path(), emit)
			if *sum < tc.min || *sum > tc.max {
				t.Errorf("total coverage %g, want [%g, %g]", *sum, tc.min, tc.max)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := polyline(false,
		vec.Vec2{X: 2, Y: 10},
		vec.Vec2{X: 10, Y: 10},
		vec.Vec2{X: 10, Y: 2},
	)

	cases := []struct {
		name       string
		join       graphics.LineJoinStyle
		miterLimit float64
		min, max   float64
	}{
		{"miter", graphics.LineJoinMiter, 10, 64 - 1e-4, 64 + 1e-4},
		{"miter-limited", graphics.LineJoinMiter, 1.2, 62 - 1e-4, 62 + 1e-4},
		{"bevel", graphics.LineJoinBevel, 10, 62 - 1e-4, 62 + 1e-4},
		{"round", graphics.LineJoinRound, 10, 62, 60 + math.Pi},
	}
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r.Width = 4
			r.Join = tc.join
			r.MiterLimit = tc.miterLimit
			emit, sum := totalCoverage(t)
			r.Stroke(corner.Path(), emit)
			if *sum < tc.min || *sum > tc.max {
				t.Errorf("total coverage %g, want [%g, %g]", *sum, tc.min, tc.max)
			}
		})
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := &starburst.Outline{}
	dot.MoveTo(vec.Vec2{X: 5, Y: 5})
	dot.Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 4

	emit, sum := totalCoverage(t)
	r.Stroke(dot.Path(), emit)
	if *sum != 0 {
		t.Errorf("butt cap dot: total coverage %g, want 0", *sum)
	}

	r.Cap = graphics.LineCapRound
	emit, sum = totalCoverage(t)
	r.Stroke(dot.Path(), emit)
	if *sum < 3.5 || *sum > 4*math.Pi {
		t.Errorf("round cap dot: total coverage %g, want about %g", *sum, 4*math.Pi)
	}

	r.Width = 0
	emit, sum = totalCoverage(t)
	r.Stroke(polyline(false, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 8, Y: 8}).Path(), emit)
	if *sum != 0 {
		t.Errorf("zero width: total coverage %g, want 0", *sum)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}

	clip := rect.Rect{URx: 5, URy: 5}
	r.Reset(clip)
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.Join != graphics.LineJoinMiter {
		t.Errorf("stroke parameters not reset: %g %v %v", r.Width, r.Cap, r.Join)
	}
	if r.CTM != matrix.Identity || r.Clip != clip || r.MiterLimit != 10 {
		t.Errorf("unexpected state after reset: %v %v %g", r.CTM, r.Clip, r.MiterLimit)
	}
}
