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
	"fmt"
	"image"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/starburst"
	"seehuhn.de/go/starburst/testcases"
)

// benchmarkChart returns the outline of a twelve slice chart, filling
// most of a size×size canvas.
func benchmarkChart(size int) *starburst.Outline {
	c := float64(size) / 2
	s := starburst.Settings{
		Origin: vec.Vec2{X: c, Y: c},
		Radius: starburst.Range{Min: 0.3 * c, Max: 0.9 * c},
		Angles: starburst.DegreeScale,
	}
	var in []starburst.Slice
	for i := range 12 {
		in = append(in, starburst.Slice{Fill: "#000", Value: float64(i+1) * 0.075 * c})
	}

	outline := &starburst.Outline{}
	for _, w := range starburst.Layout(s, in, nil) {
		outline.MoveTo(s.Origin)
		outline.Arc(s.Origin, w.Radius, w.Start, w.End)
		outline.LineTo(s.Origin)
		outline.Close()
	}
	return outline
}

func BenchmarkRasterizerChart(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			chart := benchmarkChart(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(chart.Path(), func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorChart(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			chart := benchmarkChart(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, chart.Path())
				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

func BenchmarkStrokeChart(b *testing.B) {
	const size = 400
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Width = 3
	chart := benchmarkChart(size)
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(chart.Path(), emit)
	}
}

// BenchmarkCanvasAll measures the complete drawing of all scenarios,
// reusing nothing between iterations.
func BenchmarkCanvasAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	cmds := make([][]starburst.Command, len(cases))
	for i, tc := range cases {
		cmds[i] = tc.Commands()
	}

	for b.Loop() {
		for i, tc := range cases {
			c := NewCanvas(tc.Width, tc.Height)
			starburst.Draw(cmds[i], c)
		}
	}
}
