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
	"image/color"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/starburst"
	"seehuhn.de/go/starburst/testcases"
)

// TestAgainstVector compares the coverage of every wedge with the result
// of golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if category == "large" {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
				ref := vector.NewRasterizer(w, h)
				origin := starburst.Normalize(tc.Settings).Origin

				for _, wedge := range starburst.Layout(tc.Settings, tc.Slices, tc.Options().Rand) {
					if !insideCanvas(origin, wedge.Radius, w, h) {
						// only wedges inside the canvas are compared
						continue
					}
					outline := wedgeOutline(origin, wedge)

					actual := make([]byte, w*h)
					r.Fill(outline.Path(), func(y, xMin int, coverage []float32) {
						row := actual[y*w:]
						for i, c := range coverage {
							row[xMin+i] = byte(min(255, int(c*255+0.5)))
						}
					})

					expected := image.NewAlpha(image.Rect(0, 0, w, h))
					ref.Reset(w, h)
					addToVector(ref, outline.Path())
					ref.Draw(expected, expected.Bounds(), image.Opaque, image.Point{})

					wedgeName := fmt.Sprintf("%s_%d", name, wedge.Index)
					if err := compareImages(wedgeName, expected.Pix, actual, w, h); err != nil {
						t.Errorf("wedge %d: %v", wedge.Index, err)
					}
				}
			})
		}
	}
}

// TestCanvasAllCases draws every scenario and checks that each slice was
// presented.
func TestCanvasAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			c := NewCanvas(tc.Width, tc.Height)
			starburst.Draw(tc.Commands(), c)
			if c.Frames() != len(tc.Slices) {
				t.Errorf("%s_%s: %d frames, want %d",
					category, tc.Name, c.Frames(), len(tc.Slices))
			}
		}
	}
}

func insideCanvas(o vec.Vec2, r float64, w, h int) bool {
	r = max(r, 0)
	return o.X-r >= 0 && o.Y-r >= 0 && o.X+r <= float64(w) && o.Y+r <= float64(h)
}

func wedgeOutline(o vec.Vec2, w starburst.Wedge) *starburst.Outline {
	outline := &starburst.Outline{}
	outline.MoveTo(o)
	outline.Arc(o, w.Radius, w.Start, w.End)
	outline.LineTo(o)
	return outline
}

// addToVector feeds a path to a vector.Rasterizer.  Subpaths are closed
// explicitly, since vector only accumulates what it is given.
func addToVector(r *vector.Rasterizer, p path.Path) {
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y),
			)
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	// The two rasterizers flatten curves differently, so small differences
	// along the edges are expected.
	var failures []string
	if p80 > 2 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want <=2)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a three panel image into the debug directory:
// actual output (left), difference (middle) and reference (right).
// Green marks pixels where the output is too light, red where it is too
// dark.
func writeDiffImage(name string, expected, actual []byte, w, h int) error {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.SetNRGBA(x, y, color.NRGBA{R: a, G: a, B: a, A: 255})

			diff := int(expected[i]) - int(actual[i])
			diffColor := color.NRGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.SetNRGBA(x+w, y, diffColor)

			e := expected[i]
			img.SetNRGBA(x+w*2, y, color.NRGBA{R: e, G: e, B: e, A: 255})
		}
	}

	return imaging.Save(img, filepath.Join("debug", name+".png"))
}
