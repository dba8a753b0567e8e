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

// Command genpdf writes every chart scenario as PDF, PNG and SVG files
// into testdata/reference, for visual comparison of the output surfaces.
//
// Run from the module root directory.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/starburst"
	"seehuhn.de/go/starburst/pdfsurface"
	"seehuhn.de/go/starburst/raster"
	"seehuhn.de/go/starburst/svgsurface"
	"seehuhn.de/go/starburst/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			cmds := tc.Commands()

			if err := generatePDF(tc, cmds, filepath.Join(refDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(tc, cmds, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generateSVG(tc, cmds, filepath.Join(refDir, name+".svg")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, cmds []starburst.Command, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	surf, err := pdfsurface.Create(pdfPath, float64(tc.Width), float64(tc.Height))
	if err != nil {
		return err
	}
	starburst.Draw(cmds, surf)
	return surf.Close()
}

func generatePNG(tc testcases.TestCase, cmds []starburst.Command, pngPath string) error {
	// PDF pages are white, so use the same background here.
	c := raster.NewCanvas(tc.Width, tc.Height)
	c.Background = color.White
	starburst.Draw(cmds, c)
	return c.Save(pngPath)
}

func generateSVG(tc testcases.TestCase, cmds []starburst.Command, svgPath string) (err error) {
	f, err := os.Create(svgPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	surf := svgsurface.New(f, tc.Width, tc.Height)
	surf.Title(tc.Name)
	starburst.Draw(cmds, surf)
	return surf.Close()
}
