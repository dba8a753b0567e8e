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
	"fmt"
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/starburst"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range slices.Sorted(maps.Keys(All)) {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range All[category] {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid test case name %q", category, tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate test case %q", full)
			}
			seen[full] = true
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid canvas size %dx%d", full, tc.Width, tc.Height)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				a := fmt.Sprint(tc.Commands())
				b := fmt.Sprint(tc.Commands())
				if a != b {
					t.Error("repeated rendering gives different commands")
				}
			})
		}
	}
}

func TestOneUpdatePerSlice(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			updates := 0
			for _, cmd := range tc.Commands() {
				if _, ok := cmd.(starburst.Update); ok {
					updates++
				}
			}
			if updates != len(tc.Slices) {
				t.Errorf("%s_%s: %d updates for %d slices",
					category, tc.Name, updates, len(tc.Slices))
			}
		}
	}
}

func TestDegenerateInputIsReported(t *testing.T) {
	for _, tc := range degenerateCases {
		switch tc.Name {
		case "zero_settings", "negative_width":
			// valid input, which is completed by the defaults
			continue
		}
		if issues := starburst.Validate(tc.Settings, tc.Slices); len(issues) == 0 {
			t.Errorf("%s: no issues reported", tc.Name)
		}
	}
}
