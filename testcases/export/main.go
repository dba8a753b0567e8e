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

// Command export writes the chart scenarios, together with the drawing
// commands they produce, to testdata/testcases.json.  Other
// implementations can use this file to check that they draw the same
// shapes.
//
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/starburst"
	"seehuhn.de/go/starburst/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Seed     uint64        `json:"seed"`
	Angles   string        `json:"angles"`
	Settings jsonSettings  `json:"settings"`
	Slices   []jsonSlice   `json:"slices"`
	Commands []jsonCommand `json:"commands"`
}

type jsonSettings struct {
	Origin         [2]number `json:"origin"`
	Radius         [2]number `json:"radius"`
	ReferenceAngle number    `json:"reference_angle"`
}

type jsonSlice struct {
	Fill        string  `json:"fill,omitempty"`
	StrokeColor string  `json:"stroke_color,omitempty"`
	StrokeWidth *number `json:"stroke_width,omitempty"`
	Value       number  `json:"value"`
}

type jsonCommand struct {
	Cmd   string   `json:"cmd"`
	Args  []number `json:"args,omitempty"`
	Color string   `json:"color,omitempty"`
}

// number is a float64 which also encodes non-finite values, as the
// strings "NaN", "+Inf" and "-Inf".
type number float64

func (x number) MarshalJSON() ([]byte, error) {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	s := tc.Settings
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Seed:   tc.Seed,
		Angles: s.Angles.String(),
		Settings: jsonSettings{
			Origin:         [2]number{number(s.Origin.X), number(s.Origin.Y)},
			Radius:         [2]number{number(s.Radius.Min), number(s.Radius.Max)},
			ReferenceAngle: number(s.ReferenceAngle),
		},
		Slices:   []jsonSlice{},
		Commands: commandsToJSON(tc.Commands()),
	}
	for _, sl := range tc.Slices {
		js := jsonSlice{
			Fill:        sl.Fill,
			StrokeColor: sl.Stroke.Color,
			Value:       number(sl.Value),
		}
		if sl.Stroke.Width != nil {
			w := number(*sl.Stroke.Width)
			js.StrokeWidth = &w
		}
		jtc.Slices = append(jtc.Slices, js)
	}
	return jtc
}

func commandsToJSON(cmds []starburst.Command) []jsonCommand {
	res := make([]jsonCommand, 0, len(cmds))
	for _, c := range cmds {
		var jc jsonCommand
		switch c := c.(type) {
		case starburst.NewShape:
			jc.Cmd = "new_shape"
		case starburst.MoveTo:
			jc.Cmd = "move_to"
			jc.Args = []number{number(c.P.X), number(c.P.Y)}
		case starburst.Arc:
			jc.Cmd = "arc"
			jc.Args = []number{
				number(c.Center.X), number(c.Center.Y),
				number(c.Radius), number(c.Start), number(c.End),
			}
		case starburst.LineTo:
			jc.Cmd = "line_to"
			jc.Args = []number{number(c.P.X), number(c.P.Y)}
		case starburst.BeginFill:
			jc.Cmd = "begin_fill"
			jc.Color = c.Color
		case starburst.EndFill:
			jc.Cmd = "end_fill"
		case starburst.SetStrokeWidth:
			jc.Cmd = "set_stroke_width"
			jc.Args = []number{number(c.Width)}
		case starburst.BeginStroke:
			jc.Cmd = "begin_stroke"
			jc.Color = c.Color
		case starburst.EndStroke:
			jc.Cmd = "end_stroke"
		case starburst.AddShape:
			jc.Cmd = "add_shape"
		case starburst.Update:
			jc.Cmd = "update"
		}
		res = append(res, jc)
	}
	return res
}
