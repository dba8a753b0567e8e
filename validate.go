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
	"errors"
	"fmt"
	"math"
)

// ErrUnknownContainer indicates that a container identifier could not be
// resolved to a drawing surface.
var ErrUnknownContainer = errors.New("unknown container")

// IssueKind classifies problems found by [Validate] and [Selection].
type IssueKind int

const (
	// IssueNonFinite marks a NaN or infinite number.  NaN values are
	// treated as unset, infinite values are used as given.
	IssueNonFinite IssueKind = iota + 1

	// IssueEmpty marks a chart without slices.  Nothing is drawn.
	IssueEmpty

	// IssueContainer marks a container which could not be resolved.
	// Nothing is drawn into it.
	IssueContainer

	// IssueColor marks a colour string which cannot be parsed.
	IssueColor

	// IssueRadiusOrder marks a radius range with Min > Max.
	IssueRadiusOrder

	// IssueRadiusNegative marks a radius range with a negative lower bound.
	IssueRadiusNegative
)

func (k IssueKind) String() string {
	switch k {
	case IssueNonFinite:
		return "non-finite number"
	case IssueEmpty:
		return "empty slice list"
	case IssueContainer:
		return "unresolved container"
	case IssueColor:
		return "invalid colour"
	case IssueRadiusOrder:
		return "radius min exceeds max"
	case IssueRadiusNegative:
		return "negative radius"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue describes a problem with the input of a chart.
// Issues never stop a chart from being drawn.
type Issue struct {
	Kind IssueKind

	// Slice is the index of the affected slice, or -1 for chart-wide
	// problems.
	Slice int

	// Field names the affected input field, if any.
	Field string

	// Container is the affected container identifier, if any.
	Container string

	Err error
}

func (is Issue) Error() string {
	msg := is.Kind.String()
	switch {
	case is.Container != "":
		msg = fmt.Sprintf("container %q: %s", is.Container, msg)
	case is.Slice >= 0 && is.Field != "":
		msg = fmt.Sprintf("slice %d: %s: %s", is.Slice, is.Field, msg)
	case is.Field != "":
		msg = fmt.Sprintf("%s: %s", is.Field, msg)
	}
	if is.Err != nil {
		msg += ": " + is.Err.Error()
	}
	return msg
}

func (is Issue) Unwrap() error {
	return is.Err
}

// Validate checks the chart input for problems.  The returned issues are
// informational: [Render] accepts any input.
func Validate(s Settings, slices []Slice) []Issue {
	var res []Issue

	chartNumbers := []struct {
		field string
		val   float64
	}{
		{"origin.x", s.Origin.X},
		{"origin.y", s.Origin.Y},
		{"radius.min", s.Radius.Min},
		{"radius.max", s.Radius.Max},
		{"referenceAngle", s.ReferenceAngle},
	}
	for _, n := range chartNumbers {
		if !isFinite(n.val) {
			res = append(res, Issue{Kind: IssueNonFinite, Slice: -1, Field: n.field})
		}
	}

	g := Normalize(s)
	if g.Radius.Min > g.Radius.Max {
		res = append(res, Issue{
			Kind:  IssueRadiusOrder,
			Slice: -1,
			Field: "radius",
			Err:   fmt.Errorf("min=%g max=%g", g.Radius.Min, g.Radius.Max),
		})
	}
	if g.Radius.Min < 0 {
		res = append(res, Issue{
			Kind:  IssueRadiusNegative,
			Slice: -1,
			Field: "radius.min",
			Err:   fmt.Errorf("min=%g", g.Radius.Min),
		})
	}

	if len(slices) == 0 {
		res = append(res, Issue{Kind: IssueEmpty, Slice: -1})
	}

	for i, sl := range slices {
		if !isFinite(sl.Value) {
			res = append(res, Issue{Kind: IssueNonFinite, Slice: i, Field: "value"})
		}
		if w := sl.Stroke.Width; w != nil && !isFinite(*w) {
			res = append(res, Issue{Kind: IssueNonFinite, Slice: i, Field: "stroke.width"})
		}
		if sl.Fill != "" {
			if _, err := ParseColor(sl.Fill); err != nil {
				res = append(res, Issue{Kind: IssueColor, Slice: i, Field: "fill", Err: err})
			}
		}
		if sl.Stroke.Color != "" {
			if _, err := ParseColor(sl.Stroke.Color); err != nil {
				res = append(res, Issue{Kind: IssueColor, Slice: i, Field: "stroke.color", Err: err})
			}
		}
	}

	return res
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
