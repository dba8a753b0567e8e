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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrColor is returned (wrapped) by [ParseColor] for unrecognised colours.
var ErrColor = errors.New("invalid colour")

// ParseColor converts a colour string to a colour value.
// The following forms are understood:
//
//	#rgb  #rgba  #rrggbb  #rrggbbaa
//	rgb(r, g, b)  rgba(r, g, b, a)
//	named colours from the SVG 1.1 specification, e.g. "steelblue"
//
// Matching is case-insensitive and ignores surrounding white space.
func ParseColor(s string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(key, "#"):
		if c, ok := parseHex(key[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(key, "rgb"):
		if c, ok := parseFunctional(key); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[key]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("%q: %w", s, ErrColor)
}

// FormatColor returns the "#rrggbb" form of c, ignoring alpha.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(h string) (color.NRGBA, bool) {
	var digits [8]byte
	switch len(h) {
	case 3, 4:
		for i := range len(h) {
			digits[2*i] = h[i]
			digits[2*i+1] = h[i]
		}
		if len(h) == 3 {
			digits[6], digits[7] = 'f', 'f'
		}
	case 6:
		copy(digits[:], h)
		digits[6], digits[7] = 'f', 'f'
	case 8:
		copy(digits[:], h)
	default:
		return color.NRGBA{}, false
	}

	v, err := strconv.ParseUint(string(digits[:]), 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}

// parseFunctional handles "rgb(...)" and "rgba(...)" notation.
// Colour channels are integers in 0-255, alpha is a number in [0, 1].
func parseFunctional(s string) (color.NRGBA, bool) {
	var args string
	var wantAlpha bool
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[5 : len(s)-1]
		wantAlpha = true
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[4 : len(s)-1]
	default:
		return color.NRGBA{}, false
	}

	parts := strings.Split(args, ",")
	if wantAlpha && len(parts) != 4 || !wantAlpha && len(parts) != 3 {
		return color.NRGBA{}, false
	}

	var ch [3]uint8
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, false
		}
		ch[i] = uint8(v)
	}
	alpha := uint8(255)
	if wantAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || !(a >= 0 && a <= 1) {
			return color.NRGBA{}, false
		}
		alpha = uint8(a*255 + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}
