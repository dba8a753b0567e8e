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
	"log/slog"
)

// Provider resolves container identifiers to drawing surfaces.
type Provider interface {
	Surface(id string) (Surface, error)
}

// ProviderFunc adapts a function to the [Provider] interface.
type ProviderFunc func(id string) (Surface, error)

// Surface implements [Provider].
func (f ProviderFunc) Surface(id string) (Surface, error) {
	return f(id)
}

// Surfaces is a [Provider] backed by a map.
type Surfaces map[string]Surface

// Surface implements [Provider].
func (m Surfaces) Surface(id string) (Surface, error) {
	s, ok := m[id]
	if !ok || s == nil {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownContainer)
	}
	return s, nil
}

// Selection is an ordered set of target containers.
type Selection struct {
	IDs      []string
	Provider Provider

	// Options is passed to [Render] for every container.
	Options *Options

	// Logger receives debug traces for every container.
	// If this is nil, slog.Default() is used.
	Logger *slog.Logger

	// OnIssue, if set, receives all problems found in the input and while
	// resolving containers.  Otherwise problems are logged as warnings.
	OnIssue func(Issue)
}

// Select returns a selection of the given containers.
func Select(p Provider, ids ...string) *Selection {
	return &Selection{IDs: ids, Provider: p}
}

// Starburst draws the chart into every container of the selection, in
// order.  Containers which cannot be resolved are reported and skipped.
// After all containers have been processed, done is called exactly once,
// if it is non-nil.  The method returns sel, to allow chaining.
func (sel *Selection) Starburst(s Settings, slices []Slice, done func()) *Selection {
	logger := sel.Logger
	if logger == nil {
		logger = slog.Default()
	}
	report := sel.OnIssue
	if report == nil {
		report = func(is Issue) {
			logger.Warn("starburst input", "kind", is.Kind.String(), "issue", is.Error())
		}
	}

	for _, is := range Validate(s, slices) {
		report(is)
	}

	for _, id := range sel.IDs {
		dst, err := sel.resolve(id)
		if err != nil {
			report(Issue{Kind: IssueContainer, Slice: -1, Container: id, Err: err})
			continue
		}

		cmds := Render(s, slices, sel.Options)
		Draw(cmds, dst)
		logger.Debug("starburst drawn",
			"container", id,
			"slices", len(slices),
			"commands", len(cmds))
	}

	if done != nil {
		done()
	}
	return sel
}

func (sel *Selection) resolve(id string) (Surface, error) {
	if id == "" || sel.Provider == nil {
		return nil, ErrUnknownContainer
	}
	dst, err := sel.Provider.Surface(id)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownContainer)
	}
	return dst, nil
}
