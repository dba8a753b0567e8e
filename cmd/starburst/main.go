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

// Command starburst draws a starburst chart from a JSON description.
//
// The chart file has the form
//
//	{
//	  "settings": {
//	    "origin": {"x": 200, "y": 200},
//	    "radius": {"min": 10, "max": 190},
//	    "referenceAngle": 0
//	  },
//	  "slices": [
//	    {"fill": "#aa0000", "stroke": {"width": 5}, "value": 35},
//	    {"fill": "#00aa00", "value": 93}
//	  ]
//	}
//
// Every output listed with -out receives the chart.  The file name
// extension selects the format: .svg, .pdf, or any image format supported
// by github.com/disintegration/imaging.  The name "-" writes PNG data to
// standard output.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"seehuhn.de/go/starburst"
	"seehuhn.de/go/starburst/pdfsurface"
	"seehuhn.de/go/starburst/raster"
	"seehuhn.de/go/starburst/svgsurface"
)

const stdoutName = "-"

var (
	outFlag    = flag.String("out", "starburst.png", "comma-separated list of output files")
	widthFlag  = flag.Int("width", 400, "canvas width")
	heightFlag = flag.Int("height", 400, "canvas height")
	seedFlag   = flag.Uint64("seed", 0, "seed for generated fill colours (0 = random)")
	degrees    = flag.Bool("degrees", false, "use pi/180 instead of pi/200 to convert degrees")
	framesDir  = flag.String("frames", "", "write one PNG per update into this directory")
	verbose    = flag.Bool("v", false, "log debug messages")
)

var (
	errFormat   = errors.New("unsupported output format")
	errTerminal = errors.New("refusing to write binary data to a terminal")
)

// chart is the contents of a chart file.
type chart struct {
	Settings starburst.Settings `json:"settings"`
	Slices   []starburst.Slice  `json:"slices"`
}

// output is a surface together with the action which finishes it.
type output struct {
	name    string
	surface starburst.Surface
	close   func() error
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] chart.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), logger); err != nil {
		fmt.Fprintln(os.Stderr, "starburst:", err)
		os.Exit(1)
	}
}

func run(chartFile string, logger *slog.Logger) error {
	c, err := readChart(chartFile)
	if err != nil {
		return err
	}
	if *degrees {
		c.Settings.Angles = starburst.DegreeScale
	}

	// All outputs show the same colours.
	var rng *rand.Rand
	if *seedFlag != 0 {
		rng = rand.New(rand.NewPCG(*seedFlag, 0))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	slices := fillColors(c.Slices, rng)

	o := &outputs{
		width:  *widthFlag,
		height: *heightFlag,
		title:  strings.TrimSuffix(filepath.Base(chartFile), filepath.Ext(chartFile)),
		frames: *framesDir,
		logger: logger,
	}
	if o.frames != "" {
		if err := os.MkdirAll(o.frames, 0755); err != nil {
			return err
		}
	}

	sel := starburst.Select(starburst.ProviderFunc(o.open), strings.Split(*outFlag, ",")...)
	sel.Logger = logger
	sel.Starburst(c.Settings, slices, func() {
		logger.Debug("chart complete", "outputs", len(o.list))
	})

	return o.closeAll()
}

func readChart(name string) (*chart, error) {
	var r io.Reader = os.Stdin
	if name != stdoutName {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	c := &chart{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// fillColors returns a copy of slices where missing fill colours are
// replaced by random colours.
func fillColors(slices []starburst.Slice, rng *rand.Rand) []starburst.Slice {
	res := make([]starburst.Slice, len(slices))
	for i, sl := range slices {
		if sl.Fill == "" {
			sl.Fill = starburst.RandomColor(rng)
		}
		res[i] = sl
	}
	return res
}

// outputs creates surfaces for output file names, and keeps track of
// them until they are closed.
type outputs struct {
	width, height int
	title         string
	frames        string
	logger        *slog.Logger

	list     []*output
	frameErr error
}

func (o *outputs) open(name string) (starburst.Surface, error) {
	out, err := o.create(name)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("output created", "name", name)
	o.list = append(o.list, out)
	return out.surface, nil
}

func (o *outputs) create(name string) (*output, error) {
	if name == stdoutName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errTerminal
		}
		c := o.canvas("stdout")
		return &output{
			name:    name,
			surface: c,
			close:   func() error { return c.Encode(os.Stdout, imaging.PNG) },
		}, nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		f, err := os.Create(name)
		if err != nil {
			return nil, err
		}
		s := svgsurface.New(f, o.width, o.height)
		s.Title(o.title)
		return &output{
			name:    name,
			surface: s,
			close: func() error {
				err := s.Close()
				return errors.Join(err, f.Close())
			},
		}, nil

	case ".pdf":
		s, err := pdfsurface.Create(name, float64(o.width), float64(o.height))
		if err != nil {
			return nil, err
		}
		return &output{name: name, surface: s, close: s.Close}, nil
	}

	if _, err := imaging.FormatFromFilename(name); err != nil {
		return nil, fmt.Errorf("%s: %w", name, errFormat)
	}
	c := o.canvas(strings.ReplaceAll(filepath.Base(name), ".", "_"))
	return &output{
		name:    name,
		surface: c,
		close:   func() error { return c.Save(name) },
	}, nil
}

// canvas allocates a raster surface.  If a frames directory is set, every
// update is saved as <base>-NNN.png.
func (o *outputs) canvas(base string) *raster.Canvas {
	c := raster.NewCanvas(o.width, o.height)
	if o.frames == "" {
		return c
	}
	c.OnUpdate = func(frame int, img *image.NRGBA) {
		name := filepath.Join(o.frames, fmt.Sprintf("%s-%03d.png", base, frame))
		if err := imaging.Save(img, name); err != nil && o.frameErr == nil {
			o.frameErr = err
		}
	}
	return c
}

// closeAll finishes all outputs and returns the combined errors.
func (o *outputs) closeAll() error {
	errs := []error{o.frameErr}
	for _, out := range o.list {
		if err := out.close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", out.name, err))
			continue
		}
		o.logger.Info("written", "output", out.name)
	}
	return errors.Join(errs...)
}
