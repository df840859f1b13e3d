// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to report
// summary statistics of a WorldClim layer.
package stats

import (
	"archive/zip"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/worldclim"
	"github.com/js-arias/worldclim/bil"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `stats [--plot <file>] [--layer <number>]
	[--res <value>|--tile <value>] [-i|--input <dir>] <variable>`,
	Short: "report statistics of a WorldClim layer",
	Long: `
Command stats extracts a layer from a WorldClim archive and prints summary
statistics of its cells: the number of cells with and without data, the
minimum and maximum, the mean and standard deviation, and the quartiles. The
values are reported in the units of the dataset (see
"worldclim help variables").

The argument of the command is the climate variable to read, from tmin, tmax,
tmean, prec, bio, and alt.

One of the flags --res or --tile must be set, but not both, for the global
set resolution, or the tile, that stores the layer. By default the first
layer is read; use the flag --layer for a different layer.

By default, the archives are searched in the current directory; use the flag
--input, or -i, for a different directory.

If the flag --plot is set, a histogram of the layer values will be saved as
an image with the indicated file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var plotFlag string
var layerFlag int
var resFlag string
var tileFlag string
var inputFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&plotFlag, "plot", "", "")
	c.Flags().IntVar(&layerFlag, "layer", 1, "")
	c.Flags().StringVar(&resFlag, "res", "", "")
	c.Flags().StringVar(&tileFlag, "tile", "", "")
	c.Flags().StringVar(&inputFlag, "input", "", "")
	c.Flags().StringVar(&inputFlag, "i", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting a climate variable")
	}
	v, err := worldclim.ParseVariable(args[0])
	if err != nil {
		return err
	}

	if resFlag == "" && tileFlag == "" {
		return c.UsageError("one of --res or --tile must be set")
	}
	if resFlag != "" && tileFlag != "" {
		return c.UsageError("flags --res and --tile are exclusive")
	}

	layer := layerFlag
	if v == worldclim.Alt {
		layer = 0
	} else if layer < 1 || layer > v.Layers() {
		return fmt.Errorf("no layer %d for variable %q", layer, v)
	}

	var archive, file string
	var reg worldclim.Region
	if resFlag != "" {
		res, err := worldclim.ParseResolution(resFlag)
		if err != nil {
			return err
		}
		archive = v.GlobalArchive(res, layer)
		file = v.GlobalFile(res, layer)
		reg = res.Region()
	} else {
		t, err := worldclim.ParseTile(tileFlag)
		if err != nil {
			return fmt.Errorf("%v, see \"worldclim help tiling\"", err)
		}
		archive = v.TileArchive(t)
		file = v.TileFile(t, layer)
		reg = t.Region()
	}

	g, err := readGrid(filepath.Join(inputFlag, archive), file, reg)
	if err != nil {
		return err
	}

	vals := g.Values()
	if len(vals) == 0 {
		return fmt.Errorf("layer %q: no cells with data", file)
	}
	slices.Sort(vals)

	mean, std := stat.MeanStdDev(vals, nil)
	fmt.Fprintf(c.Stdout(), "layer\t%s\n", file)
	fmt.Fprintf(c.Stdout(), "cells\t%d\n", g.Rows()*g.Cols())
	fmt.Fprintf(c.Stdout(), "nodata\t%d\n", g.Rows()*g.Cols()-len(vals))
	fmt.Fprintf(c.Stdout(), "min\t%g\n", vals[0])
	fmt.Fprintf(c.Stdout(), "max\t%g\n", vals[len(vals)-1])
	fmt.Fprintf(c.Stdout(), "mean\t%.3f\n", mean)
	fmt.Fprintf(c.Stdout(), "stddev\t%.3f\n", std)
	fmt.Fprintf(c.Stdout(), "q25\t%g\n", stat.Quantile(0.25, stat.Empirical, vals, nil))
	fmt.Fprintf(c.Stdout(), "median\t%g\n", stat.Quantile(0.5, stat.Empirical, vals, nil))
	fmt.Fprintf(c.Stdout(), "q75\t%g\n", stat.Quantile(0.75, stat.Empirical, vals, nil))

	if plotFlag == "" {
		return nil
	}
	return histogram(v, vals)
}

func readGrid(archive, file string, reg worldclim.Region) (*bil.Grid, error) {
	z, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("on archive %q: %v", archive, err)
	}
	defer z.Close()

	for _, zf := range z.File {
		if zf.Name != file {
			continue
		}
		r, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("archive %q: %v", archive, err)
		}
		defer r.Close()

		g, err := bil.Read(r, reg.Rows, reg.Cols)
		if err != nil {
			return nil, fmt.Errorf("archive %q: on file %q: %v", archive, file, err)
		}
		return g, nil
	}
	return nil, fmt.Errorf("archive %q: no file %q", archive, file)
}

func histogram(v worldclim.Variable, vals []float64) error {
	h, err := plotter.NewHist(plotter.Values(vals), 40)
	if err != nil {
		return err
	}

	p := plot.New()
	p.X.Label.Text = string(v)
	p.Y.Label.Text = "cells"
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, plotFlag); err != nil {
		return fmt.Errorf("when saving plot %q: %v", plotFlag, err)
	}
	return nil
}
