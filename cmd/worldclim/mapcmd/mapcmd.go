// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mapcmd implements a command to draw
// a WorldClim layer as an image,
// without importing it into a GIS session.
package mapcmd

import (
	"archive/zip"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/worldclim"
	"github.com/js-arias/worldclim/bil"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `map [--gray] [--layer <number>]
	[--res <value>|--tile <value>] [-i|--input <dir>]
	[-o|--output <file>] <variable>`,
	Short: "draw a WorldClim layer",
	Long: `
Command map extracts a layer from a WorldClim archive and draws it as a png
image in a plate carrée (equirectangular) projection, one image pixel per
grid cell. The grids are distributed in that projection, so the command is a
direct preview of the data, and does not require a GIS session.

The argument of the command is the climate variable to draw, from tmin, tmax,
tmean, prec, bio, and alt (see "worldclim help variables").

One of the flags --res or --tile must be set, but not both, for the global
set resolution, or the tile, that stores the layer. By default the first
layer is drawn; use the flag --layer for a different layer.

Values are colored with a color blind safe gradient, scaled between the 2%
and 98% quantiles of the layer, so a few extreme cells do not wash out the
map. Cells without data are transparent. Use the flag --gray for a gray
scale image.

By default, the archives are searched in the current directory; use the flag
--input, or -i, for a different directory. The image is named after the
layer (for example '10m_tmin01.png'); use the flag --output, or -o, for a
different name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var grayFlag bool
var layerFlag int
var resFlag string
var tileFlag string
var inputFlag string
var outputFlag string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&grayFlag, "gray", false, "")
	c.Flags().IntVar(&layerFlag, "layer", 1, "")
	c.Flags().StringVar(&resFlag, "res", "", "")
	c.Flags().StringVar(&tileFlag, "tile", "", "")
	c.Flags().StringVar(&inputFlag, "input", "", "")
	c.Flags().StringVar(&inputFlag, "i", "", "")
	c.Flags().StringVar(&outputFlag, "output", "", "")
	c.Flags().StringVar(&outputFlag, "o", "", "")
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

	var archive, file, name string
	var reg worldclim.Region
	if resFlag != "" {
		res, err := worldclim.ParseResolution(resFlag)
		if err != nil {
			return err
		}
		archive = v.GlobalArchive(res, layer)
		file = v.GlobalFile(res, layer)
		name = v.GlobalRaster("", res, layer)
		reg = res.Region()
	} else {
		t, err := worldclim.ParseTile(tileFlag)
		if err != nil {
			return fmt.Errorf("%v, see \"worldclim help tiling\"", err)
		}
		archive = v.TileArchive(t)
		file = v.TileFile(t, layer)
		name = v.TileRaster("", t, layer)
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
	lo := stat.Quantile(0.02, stat.Empirical, vals, nil)
	hi := stat.Quantile(0.98, stat.Empirical, vals, nil)
	if hi == lo {
		hi = lo + 1
	}

	if outputFlag == "" {
		outputFlag = name + ".png"
	}
	return writeImage(outputFlag, layerImage{
		grid: g,
		lo:   lo,
		hi:   hi,
	})
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

// A layerImage draws a grid
// with one image pixel per cell.
type layerImage struct {
	grid   *bil.Grid
	lo, hi float64
}

func (l layerImage) ColorModel() color.Model { return color.RGBAModel }
func (l layerImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.grid.Cols(), l.grid.Rows())
}
func (l layerImage) At(x, y int) color.Color {
	v, ok := l.grid.At(y, x)
	if !ok {
		return color.RGBA{}
	}

	s := (float64(v) - l.lo) / (l.hi - l.lo)
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	if grayFlag {
		return color.Gray{Y: uint8(s * 255)}
	}
	return blind.Gradient(s)
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("when encoding image file %q: %v", name, err)
	}
	return nil
}
