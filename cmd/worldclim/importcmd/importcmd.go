// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to import
// WorldClim datasets into a GRASS GIS session.
package importcmd

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/worldclim"
	"github.com/js-arias/worldclim/bil"
	"github.com/js-arias/worldclim/grass"
)

var Command = &command.Command{
	Usage: `import [-c] [-k] [-y] [-f] [--patch]
	[-i|--input <dir>] [-p|--prefix <prefix>] [--layers <list>]
	[--res <list>|--tiles <list>] <variable>...`,
	Short: "import WorldClim datasets",
	Long: `
Command import extracts WorldClim 1.4 grids from their zip archives and
imports them into the current GRASS GIS session, one raster per layer. It
must run inside a session, for example with 'grass --exec'.

The arguments of the command are the climate variables to import, from tmin,
tmax, tmean, prec, bio, and alt (see "worldclim help variables").

One of the flags --res or --tiles must be set, but not both. The flag --res
indicates the global sets to import, as a comma separated list of the
resolutions 30s, 2.5m, 5m, and 10m. The flag --tiles indicates the 30
arc-seconds tiles to import, as a comma separated list of tile names (see
"worldclim help tiling").

By default, all layers of each variable are imported. Use the flag --layers
to import only the indicated layers, as a comma separated list of layer
numbers. Requesting a layer that a variable does not have is reported and
skipped.

By default, the archives are searched in the current directory; use the flag
--input, or -i, for a different directory. Archives can be downloaded with
the fetch command (see "worldclim help fetch").

Imported rasters are named after the resolution or tile, the variable, and
the zero padded layer number, so 'wc_10m_tmin01' is the first layer of tmin
at 10 arc-minutes, and 'wc_t27_prec03' is the third layer of prec on tile 27.
By default the names are prefixed with 'wc_'; use the flag --prefix, or -p,
for a different prefix.

The values are stored as they come in the archives, that is, as integers in
the units of the dataset. The following flags request a unit conversion on
import:

	-c	convert temperatures to degrees Celsius
	-k	convert temperatures to Kelvin
	-y	convert precipitation to meters per year
	-f	convert any variable to floating point, keeping its unit

If the flag --patch is set on a tiled import, the tiles of each variable and
layer will be patched into a single seamless raster after the import, named
without the tile part (so 'wc_prec03'). If a single tile was imported, the
raster is renamed instead.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var celsiusFlag bool
var kelvinFlag bool
var yearFlag bool
var floatFlag bool
var patchFlag bool
var inputFlag string
var prefixFlag string
var layersFlag string
var resFlag string
var tilesFlag string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&celsiusFlag, "c", false, "")
	c.Flags().BoolVar(&kelvinFlag, "k", false, "")
	c.Flags().BoolVar(&yearFlag, "y", false, "")
	c.Flags().BoolVar(&floatFlag, "f", false, "")
	c.Flags().BoolVar(&patchFlag, "patch", false, "")
	c.Flags().StringVar(&inputFlag, "input", "", "")
	c.Flags().StringVar(&inputFlag, "i", "", "")
	c.Flags().StringVar(&prefixFlag, "prefix", "wc_", "")
	c.Flags().StringVar(&prefixFlag, "p", "wc_", "")
	c.Flags().StringVar(&layersFlag, "layers", "", "")
	c.Flags().StringVar(&resFlag, "res", "", "")
	c.Flags().StringVar(&tilesFlag, "tiles", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting climate variables")
	}
	vars, err := parseVariables(args)
	if err != nil {
		return err
	}

	if resFlag == "" && tilesFlag == "" {
		return c.UsageError("one of --res or --tiles must be set")
	}
	if resFlag != "" && tilesFlag != "" {
		return c.UsageError("flags --res and --tiles are exclusive")
	}
	if patchFlag && tilesFlag == "" {
		return c.UsageError("flag --patch requires --tiles")
	}

	layers, err := parseLayers(layersFlag)
	if err != nil {
		return err
	}
	cf := worldclim.ConvertFlags{
		Celsius:    celsiusFlag,
		Kelvin:     kelvinFlag,
		MetersYear: yearFlag,
		Float:      floatFlag,
	}

	if resFlag != "" {
		for _, s := range strings.Split(resFlag, ",") {
			res, err := worldclim.ParseResolution(s)
			if err != nil {
				return err
			}
			for _, v := range vars {
				ll, skipped := layersFor(v, layers)
				for _, l := range skipped {
					fmt.Fprintf(c.Stderr(), "no layer %d for variable %q\n", l, v)
				}
				for _, l := range ll {
					if err := importGlobal(c, v, res, l, cf); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	tls := make([]worldclim.Tile, 0)
	for _, s := range strings.Split(tilesFlag, ",") {
		t, err := worldclim.ParseTile(s)
		if err != nil {
			return fmt.Errorf("%v, see \"worldclim help tiling\"", err)
		}
		tls = append(tls, t)
	}

	merges := newMergeList()
	for _, t := range tls {
		for _, v := range vars {
			ll, skipped := layersFor(v, layers)
			for _, l := range skipped {
				fmt.Fprintf(c.Stderr(), "no layer %d for variable %q\n", l, v)
			}
			for _, l := range ll {
				out, err := importTile(c, v, t, l, cf)
				if err != nil {
					return err
				}
				merges.add(v.MergedRaster(prefixFlag, l), out, t.Region())
			}
		}
	}

	if patchFlag {
		return merges.patch(c)
	}
	return nil
}

func parseVariables(args []string) ([]worldclim.Variable, error) {
	var vars []worldclim.Variable
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			v, err := worldclim.ParseVariable(s)
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		}
	}
	return vars, nil
}

func parseLayers(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var layers []int
	for _, f := range strings.Split(s, ",") {
		l, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("flag --layers: invalid layer %q", f)
		}
		if l < 1 || l > 19 {
			return nil, fmt.Errorf("flag --layers: invalid layer %d", l)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// LayersFor returns the layer numbers
// to import for a variable,
// as well as any requested layer
// that the variable does not have,
// so it can be reported without stopping the import.
// A zero layer means a variable without layers.
func layersFor(v worldclim.Variable, req []int) (layers, skipped []int) {
	if v == worldclim.Alt {
		return []int{0}, nil
	}

	max := v.Layers()
	if req == nil {
		layers = make([]int, 0, max)
		for l := 1; l <= max; l++ {
			layers = append(layers, l)
		}
		return layers, nil
	}

	for _, l := range req {
		if l > max {
			skipped = append(skipped, l)
			continue
		}
		layers = append(layers, l)
	}
	return layers, skipped
}

func importGlobal(c *command.Command, v worldclim.Variable, res worldclim.Resolution, layer int, cf worldclim.ConvertFlags) error {
	archive := filepath.Join(inputFlag, v.GlobalArchive(res, layer))
	file := v.GlobalFile(res, layer)
	out := v.GlobalRaster(prefixFlag, res, layer)
	reg := res.Region()

	if err := importFile(c, archive, file, out, reg); err != nil {
		return err
	}
	return convertRaster(c, v, out, reg, cf)
}

func importTile(c *command.Command, v worldclim.Variable, t worldclim.Tile, layer int, cf worldclim.ConvertFlags) (string, error) {
	archive := filepath.Join(inputFlag, v.TileArchive(t))
	file := v.TileFile(t, layer)
	out := v.TileRaster(prefixFlag, t, layer)
	reg := t.Region()

	if err := importFile(c, archive, file, out, reg); err != nil {
		return "", err
	}
	if err := convertRaster(c, v, out, reg, cf); err != nil {
		return "", err
	}
	return out, nil
}

// ImportFile extracts a grid from its archive
// into a scratch directory
// and delegates the ingestion
// to the host raw raster importer.
// The scratch files are removed
// even if the ingestion fails.
func importFile(c *command.Command, archive, file, out string, reg worldclim.Region) error {
	z, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("on archive %q: %v", archive, err)
	}
	defer z.Close()

	var zf *zip.File
	for _, f := range z.File {
		if f.Name == file {
			zf = f
			break
		}
	}
	if zf == nil {
		return fmt.Errorf("archive %q: no file %q", archive, file)
	}

	dir, err := os.MkdirTemp("", "worldclim")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	fmt.Fprintf(c.Stderr(), "inflating %q ...\n", file)
	tmp := filepath.Join(dir, file)
	if err := extract(zf, tmp); err != nil {
		return fmt.Errorf("archive %q: %v", archive, err)
	}

	fmt.Fprintf(c.Stderr(), "importing %q as <%s> ...\n", file, out)
	opts := regionOptions(reg)
	opts["input"] = tmp
	opts["output"] = out
	opts["bytes"] = "2"
	opts["anull"] = strconv.Itoa(bil.Nodata)
	m := &grass.Module{
		Name:      "r.in.bin",
		Flags:     "s",
		Overwrite: true,
		Options:   opts,
	}
	return m.Run(c.Stdout(), c.Stderr())
}

func extract(zf *zip.File, path string) (err error) {
	r, err := zf.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("while extracting %q: %v", zf.Name, err)
	}
	return nil
}

func convertRaster(c *command.Command, v worldclim.Variable, raster string, reg worldclim.Region, cf worldclim.ConvertFlags) error {
	cv, ok := worldclim.ConversionFor(v, cf)
	if !ok {
		return nil
	}

	fmt.Fprintf(c.Stderr(), "converting <%s> to %s ...\n", raster, cv.Unit)
	m := &grass.Module{
		Name:      "r.mapcalc",
		Overwrite: true,
		Options:   map[string]string{"expression": cv.Expr(raster)},
		Env:       []string{grass.RegionEnv(reg.North, reg.South, reg.West, reg.East, reg.Rows, reg.Cols)},
	}
	return m.Run(c.Stdout(), c.Stderr())
}

func regionOptions(reg worldclim.Region) map[string]string {
	ff := func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return map[string]string{
		"north": ff(reg.North),
		"south": ff(reg.South),
		"west":  ff(reg.West),
		"east":  ff(reg.East),
		"rows":  strconv.Itoa(reg.Rows),
		"cols":  strconv.Itoa(reg.Cols),
	}
}

// A mergeList collects the tiles imported
// for each variable and layer,
// so they can be patched into seamless rasters.
type mergeList struct {
	outs   []string
	groups map[string]*mergeGroup
}

type mergeGroup struct {
	rasters []string
	reg     worldclim.Region
}

func newMergeList() *mergeList {
	return &mergeList{groups: make(map[string]*mergeGroup)}
}

func (ml *mergeList) add(out, raster string, reg worldclim.Region) {
	g, ok := ml.groups[out]
	if !ok {
		ml.outs = append(ml.outs, out)
		ml.groups[out] = &mergeGroup{
			rasters: []string{raster},
			reg:     reg,
		}
		return
	}

	g.rasters = append(g.rasters, raster)
	if reg.North > g.reg.North {
		g.reg.North = reg.North
	}
	if reg.South < g.reg.South {
		g.reg.South = reg.South
	}
	if reg.West < g.reg.West {
		g.reg.West = reg.West
	}
	if reg.East > g.reg.East {
		g.reg.East = reg.East
	}
}

// Cells per degree of the tiled dataset.
const tileCells = 120

// Module returns the call that merges a group
// into a single raster:
// a rename for a lone tile,
// or a patch of all the tiles,
// run over the union of their regions.
func (g *mergeGroup) module(out string) *grass.Module {
	if len(g.rasters) == 1 {
		return &grass.Module{
			Name:      "g.rename",
			Overwrite: true,
			Options:   map[string]string{"raster": g.rasters[0] + "," + out},
		}
	}

	reg := g.reg
	reg.Rows = int((reg.North-reg.South)*tileCells + 0.5)
	reg.Cols = int((reg.East-reg.West)*tileCells + 0.5)
	return &grass.Module{
		Name:      "r.patch",
		Overwrite: true,
		Options: map[string]string{
			"input":  strings.Join(g.rasters, ","),
			"output": out,
		},
		Env: []string{grass.RegionEnv(reg.North, reg.South, reg.West, reg.East, reg.Rows, reg.Cols)},
	}
}

func (ml *mergeList) patch(c *command.Command) error {
	for _, out := range ml.outs {
		g := ml.groups[out]
		m := g.module(out)
		if m.Name == "g.rename" {
			fmt.Fprintf(c.Stderr(), "renaming <%s> to <%s> ...\n", g.rasters[0], out)
		} else {
			fmt.Fprintf(c.Stderr(), "patching <%s> from %d tiles ...\n", out, len(g.rasters))
		}
		if err := m.Run(c.Stdout(), c.Stderr()); err != nil {
			return err
		}
	}
	return nil
}
