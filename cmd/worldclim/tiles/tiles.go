// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tiles implements a command to find the tiles
// that cover a region of interest.
package tiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/earth/vector"
	"github.com/js-arias/worldclim"
)

var Command = &command.Command{
	Usage: `tiles [-g] [--region <north,south,west,east>]
	[--variables <list>] [--download <dir>]
	[<latitude> <longitude>...]`,
	Short: "find the tiles that cover a region of interest",
	Long: `
Command tiles reports which 30 arc-seconds tiles must be downloaded to cover
a region of interest (see "worldclim help tiling").

The region of interest can be given with the flag --region, as a comma
separated list of the north, south, west, and east bounds, in geographic
degrees; or as one or more geographic locations given as pairs of latitude
and longitude arguments; or both. The reported tiles cover all the indicated
bounds and locations.

By default, a human readable message is printed; with the flag -g only the
comma separated tile names are printed, so the output can be used in scripts,
for example as the --tiles value of the import command.

If the flag --variables is set, with a comma separated list of climate
variables, the tile archives for the indicated variables will be downloaded.
By default, they are saved in the current directory; use the flag --download
for a different directory. Archives already present are not downloaded again.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var shellFlag bool
var regionFlag string
var varsFlag string
var downloadFlag string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&shellFlag, "g", false, "")
	c.Flags().StringVar(&regionFlag, "region", "", "")
	c.Flags().StringVar(&varsFlag, "variables", "", "")
	c.Flags().StringVar(&downloadFlag, "download", "", "")
}

func run(c *command.Command, args []string) error {
	if regionFlag == "" && len(args) == 0 {
		return c.UsageError("expecting a region or locations")
	}

	b, err := makeBounds(args)
	if err != nil {
		return err
	}

	tls, err := worldclim.Cover(b.north, b.south, b.west, b.east)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tls))
	for _, t := range tls {
		names = append(names, t.String())
	}

	if shellFlag {
		fmt.Fprintf(c.Stdout(), "%s\n", strings.Join(names, ","))
	} else {
		msg := names[0]
		if len(names) > 1 {
			msg = strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
		}
		fmt.Fprintf(c.Stdout(), "to cover the region of interest, download the tiles %s\n", msg)
	}

	if varsFlag == "" {
		return nil
	}
	for _, s := range strings.Split(varsFlag, ",") {
		v, err := worldclim.ParseVariable(s)
		if err != nil {
			return err
		}
		for _, t := range tls {
			if err := download(c, v, t); err != nil {
				return err
			}
		}
	}
	return nil
}

type bounds struct {
	north, south float64
	west, east   float64
}

// MakeBounds returns the bounds that include
// the region flag and all location arguments.
func makeBounds(args []string) (bounds, error) {
	b := bounds{north: -90, south: 90, west: 180, east: -180}

	if regionFlag != "" {
		f := strings.Split(regionFlag, ",")
		if len(f) != 4 {
			return bounds{}, fmt.Errorf("flag --region: expecting four bounds, got %d", len(f))
		}
		vals := make([]float64, 4)
		for i, s := range f {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return bounds{}, fmt.Errorf("flag --region: invalid bound %q", s)
			}
			vals[i] = v
		}
		b = bounds{north: vals[0], south: vals[1], west: vals[2], east: vals[3]}
		if b.south > b.north {
			return bounds{}, fmt.Errorf("flag --region: south %g is above north %g", b.south, b.north)
		}
		if b.west > b.east {
			return bounds{}, fmt.Errorf("flag --region: west %g is beyond east %g", b.west, b.east)
		}
	}

	if len(args)%2 != 0 {
		return bounds{}, fmt.Errorf("expecting latitude-longitude pairs, got %d arguments", len(args))
	}
	for i := 0; i < len(args); i += 2 {
		pt, err := vector.ParsePoint(args[i], args[i+1])
		if err != nil {
			return bounds{}, err
		}
		if pt.Lat > b.north {
			b.north = pt.Lat
		}
		if pt.Lat < b.south {
			b.south = pt.Lat
		}
		if pt.Lon < b.west {
			b.west = pt.Lon
		}
		if pt.Lon > b.east {
			b.east = pt.Lon
		}
	}
	return b, nil
}

func download(c *command.Command, v worldclim.Variable, t worldclim.Tile) error {
	name := v.TileArchive(t)
	path := filepath.Join(downloadFlag, name)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(c.Stderr(), "skipping %q: already present\n", name)
		return nil
	}

	fmt.Fprintf(c.Stderr(), "downloading %q ...\n", name)
	return worldclim.DefaultFetchStrategy.Fetch(v.TileURL(t), path)
}
