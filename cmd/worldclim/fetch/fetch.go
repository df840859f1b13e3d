// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fetch implements a command to download
// WorldClim archives.
package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/worldclim"
)

var Command = &command.Command{
	Usage: `fetch [-o|--output <dir>]
	[--res <list>|--tiles <list>] <variable>...`,
	Short: "download WorldClim archives",
	Long: `
Command fetch downloads WorldClim 1.4 zip archives from the WorldClim
download site, so they can be imported with the import command (see
"worldclim help import").

The arguments of the command are the climate variables to download, from
tmin, tmax, tmean, prec, bio, and alt (see "worldclim help variables").

One of the flags --res or --tiles must be set, but not both. The flag --res
indicates the global sets to download, as a comma separated list of the
resolutions 30s, 2.5m, 5m, and 10m. The flag --tiles indicates the 30
arc-seconds tiles to download, as a comma separated list of tile names (see
"worldclim help tiling").

By default, the archives are saved in the current directory; use the flag
--output, or -o, for a different directory. Archives already present are not
downloaded again.

Failed downloads are retried a few times before giving up; the 30 arc-seconds
global sets in particular are large files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outputFlag string
var resFlag string
var tilesFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outputFlag, "output", "", "")
	c.Flags().StringVar(&outputFlag, "o", "", "")
	c.Flags().StringVar(&resFlag, "res", "", "")
	c.Flags().StringVar(&tilesFlag, "tiles", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting climate variables")
	}
	var vars []worldclim.Variable
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			v, err := worldclim.ParseVariable(s)
			if err != nil {
				return err
			}
			vars = append(vars, v)
		}
	}

	if resFlag == "" && tilesFlag == "" {
		return c.UsageError("one of --res or --tiles must be set")
	}
	if resFlag != "" && tilesFlag != "" {
		return c.UsageError("flags --res and --tiles are exclusive")
	}

	if resFlag != "" {
		for _, s := range strings.Split(resFlag, ",") {
			res, err := worldclim.ParseResolution(s)
			if err != nil {
				return err
			}
			for _, v := range vars {
				if err := download(c, v.GlobalURL(res, 1)); err != nil {
					return err
				}
				// the 30s bio set is split in two archives
				if v == worldclim.Bio && res == worldclim.Res30s {
					if err := download(c, v.GlobalURL(res, 10)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	for _, s := range strings.Split(tilesFlag, ",") {
		t, err := worldclim.ParseTile(s)
		if err != nil {
			return fmt.Errorf("%v, see \"worldclim help tiling\"", err)
		}
		for _, v := range vars {
			if err := download(c, v.TileURL(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Download fetches an URL into the output directory,
// skipping archives already present.
func download(c *command.Command, url string) error {
	name := url[strings.LastIndex(url, "/")+1:]
	path := filepath.Join(outputFlag, name)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(c.Stderr(), "skipping %q: already present\n", name)
		return nil
	}

	fmt.Fprintf(c.Stderr(), "downloading %q ...\n", name)
	return worldclim.DefaultFetchStrategy.Fetch(url, path)
}
