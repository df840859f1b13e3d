// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// WorldClim is a tool to fetch and import
// WorldClim climate data into a GRASS GIS session.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/worldclim/cmd/worldclim/fetch"
	"github.com/js-arias/worldclim/cmd/worldclim/importcmd"
	"github.com/js-arias/worldclim/cmd/worldclim/mapcmd"
	"github.com/js-arias/worldclim/cmd/worldclim/stats"
	"github.com/js-arias/worldclim/cmd/worldclim/tiles"
)

var app = &command.Command{
	Usage: "worldclim <command> [<argument>...]",
	Short: "a tool to import WorldClim climate data",
}

func init() {
	app.Add(fetch.Command)
	app.Add(importcmd.Command)
	app.Add(mapcmd.Command)
	app.Add(stats.Command)
	app.Add(tiles.Command)

	// help guides
	app.Add(variablesGuide)
	app.Add(tilingGuide)
	app.Add(formatGuide)
}

func main() {
	app.Main()
}
