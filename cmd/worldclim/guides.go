// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

var variablesGuide = &command.Command{
	Usage: "variables",
	Short: "about the climate variables",
	Long: `
The WorldClim 1.4 current climate dataset stores six climate variables. Each
variable is distributed as one or more layers, each layer a raster grid of its
own:

	tmin	minimum temperature, one layer per month, in tenths of a
		degree Celsius
	tmax	maximum temperature, one layer per month, in tenths of a
		degree Celsius
	tmean	average temperature, one layer per month, in tenths of a
		degree Celsius
	prec	precipitation, one layer per month, in millimeters
	bio	19 derived bioclimatic layers (annual trends, seasonality,
		and extremes)
	alt	altitude from SRTM, a single layer, in meters

Monthly layers are numbered 1 to 12 starting in January; bioclimatic layers
are numbered 1 to 19.

Temperature values are stored as integers in tenths of a degree to keep the
grids compact. Use the conversion flags of the import command (see
"worldclim help import") to store the rasters in conventional units.
	`,
}

var tilingGuide = &command.Command{
	Usage: "tiling",
	Short: "about the 30 arc-seconds tiles",
	Long: `
At the finest resolution (30 arc-seconds), the WorldClim dataset can be
downloaded as 30 degree tiles. The tiles are arranged in a grid of 5 rows and
12 columns, covering the planet from 90N to 60S. Rows are counted from the
north, and columns from 180W.

A tile is named by its row digit followed by its column number. So tile "0"
"8" (written "08") covers 60N-90N and 60E-90E, and tile "411" covers 60S-30S
and 150E-180E.

Each tile is a grid of 3600 by 3600 cells. Use the tiles command (see
"worldclim help tiles") to find out which tiles cover a region of interest.
	`,
}

var formatGuide = &command.Command{
	Usage: "format",
	Short: "about the archive and grid layout",
	Long: `
WorldClim 1.4 data is distributed as zip archives of BIL grids. Each grid is a
headerless binary file of little endian 16 bit signed integers, stored row by
row from the north-west corner, with -9999 marking cells without data.

Global sets are packed one archive per variable and resolution (for example
'tmin_10m_bil.zip'), except the 30 arc-seconds bioclimatic set, that is split
in two archives at the ninth layer. Tiled sets are packed one archive per
variable and tile (for example 'prec_27.zip').

Because the grids carry no header, the importer passes the grid extents and
size to the host importer explicitly, from a fixed table of known extents.
	`,
}
