// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim

import (
	"fmt"
	"strconv"
	"strings"
)

// In all naming functions
// a layer of zero means a variable without layers
// (that is, altitude).

// GlobalArchive returns the name of the zip archive
// that stores a layer of a global dataset.
//
// The 30 arc-seconds bioclimatic set is the only one
// split in two archives,
// at the ninth layer.
func (v Variable) GlobalArchive(res Resolution, layer int) string {
	if v == Bio && res == Res30s {
		if layer <= 9 {
			return "bio1-9_30s_bil.zip"
		}
		return "bio10-19_30s_bil.zip"
	}
	r := strings.ReplaceAll(string(res), ".", "-")
	return string(v) + "_" + r + "_bil.zip"
}

// TileArchive returns the name of the zip archive
// that stores a tile of a variable.
func (v Variable) TileArchive(t Tile) string {
	return string(v) + "_" + t.String() + ".zip"
}

// GlobalFile returns the name of the binary grid
// inside a global archive.
//
// The 30 arc-seconds sets put an underscore
// before the layer number;
// except for altitude,
// that has no layer number at all.
func (v Variable) GlobalFile(res Resolution, layer int) string {
	if v != Alt && res == Res30s {
		return string(v) + "_" + strconv.Itoa(layer) + ".bil"
	}
	return string(v) + layerString(layer) + ".bil"
}

// TileFile returns the name of the binary grid
// inside a tile archive.
func (v Variable) TileFile(t Tile, layer int) string {
	return string(v) + layerString(layer) + "_" + t.String() + ".bil"
}

// GlobalRaster returns the name for the raster
// imported from a global dataset.
// Layer numbers are zero padded,
// so the rasters sort correctly.
func (v Variable) GlobalRaster(prefix string, res Resolution, layer int) string {
	return prefix + string(res) + "_" + string(v) + paddedLayer(layer)
}

// TileRaster returns the name for the raster
// imported from a tile.
func (v Variable) TileRaster(prefix string, t Tile, layer int) string {
	return prefix + "t" + t.String() + "_" + string(v) + paddedLayer(layer)
}

// MergedRaster returns the name for the raster
// that results from patching several imported tiles.
func (v Variable) MergedRaster(prefix string, layer int) string {
	return prefix + string(v) + paddedLayer(layer)
}

func layerString(layer int) string {
	if layer == 0 {
		return ""
	}
	return strconv.Itoa(layer)
}

func paddedLayer(layer int) string {
	if layer == 0 {
		return ""
	}
	return fmt.Sprintf("%02d", layer)
}
