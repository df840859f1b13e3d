// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package worldclim provides the naming, extent, and tiling
// conventions of the WorldClim 1.4 current climate datasets.
//
// The datasets are distributed as zip archives of headerless binary
// grids, either as global sets at four resolutions, or as 30 degree
// tiles at 30 arc-seconds. The package maps a requested variable,
// resolution or tile, and layer to the archive that stores it, the
// file inside the archive, the name of the resulting raster, and the
// geographic extents of the grid.
package worldclim

import (
	"fmt"
	"strings"
)

// A Variable is a climate variable
// of the WorldClim dataset.
type Variable string

// Valid climate variables.
const (
	// Minimum temperature, in tenths of a degree Celsius.
	Tmin Variable = "tmin"

	// Maximum temperature, in tenths of a degree Celsius.
	Tmax Variable = "tmax"

	// Average temperature, in tenths of a degree Celsius.
	Tmean Variable = "tmean"

	// Precipitation, in millimeters per month.
	Prec Variable = "prec"

	// Bioclimatic variables.
	Bio Variable = "bio"

	// Altitude, in meters.
	Alt Variable = "alt"
)

// Variables returns the climate variables
// defined for the dataset.
func Variables() []Variable {
	return []Variable{Tmin, Tmax, Tmean, Prec, Bio, Alt}
}

// ParseVariable returns a climate variable
// from a string.
func ParseVariable(s string) (Variable, error) {
	v := Variable(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case Tmin, Tmax, Tmean, Prec, Bio, Alt:
		return v, nil
	}
	return "", fmt.Errorf("unknown variable %q", s)
}

// Layers returns the number of layers
// stored for a variable:
// altitude has a single layer,
// the bioclimatic variables have 19,
// and monthly variables have 12.
func (v Variable) Layers() int {
	switch v {
	case Alt:
		return 1
	case Bio:
		return 19
	}
	return 12
}

// IsTemperature reports whether the variable
// is a temperature variable.
func (v Variable) IsTemperature() bool {
	switch v {
	case Tmin, Tmax, Tmean:
		return true
	}
	return false
}

// A Resolution is the cell size
// of a global dataset.
type Resolution string

// Valid resolutions for global datasets.
const (
	Res30s  Resolution = "30s"
	Res2_5m Resolution = "2.5m"
	Res5m   Resolution = "5m"
	Res10m  Resolution = "10m"
)

// Resolutions returns the resolutions
// defined for the global datasets,
// from finest to coarsest.
func Resolutions() []Resolution {
	return []Resolution{Res30s, Res2_5m, Res5m, Res10m}
}

// ParseResolution returns a resolution
// from a string.
func ParseResolution(s string) (Resolution, error) {
	r := Resolution(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case Res30s, Res2_5m, Res5m, Res10m:
		return r, nil
	}
	return "", fmt.Errorf("unknown resolution %q", s)
}
