// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim

// A Region is the geographic extent
// and grid size of a dataset.
//
// Coordinates are geographic degrees,
// positive to the north and to the east.
// Cells are counted from the north-west corner,
// row by row.
type Region struct {
	North, South float64
	West, East   float64
	Rows, Cols   int
}

// CellSize returns the size of a grid cell,
// in degrees.
func (r Region) CellSize() float64 {
	return (r.East - r.West) / float64(r.Cols)
}

// Region returns the extents and grid size
// of a global dataset at the given resolution.
//
// All global datasets span from 90N to 60S
// and cover all longitudes.
func (r Resolution) Region() Region {
	var rows, cols int
	switch r {
	case Res10m:
		rows, cols = 900, 2160
	case Res5m:
		rows, cols = 1800, 4320
	case Res2_5m:
		rows, cols = 3600, 8640
	case Res30s:
		rows, cols = 18000, 43200
	}
	return Region{
		North: 90, South: -60,
		West: -180, East: 180,
		Rows: rows, Cols: cols,
	}
}
