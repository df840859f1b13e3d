// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim

import (
	"fmt"
	"math"
	"strconv"
)

// A Tile is a 30 degree tile
// of the 30 arc-seconds tiled dataset.
//
// Tiles are arranged in a grid of 5 rows and 12 columns
// covering the planet from 90N to 60S.
// Rows are counted from the north,
// and columns from 180W.
// A tile is named by its row digit
// followed by its column number,
// so tile "08" is the first row, ninth column,
// and tile "411" is the last row, last column.
type Tile struct {
	Row, Col int
}

// ParseTile returns a tile from its name.
func ParseTile(s string) (Tile, error) {
	if len(s) < 2 {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}
	row, err := strconv.Atoi(s[:1])
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}

	t := Tile{Row: row, Col: col}
	if !t.IsValid() {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}
	return t, nil
}

// IsValid reports whether the tile
// is part of the dataset grid.
func (t Tile) IsValid() bool {
	if t.Row < 0 || t.Row > 4 {
		return false
	}
	if t.Col < 0 || t.Col > 11 {
		return false
	}
	return true
}

func (t Tile) String() string {
	return strconv.Itoa(t.Row) + strconv.Itoa(t.Col)
}

// Region returns the extents and grid size of the tile.
// All tiles are 3600 by 3600 cells.
func (t Tile) Region() Region {
	return Region{
		North: 30 * float64(3-t.Row),
		South: 30 * float64(2-t.Row),
		West:  30 * float64(t.Col-6),
		East:  30 * float64(t.Col-5),
		Rows:  3600, Cols: 3600,
	}
}

// Cover returns the tiles that cover
// the indicated geographic bounds.
// A bound that only touches the edge of a tile
// does not include that tile.
// Degenerate bounds (a point or a line) are valid,
// so the tile under a single location can be found;
// on a tile edge, the tile to the south, or east, is taken,
// and on the outer edge of the dataset, the inner tile.
func Cover(north, south, west, east float64) ([]Tile, error) {
	if south > north {
		return nil, fmt.Errorf("invalid bounds: south %g is above north %g", south, north)
	}
	if west > east {
		return nil, fmt.Errorf("invalid bounds: west %g is beyond east %g", west, east)
	}

	up := 3 - int(math.Ceil(north/30))
	down := 2 - int(math.Floor(south/30))
	left := int(math.Floor(west/30)) + 6
	right := int(math.Ceil(east/30)) + 5

	// a degenerate bound on a tile edge
	// takes the tile at its south, or east;
	// on the outer edge of the dataset,
	// only the inner tile is valid
	if down < up {
		if up > 4 {
			up = down
		} else {
			down = up
		}
	}
	if right < left {
		if left > 11 {
			left = right
		} else {
			right = left
		}
	}

	if up < 0 {
		up = 0
	}
	if down > 4 {
		down = 4
	}
	if left < 0 {
		left = 0
	}
	if right > 11 {
		right = 11
	}
	if up > down || left > right {
		return nil, fmt.Errorf("bounds %g,%g,%g,%g: outside of the tiled dataset", north, south, west, east)
	}

	var tiles []Tile
	for r := up; r <= down; r++ {
		for c := left; c <= right; c++ {
			tiles = append(tiles, Tile{Row: r, Col: c})
		}
	}
	return tiles, nil
}
