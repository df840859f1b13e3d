// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bil reads the headerless binary grids
// used by the WorldClim 1.4 datasets:
// little endian 16 bit signed integers,
// stored row by row from the north-west corner,
// with -9999 as the nodata value.
//
// The package is used for previews and statistics only;
// importing a grid into a GIS session
// is always delegated to the host importer.
package bil

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Nodata is the value used
// to mark cells without data.
const Nodata = -9999

// A Grid is an in-memory raster grid.
type Grid struct {
	rows, cols int
	data       []int16
}

// Read reads a grid of the indicated size
// from a headerless binary file.
func Read(r io.Reader, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid size: %d x %d", rows, cols)
	}

	// one row at a time;
	// a 30 arc-seconds global grid
	// is too big to buffer twice
	data := make([]int16, rows*cols)
	b := make([]byte, cols*2)
	for i := 0; i < rows; i++ {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("expecting %d cells: %v", rows*cols, err)
		}
		row := data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = int16(binary.LittleEndian.Uint16(b[j*2:]))
		}
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: data,
	}, nil
}

// Rows returns the number of rows of the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns of the grid.
func (g *Grid) Cols() int { return g.cols }

// At returns the value of the cell
// at the indicated row and column,
// counted from the north-west corner.
// It returns false for nodata cells.
func (g *Grid) At(row, col int) (int, bool) {
	v := g.data[row*g.cols+col]
	if v == Nodata {
		return 0, false
	}
	return int(v), true
}

// Values returns the values of all cells with data,
// in grid order.
func (g *Grid) Values() []float64 {
	vals := make([]float64, 0, len(g.data))
	for _, v := range g.data {
		if v == Nodata {
			continue
		}
		vals = append(vals, float64(v))
	}
	return vals
}
