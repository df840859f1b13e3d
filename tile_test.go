// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/worldclim"
)

func TestParseTile(t *testing.T) {
	valid := map[string]worldclim.Tile{
		"00":  {Row: 0, Col: 0},
		"08":  {Row: 0, Col: 8},
		"011": {Row: 0, Col: 11},
		"27":  {Row: 2, Col: 7},
		"411": {Row: 4, Col: 11},
	}
	for name, want := range valid {
		got, err := worldclim.ParseTile(name)
		if err != nil {
			t.Errorf("tile %q: unexpected error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("tile %q: got %v, want %v", name, got, want)
		}
		if s := got.String(); s != name {
			t.Errorf("tile %q: got name %q", name, s)
		}
	}

	invalid := []string{"", "5", "50", "412", "012x", "x12", "-10"}
	for _, name := range invalid {
		if _, err := worldclim.ParseTile(name); err == nil {
			t.Errorf("tile %q: expecting error", name)
		}
	}
}

func TestTileRegion(t *testing.T) {
	tests := map[string]struct {
		tile worldclim.Tile
		want worldclim.Region
	}{
		"north-west": {
			tile: worldclim.Tile{Row: 0, Col: 0},
			want: worldclim.Region{North: 90, South: 60, West: -180, East: -150, Rows: 3600, Cols: 3600},
		},
		"central": {
			tile: worldclim.Tile{Row: 2, Col: 7},
			want: worldclim.Region{North: 30, South: 0, West: 30, East: 60, Rows: 3600, Cols: 3600},
		},
		"south-east": {
			tile: worldclim.Tile{Row: 4, Col: 11},
			want: worldclim.Region{North: -30, South: -60, West: 150, East: 180, Rows: 3600, Cols: 3600},
		},
	}

	for name, test := range tests {
		if got := test.tile.Region(); got != test.want {
			t.Errorf("%s: got %+v, want %+v", name, got, test.want)
		}
	}
}

func TestCover(t *testing.T) {
	tests := map[string]struct {
		north, south float64
		west, east   float64
		want         []string
	}{
		"inside one tile": {
			north: 25, south: 5, west: 35, east: 55,
			want: []string{"27"},
		},
		"crossing bounds": {
			north: 35, south: 25, west: -5, east: 5,
			want: []string{"15", "16", "25", "26"},
		},
		"on the edges": {
			north: 30, south: 0, west: 30, east: 60,
			want: []string{"27"},
		},
		"single point": {
			north: 10, south: 10, west: 40, east: 40,
			want: []string{"27"},
		},
		"point on a corner": {
			north: 30, south: 30, west: 30, east: 30,
			want: []string{"27"},
		},
		"point on the southern edge": {
			north: -60, south: -60, west: 10, east: 10,
			want: []string{"46"},
		},
		"point on the antimeridian": {
			north: 10, south: 10, west: 180, east: 180,
			want: []string{"211"},
		},
		"point on the dataset corner": {
			north: -60, south: -60, west: 180, east: 180,
			want: []string{"411"},
		},
		"clamped to coverage": {
			north: 90, south: -90, west: 170, east: 180,
			want: []string{"011", "111", "211", "311", "411"},
		},
	}

	for name, test := range tests {
		tiles, err := worldclim.Cover(test.north, test.south, test.west, test.east)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		got := make([]string, 0, len(tiles))
		for _, tl := range tiles {
			got = append(got, tl.String())
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestCoverWholeWorld(t *testing.T) {
	tiles, err := worldclim.Cover(90, -60, -180, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiles) != 60 {
		t.Errorf("got %d tiles, want 60", len(tiles))
	}
	for _, tl := range tiles {
		if !tl.IsValid() {
			t.Errorf("tile %s: invalid", tl)
		}
	}
}

func TestCoverInvalid(t *testing.T) {
	tests := map[string]struct {
		north, south float64
		west, east   float64
	}{
		"south above north": {north: 10, south: 20, west: 0, east: 10},
		"west beyond east":  {north: 20, south: 10, west: 10, east: 0},
		"below coverage":    {north: -70, south: -80, west: 0, east: 10},
	}

	for name, test := range tests {
		if _, err := worldclim.Cover(test.north, test.south, test.west, test.east); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
