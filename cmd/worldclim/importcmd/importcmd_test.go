// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package importcmd

import (
	"reflect"
	"testing"

	"github.com/js-arias/worldclim"
	"github.com/js-arias/worldclim/grass"
)

func TestLayersFor(t *testing.T) {
	tests := map[string]struct {
		v       worldclim.Variable
		req     []int
		layers  []int
		skipped []int
	}{
		"altitude": {
			v:      worldclim.Alt,
			layers: []int{0},
		},
		"altitude ignores requests": {
			v:      worldclim.Alt,
			req:    []int{5},
			layers: []int{0},
		},
		"monthly defaults": {
			v:      worldclim.Prec,
			layers: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
		"bio defaults": {
			v:      worldclim.Bio,
			layers: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
		},
		"bio high layers": {
			v:      worldclim.Bio,
			req:    []int{13, 19},
			layers: []int{13, 19},
		},
		"skipped are not fatal": {
			v:       worldclim.Prec,
			req:     []int{3, 13, 12, 19},
			layers:  []int{3, 12},
			skipped: []int{13, 19},
		},
	}

	for name, test := range tests {
		layers, skipped := layersFor(test.v, test.req)
		if !reflect.DeepEqual(layers, test.layers) {
			t.Errorf("%s: got layers %v, want %v", name, layers, test.layers)
		}
		if !reflect.DeepEqual(skipped, test.skipped) {
			t.Errorf("%s: got skipped %v, want %v", name, skipped, test.skipped)
		}
	}
}

func TestMergeLoneTile(t *testing.T) {
	ml := newMergeList()
	tile := worldclim.Tile{Row: 2, Col: 7}
	ml.add("wc_prec03", "wc_t27_prec03", tile.Region())

	m := ml.groups["wc_prec03"].module("wc_prec03")
	if m.Name != "g.rename" {
		t.Fatalf("module: got %q, want %q", m.Name, "g.rename")
	}
	if got := m.Options["raster"]; got != "wc_t27_prec03,wc_prec03" {
		t.Errorf("raster option: got %q, want %q", got, "wc_t27_prec03,wc_prec03")
	}
}

func TestMergeTiles(t *testing.T) {
	ml := newMergeList()
	for _, name := range []string{"27", "28", "37", "38"} {
		tile, err := worldclim.ParseTile(name)
		if err != nil {
			t.Fatalf("tile %q: unexpected error: %v", name, err)
		}
		for _, l := range []int{3, 4} {
			ml.add(worldclim.Prec.MergedRaster("wc_", l), worldclim.Prec.TileRaster("wc_", tile, l), tile.Region())
		}
	}

	if want := []string{"wc_prec03", "wc_prec04"}; !reflect.DeepEqual(ml.outs, want) {
		t.Fatalf("merged rasters: got %v, want %v", ml.outs, want)
	}

	m := ml.groups["wc_prec03"].module("wc_prec03")
	if m.Name != "r.patch" {
		t.Fatalf("module: got %q, want %q", m.Name, "r.patch")
	}
	wantIn := "wc_t27_prec03,wc_t28_prec03,wc_t37_prec03,wc_t38_prec03"
	if got := m.Options["input"]; got != wantIn {
		t.Errorf("input option: got %q, want %q", got, wantIn)
	}
	if got := m.Options["output"]; got != "wc_prec03" {
		t.Errorf("output option: got %q, want %q", got, "wc_prec03")
	}

	// the union of tiles 27, 28, 37, and 38
	// spans 30S-30N and 30E-90E
	wantEnv := grass.RegionEnv(30, -30, 30, 90, 7200, 7200)
	if len(m.Env) != 1 || m.Env[0] != wantEnv {
		t.Errorf("environment: got %v, want %q", m.Env, wantEnv)
	}
}
