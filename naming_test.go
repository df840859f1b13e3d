// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim_test

import (
	"testing"

	"github.com/js-arias/worldclim"
)

func TestGlobalArchive(t *testing.T) {
	tests := map[string]struct {
		v     worldclim.Variable
		res   worldclim.Resolution
		layer int
		want  string
	}{
		"monthly":        {worldclim.Tmin, worldclim.Res10m, 1, "tmin_10m_bil.zip"},
		"dotted res":     {worldclim.Prec, worldclim.Res2_5m, 12, "prec_2-5m_bil.zip"},
		"altitude":       {worldclim.Alt, worldclim.Res5m, 0, "alt_5m_bil.zip"},
		"bio coarse":     {worldclim.Bio, worldclim.Res10m, 19, "bio_10m_bil.zip"},
		"bio 30s first":  {worldclim.Bio, worldclim.Res30s, 9, "bio1-9_30s_bil.zip"},
		"bio 30s second": {worldclim.Bio, worldclim.Res30s, 10, "bio10-19_30s_bil.zip"},
	}

	for name, test := range tests {
		if got := test.v.GlobalArchive(test.res, test.layer); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestGlobalFile(t *testing.T) {
	tests := map[string]struct {
		v     worldclim.Variable
		res   worldclim.Resolution
		layer int
		want  string
	}{
		"monthly":        {worldclim.Tmin, worldclim.Res10m, 1, "tmin1.bil"},
		"monthly 30s":    {worldclim.Tmin, worldclim.Res30s, 1, "tmin_1.bil"},
		"bio 30s":        {worldclim.Bio, worldclim.Res30s, 17, "bio_17.bil"},
		"altitude":       {worldclim.Alt, worldclim.Res2_5m, 0, "alt.bil"},
		"altitude 30s":   {worldclim.Alt, worldclim.Res30s, 0, "alt.bil"},
		"bio coarse":     {worldclim.Bio, worldclim.Res10m, 7, "bio7.bil"},
		"no zero padded": {worldclim.Prec, worldclim.Res5m, 3, "prec3.bil"},
	}

	for name, test := range tests {
		if got := test.v.GlobalFile(test.res, test.layer); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestTileNames(t *testing.T) {
	tile := worldclim.Tile{Row: 2, Col: 7}

	if got := worldclim.Prec.TileArchive(tile); got != "prec_27.zip" {
		t.Errorf("archive: got %q, want %q", got, "prec_27.zip")
	}
	if got := worldclim.Prec.TileFile(tile, 3); got != "prec3_27.bil" {
		t.Errorf("file: got %q, want %q", got, "prec3_27.bil")
	}
	if got := worldclim.Alt.TileFile(tile, 0); got != "alt_27.bil" {
		t.Errorf("altitude file: got %q, want %q", got, "alt_27.bil")
	}

	last := worldclim.Tile{Row: 0, Col: 11}
	if got := worldclim.Bio.TileArchive(last); got != "bio_011.zip" {
		t.Errorf("archive: got %q, want %q", got, "bio_011.zip")
	}
}

func TestRasterNames(t *testing.T) {
	if got := worldclim.Tmin.GlobalRaster("wc_", worldclim.Res10m, 1); got != "wc_10m_tmin01" {
		t.Errorf("global raster: got %q, want %q", got, "wc_10m_tmin01")
	}
	if got := worldclim.Alt.GlobalRaster("wc_", worldclim.Res30s, 0); got != "wc_30s_alt" {
		t.Errorf("global raster: got %q, want %q", got, "wc_30s_alt")
	}

	tile := worldclim.Tile{Row: 2, Col: 7}
	if got := worldclim.Bio.TileRaster("wc_", tile, 19); got != "wc_t27_bio19" {
		t.Errorf("tile raster: got %q, want %q", got, "wc_t27_bio19")
	}
	if got := worldclim.Prec.TileRaster("wc_", tile, 3); got != "wc_t27_prec03" {
		t.Errorf("tile raster: got %q, want %q", got, "wc_t27_prec03")
	}
	if got := worldclim.Prec.MergedRaster("wc_", 3); got != "wc_prec03" {
		t.Errorf("merged raster: got %q, want %q", got, "wc_prec03")
	}
}

func TestURLs(t *testing.T) {
	want := "http://biogeo.ucdavis.edu/data/climate/worldclim/1_4/grid/cur/tmin_10m_bil.zip"
	if got := worldclim.Tmin.GlobalURL(worldclim.Res10m, 1); got != want {
		t.Errorf("global url: got %q, want %q", got, want)
	}

	tile := worldclim.Tile{Row: 2, Col: 7}
	want = "http://biogeo.ucdavis.edu/data/climate/worldclim/1_4/tiles/cur/prec_27.zip"
	if got := worldclim.Prec.TileURL(tile); got != want {
		t.Errorf("tile url: got %q, want %q", got, want)
	}
}
