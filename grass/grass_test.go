// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package grass_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/worldclim/grass"
)

func TestModuleArgs(t *testing.T) {
	m := &grass.Module{
		Name:      "r.in.bin",
		Flags:     "s",
		Overwrite: true,
		Options: map[string]string{
			"input":  "/tmp/tmin1.bil",
			"output": "wc_10m_tmin01",
			"bytes":  "2",
			"anull":  "-9999",
			"north":  "90",
			"south":  "-60",
			"west":   "-180",
			"east":   "180",
			"rows":   "900",
			"cols":   "2160",
		},
	}

	want := []string{
		"-s", "--overwrite",
		"anull=-9999",
		"bytes=2",
		"cols=2160",
		"east=180",
		"input=/tmp/tmin1.bil",
		"north=90",
		"output=wc_10m_tmin01",
		"rows=900",
		"south=-60",
		"west=-180",
	}
	if got := m.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("args: got %v, want %v", got, want)
	}
}

func TestModuleArgsNoFlags(t *testing.T) {
	m := &grass.Module{
		Name:    "g.rename",
		Options: map[string]string{"raster": "wc_t27_prec03,wc_prec03"},
	}

	want := []string{"raster=wc_t27_prec03,wc_prec03"}
	if got := m.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("args: got %v, want %v", got, want)
	}
}

func TestRegionEnv(t *testing.T) {
	env := grass.RegionEnv(30, 0, 30, 60, 3600, 3600)
	if !strings.HasPrefix(env, "GRASS_REGION=") {
		t.Fatalf("environment entry: got %q", env)
	}

	want := "proj: 3; zone: 0;" +
		" north: 30; south: 0; east: 60; west: 30;" +
		" cols: 3600; rows: 3600;" +
		" e-w resol: 0.008333333333333333; n-s resol: 0.008333333333333333"
	if got := strings.TrimPrefix(env, "GRASS_REGION="); got != want {
		t.Errorf("region: got %q, want %q", got, want)
	}
}
