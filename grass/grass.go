// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package grass runs modules of a GRASS GIS session.
//
// Each GRASS module is an executable on its own
// (for example r.in.bin or r.patch)
// that must be run inside a GRASS session,
// usually with `grass --exec`.
// The package only builds the command lines
// and executes the modules;
// all raster parsing, patching, and region handling
// is done by the host modules themselves.
package grass

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strconv"
)

// A Module is a call to a GRASS module.
type Module struct {
	// Name of the module executable,
	// looked up in the system path on each invocation.
	Name string

	// Single letter flags,
	// each one passed as its own argument
	// (an "s" becomes "-s").
	Flags string

	// Options passed as key=value arguments,
	// in key order.
	Options map[string]string

	// If Overwrite is true,
	// the module is allowed to replace
	// an existing raster.
	Overwrite bool

	// Extra environment entries for the module run,
	// appended to the current environment.
	Env []string
}

// Args returns the command line arguments
// of the module call.
func (m *Module) Args() []string {
	var args []string
	for _, f := range m.Flags {
		args = append(args, "-"+string(f))
	}
	if m.Overwrite {
		args = append(args, "--overwrite")
	}

	keys := make([]string, 0, len(m.Options))
	for k := range m.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k+"="+m.Options[k])
	}
	return args
}

// Run executes the module,
// sending its output to the indicated writers
// (usually the standard output and error
// of the calling command).
func (m *Module) Run(stdout, stderr io.Writer) error {
	cmd := exec.Command(m.Name, m.Args()...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if len(m.Env) > 0 {
		cmd.Env = append(os.Environ(), m.Env...)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("module %s: %v", m.Name, err)
	}
	return nil
}

// RegionEnv returns an environment entry
// that restricts a module run to the given extents,
// without touching the session region.
// It is the equivalent of a temporary region
// in a GRASS script.
func RegionEnv(north, south, west, east float64, rows, cols int) string {
	ewres := (east - west) / float64(cols)
	nsres := (north - south) / float64(rows)
	v := "proj: 3; zone: 0;" +
		" north: " + formatFloat(north) + ";" +
		" south: " + formatFloat(south) + ";" +
		" east: " + formatFloat(east) + ";" +
		" west: " + formatFloat(west) + ";" +
		" cols: " + strconv.Itoa(cols) + ";" +
		" rows: " + strconv.Itoa(rows) + ";" +
		" e-w resol: " + formatFloat(ewres) + ";" +
		" n-s resol: " + formatFloat(nsres)
	return "GRASS_REGION=" + v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
