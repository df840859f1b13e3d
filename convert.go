// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim

import "fmt"

// A Conversion is an affine unit conversion
// applied to an imported raster,
// in the form value*Scale + Offset.
type Conversion struct {
	Scale  float64
	Offset float64

	// Name of the resulting unit.
	Unit string
}

// ConvertFlags indicate the unit conversions
// requested for an import.
// If several conversions apply to a variable,
// the first one in field order wins.
type ConvertFlags struct {
	// Convert temperatures to degrees Celsius.
	Celsius bool

	// Convert temperatures to Kelvin.
	Kelvin bool

	// Convert precipitation to meters per year.
	MetersYear bool

	// Convert any variable to floating point,
	// keeping its unit.
	Float bool
}

// ConversionFor returns the conversion to be applied
// to a variable under the requested flags.
// It returns false if no conversion applies.
func ConversionFor(v Variable, f ConvertFlags) (Conversion, bool) {
	switch {
	case f.Celsius && v.IsTemperature():
		return Conversion{Scale: 0.1, Unit: "degree Celsius"}, true
	case f.Kelvin && v.IsTemperature():
		return Conversion{Scale: 0.1, Offset: 273.15, Unit: "Kelvin"}, true
	case f.MetersYear && v == Prec:
		return Conversion{Scale: 0.012, Unit: "meter per year"}, true
	case f.Float:
		return Conversion{Scale: 1, Unit: "floating point"}, true
	}
	return Conversion{}, false
}

// Expr returns the map calculator expression
// that applies the conversion to a raster,
// in place.
func (c Conversion) Expr(raster string) string {
	return fmt.Sprintf("%s=float(%s*%g+%g)", raster, raster, c.Scale, c.Offset)
}
