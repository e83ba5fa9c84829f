// seehuhn.de/go/labels - a library for label and business card templates
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package units converts between physical length units and the internal
// unit of the labels library, which is printer's points (1/72 inch).
package units

import "strings"

// Unit identifies one of the supported physical length units.
type Unit int

// The supported units.  Point is the internal unit; all geometric
// quantities in the library are stored as points.
const (
	Point Unit = iota
	Inch
	Millimeter
	Centimeter
	Pica

	Invalid Unit = -1
)

const (
	pointsPerPoint = 1.0
	pointsPerInch  = 72.0
	pointsPerMM    = 2.83464566929
	pointsPerCM    = 10.0 * pointsPerMM
	pointsPerPica  = 1.0 / 12.0
)

// The ids are identical to the absolute length units supported in the
// CSS2 specification (section 4.3.2) and are how units are encoded in
// template files.
var unitTable = []struct {
	code          string
	name          string
	pointsPerUnit float64
}{
	Point:      {"pt", "points", pointsPerPoint},
	Inch:       {"in", "inches", pointsPerInch},
	Millimeter: {"mm", "mm", pointsPerMM},
	Centimeter: {"cm", "cm", pointsPerCM},
	Pica:       {"pc", "picas", pointsPerPica},
}

func (u Unit) valid() bool {
	return u >= 0 && int(u) < len(unitTable)
}

// Code returns the stable two-letter ID for u, as used in template
// files.  Invalid units map to the code for points.
func (u Unit) Code() string {
	if !u.valid() {
		return unitTable[Point].code
	}
	return unitTable[u].code
}

// Name returns a human readable name for u.  Invalid units map to the
// name for points.
func (u Unit) Name() string {
	if !u.valid() {
		return unitTable[Point].name
	}
	return unitTable[u].name
}

// PointsPerUnit returns the scale factor from u to points.
// Invalid units are treated as points.
func (u Unit) PointsPerUnit() float64 {
	if !u.valid() {
		return 1.0
	}
	return unitTable[u].pointsPerUnit
}

// UnitsPerPoint returns the scale factor from points to u.
// Invalid units are treated as points.
func (u Unit) UnitsPerPoint() float64 {
	if !u.valid() {
		return 1.0
	}
	return 1.0 / unitTable[u].pointsPerUnit
}

// FromCode returns the unit for the given ID string.  The comparison is
// case-insensitive.  An empty string resolves to [Point], since a length
// with no unit suffix is always in points.  Unrecognised strings yield
// [Invalid].
func FromCode(code string) Unit {
	if code == "" {
		return Point
	}
	for u, entry := range unitTable {
		if strings.EqualFold(code, entry.code) {
			return Unit(u)
		}
	}
	// Try the name as a fallback.  This catches some legacy
	// preference strings.
	for u, entry := range unitTable {
		if strings.EqualFold(code, entry.name) {
			return Unit(u)
		}
	}
	if strings.EqualFold(code, "Millimeters") {
		return Millimeter
	}
	return Invalid
}

// FromName returns the unit with the given human readable name, or
// [Invalid] if the name is not recognised.
func FromName(name string) Unit {
	for u, entry := range unitTable {
		if strings.EqualFold(name, entry.name) {
			return Unit(u)
		}
	}
	return Invalid
}
