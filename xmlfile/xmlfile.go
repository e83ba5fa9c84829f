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

// Package xmlfile reads and writes the glabels XML file formats.
//
// Four document types are supported: template files
// (Glabels-templates), paper size lists (Glabels-paper-sizes),
// category lists (Glabels-categories) and vendor lists
// (Glabels-vendors).  Length-valued attributes may carry a unit
// suffix, for example "2.5in" or "12.7mm"; bare numbers are points.
//
// Reading is best-effort: individual malformed entries are reported
// via the log package and skipped, so that one bad template does not
// take down a whole data file.
package xmlfile

import (
	"log"
	"strconv"
	"strings"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/units"
)

// Namespace is the XML namespace of all glabels data files.
const Namespace = "http://glabels.org/xmlns/2.0/"

// Catalog resolves references a template file can make to entities
// outside the file itself: named paper sizes, and previously loaded
// templates referred to by an equiv attribute.  It is implemented by
// *db.DB; tests can supply a fake.
type Catalog interface {
	// FindPaperByID returns the paper with the given id, or nil if
	// the id is not known.
	FindPaperByID(id string) *labels.Paper

	// FindPaperByName returns the paper with the given user-visible
	// name, or nil if the name is not known.
	FindPaperByName(name string) *labels.Paper

	// FindTemplate returns the template with the given brand and
	// part number, or nil if no such template has been loaded.
	// Part number aliases are considered.
	FindTemplate(brand, part string) *labels.Template
}

// parseLength converts a length-valued attribute to points.  Missing
// attributes yield zero.  Unknown unit suffixes and malformed numbers
// are reported via the log package; the numeric prefix (or zero) is
// used in their place.
func parseLength(val, attr, context string) float64 {
	if val == "" {
		return 0
	}
	x, err := units.ParseLength(val)
	if err != nil {
		log.Printf("%s: attribute %s=%q: %v", context, attr, val, err)
	}
	return x
}

// parseInt converts an integer-valued attribute, substituting def for
// missing or malformed values.
func parseInt(val, attr, context string, def int) int {
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		log.Printf("%s: attribute %s=%q: not an integer", context, attr, val)
		return def
	}
	return n
}
