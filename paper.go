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

package labels

import "strings"

// PaperIDOther is the id of the sentinel paper representing a custom
// page size not drawn from the known catalog.
const PaperIDOther = "Other"

// Paper describes one known page size.
type Paper struct {
	// ID is the stable ASCII key of the paper, e.g. "US-Letter".
	ID string

	// Name is the localized display name.
	Name string

	// Width and Height are the page dimensions in points.  Both are
	// zero for the sentinel "Other" paper.
	Width, Height float64

	// PWGSize is the PWG 5101.1-2002 standard name for this size,
	// if any.
	PWGSize string
}

// Clone returns a copy of the paper.
func (p *Paper) Clone() *Paper {
	q := *p
	return &q
}

// IsPaperIDOther reports whether id names the sentinel "Other" paper.
func IsPaperIDOther(id string) bool {
	return strings.EqualFold(id, PaperIDOther)
}
