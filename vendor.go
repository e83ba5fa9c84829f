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

// Vendor describes one label vendor.  Vendors have no stable id;
// lookup is by name.
type Vendor struct {
	// Name is the localized vendor name.
	Name string

	// URL points to the vendor's website.
	URL string
}

// Clone returns a copy of the vendor.
func (v *Vendor) Clone() *Vendor {
	w := *v
	return &w
}
