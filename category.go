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

// CategoryUserDefined is the id of the synthesized category which tags
// templates registered by the user at run time.
const CategoryUserDefined = "user-defined"

// Category describes one template category, e.g. "round-labels".
type Category struct {
	// ID is the stable key of the category.
	ID string

	// Name is the localized display name.
	Name string
}

// Clone returns a copy of the category.
func (c *Category) Clone() *Category {
	d := *c
	return &d
}
