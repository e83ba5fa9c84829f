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

// Package labels models sheets of self-adhesive labels and business
// cards.
//
// A [Template] describes one commercial label product: the vendor brand
// and part number, the page it is printed on, and a [Frame] giving the
// shape and dimensions of the individual label die together with one or
// more [Layout] grids which position the labels on the page.  The
// layout expander, [FrameBase.Origins], turns the compact grid
// descriptors into the list of concrete label positions in reading
// order.
//
// All lengths in this package are in printer's points (1/72 inch); the
// units subpackage converts from and to other units.
//
// The db subpackage maintains the catalog of all known papers,
// categories, vendors and templates, loaded from XML files via the
// xmlfile subpackage.
package labels
