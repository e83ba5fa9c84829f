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

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Layout describes one rectangular grid of identical label positions
// on a sheet.  A frame may carry more than one layout to describe
// irregular sheets.
type Layout struct {
	// NX and NY are the number of labels across and down.
	NX, NY int

	// X0 and Y0 locate the top-left corner of the first label,
	// relative to the top-left corner of the sheet.
	X0, Y0 float64

	// DX and DY are the horizontal and vertical pitch of the grid.
	DX, DY float64
}

// LabelCount returns the total number of labels per sheet, without
// materializing the origin list.
func (b *FrameBase) LabelCount() int {
	n := 0
	for _, l := range b.Layouts {
		n += l.NX * l.NY
	}
	return n
}

// Origins expands the layout grids of the frame into the full list of
// per-label origins.  Each origin is the top-left corner of one label,
// relative to the top-left corner of the sheet.  The list is ordered
// top-to-bottom, then left-to-right within a row.
//
// Origins from different layouts may coincide exactly if the template
// file describes overlapping grids; such duplicates are kept.
func (b *FrameBase) Origins() []vec.Vec2 {
	origins := make([]vec.Vec2, 0, b.LabelCount())
	for _, l := range b.Layouts {
		for iy := 0; iy < l.NY; iy++ {
			for ix := 0; ix < l.NX; ix++ {
				origins = append(origins, vec.Vec2{
					X: float64(ix)*l.DX + l.X0,
					Y: float64(iy)*l.DY + l.Y0,
				})
			}
		}
	}
	slices.SortFunc(origins, func(a, b vec.Vec2) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return origins
}
