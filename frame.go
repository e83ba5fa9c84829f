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
	"fmt"
	"slices"

	"seehuhn.de/go/labels/units"
)

// A Frame gives the shape and dimensions of a single label or card die,
// together with the layout grids which position copies of the die on
// the page.
//
// The concrete types are [*FrameRect], [*FrameEllipse], [*FrameRound]
// and [*FrameCD].  Code which computes geometry must type switch over
// all four.
type Frame interface {
	// Kind returns the name of the frame shape, for use in messages.
	Kind() string

	// Base gives access to the fields shared by all frame shapes.
	Base() *FrameBase

	// Size returns the bounding width and height of one label.
	Size() (w, h float64)

	// Clone returns a deep copy of the frame.
	Clone() Frame

	// sameGeometry reports whether the other frame has the same
	// shape, dimensions and layout grids.
	sameGeometry(other Frame) bool
}

// FrameBase holds the fields shared by all frame shapes.
type FrameBase struct {
	// ID identifies the frame within its template.  Since templates
	// currently have exactly one frame, this is always "0".
	ID string

	// Layouts positions copies of the die on the page.
	Layouts []Layout

	// Markups are advisory guide lines carried with the frame.
	Markups []Markup
}

func (b *FrameBase) clone() FrameBase {
	return FrameBase{
		ID:      b.ID,
		Layouts: slices.Clone(b.Layouts),
		Markups: slices.Clone(b.Markups),
	}
}

// AddLayout appends a layout grid to the frame.
func (b *FrameBase) AddLayout(l Layout) {
	b.Layouts = append(b.Layouts, l)
}

// AddMarkup appends a markup decoration to the frame.
func (b *FrameBase) AddMarkup(m Markup) {
	b.Markups = append(b.Markups, m)
}

// FrameRect is a rectangular label or card die, optionally with rounded
// corners.
type FrameRect struct {
	FrameBase
	W, H   float64 // label dimensions
	R      float64 // corner radius
	XWaste float64 // allowed horizontal overprint
	YWaste float64 // allowed vertical overprint
}

// FrameEllipse is an elliptical die.
type FrameEllipse struct {
	FrameBase
	W, H  float64 // label dimensions
	Waste float64 // allowed overprint
}

// FrameRound is a circular die.
type FrameRound struct {
	FrameBase
	R     float64 // radius
	Waste float64 // allowed overprint
}

// FrameCD is a CD/DVD die: an annulus with an optional rectangular
// clip for business card CDs.
type FrameCD struct {
	FrameBase
	R1    float64 // outer radius
	R2    float64 // inner hole radius
	W, H  float64 // clip dimensions, zero when unclipped
	Waste float64 // allowed overprint
}

// Kind implements the [Frame] interface.
func (f *FrameRect) Kind() string { return "rectangle" }

// Kind implements the [Frame] interface.
func (f *FrameEllipse) Kind() string { return "ellipse" }

// Kind implements the [Frame] interface.
func (f *FrameRound) Kind() string { return "round" }

// Kind implements the [Frame] interface.
func (f *FrameCD) Kind() string { return "cd" }

// Base implements the [Frame] interface.
func (f *FrameRect) Base() *FrameBase { return &f.FrameBase }

// Base implements the [Frame] interface.
func (f *FrameEllipse) Base() *FrameBase { return &f.FrameBase }

// Base implements the [Frame] interface.
func (f *FrameRound) Base() *FrameBase { return &f.FrameBase }

// Base implements the [Frame] interface.
func (f *FrameCD) Base() *FrameBase { return &f.FrameBase }

// Size implements the [Frame] interface.
func (f *FrameRect) Size() (w, h float64) { return f.W, f.H }

// Size implements the [Frame] interface.
func (f *FrameEllipse) Size() (w, h float64) { return f.W, f.H }

// Size implements the [Frame] interface.
func (f *FrameRound) Size() (w, h float64) { return 2 * f.R, 2 * f.R }

// Size implements the [Frame] interface.  For clipped CDs the clip
// dimensions take the place of the disc diameter.
func (f *FrameCD) Size() (w, h float64) {
	w, h = 2*f.R1, 2*f.R1
	if f.W != 0 {
		w = f.W
	}
	if f.H != 0 {
		h = f.H
	}
	return w, h
}

// Clone implements the [Frame] interface.
func (f *FrameRect) Clone() Frame {
	g := *f
	g.FrameBase = f.FrameBase.clone()
	return &g
}

// Clone implements the [Frame] interface.
func (f *FrameEllipse) Clone() Frame {
	g := *f
	g.FrameBase = f.FrameBase.clone()
	return &g
}

// Clone implements the [Frame] interface.
func (f *FrameRound) Clone() Frame {
	g := *f
	g.FrameBase = f.FrameBase.clone()
	return &g
}

// Clone implements the [Frame] interface.
func (f *FrameCD) Clone() Frame {
	g := *f
	g.FrameBase = f.FrameBase.clone()
	return &g
}

func (f *FrameRect) sameGeometry(other Frame) bool {
	g, ok := other.(*FrameRect)
	if !ok {
		return false
	}
	return f.W == g.W && f.H == g.H && f.R == g.R &&
		f.XWaste == g.XWaste && f.YWaste == g.YWaste &&
		slices.Equal(f.Layouts, g.Layouts)
}

func (f *FrameEllipse) sameGeometry(other Frame) bool {
	g, ok := other.(*FrameEllipse)
	if !ok {
		return false
	}
	return f.W == g.W && f.H == g.H && f.Waste == g.Waste &&
		slices.Equal(f.Layouts, g.Layouts)
}

func (f *FrameRound) sameGeometry(other Frame) bool {
	g, ok := other.(*FrameRound)
	if !ok {
		return false
	}
	return f.R == g.R && f.Waste == g.Waste &&
		slices.Equal(f.Layouts, g.Layouts)
}

func (f *FrameCD) sameGeometry(other Frame) bool {
	g, ok := other.(*FrameCD)
	if !ok {
		return false
	}
	return f.R1 == g.R1 && f.R2 == g.R2 &&
		f.W == g.W && f.H == g.H && f.Waste == g.Waste &&
		slices.Equal(f.Layouts, g.Layouts)
}

// SizeDescription returns a human readable description of the label
// size in the given units, e.g. "2.5 × 1 inches" or "12 cm diameter".
func SizeDescription(f Frame, u units.Unit) string {
	perPoint := u.UnitsPerPoint()
	switch f := f.(type) {
	case *FrameRound:
		return fmt.Sprintf("%.5g %s diameter", 2*f.R*perPoint, u.Name())
	case *FrameCD:
		if f.W == 0 && f.H == 0 {
			return fmt.Sprintf("%.5g %s diameter", 2*f.R1*perPoint, u.Name())
		}
	}
	w, h := f.Size()
	return fmt.Sprintf("%.5g × %.5g %s", w*perPoint, h*perPoint, u.Name())
}

// LayoutDescription returns a human readable description of the label
// grid, e.g. "3 × 10 (30 per sheet)".
func LayoutDescription(f Frame) string {
	b := f.Base()
	n := b.LabelCount()
	if len(b.Layouts) == 1 {
		l := b.Layouts[0]
		return fmt.Sprintf("%d × %d (%d per sheet)", l.NX, l.NY, n)
	}
	return fmt.Sprintf("%d per sheet", n)
}
