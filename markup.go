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

// Markup is one advisory guide line drawn inside a label outline to
// help position objects.  Markups are purely decorative: the layout
// expander ignores them.
//
// The concrete types are [MarkupMargin], [MarkupLine], [MarkupCircle],
// [MarkupRect] and [MarkupEllipse].
type Markup interface {
	isMarkup()
}

// MarkupMargin is a margin line inset from the label edge.
type MarkupMargin struct {
	// Size is the margin width in points.
	Size float64
}

// MarkupLine is a straight line segment.
type MarkupLine struct {
	X1, Y1 float64 // first endpoint
	X2, Y2 float64 // second endpoint
}

// MarkupCircle is a circle with the given center and radius.
type MarkupCircle struct {
	X0, Y0 float64 // center
	R      float64 // radius
}

// MarkupRect is a rectangle with optionally rounded corners.
type MarkupRect struct {
	X1, Y1 float64 // upper left corner
	W, H   float64 // width and height
	R      float64 // corner radius
}

// MarkupEllipse is an ellipse inscribed in the given rectangle.
type MarkupEllipse struct {
	X1, Y1 float64 // upper left corner
	W, H   float64 // width and height
}

func (MarkupMargin) isMarkup()  {}
func (MarkupLine) isMarkup()    {}
func (MarkupCircle) isMarkup()  {}
func (MarkupRect) isMarkup()    {}
func (MarkupEllipse) isMarkup() {}
