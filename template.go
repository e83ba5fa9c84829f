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
	"slices"
	"strings"

	"seehuhn.de/go/labels/internal/ustr"
)

// Alias is an alternate brand/part pair under which a template is
// discoverable, e.g. a rebrand or a compatible third-party part number.
type Alias struct {
	Brand, Part string
}

// Template describes one commercial label or business card product.
type Template struct {
	// Brand and Part together form the primary stable identity of
	// the template.
	Brand string
	Part  string

	// EquivPart optionally names another part of the same brand
	// whose geometry this template inherits.
	EquivPart string

	// Description is the localized description of the product.
	Description string

	// PaperID references the page size the product is printed on.
	// If it is the "Other" sentinel, PageWidth and PageHeight give
	// the page size explicitly.
	PaperID    string
	PageWidth  float64
	PageHeight float64

	// ProductURL optionally points to the manufacturer's product
	// website.
	ProductURL string

	// CategoryIDs lists the categories the product belongs to.
	CategoryIDs []string

	// Aliases lists every brand/part pair the template is known
	// under.  The primary brand/part is always the first entry.
	Aliases []Alias

	// Frames holds the label frame.  The slice form exists for
	// forward compatibility; templates have exactly one frame and
	// only the first entry is consulted.
	Frames []Frame
}

// NewTemplate creates a template with the given identity and page size
// and no frame.  The primary brand/part pair is entered into the alias
// list.
func NewTemplate(brand, part, description, paperID string, pageWidth, pageHeight float64) *Template {
	return &Template{
		Brand:       brand,
		Part:        part,
		Description: description,
		PaperID:     paperID,
		PageWidth:   pageWidth,
		PageHeight:  pageHeight,
		Aliases:     []Alias{{Brand: brand, Part: part}},
	}
}

// Name returns the display name of the template, the concatenation of
// brand and part.
func (t *Template) Name() string {
	return t.Brand + " " + t.Part
}

// Frame returns the template's label frame, or nil if the template has
// none.
func (t *Template) Frame() Frame {
	if len(t.Frames) == 0 {
		return nil
	}
	return t.Frames[0]
}

// AddFrame appends a frame to the template.
func (t *Template) AddFrame(f Frame) {
	t.Frames = append(t.Frames, f)
}

// AddCategory tags the template with the given category id.
func (t *Template) AddCategory(categoryID string) {
	t.CategoryIDs = append(t.CategoryIDs, categoryID)
}

// AddAlias registers an additional brand/part pair for the template.
func (t *Template) AddAlias(brand, part string) {
	t.Aliases = append(t.Aliases, Alias{Brand: brand, Part: part})
}

// Match reports whether the two templates have the same identity, i.e.
// equal brand and part ignoring case.  It does not test whether the
// templates are geometrically identical; see [Template.SameGeometry]
// for that.
func (t *Template) Match(other *Template) bool {
	return ustr.Equal(t.Brand, other.Brand) && ustr.Equal(t.Part, other.Part)
}

// MatchesBrand reports whether the template has the given brand.  An
// empty brand matches everything.
func (t *Template) MatchesBrand(brand string) bool {
	if brand == "" {
		return true
	}
	return ustr.Equal(t.Brand, brand)
}

// MatchesPaper reports whether the template is printed on the page
// size with the given id.  An empty id matches everything.
func (t *Template) MatchesPaper(paperID string) bool {
	if paperID == "" {
		return true
	}
	return strings.EqualFold(t.PaperID, paperID)
}

// MatchesCategory reports whether the template belongs to the category
// with the given id.  An empty id matches everything.
func (t *Template) MatchesCategory(categoryID string) bool {
	if categoryID == "" {
		return true
	}
	for _, id := range t.CategoryIDs {
		if strings.EqualFold(id, categoryID) {
			return true
		}
	}
	return false
}

// SameGeometry reports whether the two templates share the same
// physical die: the same frame shape, dimensions and layout grids,
// regardless of brand and part.
func (t *Template) SameGeometry(other *Template) bool {
	f1 := t.Frame()
	f2 := other.Frame()
	if f1 == nil || f2 == nil {
		return false
	}
	return f1.sameGeometry(f2)
}

// NewVariant derives a template for a different part number which
// shares the die of t.  The copy inherits all geometry and metadata,
// records t's part number in EquivPart, and starts with a fresh alias
// list.
func (t *Template) NewVariant(part string) *Template {
	v := t.Clone()
	v.Part = part
	v.EquivPart = t.Part
	v.Aliases = []Alias{{Brand: v.Brand, Part: part}}
	return v
}

// Clone returns a deep copy of the template.  The copy shares no
// mutable state with the original.
func (t *Template) Clone() *Template {
	u := *t
	u.CategoryIDs = slices.Clone(t.CategoryIDs)
	u.Aliases = slices.Clone(t.Aliases)
	u.Frames = make([]Frame, len(t.Frames))
	for i, f := range t.Frames {
		u.Frames[i] = f.Clone()
	}
	return &u
}
