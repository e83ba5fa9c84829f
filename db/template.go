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

package db

import (
	"fmt"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/internal/ustr"
)

// Brands returns the sorted list of brands with at least one template
// matching the given paper size and category.  Empty filter arguments
// match everything.
func (db *DB) Brands(paperID, categoryID string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var brands []string
	for _, t := range db.templates {
		if !t.MatchesPaper(paperID) || !t.MatchesCategory(categoryID) {
			continue
		}
		// a brand appearing only as an alias still counts
		for _, a := range t.Aliases {
			if !ustr.Contains(brands, a.Brand) {
				brands = ustr.SortedInsert(brands, a.Brand, ustr.Compare)
			}
		}
	}
	return brands
}

// TemplateNamesUnique returns the canonical names of all templates
// matching the given filters, sorted by part number.  Each template
// appears once, under its canonical name only.  Empty filter
// arguments match everything.
func (db *DB) TemplateNamesUnique(brand, paperID, categoryID string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var names []string
	for _, t := range db.templates {
		if !t.MatchesBrand(brand) || !t.MatchesPaper(paperID) || !t.MatchesCategory(categoryID) {
			continue
		}
		names = ustr.SortedInsert(names, t.Name(), ustr.ComparePartNames)
	}
	return names
}

// TemplateNamesAll returns the names of all templates matching the
// given filters, sorted by part number.  Every alias of a template
// contributes a name, so a single template can appear several times.
// Empty filter arguments match everything.
func (db *DB) TemplateNamesAll(brand, paperID, categoryID string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var names []string
	for _, t := range db.templates {
		if !t.MatchesPaper(paperID) || !t.MatchesCategory(categoryID) {
			continue
		}
		for _, a := range t.Aliases {
			if brand != "" && !ustr.Equal(a.Brand, brand) {
				continue
			}
			names = ustr.SortedInsert(names, a.Brand+" "+a.Part, ustr.ComparePartNames)
		}
	}
	return names
}

// SimilarTemplateNames returns the names of all templates which use
// the same die as the named template.  Every alias of a matching
// template contributes a name; the queried name itself is omitted.
// An unknown name yields an empty list.
func (db *DB) SimilarTemplateNames(name string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	e, ok := db.index[ustr.Fold(name)]
	if !ok {
		return nil
	}
	t1 := db.templates[e.idx]

	var names []string
	for _, t2 := range db.templates {
		if !t1.SameGeometry(t2) {
			continue
		}
		for _, a := range t2.Aliases {
			n := a.Brand + " " + a.Part
			if ustr.Equal(n, name) {
				continue
			}
			names = ustr.SortedInsert(names, n, ustr.ComparePartNames)
		}
	}
	return names
}

// TemplateExists reports whether a template is known under the given
// brand and part number.  Aliases are considered.
func (db *DB) TemplateExists(brand, part string) bool {
	return db.TemplateNameExists(brand + " " + part)
}

// TemplateNameExists reports whether a template is known under the
// given name.  Aliases are considered.
func (db *DB) TemplateNameExists(name string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	_, ok := db.index[ustr.Fold(name)]
	return ok
}

// LookupTemplate returns a copy of the template with the given name.
// If the name matches an alias, the copy is relabelled with the
// requested brand and part number.  Lookups never fail: an unknown
// name yields a copy of the first template in the database.  The
// result is only nil if the database holds no templates at all.
func (db *DB) LookupTemplate(name string) *labels.Template {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.lookupTemplate(name)
}

// LookupTemplateByBrandPart is like LookupTemplate, with the name
// given as separate brand and part number.
func (db *DB) LookupTemplateByBrandPart(brand, part string) *labels.Template {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.lookupTemplate(brand + " " + part)
}

func (db *DB) lookupTemplate(name string) *labels.Template {
	if e, ok := db.index[ustr.Fold(name)]; ok {
		t := db.templates[e.idx].Clone()
		t.Brand = e.alias.Brand
		t.Part = e.alias.Part
		return t
	}
	if len(db.templates) == 0 {
		return nil
	}
	return db.templates[0].Clone()
}

// FindTemplate returns a copy of the template with the given brand
// and part number, or nil if no such template is known.  If the name
// matches an alias, the copy is relabelled with the requested brand
// and part number.
func (db *DB) FindTemplate(brand, part string) *labels.Template {
	return db.FindTemplateByName(brand + " " + part)
}

// FindTemplateByName is like FindTemplate, with the name given as a
// single "Brand Part" string.
func (db *DB) FindTemplateByName(name string) *labels.Template {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.index[ustr.Fold(name)]
	if !ok {
		return nil
	}
	t := db.templates[e.idx].Clone()
	t.Brand = e.alias.Brand
	t.Part = e.alias.Part
	return t
}

// NewTemplateFromEquiv derives a template for a new part number from
// the registered template with the given brand and equivPart.  The
// result shares the die of the original; it is not itself registered.
// The original template must already be in the database.
func (db *DB) NewTemplateFromEquiv(brand, part, equivPart string) (*labels.Template, error) {
	base := db.FindTemplate(brand, equivPart)
	if base == nil {
		return nil, fmt.Errorf("template %q %q: %w", brand, equivPart, ErrNotFound)
	}
	return base.NewVariant(part), nil
}
