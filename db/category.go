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
	"strings"

	"seehuhn.de/go/labels"
)

// CategoryIDs returns the ids of all known template categories, in
// load order.
func (db *DB) CategoryIDs() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	ids := make([]string, len(db.categories))
	for i, c := range db.categories {
		ids[i] = c.ID
	}
	return ids
}

// CategoryNames returns the user-visible names of all known template
// categories, in load order.
func (db *DB) CategoryNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, len(db.categories))
	for i, c := range db.categories {
		names[i] = c.Name
	}
	return names
}

// LookupCategoryByID returns a copy of the category with the given
// id.  An empty id selects the first category; an unknown id yields
// nil.
func (db *DB) LookupCategoryByID(id string) *labels.Category {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if id == "" && len(db.categories) > 0 {
		return db.categories[0].Clone()
	}
	if c := db.findCategoryByID(id); c != nil {
		return c.Clone()
	}
	return nil
}

// LookupCategoryByName returns a copy of the category with the given
// name.  An empty name selects the first category; an unknown name
// yields nil.
func (db *DB) LookupCategoryByName(name string) *labels.Category {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if name == "" && len(db.categories) > 0 {
		return db.categories[0].Clone()
	}
	for _, c := range db.categories {
		if strings.EqualFold(c.Name, name) {
			return c.Clone()
		}
	}
	return nil
}

// CategoryNameFromID returns the user-visible name of the category
// with the given id, or "" if the id is not known.
func (db *DB) CategoryNameFromID(id string) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if c := db.findCategoryByID(id); c != nil {
		return c.Name
	}
	return ""
}

// IsCategoryIDKnown reports whether the database contains a category
// with the given id.
func (db *DB) IsCategoryIDKnown(id string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.findCategoryByID(id) != nil
}

func (db *DB) findCategoryByID(id string) *labels.Category {
	for _, c := range db.categories {
		if strings.EqualFold(c.ID, id) {
			return c
		}
	}
	return nil
}
