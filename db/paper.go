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

// PaperIDs returns the ids of all known paper sizes, in load order.
func (db *DB) PaperIDs() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	ids := make([]string, len(db.papers))
	for i, p := range db.papers {
		ids[i] = p.ID
	}
	return ids
}

// PaperNames returns the user-visible names of all known paper sizes,
// in load order.
func (db *DB) PaperNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, len(db.papers))
	for i, p := range db.papers {
		names[i] = p.Name
	}
	return names
}

// LookupPaperByID returns a copy of the paper with the given id.  An
// empty id selects the first paper; an unknown id yields nil.
func (db *DB) LookupPaperByID(id string) *labels.Paper {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if id == "" && len(db.papers) > 0 {
		return db.papers[0].Clone()
	}
	if p := db.findPaperByID(id); p != nil {
		return p.Clone()
	}
	return nil
}

// LookupPaperByName returns a copy of the paper with the given name.
// An empty name selects the first paper; an unknown name yields nil.
func (db *DB) LookupPaperByName(name string) *labels.Paper {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if name == "" && len(db.papers) > 0 {
		return db.papers[0].Clone()
	}
	if p := db.findPaperByName(name); p != nil {
		return p.Clone()
	}
	return nil
}

// PaperIDFromName returns the id of the paper with the given name, or
// "" if the name is not known.
func (db *DB) PaperIDFromName(name string) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if p := db.findPaperByName(name); p != nil {
		return p.ID
	}
	return ""
}

// PaperNameFromID returns the user-visible name of the paper with the
// given id, or "" if the id is not known.
func (db *DB) PaperNameFromID(id string) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if p := db.findPaperByID(id); p != nil {
		return p.Name
	}
	return ""
}

// IsPaperIDKnown reports whether the database contains a paper with
// the given id.
func (db *DB) IsPaperIDKnown(id string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.findPaperByID(id) != nil
}

// IsPaperIDOther reports whether id names the sentinel paper for
// custom page sizes.
func (db *DB) IsPaperIDOther(id string) bool {
	return labels.IsPaperIDOther(id)
}

// FindPaperByID returns a copy of the paper with the given id, or nil
// if the id is not known.
func (db *DB) FindPaperByID(id string) *labels.Paper {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if p := db.findPaperByID(id); p != nil {
		return p.Clone()
	}
	return nil
}

// FindPaperByName returns a copy of the paper with the given name, or
// nil if the name is not known.
func (db *DB) FindPaperByName(name string) *labels.Paper {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if p := db.findPaperByName(name); p != nil {
		return p.Clone()
	}
	return nil
}

func (db *DB) findPaperByID(id string) *labels.Paper {
	for _, p := range db.papers {
		if strings.EqualFold(p.ID, id) {
			return p
		}
	}
	return nil
}

func (db *DB) findPaperByName(name string) *labels.Paper {
	for _, p := range db.papers {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}
