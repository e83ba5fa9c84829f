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

// VendorNames returns the names of all known label vendors, in load
// order.
func (db *DB) VendorNames() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	names := make([]string, len(db.vendors))
	for i, v := range db.vendors {
		names[i] = v.Name
	}
	return names
}

// LookupVendorByName returns a copy of the vendor with the given
// name.  An empty name selects the first vendor; an unknown name
// yields nil.
func (db *DB) LookupVendorByName(name string) *labels.Vendor {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if name == "" && len(db.vendors) > 0 {
		return db.vendors[0].Clone()
	}
	if v := db.findVendorByName(name); v != nil {
		return v.Clone()
	}
	return nil
}

// VendorURLFromName returns the web site of the vendor with the given
// name, or "" if the vendor is not known.
func (db *DB) VendorURLFromName(name string) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if v := db.findVendorByName(name); v != nil {
		return v.URL
	}
	return ""
}

// IsVendorNameKnown reports whether the database contains a vendor
// with the given name.
func (db *DB) IsVendorNameKnown(name string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.findVendorByName(name) != nil
}

func (db *DB) findVendorByName(name string) *labels.Vendor {
	for _, v := range db.vendors {
		if strings.EqualFold(v.Name, name) {
			return v
		}
	}
	return nil
}
