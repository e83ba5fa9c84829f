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
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/internal/ustr"
	"seehuhn.de/go/labels/units"
	"seehuhn.de/go/labels/xmlfile"
)

// templateFileName is the name of the file a user-defined template is
// stored in, relative to the user template directory.
func templateFileName(t *labels.Template) string {
	return t.Brand + "_" + t.Part + ".template"
}

// RegisterTemplate adds a user-defined template to the database and
// stores it in the user template directory.  The template's paper id
// must be known or "Other", and none of its names may already be
// taken.  On success the stored copy carries the "user-defined"
// category and watchers are notified.
func (db *DB) RegisterTemplate(t *labels.Template) error {
	db.mu.Lock()

	if !labels.IsPaperIDOther(t.PaperID) && db.findPaperByID(t.PaperID) == nil {
		db.mu.Unlock()
		return fmt.Errorf("template %q: %w %q", t.Name(), ErrUnknownPaperID, t.PaperID)
	}
	for _, a := range t.Aliases {
		if _, ok := db.index[ustr.Fold(a.Brand+" "+a.Part)]; ok {
			db.mu.Unlock()
			return fmt.Errorf("template %q %q: %w", a.Brand, a.Part, ErrTemplateExists)
		}
	}
	if db.config.UserDir == "" {
		db.mu.Unlock()
		return fmt.Errorf("template %q: no user template directory", t.Name())
	}

	err := os.MkdirAll(db.config.UserDir, 0755)
	if err != nil {
		db.mu.Unlock()
		return err
	}
	fileName := filepath.Join(db.config.UserDir, templateFileName(t))
	err = xmlfile.WriteTemplatesFile(fileName, units.Point, []*labels.Template{t})
	if err != nil {
		db.mu.Unlock()
		return err
	}

	reg := t.Clone()
	reg.AddCategory(labels.CategoryUserDefined)
	db.addTemplate(reg)

	db.mu.Unlock()
	db.notify()
	return nil
}

// DeleteTemplateByName removes the user-defined template with the
// given name from the database and from the user template directory.
// Only templates carrying the "user-defined" category can be deleted.
// Watchers are notified on success.
func (db *DB) DeleteTemplateByName(name string) error {
	db.mu.Lock()

	e, ok := db.index[ustr.Fold(name)]
	if !ok {
		db.mu.Unlock()
		return fmt.Errorf("template %q: %w", name, ErrNotFound)
	}
	t := db.templates[e.idx]

	if !ustr.HasASCII(t.CategoryIDs, labels.CategoryUserDefined) {
		db.mu.Unlock()
		return fmt.Errorf("template %q: %w", name, ErrNotUserDefined)
	}

	fileName := filepath.Join(db.config.UserDir, templateFileName(t))
	err := os.Remove(fileName)
	if err != nil && !os.IsNotExist(err) {
		db.mu.Unlock()
		return err
	}

	db.templates = slices.Delete(db.templates, e.idx, e.idx+1)
	db.rebuildIndex()

	db.mu.Unlock()
	db.notify()
	return nil
}

// DeleteTemplateByBrandPart is like DeleteTemplateByName, with the
// name given as separate brand and part number.
func (db *DB) DeleteTemplateByBrandPart(brand, part string) error {
	return db.DeleteTemplateByName(brand + " " + part)
}
