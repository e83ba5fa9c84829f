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

// Package db maintains the local database of paper sizes, categories,
// vendors and label templates.
//
// The database is filled from the system data directory and from a
// per-user directory.  User templates are loaded first, so they win
// over system templates with the same name, and are tagged with the
// "user-defined" category.  Loading is best-effort: unreadable files
// are reported via the configured logger and skipped, and opening a
// database never fails.
//
// All methods are safe for concurrent use.
package db

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/internal/ustr"
	"seehuhn.de/go/labels/xmlfile"
)

// Errors returned by RegisterTemplate and the Delete methods.
var (
	ErrTemplateExists = errors.New("template already exists")
	ErrUnknownPaperID = errors.New("unknown paper id")
	ErrNotFound       = errors.New("template not found")
	ErrNotUserDefined = errors.New("not a user-defined template")
)

// data file names within the data directories
const (
	papersFileName     = "paper-sizes.xml"
	categoriesFileName = "categories.xml"
	vendorsFileName    = "vendors.xml"
)

// migratedSentinel marks a legacy directory whose templates have
// already been copied to the current user directory.
const migratedSentinel = ".migrated"

// Config describes where a database finds its data files.
type Config struct {
	// SystemDir holds the system-wide data files: paper-sizes.xml,
	// categories.xml, vendors.xml and the stock template files.
	SystemDir string

	// UserDir holds user-defined templates.  It is created on demand
	// when the first template is registered.
	UserDir string

	// LegacyDir is the user template directory of older releases.
	// On first use its templates are copied to UserDir; afterwards
	// it is only read.
	LegacyDir string

	// Logger receives warnings about malformed or unreadable data
	// files.  If nil, the standard logger is used.
	Logger *log.Logger
}

// indexEntry locates a template by one of its names.
type indexEntry struct {
	idx   int
	alias labels.Alias
}

// DB is an in-memory database of paper sizes, categories, vendors and
// label templates.
type DB struct {
	mu     sync.RWMutex
	config Config
	log    *log.Logger

	papers     []*labels.Paper
	categories []*labels.Category
	vendors    []*labels.Vendor
	templates  []*labels.Template

	// index maps case-folded "brand part" names, including aliases,
	// to templates.  It is derived from the template list and is
	// rebuilt after deletions.
	index map[string]indexEntry

	nextWatcher int
	watchers    map[int]func()
}

// Open loads a database from the directories given in config.  Open
// always succeeds; problems with individual data files are logged and
// the affected entries skipped.
func Open(config Config) *DB {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	db := &DB{
		config:   config,
		log:      logger,
		index:    make(map[string]indexEntry),
		watchers: make(map[int]func()),
	}
	db.load()
	return db
}

var (
	defaultDB   *DB
	defaultOnce sync.Once
)

// Default returns the shared database for the current user, loading
// it on first use.  The system data directory can be overridden with
// the GLABELS_TEMPLATE_DIR environment variable.
func Default() *DB {
	defaultOnce.Do(func() {
		config := Config{
			SystemDir: "/usr/share/glabels/templates",
		}
		if dir := os.Getenv("GLABELS_TEMPLATE_DIR"); dir != "" {
			config.SystemDir = dir
		}
		if dir, err := os.UserConfigDir(); err == nil {
			config.UserDir = filepath.Join(dir, "libglabels", "templates")
		}
		if home, err := os.UserHomeDir(); err == nil {
			config.LegacyDir = filepath.Join(home, ".glabels")
		}
		defaultDB = Open(config)
	})
	return defaultDB
}

// load fills the database.  It runs before the DB is visible to other
// goroutines, so no locking is needed.
func (db *DB) load() {
	db.migrateLegacyDir()

	db.loadPapers()
	db.loadCategories()
	db.loadVendors()

	// user templates first, so that they win over system templates
	for _, t := range db.readTemplateDir(db.config.UserDir) {
		t.AddCategory(labels.CategoryUserDefined)
		db.addTemplate(t)
	}
	for _, t := range db.readTemplateDir(db.config.LegacyDir) {
		db.addTemplate(t)
	}
	for _, t := range db.readTemplateDir(db.config.SystemDir) {
		db.addTemplate(t)
	}

	for _, p := range db.papers {
		if labels.IsPaperIDOther(p.ID) {
			continue
		}
		db.addTemplate(fullPageTemplate(p))
	}

	if len(db.papers) <= 1 { // only the synthetic "Other"
		db.log.Printf("no paper sizes found, check the data directories")
	}
	if len(db.templates) == 0 {
		db.log.Printf("no templates found, check the data directories")
	}
}

func (db *DB) loadPapers() {
	for _, dir := range []string{db.config.SystemDir, db.config.UserDir} {
		if dir == "" {
			continue
		}
		name := filepath.Join(dir, papersFileName)
		pp, err := xmlfile.ReadPapersFile(name)
		if err != nil {
			if !os.IsNotExist(err) {
				db.log.Printf("cannot read %s: %v", name, err)
			}
			continue
		}
		db.papers = append(db.papers, pp...)
	}

	// sentinel entry for custom page sizes
	db.papers = append(db.papers, &labels.Paper{
		ID:   labels.PaperIDOther,
		Name: "Other",
	})
}

func (db *DB) loadCategories() {
	for _, dir := range []string{db.config.SystemDir, db.config.UserDir} {
		if dir == "" {
			continue
		}
		name := filepath.Join(dir, categoriesFileName)
		cc, err := xmlfile.ReadCategoriesFile(name)
		if err != nil {
			if !os.IsNotExist(err) {
				db.log.Printf("cannot read %s: %v", name, err)
			}
			continue
		}
		db.categories = append(db.categories, cc...)
	}

	db.categories = append(db.categories, &labels.Category{
		ID:   labels.CategoryUserDefined,
		Name: "User defined",
	})
}

func (db *DB) loadVendors() {
	for _, dir := range []string{db.config.SystemDir, db.config.UserDir} {
		if dir == "" {
			continue
		}
		name := filepath.Join(dir, vendorsFileName)
		vv, err := xmlfile.ReadVendorsFile(name)
		if err != nil {
			if !os.IsNotExist(err) {
				db.log.Printf("cannot read %s: %v", name, err)
			}
			continue
		}
		db.vendors = append(db.vendors, vv...)
	}
}

// readTemplateDir reads all template files in dir.  Template files
// have a ".template" extension; the older "-templates.xml" suffix is
// still accepted.
func (db *DB) readTemplateDir(dir string) []*labels.Template {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			db.log.Printf("cannot read %s: %v", dir, err)
		}
		return nil
	}

	var tt []*labels.Template
	for _, e := range entries {
		if e.IsDir() || !isTemplateFileName(e.Name()) {
			continue
		}
		name := filepath.Join(dir, e.Name())
		fileTT, err := xmlfile.ReadTemplatesFile(name, db)
		if err != nil {
			db.log.Printf("cannot read %s: %v", name, err)
			continue
		}
		tt = append(tt, fileTT...)
	}
	return tt
}

func isTemplateFileName(name string) bool {
	return strings.HasSuffix(name, ".template") ||
		strings.HasSuffix(name, "-templates.xml")
}

// addTemplate registers a template, unless one of its names is
// already taken.  The first registration of a name wins.
func (db *DB) addTemplate(t *labels.Template) {
	for _, a := range t.Aliases {
		if _, ok := db.index[ustr.Fold(a.Brand+" "+a.Part)]; ok {
			db.log.Printf("duplicate template %q %q ignored", a.Brand, a.Part)
			return
		}
	}
	idx := len(db.templates)
	db.templates = append(db.templates, t)
	for _, a := range t.Aliases {
		db.index[ustr.Fold(a.Brand+" "+a.Part)] = indexEntry{idx: idx, alias: a}
	}
}

// rebuildIndex recomputes the name index from the template list.
func (db *DB) rebuildIndex() {
	db.index = make(map[string]indexEntry, len(db.templates))
	for idx, t := range db.templates {
		for _, a := range t.Aliases {
			key := ustr.Fold(a.Brand + " " + a.Part)
			if _, ok := db.index[key]; !ok {
				db.index[key] = indexEntry{idx: idx, alias: a}
			}
		}
	}
}

// fullPageTemplate builds the generic one-label template covering the
// whole of the given page size.
func fullPageTemplate(p *labels.Paper) *labels.Template {
	t := labels.NewTemplate("Generic", p.ID+"-Full-Page",
		fmt.Sprintf("%s full page label", p.Name),
		p.ID, p.Width, p.Height)
	f := &labels.FrameRect{W: p.Width, H: p.Height}
	f.AddLayout(labels.Layout{NX: 1, NY: 1})
	f.AddMarkup(labels.MarkupMargin{Size: 9})
	t.AddFrame(f)
	return t
}

// migrateLegacyDir copies the template files of older releases to the
// current user directory.  The copy happens at most once; a sentinel
// file in the legacy directory records that it has been done.
func (db *DB) migrateLegacyDir() {
	legacy := db.config.LegacyDir
	user := db.config.UserDir
	if legacy == "" || user == "" {
		return
	}
	if _, err := os.Stat(filepath.Join(legacy, migratedSentinel)); err == nil {
		return
	}
	entries, err := os.ReadDir(legacy)
	if err != nil {
		return
	}

	for _, e := range entries {
		if e.IsDir() || !isTemplateFileName(e.Name()) {
			continue
		}
		err := copyFile(filepath.Join(legacy, e.Name()),
			filepath.Join(user, e.Name()))
		if err != nil {
			db.log.Printf("cannot migrate %s: %v", e.Name(), err)
		}
	}

	fd, err := os.Create(filepath.Join(legacy, migratedSentinel))
	if err != nil {
		db.log.Printf("cannot mark %s as migrated: %v", legacy, err)
		return
	}
	fd.Close()
}

func copyFile(from, to string) error {
	err := os.MkdirAll(filepath.Dir(to), 0755)
	if err != nil {
		return err
	}
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(to)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Subscribe registers a function to be called after every change to
// the database.  The returned id can be passed to Unsubscribe.
func (db *DB) Subscribe(fn func()) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.nextWatcher
	db.nextWatcher++
	db.watchers[id] = fn
	return id
}

// Unsubscribe removes a watcher registered with Subscribe.
func (db *DB) Unsubscribe(id int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.watchers, id)
}

// notify calls all watchers.  It must be called without holding the
// mutex, after the change has been applied.
func (db *DB) notify() {
	db.mu.RLock()
	watchers := maps.Values(db.watchers)
	db.mu.RUnlock()
	for _, fn := range watchers {
		fn()
	}
}
