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

// Labels-inspect shows the contents of the template database.
//
// Without arguments the program lists the names of all templates,
// optionally restricted by brand, paper size and category.  With one
// or more template names as arguments it prints the details of each
// named template.  The -papers, -categories and -vendors flags list
// the other entity types instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/db"
	"seehuhn.de/go/labels/units"
)

func main() {
	dataDir := flag.String("d", "", "system template directory")
	unitCode := flag.String("u", "pt", "unit for lengths (pt, in, mm, cm, pc)")
	brand := flag.String("brand", "", "restrict the list to one brand")
	paper := flag.String("paper", "", "restrict the list to one paper size id")
	category := flag.String("category", "", "restrict the list to one category id")
	withAliases := flag.Bool("a", false, "include alias names in the list")
	listPapers := flag.Bool("papers", false, "list the known paper sizes")
	listCategories := flag.Bool("categories", false, "list the known categories")
	listVendors := flag.Bool("vendors", false, "list the known vendors")
	flag.Parse()

	u := units.FromCode(*unitCode)
	if u == units.Invalid {
		fmt.Fprintf(os.Stderr, "error: unknown unit %q\n", *unitCode)
		os.Exit(1)
	}

	var database *db.DB
	if *dataDir != "" {
		database = db.Open(db.Config{SystemDir: *dataDir})
	} else {
		database = db.Default()
	}

	if *listPapers {
		for _, id := range database.PaperIDs() {
			p := database.FindPaperByID(id)
			fmt.Printf("%s\t%s\t%s × %s\n", p.ID, p.Name,
				units.FormatLength(p.Width, u),
				units.FormatLength(p.Height, u))
		}
		return
	}
	if *listCategories {
		for _, id := range database.CategoryIDs() {
			fmt.Printf("%s\t%s\n", id, database.CategoryNameFromID(id))
		}
		return
	}
	if *listVendors {
		for _, name := range database.VendorNames() {
			fmt.Printf("%s\t%s\n", name, database.VendorURLFromName(name))
		}
		return
	}

	if flag.NArg() == 0 {
		var names []string
		if *withAliases {
			names = database.TemplateNamesAll(*brand, *paper, *category)
		} else {
			names = database.TemplateNamesUnique(*brand, *paper, *category)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	for i, name := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		err := showTemplate(database, name, u)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func showTemplate(database *db.DB, name string, u units.Unit) error {
	tmpl := database.FindTemplateByName(name)
	if tmpl == nil {
		return fmt.Errorf("error: template %q not found", name)
	}

	fmt.Println(tmpl.Name())
	if tmpl.Description != "" {
		fmt.Println("  description:", tmpl.Description)
	}
	if tmpl.EquivPart != "" {
		fmt.Println("  same die as:", tmpl.Brand, tmpl.EquivPart)
	}
	fmt.Printf("  page: %s (%s × %s)\n",
		tmpl.PaperID,
		units.FormatLength(tmpl.PageWidth, u),
		units.FormatLength(tmpl.PageHeight, u))
	if len(tmpl.CategoryIDs) > 0 {
		fmt.Println("  categories:", strings.Join(tmpl.CategoryIDs, ", "))
	}
	if tmpl.ProductURL != "" {
		fmt.Println("  url:", tmpl.ProductURL)
	}

	for _, f := range tmpl.Frames {
		fmt.Printf("  label: %s, %s\n", f.Kind(), labels.SizeDescription(f, u))
		fmt.Println("  layout:", labels.LayoutDescription(f))
	}

	similar := database.SimilarTemplateNames(tmpl.Name())
	if len(similar) > 0 {
		fmt.Println("  equivalent part numbers:", strings.Join(similar, ", "))
	}
	return nil
}
