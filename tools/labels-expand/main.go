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

// Labels-expand prints the positions of all labels on a sheet.
//
// For each label the program prints one line with the x and y
// coordinate of the label's upper left corner, measured from the
// upper left corner of the page.  Labels are listed row by row, top
// to bottom.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/labels/db"
	"seehuhn.de/go/labels/units"
)

func main() {
	dataDir := flag.String("d", "", "system template directory")
	unitCode := flag.String("u", "pt", "unit for lengths (pt, in, mm, cm, pc)")
	countOnly := flag.Bool("n", false, "only print the number of labels")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: labels-expand [options] \"Brand Part\"")
		flag.Usage()
		os.Exit(1)
	}

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

	name := flag.Arg(0)
	tmpl := database.FindTemplateByName(name)
	if tmpl == nil {
		fmt.Fprintf(os.Stderr, "error: template %q not found\n", name)
		os.Exit(1)
	}
	frame := tmpl.Frame()
	if frame == nil {
		fmt.Fprintf(os.Stderr, "error: template %q has no label frame\n", name)
		os.Exit(1)
	}

	base := frame.Base()
	if *countOnly {
		fmt.Println(base.LabelCount())
		return
	}
	for _, origin := range base.Origins() {
		fmt.Printf("%s\t%s\n",
			units.FormatLength(origin.X, u),
			units.FormatLength(origin.Y, u))
	}
}
