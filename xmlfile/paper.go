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

package xmlfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"

	"seehuhn.de/go/labels"
)

type papersXML struct {
	XMLName xml.Name   `xml:"Glabels-paper-sizes"`
	Papers  []paperXML `xml:"Paper-size"`
}

type paperXML struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr,omitempty"`
	NameI18n string `xml:"_name,attr,omitempty"`
	Width    string `xml:"width,attr"`
	Height   string `xml:"height,attr"`
	PWGSize  string `xml:"pwg_size,attr,omitempty"`
}

// ReadPapersFile reads a glabels paper size file.  Entries without an
// id or name are reported via the log package and skipped.
func ReadPapersFile(name string) ([]*labels.Paper, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readPapers(fd, name)
}

// ReadPapers reads a glabels paper size document from r.
func ReadPapers(r io.Reader) ([]*labels.Paper, error) {
	return readPapers(r, "paper sizes")
}

func readPapers(r io.Reader, context string) ([]*labels.Paper, error) {
	var doc papersXML
	err := xml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	var pp []*labels.Paper
	for _, x := range doc.Papers {
		name := x.NameI18n
		if name == "" {
			name = x.Name
		}
		if x.ID == "" || name == "" {
			log.Printf("%s: paper size without id or name", context)
			continue
		}
		pp = append(pp, &labels.Paper{
			ID:      x.ID,
			Name:    name,
			Width:   parseLength(x.Width, "width", context),
			Height:  parseLength(x.Height, "height", context),
			PWGSize: x.PWGSize,
		})
	}
	return pp, nil
}

type categoriesXML struct {
	XMLName    xml.Name      `xml:"Glabels-categories"`
	Categories []categoryXML `xml:"Category"`
}

type categoryXML struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr,omitempty"`
	NameI18n string `xml:"_name,attr,omitempty"`
}

// ReadCategoriesFile reads a glabels category file.
func ReadCategoriesFile(name string) ([]*labels.Category, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readCategories(fd, name)
}

// ReadCategories reads a glabels category document from r.
func ReadCategories(r io.Reader) ([]*labels.Category, error) {
	return readCategories(r, "categories")
}

func readCategories(r io.Reader, context string) ([]*labels.Category, error) {
	var doc categoriesXML
	err := xml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	var cc []*labels.Category
	for _, x := range doc.Categories {
		name := x.NameI18n
		if name == "" {
			name = x.Name
		}
		if x.ID == "" || name == "" {
			log.Printf("%s: category without id or name", context)
			continue
		}
		cc = append(cc, &labels.Category{ID: x.ID, Name: name})
	}
	return cc, nil
}

type vendorsXML struct {
	XMLName xml.Name    `xml:"Glabels-vendors"`
	Vendors []vendorXML `xml:"Vendor"`
}

type vendorXML struct {
	Name string `xml:"name,attr"`
	URL  string `xml:"url,attr,omitempty"`
}

// ReadVendorsFile reads a glabels vendor file.
func ReadVendorsFile(name string) ([]*labels.Vendor, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readVendors(fd, name)
}

// ReadVendors reads a glabels vendor document from r.
func ReadVendors(r io.Reader) ([]*labels.Vendor, error) {
	return readVendors(r, "vendors")
}

func readVendors(r io.Reader, context string) ([]*labels.Vendor, error) {
	var doc vendorsXML
	err := xml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	var vv []*labels.Vendor
	for _, x := range doc.Vendors {
		if x.Name == "" {
			log.Printf("%s: vendor without name", context)
			continue
		}
		vv = append(vv, &labels.Vendor{Name: x.Name, URL: x.URL})
	}
	return vv, nil
}
