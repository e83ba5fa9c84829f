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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/labels"
)

func TestReadPapers(t *testing.T) {
	const in = `<?xml version="1.0"?>
<Glabels-paper-sizes xmlns="http://glabels.org/xmlns/2.0/">
  <Paper-size id="US-Letter" _name="US Letter" width="8.5in" height="11in" pwg_size="na_letter_8.5x11in"/>
  <Paper-size id="A4" name="A4" width="210mm" height="297mm"/>
  <Paper-size id="broken" width="1in" height="1in"/>
</Glabels-paper-sizes>`

	pp, err := ReadPapers(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(pp) != 2 {
		t.Fatalf("got %d papers, want 2 (entry without name skipped)", len(pp))
	}

	want := &labels.Paper{
		ID: "US-Letter", Name: "US Letter",
		Width: 612, Height: 792,
		PWGSize: "na_letter_8.5x11in",
	}
	if d := cmp.Diff(want, pp[0]); d != "" {
		t.Errorf("paper (-want +got):\n%s", d)
	}

	// the plain name attribute is accepted too
	if pp[1].Name != "A4" {
		t.Errorf("Name = %q", pp[1].Name)
	}
	if math.Abs(pp[1].Width-595.2755905) > 1e-6 {
		t.Errorf("Width = %g", pp[1].Width)
	}
}

func TestReadCategories(t *testing.T) {
	const in = `<Glabels-categories>
  <Category id="round-labels" _name="Round labels"/>
  <Category id="mail" name="Mailing products"/>
</Glabels-categories>`

	cc, err := ReadCategories(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []*labels.Category{
		{ID: "round-labels", Name: "Round labels"},
		{ID: "mail", Name: "Mailing products"},
	}
	if d := cmp.Diff(want, cc); d != "" {
		t.Errorf("categories (-want +got):\n%s", d)
	}
}

func TestReadVendors(t *testing.T) {
	const in = `<Glabels-vendors>
  <Vendor name="Avery" url="http://www.avery.com/"/>
  <Vendor url="http://example.com/"/>
</Glabels-vendors>`

	vv, err := ReadVendors(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []*labels.Vendor{
		{Name: "Avery", URL: "http://www.avery.com/"},
	}
	if d := cmp.Diff(want, vv); d != "" {
		t.Errorf("vendors (-want +got):\n%s", d)
	}
}

func TestReadBadDocument(t *testing.T) {
	_, err := ReadPapers(strings.NewReader("not xml"))
	if err == nil {
		t.Error("expected error for malformed document")
	}
}
