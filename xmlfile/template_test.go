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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/units"
)

// fakeCatalog implements Catalog for tests.
type fakeCatalog struct {
	papers    []*labels.Paper
	templates []*labels.Template
}

func (c *fakeCatalog) FindPaperByID(id string) *labels.Paper {
	for _, p := range c.papers {
		if strings.EqualFold(p.ID, id) {
			return p
		}
	}
	return nil
}

func (c *fakeCatalog) FindPaperByName(name string) *labels.Paper {
	for _, p := range c.papers {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func (c *fakeCatalog) FindTemplate(brand, part string) *labels.Template {
	for _, t := range c.templates {
		for _, a := range t.Aliases {
			if strings.EqualFold(a.Brand, brand) && strings.EqualFold(a.Part, part) {
				return t
			}
		}
	}
	return nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		papers: []*labels.Paper{
			{ID: "US-Letter", Name: "US Letter", Width: 612, Height: 792},
			{ID: "A4", Name: "A4", Width: 595.276, Height: 841.89},
		},
	}
}

func TestReadTemplate(t *testing.T) {
	const in = `<?xml version="1.0"?>
<Glabels-templates xmlns="http://glabels.org/xmlns/2.0/">
  <Template brand="Avery" part="5160" description="Address Labels" size="US-Letter">
    <Meta category="label"/>
    <Meta category="mail"/>
    <Meta product_url="http://www.avery.com/5160"/>
    <Label-rectangle id="0" width="189pt" height="72pt" round="10pt" x_waste="0" y_waste="0">
      <Markup-margin size="9pt"/>
      <Layout nx="3" ny="10" x0="11.25pt" y0="36pt" dx="200pt" dy="72pt"/>
    </Label-rectangle>
  </Template>
</Glabels-templates>`

	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 1 {
		t.Fatalf("got %d templates, want 1", len(tt))
	}

	frame := &labels.FrameRect{
		FrameBase: labels.FrameBase{
			ID:      "0",
			Layouts: []labels.Layout{{NX: 3, NY: 10, X0: 11.25, Y0: 36, DX: 200, DY: 72}},
			Markups: []labels.Markup{labels.MarkupMargin{Size: 9}},
		},
		W: 189, H: 72, R: 10,
	}
	want := &labels.Template{
		Brand:       "Avery",
		Part:        "5160",
		Description: "Address Labels",
		PaperID:     "US-Letter",
		PageWidth:   612,
		PageHeight:  792,
		ProductURL:  "http://www.avery.com/5160",
		CategoryIDs: []string{"label", "mail"},
		Aliases:     []labels.Alias{{Brand: "Avery", Part: "5160"}},
		Frames:      []labels.Frame{frame},
	}
	if d := cmp.Diff(want, tt[0]); d != "" {
		t.Errorf("template mismatch (-want +got):\n%s", d)
	}
}

func TestReadLegacyName(t *testing.T) {
	const in = `<Glabels-templates>
  <Template name="Avery 8160" size="US-Letter">
    <Label-rectangle id="0" width="180" height="72">
      <Layout nx="3" ny="10" x0="0" y0="0" dx="200" dy="72"/>
    </Label-rectangle>
  </Template>
</Glabels-templates>`

	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 1 {
		t.Fatalf("got %d templates, want 1", len(tt))
	}
	if tt[0].Brand != "Avery" || tt[0].Part != "8160" {
		t.Errorf("got %q %q, want Avery 8160", tt[0].Brand, tt[0].Part)
	}
}

func TestReadEquiv(t *testing.T) {
	const in = `<Glabels-templates>
  <Template brand="Avery" part="5160" description="Address Labels" size="US-Letter">
    <Label-rectangle id="0" width="189" height="72">
      <Layout nx="3" ny="10" x0="11.25" y0="36" dx="200" dy="72"/>
    </Label-rectangle>
  </Template>
</Glabels-templates>`

	cat := testCatalog()
	tt, err := ReadTemplates(strings.NewReader(in), cat)
	if err != nil {
		t.Fatal(err)
	}
	cat.templates = tt

	const in2 = `<Glabels-templates>
  <Template brand="Avery" part="6240" equiv="5160"/>
</Glabels-templates>`
	tt2, err := ReadTemplates(strings.NewReader(in2), cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt2) != 1 {
		t.Fatalf("got %d templates, want 1", len(tt2))
	}
	got := tt2[0]
	if got.Part != "6240" || got.EquivPart != "5160" {
		t.Errorf("got part %q equiv %q", got.Part, got.EquivPart)
	}
	if got.Description != "Address Labels" {
		t.Errorf("description not inherited: %q", got.Description)
	}
	if !got.SameGeometry(tt[0]) {
		t.Error("derived template must share the original geometry")
	}
	want := []labels.Alias{{Brand: "Avery", Part: "6240"}}
	if d := cmp.Diff(want, got.Aliases); d != "" {
		t.Errorf("aliases (-want +got):\n%s", d)
	}
}

func TestReadEquivForwardReference(t *testing.T) {
	// equiv targets must already be known; unresolvable templates
	// are skipped
	const in = `<Glabels-templates>
  <Template brand="Avery" part="6240" equiv="5160"/>
</Glabels-templates>`
	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 0 {
		t.Errorf("got %d templates, want 0", len(tt))
	}
}

func TestReadUnknownPaper(t *testing.T) {
	// an unknown size attribute is retried as a paper name before
	// falling back to US-Letter dimensions
	cases := []struct {
		name string
		size string
		id   string
		w, h float64
	}{
		{"by name", "US Letter", "US-Letter", 612, 792},
		{"unknown", "no-such-size", "no-such-size", 612, 792},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := `<Glabels-templates>
  <Template brand="Acme" part="1" size="` + c.size + `">
    <Label-rectangle id="0" width="100" height="100"/>
  </Template>
</Glabels-templates>`
			tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
			if err != nil {
				t.Fatal(err)
			}
			tmpl := tt[0]
			if tmpl.PaperID != c.id || tmpl.PageWidth != c.w || tmpl.PageHeight != c.h {
				t.Errorf("got %q %g×%g, want %q %g×%g",
					tmpl.PaperID, tmpl.PageWidth, tmpl.PageHeight,
					c.id, c.w, c.h)
			}
		})
	}
}

func TestReadOtherPaper(t *testing.T) {
	const in = `<Glabels-templates>
  <Template brand="Acme" part="1" size="Other" width="8in" height="10in">
    <Label-rectangle id="0" width="100" height="100"/>
  </Template>
</Glabels-templates>`
	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	tmpl := tt[0]
	if tmpl.PageWidth != 576 || tmpl.PageHeight != 720 {
		t.Errorf("got %g×%g, want 576×720", tmpl.PageWidth, tmpl.PageHeight)
	}
}

func TestReadRepairs(t *testing.T) {
	// a template without a frame covers the full page, a frame
	// without a layout holds a single label
	const in = `<Glabels-templates>
  <Template brand="Acme" part="1" size="A4"/>
  <Template brand="Acme" part="2" size="A4">
    <Label-round id="0" radius="36"/>
  </Template>
</Glabels-templates>`
	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 2 {
		t.Fatalf("got %d templates, want 2", len(tt))
	}

	f0, ok := tt[0].Frame().(*labels.FrameRect)
	if !ok {
		t.Fatalf("got %T, want full-page rectangle", tt[0].Frame())
	}
	if f0.W != 595.276 || f0.H != 841.89 {
		t.Errorf("full-page frame is %g×%g", f0.W, f0.H)
	}
	if n := f0.LabelCount(); n != 1 {
		t.Errorf("full-page frame holds %d labels", n)
	}

	f1 := tt[1].Frame()
	want := []labels.Layout{{NX: 1, NY: 1}}
	if d := cmp.Diff(want, f1.Base().Layouts); d != "" {
		t.Errorf("layouts (-want +got):\n%s", d)
	}
}

func TestReadWaste(t *testing.T) {
	const in = `<Glabels-templates>
  <Template brand="Acme" part="1" size="A4">
    <Label-rectangle id="0" width="100" height="50" waste="5"/>
  </Template>
  <Template brand="Acme" part="2" size="A4">
    <Label-rectangle id="0" width="100" height="50" x_waste="3" y_waste="4"/>
  </Template>
</Glabels-templates>`
	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	f0 := tt[0].Frame().(*labels.FrameRect)
	if f0.XWaste != 5 || f0.YWaste != 5 {
		t.Errorf("waste: got (%g, %g), want (5, 5)", f0.XWaste, f0.YWaste)
	}
	f1 := tt[1].Frame().(*labels.FrameRect)
	if f1.XWaste != 3 || f1.YWaste != 4 {
		t.Errorf("x/y waste: got (%g, %g), want (3, 4)", f1.XWaste, f1.YWaste)
	}
}

func TestReadObsoleteAlias(t *testing.T) {
	// Alias child nodes were removed from the format; they are
	// accepted but do not create aliases
	const in = `<Glabels-templates>
  <Template brand="Avery" part="5160" size="US-Letter">
    <Label-rectangle id="0" width="189" height="72">
      <Layout nx="3" ny="10" x0="11.25" y0="36" dx="200" dy="72"/>
    </Label-rectangle>
    <Alias brand="Avery" part="6240"/>
  </Template>
</Glabels-templates>`
	tt, err := ReadTemplates(strings.NewReader(in), testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	want := []labels.Alias{{Brand: "Avery", Part: "5160"}}
	if d := cmp.Diff(want, tt[0].Aliases); d != "" {
		t.Errorf("aliases (-want +got):\n%s", d)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	t1 := labels.NewTemplate("Acme", "A-1", "test", "A4", 595.276, 841.89)
	t1.AddCategory("label")
	t1.ProductURL = "http://example.com/a-1"
	f := &labels.FrameCD{FrameBase: labels.FrameBase{ID: "0"}, R1: 166.5, R2: 58.5, Waste: 9}
	f.AddLayout(labels.Layout{NX: 1, NY: 2, X0: 100, Y0: 50, DX: 0, DY: 350})
	f.AddMarkup(labels.MarkupCircle{X0: 166.5, Y0: 166.5, R: 166.5})
	t1.AddFrame(f)

	t2 := labels.NewTemplate("Acme", "A-2", "round test", "Other", 500, 500)
	g := &labels.FrameRound{FrameBase: labels.FrameBase{ID: "0"}, R: 50, Waste: 2}
	g.AddLayout(labels.Layout{NX: 4, NY: 4, X0: 25, Y0: 25, DX: 110, DY: 110})
	t2.AddFrame(g)

	buf := &bytes.Buffer{}
	err := WriteTemplates(buf, units.Millimeter, []*labels.Template{t1, t2})
	if err != nil {
		t.Fatal(err)
	}

	cat := testCatalog()
	got, err := ReadTemplates(buf, cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d templates, want 2", len(got))
	}

	approx := cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < 1e-6
	})
	for i, want := range []*labels.Template{t1, t2} {
		if d := cmp.Diff(want, got[i], approx); d != "" {
			t.Errorf("template %d (-want +got):\n%s", i, d)
		}
	}
}
