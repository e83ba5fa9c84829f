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
	"strings"

	"seehuhn.de/go/labels"
	"seehuhn.de/go/labels/units"
)

// fallback page size for templates with an unresolvable paper id,
// US-Letter in points
const (
	fallbackPageWidth  = 612
	fallbackPageHeight = 792
)

type templatesXML struct {
	XMLName   xml.Name      `xml:"Glabels-templates"`
	Xmlns     string        `xml:"xmlns,attr,omitempty"`
	Templates []templateXML `xml:"Template"`
}

type templateXML struct {
	Brand       string `xml:"brand,attr,omitempty"`
	Part        string `xml:"part,attr,omitempty"`
	Name        string `xml:"name,attr,omitempty"` // legacy "Brand Part"
	Equiv       string `xml:"equiv,attr,omitempty"`
	Description string `xml:"description,attr,omitempty"`
	DescrI18n   string `xml:"_description,attr,omitempty"`
	Size        string `xml:"size,attr,omitempty"`
	Width       string `xml:"width,attr,omitempty"`
	Height      string `xml:"height,attr,omitempty"`

	Meta     []metaXML  `xml:"Meta"`
	Rects    []frameXML `xml:"Label-rectangle"`
	Ellipses []frameXML `xml:"Label-ellipse"`
	Rounds   []frameXML `xml:"Label-round"`
	CDs      []frameXML `xml:"Label-cd"`

	// obsolete, read for compatibility and dropped
	Aliases []aliasXML `xml:"Alias"`
}

type metaXML struct {
	Category   string `xml:"category,attr,omitempty"`
	ProductURL string `xml:"product_url,attr,omitempty"`
}

type aliasXML struct {
	Brand string `xml:"brand,attr,omitempty"`
	Part  string `xml:"part,attr,omitempty"`
	Name  string `xml:"name,attr,omitempty"`
}

// frameXML is the union of the attributes of the four Label-* node
// types.  Which attributes are meaningful depends on the node name.
type frameXML struct {
	ID     string `xml:"id,attr,omitempty"`
	Width  string `xml:"width,attr,omitempty"`
	Height string `xml:"height,attr,omitempty"`
	Round  string `xml:"round,attr,omitempty"`
	Radius string `xml:"radius,attr,omitempty"`
	Hole   string `xml:"hole,attr,omitempty"`
	Waste  string `xml:"waste,attr,omitempty"`
	XWaste string `xml:"x_waste,attr,omitempty"`
	YWaste string `xml:"y_waste,attr,omitempty"`

	Layouts        []layoutXML        `xml:"Layout"`
	MarkupMargins  []markupMarginXML  `xml:"Markup-margin"`
	MarkupLines    []markupLineXML    `xml:"Markup-line"`
	MarkupCircles  []markupCircleXML  `xml:"Markup-circle"`
	MarkupRects    []markupRectXML    `xml:"Markup-rect"`
	MarkupEllipses []markupEllipseXML `xml:"Markup-ellipse"`
}

type layoutXML struct {
	NX string `xml:"nx,attr,omitempty"`
	NY string `xml:"ny,attr,omitempty"`
	X0 string `xml:"x0,attr"`
	Y0 string `xml:"y0,attr"`
	DX string `xml:"dx,attr"`
	DY string `xml:"dy,attr"`
}

type markupMarginXML struct {
	Size string `xml:"size,attr"`
}

type markupLineXML struct {
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
}

type markupCircleXML struct {
	X0     string `xml:"x0,attr"`
	Y0     string `xml:"y0,attr"`
	Radius string `xml:"radius,attr"`
}

type markupRectXML struct {
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	W  string `xml:"w,attr"`
	H  string `xml:"h,attr"`
	R  string `xml:"r,attr,omitempty"`
}

type markupEllipseXML struct {
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	W  string `xml:"w,attr"`
	H  string `xml:"h,attr"`
}

// ReadTemplatesFile reads a glabels template file.  Individual
// templates which cannot be parsed are reported via the log package
// and skipped.
func ReadTemplatesFile(name string, cat Catalog) ([]*labels.Template, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return readTemplates(fd, cat, name)
}

// ReadTemplates reads a glabels template document from r.
func ReadTemplates(r io.Reader, cat Catalog) ([]*labels.Template, error) {
	return readTemplates(r, cat, "templates")
}

func readTemplates(r io.Reader, cat Catalog, context string) ([]*labels.Template, error) {
	var doc templatesXML
	dec := xml.NewDecoder(r)
	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}

	var tt []*labels.Template
	for i := range doc.Templates {
		tmpl := decodeTemplate(&doc.Templates[i], tt, cat, context)
		if tmpl != nil {
			tt = append(tt, tmpl)
		}
	}
	return tt, nil
}

// findEquivBase resolves an equiv reference.  Earlier templates from
// the same document take precedence over the catalog, so that a data
// file can define a die once and list equivalent part numbers below.
func findEquivBase(sofar []*labels.Template, cat Catalog, brand, part string) *labels.Template {
	for _, t := range sofar {
		for _, a := range t.Aliases {
			if strings.EqualFold(a.Brand, brand) && strings.EqualFold(a.Part, part) {
				return t
			}
		}
	}
	return cat.FindTemplate(brand, part)
}

func decodeTemplate(x *templateXML, sofar []*labels.Template, cat Catalog, context string) *labels.Template {
	brand := x.Brand
	part := x.Part
	if brand == "" || part == "" {
		// old files used a single name attribute
		b, p, ok := strings.Cut(x.Name, " ")
		if !ok {
			log.Printf("%s: template has neither brand/part nor name", context)
			return nil
		}
		brand, part = b, p
	}

	if x.Equiv != "" {
		base := findEquivBase(sofar, cat, brand, x.Equiv)
		if base == nil {
			log.Printf("%s: forward references not supported, unknown template %q %q",
				context, brand, x.Equiv)
			return nil
		}
		return base.NewVariant(part)
	}

	description := x.DescrI18n
	if description == "" {
		description = x.Description
	}

	paperID := x.Size
	var pageW, pageH float64
	if labels.IsPaperIDOther(paperID) {
		pageW = parseLength(x.Width, "width", context)
		pageH = parseLength(x.Height, "height", context)
	} else {
		paper := cat.FindPaperByID(paperID)
		if paper == nil {
			log.Printf("%s: unknown page size id %q, trying as name",
				context, paperID)
			paper = cat.FindPaperByName(paperID)
		}
		if paper != nil {
			paperID = paper.ID
			pageW = paper.Width
			pageH = paper.Height
		} else {
			log.Printf("%s: unknown page size id or name %q",
				context, paperID)
			pageW = fallbackPageWidth
			pageH = fallbackPageHeight
		}
	}

	tmpl := labels.NewTemplate(brand, part, description, paperID, pageW, pageH)
	for _, m := range x.Meta {
		if m.Category != "" {
			tmpl.AddCategory(m.Category)
		}
		if m.ProductURL != "" {
			tmpl.ProductURL = m.ProductURL
		}
	}

	for i := range x.Rects {
		fx := &x.Rects[i]
		f := &labels.FrameRect{
			W: parseLength(fx.Width, "width", context),
			H: parseLength(fx.Height, "height", context),
			R: parseLength(fx.Round, "round", context),
		}
		if fx.Waste != "" {
			w := parseLength(fx.Waste, "waste", context)
			f.XWaste, f.YWaste = w, w
		} else {
			f.XWaste = parseLength(fx.XWaste, "x_waste", context)
			f.YWaste = parseLength(fx.YWaste, "y_waste", context)
		}
		finishFrame(f, fx, context)
		tmpl.AddFrame(f)
	}
	for i := range x.Ellipses {
		fx := &x.Ellipses[i]
		f := &labels.FrameEllipse{
			W:     parseLength(fx.Width, "width", context),
			H:     parseLength(fx.Height, "height", context),
			Waste: parseLength(fx.Waste, "waste", context),
		}
		finishFrame(f, fx, context)
		tmpl.AddFrame(f)
	}
	for i := range x.Rounds {
		fx := &x.Rounds[i]
		f := &labels.FrameRound{
			R:     parseLength(fx.Radius, "radius", context),
			Waste: parseLength(fx.Waste, "waste", context),
		}
		finishFrame(f, fx, context)
		tmpl.AddFrame(f)
	}
	for i := range x.CDs {
		fx := &x.CDs[i]
		f := &labels.FrameCD{
			R1:    parseLength(fx.Radius, "radius", context),
			R2:    parseLength(fx.Hole, "hole", context),
			W:     parseLength(fx.Width, "width", context),
			H:     parseLength(fx.Height, "height", context),
			Waste: parseLength(fx.Waste, "waste", context),
		}
		finishFrame(f, fx, context)
		tmpl.AddFrame(f)
	}

	if len(tmpl.Frames) == 0 {
		// repair: treat the whole page as a single label
		log.Printf("%s: template %q %q has no frame, using full page",
			context, brand, part)
		f := &labels.FrameRect{W: pageW, H: pageH}
		f.AddLayout(labels.Layout{NX: 1, NY: 1})
		tmpl.AddFrame(f)
	}

	return tmpl
}

// finishFrame decodes the parts shared by all frame shapes: the id,
// the layout grids and the markup list.
func finishFrame(f labels.Frame, fx *frameXML, context string) {
	base := f.Base()
	base.ID = fx.ID

	for _, lx := range fx.Layouts {
		nx := parseInt(lx.NX, "nx", context, 1)
		ny := parseInt(lx.NY, "ny", context, 1)
		if nx < 1 || ny < 1 {
			log.Printf("%s: invalid layout %dx%d", context, nx, ny)
			continue
		}
		base.AddLayout(labels.Layout{
			NX: nx,
			NY: ny,
			X0: parseLength(lx.X0, "x0", context),
			Y0: parseLength(lx.Y0, "y0", context),
			DX: parseLength(lx.DX, "dx", context),
			DY: parseLength(lx.DY, "dy", context),
		})
	}
	if len(base.Layouts) == 0 {
		base.AddLayout(labels.Layout{NX: 1, NY: 1})
	}

	for _, mx := range fx.MarkupMargins {
		base.AddMarkup(labels.MarkupMargin{
			Size: parseLength(mx.Size, "size", context),
		})
	}
	for _, mx := range fx.MarkupLines {
		base.AddMarkup(labels.MarkupLine{
			X1: parseLength(mx.X1, "x1", context),
			Y1: parseLength(mx.Y1, "y1", context),
			X2: parseLength(mx.X2, "x2", context),
			Y2: parseLength(mx.Y2, "y2", context),
		})
	}
	for _, mx := range fx.MarkupCircles {
		base.AddMarkup(labels.MarkupCircle{
			X0: parseLength(mx.X0, "x0", context),
			Y0: parseLength(mx.Y0, "y0", context),
			R:  parseLength(mx.Radius, "radius", context),
		})
	}
	for _, mx := range fx.MarkupRects {
		base.AddMarkup(labels.MarkupRect{
			X1: parseLength(mx.X1, "x1", context),
			Y1: parseLength(mx.Y1, "y1", context),
			W:  parseLength(mx.W, "w", context),
			H:  parseLength(mx.H, "h", context),
			R:  parseLength(mx.R, "r", context),
		})
	}
	for _, mx := range fx.MarkupEllipses {
		base.AddMarkup(labels.MarkupEllipse{
			X1: parseLength(mx.X1, "x1", context),
			Y1: parseLength(mx.Y1, "y1", context),
			W:  parseLength(mx.W, "w", context),
			H:  parseLength(mx.H, "h", context),
		})
	}
}

// WriteTemplatesFile writes the given templates as a glabels template
// file.  Length attributes are written in the given unit.
func WriteTemplatesFile(name string, u units.Unit, tt []*labels.Template) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WriteTemplates(fd, u, tt)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// WriteTemplates writes a glabels template document to w.  Equiv
// references and aliases are not part of the output; every template
// is written in full.
func WriteTemplates(w io.Writer, u units.Unit, tt []*labels.Template) error {
	doc := &templatesXML{Xmlns: Namespace}
	for _, tmpl := range tt {
		doc.Templates = append(doc.Templates, encodeTemplate(tmpl, u))
	}

	_, err := io.WriteString(w, xml.Header)
	if err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err = enc.Encode(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func encodeTemplate(tmpl *labels.Template, u units.Unit) templateXML {
	x := templateXML{
		Brand:       tmpl.Brand,
		Part:        tmpl.Part,
		Description: tmpl.Description,
		Size:        tmpl.PaperID,
	}
	if labels.IsPaperIDOther(tmpl.PaperID) {
		x.Width = units.FormatLength(tmpl.PageWidth, u)
		x.Height = units.FormatLength(tmpl.PageHeight, u)
	}
	for _, id := range tmpl.CategoryIDs {
		x.Meta = append(x.Meta, metaXML{Category: id})
	}
	if tmpl.ProductURL != "" {
		x.Meta = append(x.Meta, metaXML{ProductURL: tmpl.ProductURL})
	}

	for _, f := range tmpl.Frames {
		fx := frameXML{ID: f.Base().ID}
		if fx.ID == "" {
			fx.ID = "0"
		}

		length := func(v float64) string {
			return units.FormatLength(v, u)
		}

		for _, l := range f.Base().Layouts {
			fx.Layouts = append(fx.Layouts, layoutXML{
				NX: fmt.Sprint(l.NX),
				NY: fmt.Sprint(l.NY),
				X0: length(l.X0),
				Y0: length(l.Y0),
				DX: length(l.DX),
				DY: length(l.DY),
			})
		}
		for _, m := range f.Base().Markups {
			switch m := m.(type) {
			case labels.MarkupMargin:
				fx.MarkupMargins = append(fx.MarkupMargins,
					markupMarginXML{Size: length(m.Size)})
			case labels.MarkupLine:
				fx.MarkupLines = append(fx.MarkupLines, markupLineXML{
					X1: length(m.X1), Y1: length(m.Y1),
					X2: length(m.X2), Y2: length(m.Y2),
				})
			case labels.MarkupCircle:
				fx.MarkupCircles = append(fx.MarkupCircles, markupCircleXML{
					X0: length(m.X0), Y0: length(m.Y0), Radius: length(m.R),
				})
			case labels.MarkupRect:
				fx.MarkupRects = append(fx.MarkupRects, markupRectXML{
					X1: length(m.X1), Y1: length(m.Y1),
					W: length(m.W), H: length(m.H), R: length(m.R),
				})
			case labels.MarkupEllipse:
				fx.MarkupEllipses = append(fx.MarkupEllipses, markupEllipseXML{
					X1: length(m.X1), Y1: length(m.Y1),
					W: length(m.W), H: length(m.H),
				})
			}
		}

		switch f := f.(type) {
		case *labels.FrameRect:
			fx.Width = length(f.W)
			fx.Height = length(f.H)
			fx.Round = length(f.R)
			if f.XWaste == f.YWaste {
				fx.Waste = length(f.XWaste)
			} else {
				fx.XWaste = length(f.XWaste)
				fx.YWaste = length(f.YWaste)
			}
			x.Rects = append(x.Rects, fx)
		case *labels.FrameEllipse:
			fx.Width = length(f.W)
			fx.Height = length(f.H)
			fx.Waste = length(f.Waste)
			x.Ellipses = append(x.Ellipses, fx)
		case *labels.FrameRound:
			fx.Radius = length(f.R)
			fx.Waste = length(f.Waste)
			x.Rounds = append(x.Rounds, fx)
		case *labels.FrameCD:
			fx.Radius = length(f.R1)
			fx.Hole = length(f.R2)
			if f.W != 0 {
				fx.Width = length(f.W)
			}
			if f.H != 0 {
				fx.Height = length(f.H)
			}
			fx.Waste = length(f.Waste)
			x.CDs = append(x.CDs, fx)
		}
	}
	return x
}
