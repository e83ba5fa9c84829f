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

package labels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestLabelCount(t *testing.T) {
	f := &FrameRect{W: 100, H: 50}
	f.AddLayout(Layout{NX: 2, NY: 3, DX: 110, DY: 60})
	if got := f.LabelCount(); got != 6 {
		t.Errorf("LabelCount = %d, want 6", got)
	}
	if got := len(f.Origins()); got != 6 {
		t.Errorf("len(Origins) = %d, want 6", got)
	}
}

func TestOriginsOrder(t *testing.T) {
	f := &FrameRect{W: 90, H: 40}
	f.AddLayout(Layout{NX: 2, NY: 2, X0: 0, Y0: 0, DX: 100, DY: 50})

	got := f.Origins()
	want := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 50},
		{X: 100, Y: 50},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected origins (-want +got):\n%s", d)
	}
}

func TestOriginsMultiBlock(t *testing.T) {
	// two interleaved columns, as used by some irregular sheets
	f := &FrameRound{R: 20}
	f.AddLayout(Layout{NX: 1, NY: 2, X0: 0, Y0: 0, DX: 0, DY: 100})
	f.AddLayout(Layout{NX: 1, NY: 2, X0: 60, Y0: 50, DX: 0, DY: 100})

	if got := f.LabelCount(); got != 4 {
		t.Fatalf("LabelCount = %d, want 4", got)
	}

	got := f.Origins()
	want := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 60, Y: 50},
		{X: 0, Y: 100},
		{X: 60, Y: 150},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected origins (-want +got):\n%s", d)
	}
}

func TestOriginsDuplicatesKept(t *testing.T) {
	// overlapping layouts are a data quality problem in template
	// files; the expander must not paper over them
	f := &FrameRect{W: 100, H: 50}
	f.AddLayout(Layout{NX: 1, NY: 1})
	f.AddLayout(Layout{NX: 1, NY: 1})

	got := f.Origins()
	want := []vec.Vec2{{}, {}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected origins (-want +got):\n%s", d)
	}
}

func TestOriginsEmpty(t *testing.T) {
	f := &FrameEllipse{W: 100, H: 50}
	if got := f.Origins(); len(got) != 0 {
		t.Errorf("Origins = %v, want empty", got)
	}
}
