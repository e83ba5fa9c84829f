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

package ustr

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Avery", "avery", true},
		{"Avery", "AVERY", true},
		{"Avery", "Avery ", false},
		{"größe", "GRÖSSE", true},
		{"a", "b", false},
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.want {
			t.Errorf("Equal(%q, %q) = %t, want %t", c.a, c.b, got, c.want)
		}
	}
}

func TestComparePartNames(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"Part-9", "Part-10", -1},
		{"Part-10", "Part-9", 1},
		{"Part-10", "part-10", 0},
		{"5160", "5161", -1},
		{"5160", "516", 1},
		{"A4", "A4", 0},
		{"LP36", "LP4", 1},
		{"", "1", -1},
	}
	for _, c := range cases {
		got := ComparePartNames(c.a, c.b)
		if sign(got) != c.want {
			t.Errorf("ComparePartNames(%q, %q) = %d, want sign %d",
				c.a, c.b, got, c.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestPartNameSortOrder(t *testing.T) {
	names := []string{
		"Avery 5160",
		"Avery 516",
		"Avery L4736",
		"Avery 5161",
	}
	slices.SortFunc(names, ComparePartNames)
	want := []string{
		"Avery 516",
		"Avery 5160",
		"Avery 5161",
		"Avery L4736",
	}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}

func TestSortedInsert(t *testing.T) {
	var names []string
	for _, s := range []string{"Part-10", "Part-2", "Part-9", "Part-2"} {
		names = SortedInsert(names, s, ComparePartNames)
	}
	want := []string{"Part-2", "Part-2", "Part-9", "Part-10"}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("unexpected list (-want +got):\n%s", d)
	}
}
