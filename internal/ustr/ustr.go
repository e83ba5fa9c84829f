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

// Package ustr provides case-insensitive string comparison for UTF-8
// strings, including the natural ordering used for part numbers.
package ustr

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	folder = cases.Fold()
	coll   = collate.New(language.Und)
)

// Fold returns s with all case distinctions removed.
func Fold(s string) string {
	return folder.String(s)
}

// Compare compares two UTF-8 strings, ignoring the case of characters.
// The result is negative, zero or positive in the usual manner.
func Compare(s1, s2 string) int {
	return coll.CompareString(Fold(s1), Fold(s2))
}

// Equal reports whether two UTF-8 strings are equal, ignoring case.
func Equal(s1, s2 string) bool {
	return Compare(s1, s2) == 0
}

// ComparePartNames compares two strings representing part names or
// numbers, using a natural sort order:
//
//   - case is ignored;
//   - strings are divided into numeric and non-numeric chunks;
//   - non-numeric chunks are collated;
//   - numeric chunks are compared numerically, so that "20" precedes
//     "100";
//   - chunks are compared left to right until the first difference.
//
// Numeric chunks are converted to 64 bit unsigned integers for
// comparison, so the behaviour is unpredictable for numbers beyond
// that range.
func ComparePartNames(s1, s2 string) int {
	p1 := Fold(s1)
	p2 := Fold(s2)
	for {
		chunk1, isNum1 := nextChunk(&p1)
		chunk2, isNum2 := nextChunk(&p2)

		if chunk1 == "" && chunk2 == "" {
			return 0
		}
		if isNum1 && isNum2 {
			n1, _ := strconv.ParseUint(chunk1, 10, 64)
			n2, _ := strconv.ParseUint(chunk2, 10, 64)
			switch {
			case n1 < n2:
				return -1
			case n1 > n2:
				return 1
			}
		} else if res := coll.CompareString(chunk1, chunk2); res != 0 {
			return res
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// nextChunk removes and returns the leading run of digits or non-digits
// from *p.
func nextChunk(p *string) (chunk string, isNum bool) {
	s := *p
	if s == "" {
		return "", false
	}
	isNum = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == isNum {
		i++
	}
	*p = s[i:]
	return s[:i], isNum
}

// SortedInsert inserts s into the sorted list names, keeping the list
// ordered by cmp.  Duplicates are kept.
func SortedInsert(names []string, s string, cmp func(a, b string) int) []string {
	i := 0
	for i < len(names) && cmp(names[i], s) < 0 {
		i++
	}
	names = append(names, "")
	copy(names[i+1:], names[i:])
	names[i] = s
	return names
}

// Contains reports whether the list contains a string equal to s under
// case-insensitive comparison.
func Contains(names []string, s string) bool {
	for _, n := range names {
		if Equal(n, s) {
			return true
		}
	}
	return false
}

// HasASCII reports whether the list contains s under ASCII
// case-insensitive comparison.
func HasASCII(ids []string, s string) bool {
	for _, id := range ids {
		if strings.EqualFold(id, s) {
			return true
		}
	}
	return false
}
