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

package units

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownUnitError is returned by [ParseLength] when the unit suffix of
// a length string is not recognised.  The length value accompanying the
// error is still usable: the number is interpreted as points.
type UnknownUnitError struct {
	Suffix string
}

func (err *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", err.Suffix)
}

// ParseLength converts a length string to points.  A length string is a
// decimal number immediately followed by a two-letter unit code, for
// example "2.5in".  A bare number with no suffix is interpreted as
// points.
//
// If the suffix is not a recognised unit code, ParseLength returns the
// bare number interpreted as points, together with an
// [*UnknownUnitError].  Callers which want best-effort behaviour can log
// the error and keep the returned value.
func ParseLength(s string) (float64, error) {
	num, suffix := splitLength(s)
	if num == "" {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	val, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	if suffix == "" {
		return val, nil
	}

	u := FromCode(suffix)
	if u == Invalid {
		return val, &UnknownUnitError{Suffix: suffix}
	}
	return val * u.PointsPerUnit(), nil
}

// FormatLength formats a length given in points as a string with the
// unit code of u appended, for example "1in" for 72 points with [Inch].
// Invalid units are treated as points.
func FormatLength(points float64, u Unit) string {
	val := points * u.UnitsPerPoint()
	return strconv.FormatFloat(val, 'g', -1, 64) + u.Code()
}

// splitLength separates the numeric prefix of a length string from the
// unit suffix.  Leading white space between number and suffix is
// discarded.
func splitLength(s string) (num, suffix string) {
	i := 0
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < n && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	// optional exponent
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < n && s[j] >= '0' && s[j] <= '9' {
			for j < n && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[:i], strings.TrimSpace(s[i:])
}
