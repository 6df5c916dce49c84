// seehuhn.de/go/ldt - a library for reading and writing EULUMDAT files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package float holds the number conversions shared by the LDT reader and
// writer.  All functions are generic over the floating point width, so that
// a single decode or encode call uses the same precision for every field.
package float

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// BitSize returns the width of T in bits, either 32 or 64.
func BitSize[T constraints.Float]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// MaxDigits returns the number of significant decimal digits needed to
// represent every value of type T without loss.
func MaxDigits[T constraints.Float]() int {
	if BitSize[T]() == 32 {
		return 9
	}
	return 17
}

// Format converts x to a decimal string with at most the given number of
// significant digits.  Trailing zeros are omitted, and exponential notation
// is only used for very large or very small magnitudes.  If digits is
// negative, the shortest representation which reads back as x is used.
func Format[T constraints.Float](x T, digits int) string {
	if digits == 0 {
		digits = 1
	}
	return strconv.FormatFloat(float64(x), 'g', digits, BitSize[T]())
}

// Parse reads a decimal number at the precision of T.
// Leading and trailing white space is ignored, and a decimal comma
// is accepted in place of a decimal point.
func Parse[T constraints.Float](s string) (T, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	x, err := strconv.ParseFloat(s, BitSize[T]())
	if err != nil {
		return 0, err
	}
	return T(x), nil
}

// ParseInt reads the base-10 integer at the start of s.  Leading white space
// and an optional sign are accepted, and anything following the digits is
// ignored, so that "24.0" gives 24 and "4000K" gives 4000.
func ParseInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(s[:end])
}

// Round rounds x to the given number of significant digits,
// as it would appear after a round trip through Format and Parse.
func Round[T constraints.Float](x T, digits int) T {
	y, err := Parse[T](Format(x, digits))
	if err != nil {
		panic(err)
	}
	return y
}
