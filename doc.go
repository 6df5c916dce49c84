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

// Package ldt reads and writes photometric data in the EULUMDAT (LDT) format.
//
// An LDT file is a line-oriented text file which describes a luminaire:
// identification strings, geometry, the installed lamp sets, and the
// luminous intensity distribution over a grid of C-planes and G-angles.
// The file layout is fixed; variable-length sections follow the header
// in an order which is determined by the counts stored in the header.
//
// A file is read into a [Record] using [Open], [Read] or [Decode]:
//
//	rec, warning, err := ldt.Open[float64]("luminaire.ldt", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if warning != "" {
//		// the file is complete, but some numbers could not be parsed
//	}
//
// Errors come in two classes.  If the file is truncated or the symmetry
// indicator is invalid, a [*MalformedFileError] names the first field which
// could not be read.  If a line is present but does not hold a valid number,
// the field is left as zero and a warning is returned together with the
// record.
//
// Records are written using [WriteFile] or [Encode].  The float type
// parameter selects the precision used for all fractional fields, both
// when parsing and when formatting.
//
// This package checks only the structure of a file.  No attempt is made to
// verify that the photometric data is physically meaningful.
package ldt
