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

package ldt

import "fmt"

// Symmetry describes which part of the intensity distribution is stored in
// a file.  The remaining C-planes follow by reflection.
type Symmetry int

// These are the symmetry indicators defined by the file format.
const (
	NoSymmetry       Symmetry = 0
	SymmetryVertical Symmetry = 1 // symmetry about the vertical axis
	SymmetryC0C180   Symmetry = 2 // symmetry to the plane C0-C180
	SymmetryC90C270  Symmetry = 3 // symmetry to the plane C90-C270
	SymmetryQuadrant Symmetry = 4 // symmetry to both planes
)

func (s Symmetry) String() string {
	switch s {
	case NoSymmetry:
		return "no symmetry"
	case SymmetryVertical:
		return "symmetry about the vertical axis"
	case SymmetryC0C180:
		return "symmetry to plane C0-C180"
	case SymmetryC90C270:
		return "symmetry to plane C90-C270"
	case SymmetryQuadrant:
		return "symmetry to planes C0-C180 and C90-C270"
	default:
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
}

// PlaneRange returns the first and last C-plane, counted from 1, for which
// a file with the given symmetry and mc C-planes stores intensities.
//
// The value of mc is not checked.  If the symmetry is not one of the five
// values defined by the format, ErrInvalidSymmetry is returned.
func PlaneRange(sym Symmetry, mc int) (mc1, mc2 int, err error) {
	switch sym {
	case NoSymmetry:
		return 1, mc, nil
	case SymmetryVertical:
		return 1, 1, nil
	case SymmetryC0C180:
		return 1, mc/2 + 1, nil
	case SymmetryC90C270:
		mc1 = 3*mc/4 + 1
		return mc1, mc1 + mc/2, nil
	case SymmetryQuadrant:
		return 1, mc/4 + 1, nil
	default:
		return 0, 0, ErrInvalidSymmetry
	}
}
