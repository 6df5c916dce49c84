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

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types a Record can be instantiated
// with.  All fractional fields of a record share the same type.
type Float interface {
	constraints.Float
}

// Record holds the contents of one EULUMDAT file.
//
// The fields appear in the order in which they are stored in the file.
// MC1 and MC2 are not part of the file: they are derived from Symmetry and
// MC, and give the range of C-planes for which intensities are stored.
type Record[T Float] struct {
	// Manufacturer is the company identification, data bank,
	// version and format identification.
	Manufacturer string

	Type     TypeIndicator
	Symmetry Symmetry

	// MC is the number of C-planes between 0 and 360 degrees,
	// usually 24 for interior and 36 for road lighting luminaires.
	MC int

	// MC1 and MC2 are the first and last C-plane, counted from 1,
	// for which intensity data is stored.  Use UpdatePlaneRange
	// to set these after changing Symmetry or MC.
	MC1, MC2 int

	// DC is the distance between C-planes in degrees,
	// or 0 for non-equidistant planes.
	DC T

	// NG is the number of luminous intensities in each C-plane,
	// usually 19 or 37.
	NG int

	// DG is the distance between luminous intensities in a C-plane
	// in degrees, or 0 for non-equidistant values.
	DG T

	ReportNumber    string
	LuminaireName   string
	LuminaireNumber string
	FileName        string
	DateUser        string

	// Dimensions in mm.
	LengthLuminaire        int
	WidthLuminaire         int
	HeightLuminaire        int
	LengthLuminousArea     int
	WidthLuminousArea      int
	HeightLuminousAreaC0   int
	HeightLuminousAreaC90  int
	HeightLuminousAreaC180 int
	HeightLuminousAreaC270 int

	// DFF is the downward flux fraction in percent.
	DFF T

	// LORL is the light output ratio of the luminaire in percent.
	LORL T

	// ConversionFactor is the conversion factor for luminous intensities.
	ConversionFactor T

	// Tilt is the tilt of the luminaire during measurement, in degrees.
	Tilt int

	// N is the number of standard sets of lamps.
	N     int
	Lamps []LampSet[T]

	// DR holds the direct ratios for room indices k = 0.6, 0.8, 1.0,
	// 1.25, 1.5, 2.0, 2.5, 3.0, 4.0 and 5.0.
	DR [10]T

	AnglesC []T
	AnglesG []T

	// Intensities holds (MC2-MC1+1)*NG luminous intensities in cd/1000 lm.
	// The values for C-plane MC1 come first, ordered by G-angle,
	// followed by the values for the next C-plane.
	Intensities []T
}

// LampSet describes one standard set of lamps.
type LampSet[T Float] struct {
	// Count is the number of lamps.  A negative value indicates
	// absolute photometry.
	Count int

	Type string

	// Flux is the total luminous flux in lm.
	Flux int

	ColorTemperature int
	ColorRendering   int

	// Watts is the wattage including ballast.
	Watts T
}

// Absolute reports whether the lamp set uses absolute photometry.
func (l *LampSet[T]) Absolute() bool {
	return l.Count < 0
}

// TypeIndicator describes the kind of light source.
type TypeIndicator int

// These are the type indicators defined by the file format.
const (
	PointSourceNoSymmetry TypeIndicator = 0
	PointSourceVertical   TypeIndicator = 1
	Linear                TypeIndicator = 2
	PointSourceOther      TypeIndicator = 3
)

func (t TypeIndicator) String() string {
	switch t {
	case PointSourceNoSymmetry:
		return "point source with no symmetry"
	case PointSourceVertical:
		return "point source with symmetry about the vertical axis"
	case Linear:
		return "linear luminaire"
	case PointSourceOther:
		return "point source with other symmetry"
	default:
		return fmt.Sprintf("TypeIndicator(%d)", int(t))
	}
}

// UpdatePlaneRange sets MC1 and MC2 from the values of Symmetry and MC.
func (r *Record[T]) UpdatePlaneRange() error {
	mc1, mc2, err := PlaneRange(r.Symmetry, r.MC)
	if err != nil {
		return err
	}
	r.MC1 = mc1
	r.MC2 = mc2
	return nil
}

// tableSize returns the number of stored intensities implied by the plane
// range and NG.  Implausible header values give a size of zero.
func (r *Record[T]) tableSize() int {
	if r.MC2 < r.MC1 || r.NG < 0 {
		return 0
	}
	return (r.MC2 - r.MC1 + 1) * r.NG
}

// Check verifies that the lengths of the variable-size fields match the
// header.  The values themselves are not examined.
func (r *Record[T]) Check() error {
	mc1, mc2, err := PlaneRange(r.Symmetry, r.MC)
	if err != nil {
		return err
	}
	if r.MC1 != mc1 || r.MC2 != mc2 {
		return fmt.Errorf("plane range %d-%d does not match symmetry %d with %d planes",
			r.MC1, r.MC2, int(r.Symmetry), r.MC)
	}
	if len(r.Lamps) != r.N {
		return fmt.Errorf("%d lamp sets, expected %d", len(r.Lamps), r.N)
	}
	if len(r.AnglesC) != r.MC {
		return fmt.Errorf("%d C-angles, expected %d", len(r.AnglesC), r.MC)
	}
	if len(r.AnglesG) != r.NG {
		return fmt.Errorf("%d G-angles, expected %d", len(r.AnglesG), r.NG)
	}
	if n := r.tableSize(); len(r.Intensities) != n {
		return fmt.Errorf("%d intensities, expected %d", len(r.Intensities), n)
	}
	return nil
}

// Intensity returns the luminous intensity for the given C-plane and G-angle.
// Planes are numbered from 1 to MC, and only planes in the range MC1 to MC2
// are available.  G-angles are indexed from 0 to NG-1.
func (r *Record[T]) Intensity(plane, g int) (T, error) {
	if plane < r.MC1 || plane > r.MC2 {
		return 0, errPlaneRange
	}
	if g < 0 || g >= r.NG {
		return 0, errAngleRange
	}
	idx := (plane-r.MC1)*r.NG + g
	if idx >= len(r.Intensities) {
		return 0, errTableSize
	}
	return r.Intensities[idx], nil
}

var (
	errPlaneRange = errors.New("C-plane not stored in file")
	errAngleRange = errors.New("G-angle index out of range")
	errTableSize  = errors.New("intensity table too short")
)
