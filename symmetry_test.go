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
	"testing"
)

func TestPlaneRange(t *testing.T) {
	type testCase struct {
		sym      Symmetry
		mc       int
		mc1, mc2 int
	}
	testCases := []testCase{
		{NoSymmetry, 0, 1, 0},
		{NoSymmetry, 1, 1, 1},
		{NoSymmetry, 24, 1, 24},
		{NoSymmetry, 36, 1, 36},
		{NoSymmetry, 37, 1, 37},

		{SymmetryVertical, 0, 1, 1},
		{SymmetryVertical, 1, 1, 1},
		{SymmetryVertical, 24, 1, 1},
		{SymmetryVertical, 36, 1, 1},
		{SymmetryVertical, 37, 1, 1},

		{SymmetryC0C180, 0, 1, 1},
		{SymmetryC0C180, 1, 1, 1},
		{SymmetryC0C180, 24, 1, 13},
		{SymmetryC0C180, 36, 1, 19},
		{SymmetryC0C180, 37, 1, 19},

		{SymmetryC90C270, 0, 1, 1},
		{SymmetryC90C270, 1, 1, 1},
		{SymmetryC90C270, 24, 19, 31},
		{SymmetryC90C270, 36, 28, 46},
		{SymmetryC90C270, 37, 28, 46},

		{SymmetryQuadrant, 0, 1, 1},
		{SymmetryQuadrant, 1, 1, 1},
		{SymmetryQuadrant, 24, 1, 7},
		{SymmetryQuadrant, 36, 1, 10},
		{SymmetryQuadrant, 37, 1, 10},
	}
	for _, tc := range testCases {
		mc1, mc2, err := PlaneRange(tc.sym, tc.mc)
		if err != nil {
			t.Errorf("PlaneRange(%d, %d): %v", tc.sym, tc.mc, err)
			continue
		}
		if mc1 != tc.mc1 || mc2 != tc.mc2 {
			t.Errorf("PlaneRange(%d, %d) = (%d, %d), want (%d, %d)",
				tc.sym, tc.mc, mc1, mc2, tc.mc1, tc.mc2)
		}
	}
}

func TestPlaneRangeInvalid(t *testing.T) {
	for _, sym := range []Symmetry{-1, 5, 6, 100} {
		for _, mc := range []int{0, 1, 24, 36, 37} {
			_, _, err := PlaneRange(sym, mc)
			if !errors.Is(err, ErrInvalidSymmetry) {
				t.Errorf("PlaneRange(%d, %d): got %v, want ErrInvalidSymmetry", sym, mc, err)
			}
		}
	}
}

func TestUpdatePlaneRange(t *testing.T) {
	r := &Record[float64]{Symmetry: SymmetryC90C270, MC: 36, MC1: 99, MC2: 99}
	err := r.UpdatePlaneRange()
	if err != nil {
		t.Fatal(err)
	}
	if r.MC1 != 28 || r.MC2 != 46 {
		t.Errorf("got plane range %d-%d, want 28-46", r.MC1, r.MC2)
	}

	r.Symmetry = 9
	err = r.UpdatePlaneRange()
	if !errors.Is(err, ErrInvalidSymmetry) {
		t.Errorf("expected ErrInvalidSymmetry, got %v", err)
	}
	if r.MC1 != 28 || r.MC2 != 46 {
		t.Error("plane range changed by failed update")
	}
}

func TestSymmetryString(t *testing.T) {
	if s := SymmetryQuadrant.String(); s != "symmetry to planes C0-C180 and C90-C270" {
		t.Errorf("unexpected name %q", s)
	}
	if s := Symmetry(7).String(); s != "Symmetry(7)" {
		t.Errorf("unexpected name %q", s)
	}
	if s := Linear.String(); s != "linear luminaire" {
		t.Errorf("unexpected name %q", s)
	}
}
