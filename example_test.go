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

package ldt_test

import (
	"bytes"
	"fmt"
	"log"

	"seehuhn.de/go/ldt"
)

func ExampleOpen() {
	rec, warning, err := ldt.Open[float64]("testdata/downlight.ldt", nil)
	if err != nil {
		log.Fatal(err)
	}
	if warning != "" {
		fmt.Println("warning:", warning)
	}

	fmt.Println(rec.LuminaireName)
	fmt.Println(rec.Symmetry)
	fmt.Println(len(rec.Intensities), "intensities")
	// Output:
	// Downlight DL-200
	// symmetry about the vertical axis
	// 19 intensities
}

func ExampleEncode() {
	rec := &ldt.Record[float32]{
		Manufacturer:    "Example",
		Type:            ldt.PointSourceVertical,
		Symmetry:        ldt.SymmetryVertical,
		MC:              1,
		NG:              3,
		DG:              45,
		ReportNumber:    "R-1",
		LuminaireName:   "Spot",
		LuminaireNumber: "S-1",
		FileName:        "spot.ldt",
		DateUser:        "2026-10-14",
		AnglesC:         []float32{0},
		AnglesG:         []float32{0, 45, 90},
		Intensities:     []float32{100, 70.7, 0},
	}
	err := rec.UpdatePlaneRange()
	if err != nil {
		log.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = ldt.Encode(buf, rec, &ldt.WriterOptions{Precision: -1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(buf.String())
	fmt.Printf("%d bytes, last %q\n", buf.Len(), buf.Bytes()[buf.Len()-2:])
	// Output:
	// Example
	// 1
	// 1
	// 1
	// 0
	// 3
	// 45
	// R-1
	// Spot
	// S-1
	// spot.ldt
	// 2026-10-14
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 0
	// 45
	// 90
	// 100
	// 70.7
	// 0
	// 123 bytes, last "0\n"
}
