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

package charset

import (
	"testing"

	"golang.org/x/text/encoding/htmlindex"
)

func TestLookup(t *testing.T) {
	type testCase struct {
		name      string
		canonical string
	}
	testCases := []testCase{
		{"windows-1252", "windows-1252"},
		{"latin1", "windows-1252"},
		{"ISO-8859-15", "iso-8859-15"},
		{"cp1250", "windows-1250"},
	}
	for _, tc := range testCases {
		enc, err := Lookup(tc.name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tc.name, err)
			continue
		}
		got, err := htmlindex.Name(enc)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tc.name, err)
			continue
		}
		if got != tc.canonical {
			t.Errorf("Lookup(%q) = %s, want %s", tc.name, got, tc.canonical)
		}
	}
}

func TestLookupNoConversion(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		enc, err := Lookup(name)
		if err != nil || enc != nil {
			t.Errorf("Lookup(%q) = %v, %v", name, enc, err)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("klingon")
	if err == nil {
		t.Error("unknown character set accepted")
	}
}
