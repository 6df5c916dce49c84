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

package memfile

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var _ io.Writer = (*MemFile)(nil)

func TestWrite(t *testing.T) {
	f := New()
	for _, s := range []string{"Hello", ", ", "World!"} {
		n, err := f.Write([]byte(s))
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if n != len(s) {
			t.Errorf("Write wrote %d bytes; want %d", n, len(s))
		}
	}
	if string(f.Data) != "Hello, World!" {
		t.Errorf("Write stored %q; want %q", string(f.Data), "Hello, World!")
	}
}

func TestLimit(t *testing.T) {
	f := &MemFile{Limit: 8}
	_, err := f.Write([]byte("12345"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := f.Write([]byte("67890"))
	if !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}
	if n != 3 {
		t.Errorf("partial write of %d bytes; want 3", n)
	}
	if string(f.Data) != "12345678" {
		t.Errorf("file contains %q", f.Data)
	}

	n, err = f.Write([]byte("x"))
	if n != 0 || !errors.Is(err, ErrFull) {
		t.Errorf("write to full file: %d, %v", n, err)
	}
}

func TestLines(t *testing.T) {
	type testCase struct {
		data  string
		lines []string
	}
	testCases := []testCase{
		{"", nil},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}
	for _, tc := range testCases {
		f := &MemFile{Data: []byte(tc.data)}
		if diff := cmp.Diff(tc.lines, f.Lines()); diff != "" {
			t.Errorf("Lines(%q) (-want +got):\n%s", tc.data, diff)
		}
	}
}
