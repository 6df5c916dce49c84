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

// Package memfile provides an in-memory output file for tests.
//
// A [MemFile] can be configured to fail after a given number of bytes,
// to simulate a full disk or a broken connection.
package memfile

import (
	"errors"
	"strings"
)

// MemFile is a temporary in-memory file.
//
// This type implements the [io.Writer] interface.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Limit, if positive, is the maximum size of the file.
	// Writes beyond this size fail with ErrFull.
	Limit int
}

// New creates a new MemFile.
func New() *MemFile {
	return &MemFile{}
}

// Write appends data to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (n int, err error) {
	if f.Limit > 0 && len(f.Data)+len(p) > f.Limit {
		n = max(f.Limit-len(f.Data), 0)
		f.Data = append(f.Data, p[:n]...)
		return n, ErrFull
	}
	f.Data = append(f.Data, p...)
	return len(p), nil
}

// Lines returns the file contents split into lines.
// The line terminators are removed.  A final line terminator does not
// start a new line.
func (f *MemFile) Lines() []string {
	s := string(f.Data)
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// ErrFull is returned when a write would exceed the file size limit.
var ErrFull = errors.New("memfile: size limit exceeded")
