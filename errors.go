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
	"strconv"
)

var (
	// ErrInvalidSymmetry indicates a symmetry indicator outside the
	// range 0-4.  No C-plane range can be derived in this case.
	ErrInvalidSymmetry = errors.New("invalid symmetry")
)

// WarnValues is the warning returned by Decode when one or more fields
// were present, but could not be parsed as numbers.
const WarnValues = "some values could not be read"

// MalformedFileError indicates that an LDT file could not be parsed.
// Field names the entry which could not be read.
type MalformedFileError struct {
	Line  int
	Field string
	Err   error
}

func (err *MalformedFileError) Error() string {
	msg := "not a valid LDT file"
	if err.Field != "" {
		msg += ": cannot read <" + err.Field + ">"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Line > 0 {
		msg += " (at line " + strconv.Itoa(err.Line) + ")"
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// WriteError is returned by Encode if the output could not be written.
// The destination should be considered corrupt.
type WriteError struct {
	Line int
	Err  error
}

func (err *WriteError) Error() string {
	return "cannot write LDT line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
