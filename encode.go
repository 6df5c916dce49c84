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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"seehuhn.de/go/ldt/internal/float"
)

// WriterOptions can be used to control how LDT files are written.
// A nil *WriterOptions is equivalent to the zero value.
type WriterOptions struct {
	// Precision is the number of significant decimal digits used for
	// fractional values.  If this is zero, the number of digits required
	// to represent every value of the record's float type exactly is used.
	// If Precision is negative, each value is written using the shortest
	// representation which reads back to the same value.
	Precision int

	// Encoding, if non-nil, is used to convert the text fields from UTF-8.
	// Writing fails if a text field cannot be represented in this encoding.
	Encoding encoding.Encoding

	// CRLF selects "\r\n" as the line terminator instead of "\n".
	CRLF bool
}

// WriteFile writes r to the named file.  The complete file contents are
// generated in memory first; if this succeeds, an existing file of the
// same name is truncated and overwritten.
func WriteFile[T Float](name string, r *Record[T], opt *WriterOptions) error {
	buf := &bytes.Buffer{}
	err := Encode(buf, r, opt)
	if err != nil {
		return err
	}
	return os.WriteFile(name, buf.Bytes(), 0o644)
}

// Encode writes r to w in LDT format.
//
// The fields are written exactly as stored in r.  In particular, MC1 and
// MC2 are not recomputed and the length of the intensity table is not
// compared to the header.  Use [Record.Check] to verify a record before
// writing.  Text fields must not contain line breaks.
//
// If an error occurs, a *WriteError is returned and w may contain
// an incomplete file.
func Encode[T Float](w io.Writer, r *Record[T], opt *WriterOptions) error {
	if opt == nil {
		opt = &WriterOptions{}
	}

	var tw *transform.Writer
	if opt.Encoding != nil {
		tw = transform.NewWriter(w, opt.Encoding.NewEncoder())
		w = tw
	}

	e := &encoder[T]{
		w:    bufio.NewWriter(w),
		prec: opt.Precision,
		eol:  "\n",
	}
	if e.prec == 0 {
		e.prec = float.MaxDigits[T]()
	} else if e.prec < 0 {
		e.prec = -1
	}
	if opt.CRLF {
		e.eol = "\r\n"
	}

	e.writeString(r.Manufacturer)
	e.writeInt(int(r.Type))
	e.writeInt(int(r.Symmetry))
	e.writeInt(r.MC)
	e.writeFloat(r.DC)
	e.writeInt(r.NG)
	e.writeFloat(r.DG)

	e.writeString(r.ReportNumber)
	e.writeString(r.LuminaireName)
	e.writeString(r.LuminaireNumber)
	e.writeString(r.FileName)
	e.writeString(r.DateUser)

	e.writeInt(r.LengthLuminaire)
	e.writeInt(r.WidthLuminaire)
	e.writeInt(r.HeightLuminaire)
	e.writeInt(r.LengthLuminousArea)
	e.writeInt(r.WidthLuminousArea)
	e.writeInt(r.HeightLuminousAreaC0)
	e.writeInt(r.HeightLuminousAreaC90)
	e.writeInt(r.HeightLuminousAreaC180)
	e.writeInt(r.HeightLuminousAreaC270)

	e.writeFloat(r.DFF)
	e.writeFloat(r.LORL)
	e.writeFloat(r.ConversionFactor)
	e.writeInt(r.Tilt)
	e.writeInt(r.N)

	for i := range r.Lamps {
		e.writeInt(r.Lamps[i].Count)
	}
	for i := range r.Lamps {
		e.writeString(r.Lamps[i].Type)
	}
	for i := range r.Lamps {
		e.writeInt(r.Lamps[i].Flux)
	}
	for i := range r.Lamps {
		e.writeInt(r.Lamps[i].ColorTemperature)
	}
	for i := range r.Lamps {
		e.writeInt(r.Lamps[i].ColorRendering)
	}
	for i := range r.Lamps {
		e.writeFloat(r.Lamps[i].Watts)
	}

	for _, x := range r.DR {
		e.writeFloat(x)
	}
	for _, x := range r.AnglesC {
		e.writeFloat(x)
	}
	for _, x := range r.AnglesG {
		e.writeFloat(x)
	}
	for _, x := range r.Intensities {
		e.writeFloat(x)
	}

	e.flush()
	if tw != nil && e.err == nil {
		err := tw.Close()
		if err != nil {
			e.err = &WriteError{Line: e.line, Err: err}
		}
	}
	return e.err
}

// encoder writes one field per line.  After the first error, all
// further writes are skipped.
type encoder[T Float] struct {
	w    *bufio.Writer
	prec int
	eol  string
	line int
	err  error
}

func (e *encoder[T]) writeLine(s string) {
	if e.err != nil {
		return
	}
	e.line++
	_, err := e.w.WriteString(s)
	if err == nil {
		_, err = e.w.WriteString(e.eol)
	}
	if err != nil {
		e.err = &WriteError{Line: e.line, Err: err}
	}
}

func (e *encoder[T]) writeString(s string) {
	e.writeLine(s)
}

func (e *encoder[T]) writeInt(x int) {
	e.writeLine(strconv.Itoa(x))
}

func (e *encoder[T]) writeFloat(x T) {
	e.writeLine(float.Format(x, e.prec))
}

func (e *encoder[T]) flush() {
	if e.err != nil {
		return
	}
	err := e.w.Flush()
	if err != nil {
		e.err = &WriteError{Line: e.line, Err: err}
	}
}
