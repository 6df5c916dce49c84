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
	"io"
	"os"

	"golang.org/x/text/encoding"

	"seehuhn.de/go/ldt/internal/float"
)

// LineSource provides the lines of an LDT file, one at a time.
// A [bufio.Scanner] can be used as a LineSource.
type LineSource interface {
	// Scan advances to the next line.  It returns false at the end
	// of the input or after an error.
	Scan() bool

	// Text returns the current line, without the line terminator.
	Text() string

	// Err returns the first non-EOF error encountered by Scan.
	Err() error
}

// Lines returns a LineSource which yields the given lines.
func Lines(lines []string) LineSource {
	return &sliceSource{lines: lines, pos: -1}
}

type sliceSource struct {
	lines []string
	pos   int
}

func (s *sliceSource) Scan() bool {
	if s.pos+1 >= len(s.lines) {
		s.pos = len(s.lines)
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Text() string {
	if s.pos < 0 || s.pos >= len(s.lines) {
		return ""
	}
	return s.lines[s.pos]
}

func (s *sliceSource) Err() error {
	return nil
}

// ReaderOptions can be used to control how LDT files are read.
// A nil *ReaderOptions is equivalent to the zero value.
type ReaderOptions struct {
	// Encoding, if non-nil, is used to convert the file contents to UTF-8.
	// Many LDT files use Windows-1252 or ISO 8859-1 for the text fields.
	// If Encoding is nil, the bytes of the text fields are kept unchanged.
	Encoding encoding.Encoding
}

// Open reads the named LDT file.
// The file is closed before Open returns.
func Open[T Float](name string, opt *ReaderOptions) (*Record[T], string, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	defer fd.Close()

	return Read[T](fd, opt)
}

// Read decodes an LDT file from r.  See [Decode] for a description of the
// return values.
func Read[T Float](r io.Reader, opt *ReaderOptions) (*Record[T], string, error) {
	if opt != nil && opt.Encoding != nil {
		r = opt.Encoding.NewDecoder().Reader(r)
	}
	return Decode[T](bufio.NewScanner(r))
}

// Decode reads an LDT file from src.
//
// If a line required by the file format is missing, or if the symmetry
// indicator is invalid, a *MalformedFileError is returned which names the
// affected field, and the record is nil.  If all lines are present but some
// of them do not contain valid numbers, the affected fields are set to zero
// and the returned record is accompanied by the warning [WarnValues].
func Decode[T Float](src LineSource) (*Record[T], string, error) {
	d := &decoder[T]{src: src}
	r := &Record[T]{}

	// line 1
	d.readString(&r.Manufacturer, "Manufacturer")
	// lines 2-4
	var ltyp, lsym int
	d.readInt(&ltyp, "Type")
	d.readInt(&lsym, "Symmetry")
	d.readInt(&r.MC, "Mc")
	if d.err != nil {
		return nil, "", d.err
	}
	r.Type = TypeIndicator(ltyp)
	r.Symmetry = Symmetry(lsym)
	err := r.UpdatePlaneRange()
	if err != nil {
		return nil, "", &MalformedFileError{Line: 3, Field: "Symmetry", Err: err}
	}
	// lines 5-7
	d.readFloat(&r.DC, "Dc")
	d.readInt(&r.NG, "Ng")
	d.readFloat(&r.DG, "Dg")

	// lines 8-12
	d.readString(&r.ReportNumber, "Measurement report number")
	d.readString(&r.LuminaireName, "Luminaire name")
	d.readString(&r.LuminaireNumber, "Luminaire number")
	d.readString(&r.FileName, "File name")
	d.readString(&r.DateUser, "Date/user")

	// lines 13-21
	d.readInt(&r.LengthLuminaire, "Length/diameter of luminaire")
	d.readInt(&r.WidthLuminaire, "Width of luminaire")
	d.readInt(&r.HeightLuminaire, "Height of luminaire")
	d.readInt(&r.LengthLuminousArea, "Length/diameter of luminous area")
	d.readInt(&r.WidthLuminousArea, "Width of luminous area")
	d.readInt(&r.HeightLuminousAreaC0, "Height of luminous area C0-plane")
	d.readInt(&r.HeightLuminousAreaC90, "Height of luminous area C90-plane")
	d.readInt(&r.HeightLuminousAreaC180, "Height of luminous area C180-plane")
	d.readInt(&r.HeightLuminousAreaC270, "Height of luminous area C270-plane")

	// lines 22-26
	d.readFloat(&r.DFF, "Downward flux fraction")
	d.readFloat(&r.LORL, "Light output ratio luminaire")
	d.readFloat(&r.ConversionFactor, "Conversion factor for luminous intensities")
	d.readInt(&r.Tilt, "Tilt of luminaire during measurement")
	d.readInt(&r.N, "Number of standard sets of lamps")
	if d.err != nil {
		return nil, "", d.err
	}

	// The lamp data is stored field by field, each field for all lamp sets.
	// line 26a
	for i := 0; i < r.N && d.err == nil; i++ {
		var ld LampSet[T]
		d.readInt(&ld.Count, "Number of lamps")
		r.Lamps = append(r.Lamps, ld)
	}
	// lines 26b-26f
	for i := range r.Lamps {
		d.readString(&r.Lamps[i].Type, "Type of lamps")
	}
	for i := range r.Lamps {
		d.readInt(&r.Lamps[i].Flux, "Total luminous flux")
	}
	for i := range r.Lamps {
		d.readInt(&r.Lamps[i].ColorTemperature, "Color appearance")
	}
	for i := range r.Lamps {
		d.readInt(&r.Lamps[i].ColorRendering, "Color rendering group")
	}
	for i := range r.Lamps {
		d.readFloat(&r.Lamps[i].Watts, "Wattage including ballast")
	}

	// line 27
	for i := range r.DR {
		d.readFloat(&r.DR[i], "Direct ratios for room indices k = 0.6 ... 5")
	}

	// lines 28-30
	r.AnglesC = d.readFloats(r.MC, "Angles C")
	r.AnglesG = d.readFloats(r.NG, "Angles G")
	r.Intensities = d.readFloats(r.tableSize(), "Luminous intensity distribution")
	if d.err != nil {
		return nil, "", d.err
	}

	return r, d.warn, nil
}

// decoder reads the lines of an LDT file in order.  After the first
// error, all further reads are skipped.
type decoder[T Float] struct {
	src  LineSource
	line int
	err  error
	warn string
}

// next returns the next line of input, naming field in the error
// if no line is available.
func (d *decoder[T]) next(field string) (string, bool) {
	if d.err != nil {
		return "", false
	}
	if !d.src.Scan() {
		err := d.src.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		d.err = &MalformedFileError{Line: d.line + 1, Field: field, Err: err}
		return "", false
	}
	d.line++
	return d.src.Text(), true
}

// malformed records that a value could not be parsed.
func (d *decoder[T]) malformed() {
	if d.warn == "" {
		d.warn = WarnValues
	}
}

func (d *decoder[T]) readString(dst *string, field string) {
	s, ok := d.next(field)
	if ok {
		*dst = s
	}
}

func (d *decoder[T]) readInt(dst *int, field string) {
	s, ok := d.next(field)
	if !ok {
		return
	}
	x, err := float.ParseInt(s)
	if err != nil {
		d.malformed()
		return
	}
	*dst = x
}

func (d *decoder[T]) readFloat(dst *T, field string) {
	s, ok := d.next(field)
	if !ok {
		return
	}
	x, err := float.Parse[T](s)
	if err != nil {
		d.malformed()
		return
	}
	*dst = x
}

// readFloats reads a block of n numbers, one per line.
// Memory is allocated as lines arrive, so that a corrupt count in the
// header cannot cause a large allocation.
func (d *decoder[T]) readFloats(n int, field string) []T {
	if n <= 0 || d.err != nil {
		return nil
	}
	res := make([]T, 0, min(n, maxPrealloc))
	for len(res) < n && d.err == nil {
		var x T
		d.readFloat(&x, field)
		res = append(res, x)
	}
	return res
}

const maxPrealloc = 4096
