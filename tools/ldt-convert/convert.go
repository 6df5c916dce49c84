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

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"seehuhn.de/go/ldt"
)

type converter struct {
	outDir string
	single bool
	read   *ldt.ReaderOptions
	write  *ldt.WriterOptions
	log    zerolog.Logger
}

var errSameFile = errors.New("input and output are the same file")

// output returns the name of the file which convert writes for in.
func (c *converter) output(in string) string {
	return filepath.Join(c.outDir, filepath.Base(in))
}

// convert rewrites one file into the output directory.
// Structural problems are logged and returned, value warnings are
// logged only.
func (c *converter) convert(in string) error {
	out := c.output(in)
	err := checkDistinct(in, out)
	if err == nil {
		var warning string
		if c.single {
			warning, err = convertFile[float32](in, out, c.read, c.write)
		} else {
			warning, err = convertFile[float64](in, out, c.read, c.write)
		}
		if warning != "" {
			c.log.Warn().Str("file", in).Msg(warning)
		}
	}
	if err != nil {
		c.log.Error().Err(err).Str("file", in).Msg("conversion failed")
		return fmt.Errorf("%s: %w", in, err)
	}
	c.log.Info().Str("file", in).Str("output", out).Msg("converted")
	return nil
}

func convertFile[T ldt.Float](in, out string, read *ldt.ReaderOptions, write *ldt.WriterOptions) (string, error) {
	rec, warning, err := ldt.Open[T](in, read)
	if err != nil {
		return "", err
	}
	err = rec.Check()
	if err != nil {
		return warning, err
	}
	return warning, ldt.WriteFile(out, rec, write)
}

func checkDistinct(in, out string) error {
	a, err := filepath.Abs(in)
	if err != nil {
		return err
	}
	b, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	if a == b {
		return errSameFile
	}
	return nil
}
