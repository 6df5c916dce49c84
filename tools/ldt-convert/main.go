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

// Ldt-convert rewrites LDT files, optionally changing the number precision,
// the character set, and the line terminators.
//
// Each input file is written to the output directory under the same base
// name.  If several inputs share a base name, only the first of them is
// converted and the others are reported as failed.  Files are converted in parallel; a file with structural
// errors is reported and skipped, the remaining files are still converted.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/ldt"
	"seehuhn.de/go/ldt/tools/internal/buildinfo"
	"seehuhn.de/go/ldt/tools/internal/charset"
)

func main() {
	outDir := flag.String("o", "", "output directory (required)")
	precision := flag.Int("precision", 0, "significant digits for fractional values (0 = exact, -1 = shortest)")
	charsetIn := flag.String("charset-in", "", "character set of the input files")
	charsetOut := flag.String("charset-out", "", "character set of the output files")
	crlf := flag.Bool("crlf", false, "use CR LF line terminators")
	single := flag.Bool("single", false, "convert values via single precision")
	jobs := flag.Int("j", runtime.NumCPU(), "number of files to convert in parallel")
	verbose := flag.Bool("v", false, "log every converted file")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] -o dir file.ldt...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Line("ldt-convert"))
		return
	}
	if *outDir == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if !*verbose {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	encIn, err := charset.Lookup(*charsetIn)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -charset-in")
	}
	encOut, err := charset.Lookup(*charsetOut)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -charset-out")
	}

	c := &converter{
		outDir: *outDir,
		single: *single,
		read:   &ldt.ReaderOptions{Encoding: encIn},
		write: &ldt.WriterOptions{
			Precision: *precision,
			Encoding:  encOut,
			CRLF:      *crlf,
		},
		log: logger,
	}
	err = os.MkdirAll(c.outDir, 0o755)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create output directory")
	}

	n, err := c.convertAll(flag.Args(), *jobs)
	if err != nil {
		logger.Error().Int("failed", n).Int("total", flag.NArg()).Msg("some files could not be converted")
		os.Exit(1)
	}
}

// convertAll converts the given files, using at most jobs goroutines.
// Input files which would overwrite the output of an earlier file in the
// list are not converted and count as failed.
// It returns the number of files which failed, together with the first
// error encountered.
func (c *converter) convertAll(files []string, jobs int) (int, error) {
	g := &errgroup.Group{}
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	var dupErr error
	failed := make([]bool, len(files))
	seen := make(map[string]string, len(files))
	for i, in := range files {
		out := c.output(in)
		if prev, isDup := seen[out]; isDup {
			err := fmt.Errorf("%s: output %s is already written for %s", in, out, prev)
			c.log.Error().Err(err).Str("file", in).Msg("conversion failed")
			failed[i] = true
			if dupErr == nil {
				dupErr = err
			}
			continue
		}
		seen[out] = in
	}

	for i, in := range files {
		if failed[i] {
			continue
		}
		i, in := i, in
		g.Go(func() error {
			err := c.convert(in)
			if err != nil {
				failed[i] = true
			}
			return err
		})
	}
	err := g.Wait()
	if dupErr != nil {
		err = dupErr
	}

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	return n, err
}
