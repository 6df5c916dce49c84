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

// Ldt-inspect prints the contents of an LDT file in human-readable form.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"seehuhn.de/go/ldt"
	"seehuhn.de/go/ldt/internal/float"
	"seehuhn.de/go/ldt/tools/internal/buildinfo"
	"seehuhn.de/go/ldt/tools/internal/charset"
)

func main() {
	single := flag.Bool("single", false, "read fractional values in single precision")
	charsetName := flag.String("charset", "", "character set of the text fields, e.g. windows-1252")
	showTable := flag.Bool("table", false, "show the luminous intensity table")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] file.ldt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Line("ldt-inspect"))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	enc, err := charset.Lookup(*charsetName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opt := &ldt.ReaderOptions{Encoding: enc}

	width := 0
	if *showTable {
		width = terminalWidth()
	}
	if *single {
		err = inspect[float32](os.Stdout, flag.Arg(0), opt, width)
	} else {
		err = inspect[float64](os.Stdout, flag.Arg(0), opt, width)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// terminalWidth returns the width of the terminal connected to the
// standard output, or 80 if the output is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// inspect prints a summary of the named file to w.  If width is positive,
// the intensity table is printed as well, wrapped to the given width.
func inspect[T ldt.Float](w io.Writer, name string, opt *ldt.ReaderOptions, width int) error {
	rec, warning, err := ldt.Open[T](name, opt)
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintf(w, "warning: %s\n\n", warning)
	}

	num := func(x T) string { return float.Format(x, -1) }

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "manufacturer:\t%s\n", rec.Manufacturer)
	fmt.Fprintf(tw, "luminaire:\t%s (%s)\n", rec.LuminaireName, rec.LuminaireNumber)
	fmt.Fprintf(tw, "report:\t%s\n", rec.ReportNumber)
	fmt.Fprintf(tw, "file name:\t%s\n", rec.FileName)
	fmt.Fprintf(tw, "date/user:\t%s\n", rec.DateUser)
	fmt.Fprintf(tw, "type:\t%d (%s)\n", int(rec.Type), rec.Type)
	fmt.Fprintf(tw, "symmetry:\t%d (%s)\n", int(rec.Symmetry), rec.Symmetry)
	fmt.Fprintf(tw, "C-planes:\t%d, spacing %s, stored %d-%d\n",
		rec.MC, num(rec.DC), rec.MC1, rec.MC2)
	fmt.Fprintf(tw, "G-angles:\t%d, spacing %s\n", rec.NG, num(rec.DG))
	fmt.Fprintf(tw, "luminaire size:\t%d x %d x %d mm\n",
		rec.LengthLuminaire, rec.WidthLuminaire, rec.HeightLuminaire)
	fmt.Fprintf(tw, "luminous area:\t%d x %d mm, height %d/%d/%d/%d mm\n",
		rec.LengthLuminousArea, rec.WidthLuminousArea,
		rec.HeightLuminousAreaC0, rec.HeightLuminousAreaC90,
		rec.HeightLuminousAreaC180, rec.HeightLuminousAreaC270)
	fmt.Fprintf(tw, "DFF:\t%s %%\n", num(rec.DFF))
	fmt.Fprintf(tw, "LORL:\t%s %%\n", num(rec.LORL))
	fmt.Fprintf(tw, "conversion factor:\t%s\n", num(rec.ConversionFactor))
	fmt.Fprintf(tw, "tilt:\t%d\n", rec.Tilt)
	for i, l := range rec.Lamps {
		photometry := ""
		if l.Absolute() {
			photometry = ", absolute photometry"
		}
		fmt.Fprintf(tw, "lamp set %d:\t%d x %s, %d lm, %d, group %d, %s W%s\n",
			i+1, l.Count, l.Type, l.Flux, l.ColorTemperature, l.ColorRendering,
			num(l.Watts), photometry)
	}
	dr := make([]string, len(rec.DR))
	for i, x := range rec.DR {
		dr[i] = num(x)
	}
	fmt.Fprintf(tw, "direct ratios:\t%s\n", strings.Join(dr, " "))
	err = tw.Flush()
	if err != nil {
		return err
	}

	if width > 0 {
		fmt.Fprintln(w)
		return printTable(w, rec, width)
	}
	return nil
}

const (
	labelWidth  = 7
	columnWidth = 9
)

// printTable prints the stored intensities with one row per G-angle.
// If the C-planes do not fit into the given width, the table is split
// into several blocks.
func printTable[T ldt.Float](w io.Writer, rec *ldt.Record[T], width int) error {
	perBlock := max((width-labelWidth)/columnWidth, 1)

	for first := rec.MC1; first <= rec.MC2; first += perBlock {
		last := min(first+perBlock-1, rec.MC2)

		_, err := fmt.Fprintf(w, "%*s", labelWidth, "G \\ C")
		if err != nil {
			return err
		}
		for plane := first; plane <= last; plane++ {
			label := "#" + strconv.Itoa(plane)
			if plane >= 1 && plane <= len(rec.AnglesC) {
				label = float.Format(rec.AnglesC[plane-1], 6)
			}
			fmt.Fprintf(w, "%*s", columnWidth, label)
		}
		fmt.Fprintln(w)

		for g := 0; g < rec.NG; g++ {
			label := "#" + strconv.Itoa(g)
			if g < len(rec.AnglesG) {
				label = float.Format(rec.AnglesG[g], 6)
			}
			_, err := fmt.Fprintf(w, "%*s", labelWidth, label)
			if err != nil {
				return err
			}
			for plane := first; plane <= last; plane++ {
				cell := "-"
				if x, err := rec.Intensity(plane, g); err == nil {
					cell = float.Format(x, 6)
				}
				fmt.Fprintf(w, "%*s", columnWidth, cell)
			}
			fmt.Fprintln(w)
		}
		if last < rec.MC2 {
			fmt.Fprintln(w)
		}
	}
	return nil
}
