// This file is part of esp2elf.
//
// esp2elf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// esp2elf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with esp2elf.  If not, see <https://www.gnu.org/licenses/>.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/esp2elf/bootrom"
	"github.com/jetsetilly/esp2elf/container"
	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/hexfile"
	"github.com/jetsetilly/esp2elf/logger"
	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/romheader"
	"github.com/jetsetilly/esp2elf/romloader"
)

// Sentinal errors.
const (
	OutputUnwritable = "convert: cannot write %s: %v"
)

// Options for the conversion.
type Options struct {
	// location of the irom0 image for ROMs with a legacy header
	Defaults romheader.Defaults

	// offset of the ROM header in the ROM data
	StartOffset int

	// path of the boot ROM image. an empty string means a placeholder is used
	BootROM string

	// if not nil the conversion report is rendered as a graphviz dot file
	Memviz io.Writer

	// if not empty Convert() also writes the graphviz rendering of the
	// conversion report to the named file. the file is only written if the
	// ELF file was written successfully
	MemvizFile string

	// data bytes per record for ExportHex()
	LineLength int
}

// NewOptions is the preferred method of initialisation for the Options type.
func NewOptions() Options {
	return Options{
		Defaults:   romheader.DefaultDefaults(),
		LineLength: hexfile.DefaultLineLength,
	}
}

// build the container for the ROM.
func build(rl *romloader.Loader, opts Options) (*container.Container, romheader.Layout, error) {
	err := rl.Load()
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	lay, err := romheader.Parse(rl.Data, opts.StartOffset, opts.Defaults)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	logger.Logf("convert", "entry point %08x", lay.Entry)
	logger.Logf("convert", "irom start %08x", lay.IromStart)
	logger.Logf("convert", "irom length %08x", lay.IromLength)
	logger.Logf("convert", "section count %d", lay.SectionCount)

	irom, err := lay.Irom(rl.Data)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	blob, err := bootrom.Blob(opts.BootROM)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	// a program header for each section in the ROM plus the boot ROM and irom0
	c := container.NewContainer(lay.Entry, lay.SectionCount+2)

	bootndx, err := c.AddSection(bootrom.Origin, blob)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	_, err = c.AddSection(memorymap.OriginIROM+uint32(lay.IromStart), irom)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	r := romheader.NewReader(rl.Data, lay.Cursor)
	for r.Count() < lay.SectionCount {
		i := r.Count()
		s, err := r.Next()
		if err != nil {
			return nil, romheader.Layout{}, curated.Errorf("convert: section %d: %v", i, err)
		}

		logger.Logf("convert", "section %d: address %08x length %08x", i, s.Address, s.Length)

		_, err = c.AddSection(s.Address, s.Data)
		if err != nil {
			return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
		}
	}

	// checksum and padding usually follow the last section
	if n := len(rl.Data) - r.Cursor(); n > 0 {
		logger.Logf("convert", "%d bytes after last section", n)
	}

	err = c.AddSymbolTable(bootrom.Symbols, bootndx)
	if err != nil {
		return nil, romheader.Layout{}, curated.Errorf("convert: %v", err)
	}

	if opts.Memviz != nil {
		render(opts.Memviz, c, lay)
	}

	return c, lay, nil
}

// render the conversion report as a graphviz dot file. memviz only maps
// addressable values.
func render(w io.Writer, c *container.Container, lay romheader.Layout) {
	rep := newReport(c, lay)
	memviz.Map(w, &rep)
}

// write output file using the supplied function. the data is written to a
// temporary file which is renamed to the output filename on success. the
// temporary file is removed on failure.
func write(output string, fn func(w io.Writer) error) (rerr error) {
	f, err := os.CreateTemp(filepath.Dir(output), fmt.Sprintf(".%s-*", filepath.Base(output)))
	if err != nil {
		return curated.Errorf(OutputUnwritable, output, err)
	}

	defer func() {
		if rerr != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	err = fn(f)
	if err != nil {
		return curated.Errorf(OutputUnwritable, output, err)
	}

	err = f.Chmod(0o644)
	if err != nil {
		return curated.Errorf(OutputUnwritable, output, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(OutputUnwritable, output, err)
	}

	err = os.Rename(f.Name(), output)
	if err != nil {
		return curated.Errorf(OutputUnwritable, output, err)
	}

	return nil
}

// Convert the ROM to an ELF file and write it to the output file.
func Convert(rl *romloader.Loader, output string, opts Options) error {
	c, lay, err := build(rl, opts)
	if err != nil {
		return err
	}

	err = write(output, c.Finish)
	if err != nil {
		return err
	}

	logger.Logf("convert", "%s: %d sections written to %s", rl.ShortName(), len(c.Sections()), output)

	if opts.MemvizFile != "" {
		err = write(opts.MemvizFile, func(w io.Writer) error {
			render(w, c, lay)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Inspect the ROM without writing anything.
func Inspect(rl *romloader.Loader, opts Options) (Report, error) {
	c, lay, err := build(rl, opts)
	if err != nil {
		return Report{}, err
	}
	return newReport(c, lay), nil
}

// ExportHex writes the load layout of the ROM as an Intel HEX file.
func ExportHex(rl *romloader.Loader, output string, opts Options) error {
	c, _, err := build(rl, opts)
	if err != nil {
		return err
	}

	err = write(output, func(w io.Writer) error {
		return hexfile.Write(w, c, opts.LineLength)
	})
	if err != nil {
		return err
	}

	logger.Logf("convert", "%s: hex file written to %s", rl.ShortName(), output)

	return nil
}
