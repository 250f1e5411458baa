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

// Package hexfile writes the load layout of a container as an Intel HEX file.
// The HEX file is suitable for flashing tools and for comparing the contents
// of two ROM dumps with line based tools.
package hexfile

import (
	"debug/elf"
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/jetsetilly/esp2elf/container"
	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/memorymap"
)

// Sentinal errors.
const (
	Overlap    = "hexfile: section %s overlaps another section: %v"
	LineLength = "hexfile: line length %d is not in range 1 to %d"
)

// DefaultLineLength is the number of data bytes in each data record.
const DefaultLineLength = 16

// MaxLineLength is the largest number of data bytes a record can hold. The
// record length field is a single byte.
const MaxLineLength = 255

// Write the loadable sections of the container to w as Intel HEX records.
// The boot ROM is not part of a flash image and is never written. The start
// address record is the container's entry point.
//
// A lineLength of zero selects DefaultLineLength.
func Write(w io.Writer, c *container.Container, lineLength int) error {
	if lineLength == 0 {
		lineLength = DefaultLineLength
	}
	if lineLength < 1 || lineLength > MaxLineLength {
		return curated.Errorf(LineLength, lineLength, MaxLineLength)
	}

	mem := gohex.NewMemory()
	mem.SetStartAddress(c.Entry())

	for _, s := range c.Sections() {
		if s.Type != elf.SHT_PROGBITS || s.Area == memorymap.BootROM || len(s.Data) == 0 {
			continue
		}
		err := mem.AddBinary(s.Addr, s.Data)
		if err != nil {
			return curated.Errorf(Overlap, s.Name, err)
		}
	}

	err := mem.DumpIntelHex(w, byte(lineLength))
	if err != nil {
		return curated.Errorf("hexfile: %v", err)
	}

	return nil
}
