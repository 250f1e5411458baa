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

package container

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/jetsetilly/esp2elf/curated"
)

// size of the fixed structures in an ELF32 file.
const (
	headerSize        = 52
	progHeaderSize    = 32
	sectionHeaderSize = 40
)

// align value to the next multiple of a. a must be a power of two.
func align[T constraints.Integer](v T, a T) T {
	return (v + a - 1) &^ (a - 1)
}

// Finish adds the .shstrtab section and writes the ELF file. A container can
// only be finished once.
func (c *Container) Finish(w io.Writer) error {
	if c.finished {
		return curated.Errorf(AlreadyFinished)
	}
	c.finished = true

	// the name of the .shstrtab section must be in the table before the table
	// is copied into the section
	shstrndx := c.add(Section{
		Name:  ".shstrtab",
		Type:  elf.SHT_STRTAB,
		Flags: elf.SHF_STRINGS,
	})
	c.sections[shstrndx-1].Data = append([]byte{}, c.names.bytes()...)

	// layout
	offset := uint32(headerSize + progHeaderSize*c.slots)
	for i := range c.sections {
		offset = align(offset, alignment)
		c.sections[i].Offset = offset
		offset += uint32(len(c.sections[i].Data))
	}
	shoff := align(offset, alignment)

	buf := &bytes.Buffer{}

	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_XTENSA),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     c.entry,
		Shoff:     shoff,
		Flags:     Flags,
		Ehsize:    headerSize,
		Phentsize: progHeaderSize,
		Phnum:     uint16(c.slots),
		Shentsize: sectionHeaderSize,
		Shnum:     uint16(len(c.sections) + 1),
		Shstrndx:  uint16(shstrndx),
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	hdr.Ident[elf.EI_OSABI] = byte(elf.ELFOSABI_NONE)
	if c.slots > 0 {
		hdr.Phoff = headerSize
	}

	err := binary.Write(buf, binary.LittleEndian, hdr)
	if err != nil {
		return curated.Errorf("container: %v", err)
	}

	// program headers. reserved headers that were never used are PT_NULL
	for i := 0; i < c.slots; i++ {
		var prog elf.Prog32
		if i < len(c.segments) {
			seg := c.segments[i]
			prog = elf.Prog32{
				Type:   uint32(elf.PT_LOAD),
				Off:    c.sections[seg.Section-1].Offset,
				Vaddr:  seg.Addr,
				Paddr:  seg.Addr,
				Filesz: seg.Size,
				Memsz:  seg.Size,
				Flags:  uint32(seg.Flags),
				Align:  alignment,
			}
		}
		err = binary.Write(buf, binary.LittleEndian, prog)
		if err != nil {
			return curated.Errorf("container: %v", err)
		}
	}

	// section data
	for _, s := range c.sections {
		pad(buf, int(s.Offset))
		buf.Write(s.Data)
	}

	// section header table, starting with the null section
	pad(buf, int(shoff))
	err = binary.Write(buf, binary.LittleEndian, elf.Section32{})
	if err != nil {
		return curated.Errorf("container: %v", err)
	}

	for _, s := range c.sections {
		sh := elf.Section32{
			Name:      s.NameOffset,
			Type:      uint32(s.Type),
			Flags:     uint32(s.Flags),
			Addr:      s.Addr,
			Off:       s.Offset,
			Size:      uint32(len(s.Data)),
			Link:      s.Link,
			Info:      s.Info,
			Addralign: alignment,
			Entsize:   s.Entsize,
		}
		err = binary.Write(buf, binary.LittleEndian, sh)
		if err != nil {
			return curated.Errorf("container: %v", err)
		}
	}

	_, err = w.Write(buf.Bytes())
	if err != nil {
		return curated.Errorf("container: %v", err)
	}

	return nil
}

// pad buffer with zero bytes until it is length bytes long.
func pad(buf *bytes.Buffer, length int) {
	for buf.Len() < length {
		buf.WriteByte(0x00)
	}
}
