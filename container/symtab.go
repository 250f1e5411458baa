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

	"github.com/jetsetilly/esp2elf/bootrom"
	"github.com/jetsetilly/esp2elf/curated"
)

// AddSymbolTable adds the .symtab and .strtab sections to the container. All
// symbols are global functions defined in the section with index shndx.
func (c *Container) AddSymbolTable(symbols []bootrom.Symbol, shndx int) error {
	if c.finished {
		return curated.Errorf(AlreadyFinished)
	}

	strs := newStringTable()
	syms := &bytes.Buffer{}

	// the first entry in the table is the null symbol
	null := elf.Sym32{
		Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_NOTYPE),
	}
	err := binary.Write(syms, binary.LittleEndian, null)
	if err != nil {
		return curated.Errorf("container: %v", err)
	}

	for _, s := range symbols {
		sym := elf.Sym32{
			Name:  strs.add(s.Name),
			Value: s.Addr,
			Info:  elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC),
			Shndx: uint16(shndx),
		}
		err := binary.Write(syms, binary.LittleEndian, sym)
		if err != nil {
			return curated.Errorf("container: %v", err)
		}
	}

	// the string table will be added immediately after the symbol table
	strndx := len(c.sections) + 2

	c.add(Section{
		Name:    ".symtab",
		Type:    elf.SHT_SYMTAB,
		Data:    syms.Bytes(),
		Link:    uint32(strndx),
		Info:    1,
		Entsize: elf.Sym32Size,
	})

	c.add(Section{
		Name:  ".strtab",
		Type:  elf.SHT_STRTAB,
		Flags: elf.SHF_STRINGS,
		Data:  strs.bytes(),
	})

	return nil
}
