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

package memorymap

import "debug/elf"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case DRAM:
		return "DRAM"
	case BootROM:
		return "BootROM"
	case IRAM:
		return "IRAM"
	case IROM:
		return "IROM"
	}

	return "Unknown"
}

// The different memory areas in the ESP8266.
const (
	Unknown Area = iota
	DRAM
	BootROM
	IRAM
	IROM
)

// The origin and memtop for each area of memory. Memtop is exclusive, ie. it
// is the first address after the area.
const (
	OriginDRAM    = uint32(0x3ffe8000)
	MemtopDRAM    = uint32(0x3fffc000)
	OriginBootROM = uint32(0x40000000)
	MemtopBootROM = uint32(0x40100000)
	OriginIRAM    = uint32(0x40100000)
	MemtopIRAM    = uint32(0x40200000)
	OriginIROM    = uint32(0x40200000)
	MemtopIROM    = uint32(0x40300000)
)

// list of areas in the order they are checked by MapAddress().
var areas = [...]struct {
	area   Area
	origin uint32
	memtop uint32
}{
	{area: DRAM, origin: OriginDRAM, memtop: MemtopDRAM},
	{area: BootROM, origin: OriginBootROM, memtop: MemtopBootROM},
	{area: IRAM, origin: OriginIRAM, memtop: MemtopIRAM},
	{area: IROM, origin: OriginIROM, memtop: MemtopIROM},
}

// MapAddress returns the area the address falls within.
func MapAddress(address uint32) Area {
	for _, a := range areas {
		if address >= a.origin && address < a.memtop {
			return a.area
		}
	}
	return Unknown
}

// SectionFlags returns the ELF section flags for data in the area.
func (a Area) SectionFlags() elf.SectionFlag {
	if a == DRAM {
		return elf.SHF_WRITE | elf.SHF_ALLOC
	}
	return elf.SHF_EXECINSTR | elf.SHF_ALLOC
}

// ProgFlags returns the ELF program header flags for data in the area.
func (a Area) ProgFlags() elf.ProgFlag {
	if a == DRAM {
		return elf.PF_R | elf.PF_W
	}
	return elf.PF_R | elf.PF_X
}

// Counted returns true if sections in the area are numbered. Areas that are
// not counted have only one section in a ROM dump.
func (a Area) Counted() bool {
	return a != BootROM && a != IROM
}
