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
	"debug/elf"
	"fmt"

	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/memorymap"
)

// Sentinal errors.
const (
	CapacityExceeded = "container: no program header for section at %#08x (%d reserved)"
	AlreadyFinished  = "container: already finished"
)

// Flags is the value of the e_flags field in the ELF header. It is the same
// value as found in ELF files produced by the ESP8266 SDK.
const Flags = 0x300

// alignment of section data and segments.
const alignment = 4

// Section is a single section in the container.
type Section struct {
	Name       string
	NameOffset uint32
	Type       elf.SectionType
	Flags      elf.SectionFlag
	Addr       uint32
	Link       uint32
	Info       uint32
	Entsize    uint32
	Data       []byte

	// area is only meaningful for SHT_PROGBITS sections
	Area memorymap.Area

	// file offset of the section data. only valid after Finish()
	Offset uint32
}

func (s Section) String() string {
	if s.Type != elf.SHT_PROGBITS {
		return fmt.Sprintf("%-20s %08x %08x", s.Name, s.Addr, len(s.Data))
	}
	return fmt.Sprintf("%-20s %08x %08x %s", s.Name, s.Addr, len(s.Data), s.Area)
}

// Segment is a PT_LOAD program header.
type Segment struct {
	Flags elf.ProgFlag
	Addr  uint32
	Size  uint32

	// section header index of the section loaded by the segment
	Section int
}

// Container is the in-memory model of the ELF file.
type Container struct {
	entry uint32

	// the number of reserved program headers
	slots int

	// sections in the order they were added. the null section at index zero
	// of the section header table is not included
	sections []Section

	segments []Segment

	// names of sections. becomes the .shstrtab section on Finish()
	names stringTable

	// numbering of sections in counted memory areas
	counters map[memorymap.Area]int

	finished bool
}

// NewContainer is the preferred method of initialisation for the Container
// type. The slots argument is the number of program headers to reserve.
func NewContainer(entry uint32, slots int) *Container {
	return &Container{
		entry:    entry,
		slots:    slots,
		names:    newStringTable(),
		counters: make(map[memorymap.Area]int),
	}
}

// name returns the section name for data in the area. The area's counter is
// advanced if the area is counted.
func (c *Container) name(area memorymap.Area) string {
	var n int
	if area.Counted() {
		n = c.counters[area]
		c.counters[area]++
	}

	switch area {
	case memorymap.DRAM:
		return fmt.Sprintf(".dram0_%d.data", n)
	case memorymap.BootROM:
		return ".bootrom.text"
	case memorymap.IRAM:
		return fmt.Sprintf(".iram1_%d.text", n)
	case memorymap.IROM:
		return ".irom0.text"
	}
	return fmt.Sprintf(".unknown_%d.text", n)
}

// add section to the container and return its index in the section header
// table.
func (c *Container) add(s Section) int {
	s.NameOffset = c.names.add(s.Name)
	c.sections = append(c.sections, s)
	return len(c.sections)
}

// AddSection adds a loadable section at the load address. The payload is
// copied. Returns the index of the new section in the section header table.
func (c *Container) AddSection(addr uint32, payload []byte) (int, error) {
	if c.finished {
		return 0, curated.Errorf(AlreadyFinished)
	}

	if len(c.segments) >= c.slots {
		return 0, curated.Errorf(CapacityExceeded, addr, c.slots)
	}

	area := memorymap.MapAddress(addr)

	s := Section{
		Name:  c.name(area),
		Type:  elf.SHT_PROGBITS,
		Flags: area.SectionFlags(),
		Addr:  addr,
		Data:  append([]byte{}, payload...),
		Area:  area,
	}
	idx := c.add(s)

	c.segments = append(c.segments, Segment{
		Flags:   area.ProgFlags(),
		Addr:    addr,
		Size:    uint32(len(payload)),
		Section: idx,
	})

	return idx, nil
}

// Entry returns the entry point of the executable.
func (c *Container) Entry() uint32 {
	return c.entry
}

// Sections returns a copy of the sections in the container. The null
// section is not included so the section header index of a section is one
// more than its position in the returned slice.
func (c *Container) Sections() []Section {
	return append([]Section{}, c.sections...)
}

// Segments returns a copy of the program headers that have been used.
func (c *Container) Segments() []Segment {
	return append([]Segment{}, c.segments...)
}

// NumSegments returns the number of program headers that have been used.
// The number of program headers in the finished file is the number reserved
// by NewContainer().
func (c *Container) NumSegments() int {
	return len(c.segments)
}
