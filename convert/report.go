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
	"debug/elf"
	"fmt"
	"strings"

	"github.com/jetsetilly/esp2elf/container"
	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/romheader"
)

// ReportSection summarises a single section in the container.
type ReportSection struct {
	Index  int
	Name   string
	Type   elf.SectionType
	Area   memorymap.Area
	Addr   uint32
	Length int
}

// Report summarises the result of a conversion.
type Report struct {
	Layout   romheader.Layout
	Sections []ReportSection

	// the number of program headers
	Segments int
}

func newReport(c *container.Container, lay romheader.Layout) Report {
	r := Report{
		Layout:   lay,
		Segments: c.NumSegments(),
	}

	for i, s := range c.Sections() {
		r.Sections = append(r.Sections, ReportSection{
			Index:  i + 1,
			Name:   s.Name,
			Type:   s.Type,
			Area:   s.Area,
			Addr:   s.Addr,
			Length: len(s.Data),
		})
	}

	return r
}

func (r Report) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", r.Layout.Header))
	s.WriteString(fmt.Sprintf("entry point  %08x\n", r.Layout.Entry))
	s.WriteString(fmt.Sprintf("irom start   %08x\n", r.Layout.IromStart))
	s.WriteString(fmt.Sprintf("irom length  %08x\n", r.Layout.IromLength))
	s.WriteString(fmt.Sprintf("sect count   %d\n", r.Layout.SectionCount))
	s.WriteString(fmt.Sprintf("prog headers %d\n", r.Segments))
	for _, e := range r.Sections {
		if e.Type == elf.SHT_PROGBITS {
			s.WriteString(fmt.Sprintf("%2d %-18s %08x %08x %s\n", e.Index, e.Name, e.Addr, e.Length, e.Area))
		} else {
			s.WriteString(fmt.Sprintf("%2d %-18s %8s %08x\n", e.Index, e.Name, "", e.Length))
		}
	}
	return s.String()
}
