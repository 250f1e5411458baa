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

import (
	"debug/elf"
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing the named areas in
// memory and the flags of data loaded into them. Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for _, a := range areas {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%-8s%s\n", a.origin, a.memtop-1, a.area, a.area.perms()))
	}
	s.WriteString(fmt.Sprintf("%-20s\t%-8s%s\n", "elsewhere", Unknown, Unknown.perms()))
	return s.String()
}

// perms returns the program header flags as a short "rwx" string.
func (a Area) perms() string {
	f := a.ProgFlags()
	b := []byte("---")
	if f&elf.PF_R == elf.PF_R {
		b[0] = 'r'
	}
	if f&elf.PF_W == elf.PF_W {
		b[1] = 'w'
	}
	if f&elf.PF_X == elf.PF_X {
		b[2] = 'x'
	}
	return string(b)
}
