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

// stringTable is a growable table of NUL terminated strings as used by the
// .shstrtab and .strtab sections. Offset zero is reserved for the empty
// string.
type stringTable struct {
	data []byte
}

func newStringTable() stringTable {
	return stringTable{
		data: []byte{0x00},
	}
}

// add string to table and return its offset.
func (t *stringTable) add(s string) uint32 {
	offset := uint32(len(t.data))
	t.data = append(t.data, s...)
	t.data = append(t.data, 0x00)
	return offset
}

func (t stringTable) size() int {
	return len(t.data)
}

func (t stringTable) bytes() []byte {
	return t.data
}
