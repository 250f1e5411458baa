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

package romheader

import "github.com/jetsetilly/esp2elf/curated"

// Section is a single section descriptor and its payload.
type Section struct {
	Address uint32
	Length  uint32

	// offset of the payload in the ROM data
	Offset int

	// the payload. this is a slice of the ROM data and not a copy
	Data []byte
}

// Reader walks the section descriptors of a ROM. The underlying data is never
// modified.
type Reader struct {
	data   []byte
	cursor int
	count  int
}

// NewReader is the preferred method of initialisation for the Reader type.
// The cursor argument should be the Cursor field of a Layout.
func NewReader(data []byte, cursor int) *Reader {
	return &Reader{
		data:   data,
		cursor: cursor,
	}
}

// Cursor returns the offset of the next section descriptor.
func (r *Reader) Cursor() int {
	return r.cursor
}

// Next reads the section descriptor at the cursor and advances the cursor
// past the descriptor's payload.
func (r *Reader) Next() (Section, error) {
	var hdr struct {
		Address uint32
		Length  uint32
	}

	err := read(r.data, r.cursor, SectionHeaderSize, "section descriptor", &hdr)
	if err != nil {
		return Section{}, err
	}

	start := r.cursor + SectionHeaderSize
	avail := len(r.data) - start
	if uint64(hdr.Length) > uint64(avail) {
		return Section{}, curated.Errorf(TruncatedImage, "section payload", start, hdr.Length, avail)
	}

	s := Section{
		Address: hdr.Address,
		Length:  hdr.Length,
		Offset:  start,
		Data:    r.data[start : start+int(hdr.Length)],
	}

	r.cursor = start + int(hdr.Length)
	r.count++

	return s, nil
}

// Count returns the number of sections read so far.
func (r *Reader) Count() int {
	return r.count
}
