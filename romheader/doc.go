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

// Package romheader reads the header and section chain of an ESP8266 flash
// ROM dump.
//
// Two header formats exist. The Legacy header is eight bytes long and is
// followed immediately by the section descriptors:
//
//	offset  size  field
//	0       1     magic (0xe9)
//	1       1     section count
//	2       1     flags1
//	3       1     flags2
//	4       4     entry address
//
// The OTA header is sixteen bytes long and is followed by an embedded irom
// image and then by a Legacy header describing the remaining sections:
//
//	offset  size  field
//	0       2     magic (0xea 0x04)
//	2       2     config
//	4       4     entry address
//	8       4     unused
//	12      4     irom length
//
// Every section descriptor is eight bytes (load address and length) followed
// by length bytes of payload. All multi-byte fields are little-endian.
//
// The Parse() function decides which header is present and returns a Layout.
// The Reader type walks the section descriptors that follow.
package romheader
