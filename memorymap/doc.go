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

// Package memorymap describes the address space of the ESP8266 as far as it
// matters for the layout of a ROM dump. The MapAddress() function returns the
// Area an address falls within. Areas know which ELF section and program
// header flags are appropriate for data loaded at that address.
//
// The order in which areas are checked is fixed. The areas do not overlap so
// the order only matters for documentation purposes: the first area that
// contains the address is the result. Any address that is not in a named area
// is in the Unknown area.
//
// Summary() returns a printable table of the memory map.
package memorymap
