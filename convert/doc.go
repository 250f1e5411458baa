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

// Package convert turns an ESP8266 ROM dump into an ELF file. The Convert()
// function is the only function in the program that writes an ELF file to
// disk.
//
// The conversion proceeds as follows: the ROM header is parsed (see the
// romheader package); a container is created with a program header for each
// section in the ROM plus two more for the boot ROM and the irom0 image; the
// boot ROM, irom0 image and each section in the ROM are added to the
// container in that order; the boot ROM symbols are added; and the container
// is written.
//
// The output file is written to a temporary file in the same directory and
// renamed once it is complete. If the conversion fails there will be no
// output file.
//
// The Inspect() function performs the same steps but does not write
// anything. The ExportHex() function writes the same load layout as an
// Intel HEX file.
package convert
