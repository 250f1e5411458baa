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

// Package bootrom provides the two pieces of information about the ESP8266
// boot ROM that are needed to build an ELF file from a ROM dump: the list of
// routines in the boot ROM (Symbols) and the boot ROM image itself (Blob).
//
// The boot ROM image is not part of a flash dump. It must be supplied
// separately, either with the -bootrom flag or with the ESP2ELF_BOOTROM
// environment variable. If no image is supplied then a placeholder of the
// correct size is used. The symbols are still useful in that case because
// calls into the boot ROM will be named by any tool that reads the ELF file.
package bootrom
