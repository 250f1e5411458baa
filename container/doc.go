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

// Package container builds an ELF32 executable in memory. Sections are added
// with AddSection() and are classified by their load address (see the
// memorymap package). Each section is given a name based on its memory area
// and a matching PT_LOAD program header.
//
// The program headers are reserved when the container is created with
// NewContainer(). Adding more sections than there are reserved program headers
// results in a CapacityExceeded error.
//
// Once all sections have been added, the optional symbol table is attached
// with AddSymbolTable() and the ELF file is written with Finish(). The layout
// of the written file is:
//
//	ELF header
//	program headers
//	section data, in the order the sections were added
//	section header table
//
// All section data is aligned to four bytes.
package container
