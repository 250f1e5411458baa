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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test for success, failure and equality. The Demand
// functions do the same but stop the test immediately on failure. Demands are
// useful when the value being tested is used by later parts of the test and
// must be correct. For example, demanding that the number of sections in an
// ELF file is correct before iterating over them.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//
// Note that the nil type is considered a success. This is because of how
// errors usually work in Go, with nil indicating no error.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with an expected string.
package test
