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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that raise errors
// which callers will want to react to should declare the pattern as a const
// string. For example, the romheader package declares:
//
//	const UnknownHeaderFormat = "romheader: unknown magic %#02x at offset %#x"
//
// and a caller can test for it with the Is() function:
//
//	_, err := romheader.Parse(data, 0, romheader.DefaultDefaults())
//	if curated.Is(err, romheader.UnknownHeaderFormat) {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of wrapped curated errors:
//
//	err = curated.Errorf("convert: %v", err)
//	curated.Has(err, romheader.UnknownHeaderFormat) // true
//	curated.Is(err, romheader.UnknownHeaderFormat)  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We think of curated errors as 'expected' errors and all others as
// 'unexpected'.
//
// The Error() implementation normalises the message chain so that adjacent
// parts of the chain are not duplicated. Parts are separated by the ": "
// sub-string. This means a function can wrap an error with its own context
// without worrying whether the error it received already carries the same
// context. For example, the message:
//
//	convert: convert: cannot create output file
//
// will be printed as:
//
//	convert: cannot create output file
package curated
