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

// Package logger is the central log for esp2elf. Entries are tagged with the
// area of the program that made them. For example:
//
//	logger.Logf("convert", "entry point %08x", entry)
//
// There is only one log for the entire application. The number of entries is
// capped and the oldest entries are discarded when the cap is reached.
// Adjacent entries that are identical are collapsed into one entry with a
// repeat count.
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
// The Colorizer type can be used to wrap the echo writer when the output is a
// terminal. The IsTerminal() function can help decide that.
package logger
