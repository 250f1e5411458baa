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

// Package archivefs allows files inside zip archives to be addressed as though
// the archive was a directory. For example, the path:
//
//	dumps/firmware.zip/sonoff/flash.bin
//
// refers to the file sonoff/flash.bin inside the archive dumps/firmware.zip.
// Paths that do not pass through an archive refer to regular files.
//
// An archive that contains exactly one file can be opened directly. The file
// inside the archive is used.
package archivefs

// ReadFile returns the contents of the named file. The file can be inside an
// archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()
	return afs.Read()
}
