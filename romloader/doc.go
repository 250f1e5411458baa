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

// Package romloader is used to specify and load the ROM dump that is to be
// converted.
//
// The Load() function handles loading of data from different sources.
// Currently local files, files inside zip archives and data over HTTP are
// supported. After loading, the
// Hash field contains the SHA1 hash of the data. If the Hash field is set
// before loading then the loaded data must match it.
//
// The simplest instance of the Loader type:
//
//	rl := romloader.Loader{
//		Filename: "dumps/sonoff.bin",
//	}
//
// It is preferred however that the NewLoader() function is used.
package romloader
