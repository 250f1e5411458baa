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

package bootrom

import (
	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/logger"
	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/romloader"
)

// Origin is the load address of the boot ROM.
const Origin = memorymap.OriginBootROM

// Length is the size of the boot ROM in bytes.
const Length = 0x10000

// Blob returns the boot ROM image found at path. The path can be anything
// accepted by romloader.Loader. An empty path results in a zero filled image
// of Length bytes.
func Blob(path string) ([]byte, error) {
	if path == "" {
		logger.Logf("bootrom", "no image specified: using %d byte placeholder", Length)
		return make([]byte, Length), nil
	}

	rl := romloader.NewLoader(path)
	err := rl.Load()
	if err != nil {
		return nil, curated.Errorf("bootrom: %v", err)
	}

	if len(rl.Data) != Length {
		logger.Logf("bootrom", "%s: unexpected length (%d bytes, expected %d)", rl.ShortName(), len(rl.Data), Length)
	}

	return rl.Data, nil
}
