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

package romheader

import (
	"github.com/jetsetilly/esp2elf/curated"
)

// Default location of the irom image in a non-OTA ROM dump.
const (
	DefaultIromStart  = 0x40000
	DefaultIromLength = 0x3e000
)

// Defaults are used for the irom image when the header is a Legacy header. OTA
// headers specify the location of the irom image themselves.
type Defaults struct {
	IromStart  int
	IromLength int
}

// DefaultDefaults returns the standard irom location for non-OTA images.
func DefaultDefaults() Defaults {
	return Defaults{
		IromStart:  DefaultIromStart,
		IromLength: DefaultIromLength,
	}
}

// Layout is the result of parsing the header of a ROM.
type Layout struct {
	Header Header

	// the entry address of the firmware
	Entry uint32

	// number of section descriptors starting at Cursor
	SectionCount int

	// position and length of the irom image in the ROM data
	IromStart  int
	IromLength int

	// offset of the first section descriptor
	Cursor int
}

// Parse the header at offset in the data. The defaults are used for the irom
// image location unless the header is an OTA header.
func Parse(data []byte, offset int, defaults Defaults) (Layout, error) {
	var lay Layout

	m, err := magic(data, offset)
	if err != nil {
		return Layout{}, err
	}

	switch m {
	case MagicLegacy:
		lay.Header.Kind = Legacy
		err = read(data, offset, LegacyHeaderSize, "legacy header", &lay.Header.Legacy)
		if err != nil {
			return Layout{}, err
		}
		lay.IromStart = defaults.IromStart
		lay.IromLength = defaults.IromLength
		lay.Cursor = offset + LegacyHeaderSize

	case MagicOTA1:
		// second byte must also match. anything else is an unknown format
		if offset+1 >= len(data) || data[offset+1] != MagicOTA2 {
			return Layout{}, curated.Errorf(UnknownHeaderFormat, m, offset)
		}

		lay.Header.Kind = OTA
		err = read(data, offset, OTAHeaderSize, "OTA header", &lay.Header.OTA)
		if err != nil {
			return Layout{}, err
		}
		lay.IromStart = offset + OTAHeaderSize
		lay.IromLength = int(lay.Header.OTA.IromLength)

		// the legacy header follows the irom image
		nested := lay.IromStart + lay.IromLength
		n, err := magic(data, nested)
		if err != nil {
			return Layout{}, err
		}
		if n != MagicLegacy {
			return Layout{}, curated.Errorf(MalformedOtaChain, n, nested)
		}
		err = read(data, nested, LegacyHeaderSize, "legacy header", &lay.Header.Legacy)
		if err != nil {
			return Layout{}, err
		}
		lay.Cursor = nested + LegacyHeaderSize

	default:
		return Layout{}, curated.Errorf(UnknownHeaderFormat, m, offset)
	}

	lay.Entry = lay.Header.Entry()
	lay.SectionCount = int(lay.Header.Legacy.SectionCount)

	logHeader(lay.Header, offset)

	return lay, nil
}

// Irom returns the irom image from the ROM data.
func (lay Layout) Irom(data []byte) ([]byte, error) {
	if lay.IromStart < 0 || lay.IromLength < 0 || lay.IromStart > len(data) || len(data)-lay.IromStart < lay.IromLength {
		avail := len(data) - lay.IromStart
		if avail < 0 {
			avail = 0
		}
		return nil, curated.Errorf(TruncatedImage, "irom image", lay.IromStart, lay.IromLength, avail)
	}
	return data[lay.IromStart : lay.IromStart+lay.IromLength], nil
}
