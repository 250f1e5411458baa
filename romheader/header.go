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
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/logger"
)

// Sentinal errors.
const (
	UnknownHeaderFormat = "romheader: unknown magic %#02x at offset %#x"
	MalformedOtaChain   = "romheader: OTA image not followed by a legacy header (magic %#02x at offset %#x)"
	TruncatedImage      = "romheader: %s truncated at offset %#x (%d bytes required, %d available)"
)

// Magic values identifying the header formats.
const (
	MagicLegacy = 0xe9
	MagicOTA1   = 0xea
	MagicOTA2   = 0x04
)

// Size of the headers in bytes.
const (
	LegacyHeaderSize  = 8
	OTAHeaderSize     = 16
	SectionHeaderSize = 8
)

// Kind identifies the header format found at the start of the ROM.
type Kind int

// List of valid Kind values.
const (
	Legacy Kind = iota
	OTA
)

func (k Kind) String() string {
	switch k {
	case Legacy:
		return "legacy"
	case OTA:
		return "OTA"
	}
	return "unknown"
}

// LegacyHeader is the eight byte header used by non-OTA images and nested
// after the irom image in OTA images.
type LegacyHeader struct {
	Magic        uint8
	SectionCount uint8
	Flags1       uint8
	Flags2       uint8
	Entry        uint32
}

// OTAHeader is the sixteen byte header used by OTA images.
type OTAHeader struct {
	Magic1     uint8
	Magic2     uint8
	Config     [2]uint8
	Entry      uint32
	Unused     [4]uint8
	IromLength uint32
}

// Header is the header found at the start of the ROM. The Kind field says
// which of the two formats was found.
//
// The Legacy field is always valid. For OTA images it is the nested header
// found after the irom image. The OTA field is only valid if Kind is OTA.
type Header struct {
	Kind   Kind
	Legacy LegacyHeader
	OTA    OTAHeader
}

// Entry returns the entry address from the outermost header.
func (h Header) Entry() uint32 {
	if h.Kind == OTA {
		return h.OTA.Entry
	}
	return h.Legacy.Entry
}

// read fixed size structure from the data at offset. what is used to describe
// the structure in the event of an error.
func read(data []byte, offset int, size int, what string, v any) error {
	if offset < 0 || offset > len(data) || len(data)-offset < size {
		avail := len(data) - offset
		if avail < 0 {
			avail = 0
		}
		return curated.Errorf(TruncatedImage, what, offset, size, avail)
	}
	return binary.Read(bytes.NewReader(data[offset:offset+size]), binary.LittleEndian, v)
}

// magic returns the byte at offset or an error if the offset is outside the data.
func magic(data []byte, offset int) (uint8, error) {
	if offset < 0 || offset >= len(data) {
		return 0, curated.Errorf(TruncatedImage, "header", offset, 1, 0)
	}
	return data[offset], nil
}

func (h Header) String() string {
	if h.Kind == OTA {
		return fmt.Sprintf("%s header (config %02x%02x, irom %d bytes, %d sections)",
			h.Kind, h.OTA.Config[0], h.OTA.Config[1], h.OTA.IromLength, h.Legacy.SectionCount)
	}
	return fmt.Sprintf("%s header (flags %02x%02x, %d sections)", h.Kind, h.Legacy.Flags1, h.Legacy.Flags2, h.Legacy.SectionCount)
}

func logHeader(h Header, offset int) {
	logger.Logf("romheader", "%s at offset %#x", h, offset)
}
