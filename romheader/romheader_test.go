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

package romheader_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/romheader"
	"github.com/jetsetilly/esp2elf/test"
)

type section struct {
	addr uint32
	data []byte
}

func legacyHeader(b *bytes.Buffer, entry uint32, count int) {
	b.Write([]byte{romheader.MagicLegacy, uint8(count), 0x02, 0x40})
	binary.Write(b, binary.LittleEndian, entry)
}

func sections(b *bytes.Buffer, s []section) {
	for _, sec := range s {
		binary.Write(b, binary.LittleEndian, sec.addr)
		binary.Write(b, binary.LittleEndian, uint32(len(sec.data)))
		b.Write(sec.data)
	}
}

func legacyROM(entry uint32, s []section) []byte {
	b := &bytes.Buffer{}
	legacyHeader(b, entry, len(s))
	sections(b, s)
	return b.Bytes()
}

func otaROM(entry uint32, irom []byte, s []section) []byte {
	b := &bytes.Buffer{}
	b.Write([]byte{romheader.MagicOTA1, romheader.MagicOTA2, 0x00, 0x20})
	binary.Write(b, binary.LittleEndian, entry)
	b.Write([]byte{0, 0, 0, 0})
	binary.Write(b, binary.LittleEndian, uint32(len(irom)))
	b.Write(irom)
	legacyHeader(b, 0, len(s))
	sections(b, s)
	return b.Bytes()
}

var testSections = []section{
	{addr: 0x40100000, data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	{addr: 0x3ffe8000, data: []byte{0xaa, 0xbb, 0xcc, 0xdd}},
}

func TestLegacy(t *testing.T) {
	data := legacyROM(0x40100010, testSections)

	lay, err := romheader.Parse(data, 0, romheader.DefaultDefaults())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Header.Kind, romheader.Legacy)
	test.ExpectEquality(t, lay.Entry, 0x40100010)
	test.ExpectEquality(t, lay.SectionCount, 2)
	test.ExpectEquality(t, lay.Cursor, romheader.LegacyHeaderSize)
	test.ExpectEquality(t, lay.IromStart, romheader.DefaultIromStart)
	test.ExpectEquality(t, lay.IromLength, romheader.DefaultIromLength)
	test.ExpectEquality(t, lay.Header.Legacy.Flags1, 0x02)
	test.ExpectEquality(t, lay.Header.Legacy.Flags2, 0x40)

	r := romheader.NewReader(data, lay.Cursor)
	for i := 0; i < lay.SectionCount; i++ {
		s, err := r.Next()
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, s.Address, testSections[i].addr, i)
		test.ExpectEquality(t, int(s.Length), len(testSections[i].data), i)
		test.ExpectSuccess(t, bytes.Equal(s.Data, testSections[i].data), i)
		test.ExpectSuccess(t, bytes.Equal(data[s.Offset:s.Offset+int(s.Length)], testSections[i].data), i)
	}
	test.ExpectEquality(t, r.Cursor(), len(data))
	test.ExpectEquality(t, r.Count(), 2)
}

func TestLegacyOffset(t *testing.T) {
	// header does not need to be at the start of the data
	data := append(make([]byte, 0x100), legacyROM(0x40100004, testSections)...)

	lay, err := romheader.Parse(data, 0x100, romheader.Defaults{IromStart: 0x1000, IromLength: 0x20})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Entry, 0x40100004)
	test.ExpectEquality(t, lay.Cursor, 0x108)
	test.ExpectEquality(t, lay.IromStart, 0x1000)
	test.ExpectEquality(t, lay.IromLength, 0x20)
}

func TestOTA(t *testing.T) {
	irom := bytes.Repeat([]byte{0x5a}, 48)
	data := otaROM(0x40100020, irom, testSections)

	lay, err := romheader.Parse(data, 0, romheader.DefaultDefaults())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lay.Header.Kind, romheader.OTA)
	test.ExpectEquality(t, lay.Entry, 0x40100020)
	test.ExpectEquality(t, lay.SectionCount, 2)
	test.ExpectEquality(t, lay.IromStart, romheader.OTAHeaderSize)
	test.ExpectEquality(t, lay.IromLength, len(irom))
	test.ExpectEquality(t, lay.Cursor, romheader.OTAHeaderSize+len(irom)+romheader.LegacyHeaderSize)

	b, err := lay.Irom(data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(b, irom))

	r := romheader.NewReader(data, lay.Cursor)
	for i := 0; i < lay.SectionCount; i++ {
		s, err := r.Next()
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, s.Address, testSections[i].addr, i)
	}
	test.ExpectEquality(t, r.Cursor(), len(data))
}

func TestMalformedOTA(t *testing.T) {
	irom := bytes.Repeat([]byte{0x5a}, 16)
	data := otaROM(0x40100020, irom, testSections)

	// corrupt the nested legacy header
	data[romheader.OTAHeaderSize+len(irom)] = 0xe8

	_, err := romheader.Parse(data, 0, romheader.DefaultDefaults())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romheader.MalformedOtaChain))
}

func TestUnknownFormat(t *testing.T) {
	data := legacyROM(0x40100010, testSections)
	data[0] = 0x00

	_, err := romheader.Parse(data, 0, romheader.DefaultDefaults())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romheader.UnknownHeaderFormat))
	test.ExpectEquality(t, err.Error(), "romheader: unknown magic 0x00 at offset 0x0")

	// first OTA magic byte without the second is not an OTA header
	data[0] = romheader.MagicOTA1
	data[1] = 0x05
	_, err = romheader.Parse(data, 0, romheader.DefaultDefaults())
	test.ExpectSuccess(t, curated.Is(err, romheader.UnknownHeaderFormat))
}

func TestTruncated(t *testing.T) {
	data := legacyROM(0x40100010, testSections)

	// header cut short
	_, err := romheader.Parse(data[:4], 0, romheader.DefaultDefaults())
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))

	// offset beyond the end of the data
	_, err = romheader.Parse(data, len(data)+10, romheader.DefaultDefaults())
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))

	// payload of the last section cut short
	cut := data[:len(data)-1]
	lay, err := romheader.Parse(cut, 0, romheader.DefaultDefaults())
	test.DemandSuccess(t, err)
	r := romheader.NewReader(cut, lay.Cursor)
	_, err = r.Next()
	test.ExpectSuccess(t, err)
	_, err = r.Next()
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))

	// descriptor cut short
	r = romheader.NewReader(data, len(data)-4)
	_, err = r.Next()
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))

	// irom image outside of the data
	_, err = lay.Irom(data)
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))

	// OTA irom length running past the end of the data
	ota := otaROM(0x40100020, make([]byte, 8), nil)
	binary.LittleEndian.PutUint32(ota[12:], 0x1000)
	_, err = romheader.Parse(ota, 0, romheader.DefaultDefaults())
	test.ExpectSuccess(t, curated.Is(err, romheader.TruncatedImage))
}
