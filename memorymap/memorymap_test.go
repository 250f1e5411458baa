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

package memorymap_test

import (
	"debug/elf"
	"testing"

	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/test"
)

const validMemMap = "3ffe8000 -> 3fffbfff\tDRAM    rw-\n" +
	"40000000 -> 400fffff\tBootROM r-x\n" +
	"40100000 -> 401fffff\tIRAM    r-x\n" +
	"40200000 -> 402fffff\tIROM    r-x\n" +
	"elsewhere           \tUnknown r-x\n"

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestDRAM(t *testing.T) {
	// sample the DRAM range rather than visiting every address
	for a := memorymap.OriginDRAM; a < memorymap.MemtopDRAM; a += 0x7f {
		area := memorymap.MapAddress(a)
		test.DemandEquality(t, area, memorymap.DRAM, a)
		test.ExpectEquality(t, area.ProgFlags()&elf.PF_W, elf.PF_W, a)
		test.ExpectEquality(t, area.SectionFlags(), elf.SHF_WRITE|elf.SHF_ALLOC, a)
	}

	// edges of the range
	test.ExpectEquality(t, memorymap.MapAddress(0x3ffe8000), memorymap.DRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x3fffbfff), memorymap.DRAM)
	test.ExpectInequality(t, memorymap.MapAddress(0x3ffe7fff), memorymap.DRAM)
	test.ExpectInequality(t, memorymap.MapAddress(0x3fffc000), memorymap.DRAM)
}

func TestCodeAreas(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x40000000), memorymap.BootROM)
	test.ExpectEquality(t, memorymap.MapAddress(0x400fffff), memorymap.BootROM)
	test.ExpectEquality(t, memorymap.MapAddress(0x40100000), memorymap.IRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x401fffff), memorymap.IRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x40200000), memorymap.IROM)
	test.ExpectEquality(t, memorymap.MapAddress(0x402fffff), memorymap.IROM)

	for _, a := range []memorymap.Area{memorymap.BootROM, memorymap.IRAM, memorymap.IROM, memorymap.Unknown} {
		test.ExpectEquality(t, a.SectionFlags(), elf.SHF_EXECINSTR|elf.SHF_ALLOC, a)
		test.ExpectEquality(t, a.ProgFlags(), elf.PF_R|elf.PF_X, a)
	}
}

func TestUnknown(t *testing.T) {
	for _, a := range []uint32{0x00000000, 0x3ffe7fff, 0x3fffc000, 0x3fffffff, 0x40300000, 0x60000000, 0xffffffff} {
		test.ExpectEquality(t, memorymap.MapAddress(a), memorymap.Unknown, a)
	}
}

func TestCounted(t *testing.T) {
	test.ExpectSuccess(t, memorymap.DRAM.Counted())
	test.ExpectSuccess(t, memorymap.IRAM.Counted())
	test.ExpectSuccess(t, memorymap.Unknown.Counted())
	test.ExpectFailure(t, memorymap.BootROM.Counted())
	test.ExpectFailure(t, memorymap.IROM.Counted())
}
