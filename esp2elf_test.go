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

package main

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/romheader"
	"github.com/jetsetilly/esp2elf/test"
	"github.com/jetsetilly/esp2elf/version"
)

// writes an OTA ROM with two sections to a temporary file and returns the
// filename.
func testROM(t *testing.T) string {
	t.Helper()

	irom := []byte{0x10, 0x11, 0x12, 0x13}

	b := &bytes.Buffer{}
	b.Write([]byte{romheader.MagicOTA1, romheader.MagicOTA2, 0x00, 0x20})
	binary.Write(b, binary.LittleEndian, uint32(0x40100004))
	b.Write([]byte{0, 0, 0, 0})
	binary.Write(b, binary.LittleEndian, uint32(len(irom)))
	b.Write(irom)
	b.Write([]byte{romheader.MagicLegacy, 0x02, 0x02, 0x40})
	binary.Write(b, binary.LittleEndian, uint32(0))
	for _, addr := range []uint32{0x40100000, 0x3ffe8000} {
		binary.Write(b, binary.LittleEndian, addr)
		binary.Write(b, binary.LittleEndian, uint32(4))
		b.Write([]byte{0x01, 0x02, 0x03, 0x04})
	}

	fn := filepath.Join(t.TempDir(), "rom.bin")
	test.DemandSuccess(t, os.WriteFile(fn, b.Bytes(), 0o644))
	return fn
}

func TestConvertMode(t *testing.T) {
	t.Setenv("ESP2ELF_BOOTROM", "")
	t.Setenv("ESP2ELF_LOG", "")

	rom := testROM(t)
	output := filepath.Join(t.TempDir(), "rom.elf")

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{rom, output}), exitSuccess)
	test.ExpectEquality(t, w.String(), "")

	f, err := elf.Open(output)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectEquality(t, f.Entry, uint64(0x40100004))
}

func TestConvertModeExplicit(t *testing.T) {
	t.Setenv("ESP2ELF_BOOTROM", "")
	t.Setenv("ESP2ELF_LOG", "")

	rom := testROM(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "rom.elf")
	dot := filepath.Join(dir, "rom.dot")

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"convert", "-log", "-memviz", dot, rom, output, "0x0"}), exitSuccess)

	// log was echoed
	test.ExpectSuccess(t, strings.Contains(w.String(), "convert: entry point 40100004"))

	_, err := os.Stat(output)
	test.ExpectSuccess(t, err)
	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))
}

func TestConvertModeErrors(t *testing.T) {
	t.Setenv("ESP2ELF_BOOTROM", "")
	t.Setenv("ESP2ELF_LOG", "")

	rom := testROM(t)
	dir := t.TempDir()

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"convert", rom}), exitArguments)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in CONVERT mode: "))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", rom, filepath.Join(dir, "a.elf"), "zero"}), exitArguments)

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", rom, filepath.Join(dir, "a.elf"), "0", "0", "0", "0"}), exitArguments)

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", "-nosuchflag", rom, filepath.Join(dir, "a.elf")}), exitArguments)

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", "-profile", "gpu", rom, filepath.Join(dir, "a.elf")}), exitArguments)
	test.ExpectSuccess(t, strings.Contains(w.String(), "gpu"))

	// a failed conversion leaves no graph behind
	w.Clear()
	dot := filepath.Join(dir, "a.dot")
	test.ExpectEquality(t, launch(w, []string{"convert", "-memviz", dot, rom, filepath.Join(dir, "a.elf"), "1"}), exitMode)
	_, err := os.Stat(dot)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// a start offset that doesn't point to a header
	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", rom, filepath.Join(dir, "a.elf"), "1"}), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown magic"))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", filepath.Join(dir, "missing.bin"), filepath.Join(dir, "a.elf")}), exitMode)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unreadable input"))

	_, err = os.Stat(filepath.Join(dir, "a.elf"))
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestInfoMode(t *testing.T) {
	t.Setenv("ESP2ELF_BOOTROM", "")
	t.Setenv("ESP2ELF_LOG", "")

	rom := testROM(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"info", rom}), exitSuccess)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "rom (sha1 "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "entry point  40100004"))
	test.ExpectSuccess(t, strings.Contains(w.String(), ".dram0_0.data"))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"info", "-verbose", rom}), exitSuccess)
	test.ExpectSuccess(t, strings.Contains(w.String(), "SectionCount:"))
}

func TestHexMode(t *testing.T) {
	t.Setenv("ESP2ELF_BOOTROM", "")
	t.Setenv("ESP2ELF_LOG", "")

	rom := testROM(t)
	output := filepath.Join(t.TempDir(), "rom.hex")

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"hex", "-linelen", "32", rom, output}), exitSuccess)

	b, err := os.ReadFile(output)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), ":"))

	// record length must fit in a byte
	for _, l := range []string{"0", "256", "-1"} {
		w.Clear()
		bad := filepath.Join(t.TempDir(), "bad.hex")
		test.ExpectEquality(t, launch(w, []string{"hex", "-linelen", l, rom, bad}), exitArguments, l)
		test.ExpectSuccess(t, strings.Contains(w.String(), "cannot parse linelen"), l)
		_, err = os.Stat(bad)
		test.ExpectSuccess(t, os.IsNotExist(err), l)
	}

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"hex", "-linelen", "255", rom, output}), exitSuccess)
}

func TestMemmapMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"memmap"}), exitSuccess)
	test.ExpectEquality(t, w.String(), memorymap.Summary())

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"memmap", "extra"}), exitArguments)
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"version"}), exitSuccess)
	test.ExpectEquality(t, w.String(), version.Banner()+"\n")
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(w, []string{"-help"}), exitSuccess)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: CONVERT, INFO, HEX, MEMMAP, VERSION"))

	w.Clear()
	test.ExpectEquality(t, launch(w, []string{"convert", "-help"}), exitSuccess)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Usage of CONVERT mode:\n  <input-rom> <output-elf>"))
}
