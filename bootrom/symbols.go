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

// Symbol is the name and address of a routine in the boot ROM.
type Symbol struct {
	Name string
	Addr uint32
}

// Symbols is the list of built-in boot ROM routines. Addresses are taken from
// the ESP8266 ROM linker script (esp8266.rom.ld).
var Symbols = []Symbol{
	{Name: "SPI_sector_erase", Addr: 0x400040c0},
	{Name: "SPI_page_program", Addr: 0x40004174},
	{Name: "SPI_read_data", Addr: 0x400042ac},
	{Name: "SPI_read_status", Addr: 0x400043c8},
	{Name: "SPI_write_status", Addr: 0x40004400},
	{Name: "SPI_write_enable", Addr: 0x4000443c},
	{Name: "Wait_SPI_Idle", Addr: 0x4000448c},
	{Name: "Enable_QMode", Addr: 0x400044c0},
	{Name: "Disable_QMode", Addr: 0x40004508},

	{Name: "Cache_Read_Enable", Addr: 0x40004678},
	{Name: "Cache_Read_Disable", Addr: 0x400047f0},

	{Name: "lldesc_build_chain", Addr: 0x40004f40},
	{Name: "lldesc_num2link", Addr: 0x40005050},
	{Name: "lldesc_set_owner", Addr: 0x4000507c},

	{Name: "__adddf3", Addr: 0x4000c538},
	{Name: "__addsf3", Addr: 0x4000c180},
	{Name: "__divdf3", Addr: 0x4000cb94},
	{Name: "__divdi3", Addr: 0x4000ce60},
	{Name: "__divsi3", Addr: 0x4000dc88},
	{Name: "__extendsfdf2", Addr: 0x4000cdfc},
	{Name: "__fixdfsi", Addr: 0x4000ccb8},
	{Name: "__fixunsdfsi", Addr: 0x4000cd00},
	{Name: "__fixunssfsi", Addr: 0x4000c4c4},
	{Name: "__floatsidf", Addr: 0x4000e2f0},
	{Name: "__floatsisf", Addr: 0x4000e2ac},
	{Name: "__floatunsidf", Addr: 0x4000e2e8},
	{Name: "__floatunsisf", Addr: 0x4000e2a4},
	{Name: "__muldf3", Addr: 0x4000c8f0},
	{Name: "__muldi3", Addr: 0x40000650},
	{Name: "__mulsf3", Addr: 0x4000c3dc},
	{Name: "__subdf3", Addr: 0x4000c688},
	{Name: "__subsf3", Addr: 0x4000c268},
	{Name: "__truncdfsf2", Addr: 0x4000cd5c},
	{Name: "__udivdi3", Addr: 0x4000d310},
	{Name: "__udivsi3", Addr: 0x4000e21c},
	{Name: "__umoddi3", Addr: 0x4000d770},
	{Name: "__umodsi3", Addr: 0x4000e268},
	{Name: "__umulsidi3", Addr: 0x4000dcf0},

	{Name: "bzero", Addr: 0x4000de84},
	{Name: "memcmp", Addr: 0x4000dea8},
	{Name: "memcpy", Addr: 0x4000df48},
	{Name: "memmove", Addr: 0x4000e04c},
	{Name: "memset", Addr: 0x4000e190},

	{Name: "strcmp", Addr: 0x4000bdc8},
	{Name: "strcpy", Addr: 0x4000bec8},
	{Name: "strlen", Addr: 0x4000bf4c},
	{Name: "strncmp", Addr: 0x4000bfa8},
	{Name: "strncpy", Addr: 0x4000c0a0},
	{Name: "strstr", Addr: 0x4000e1e0},

	{Name: "gpio_input_get", Addr: 0x40004cf0},
	{Name: "gpio_pin_wakeup_disable", Addr: 0x40004ed4},
	{Name: "gpio_pin_wakeup_enable", Addr: 0x40004e90},

	{Name: "ets_io_vprintf", Addr: 0x40001f00},
	{Name: "uart_rx_one_char", Addr: 0x40003b8c},

	{Name: "rom_i2c_readReg", Addr: 0x40007268},
	{Name: "rom_i2c_readReg_Mask", Addr: 0x4000729c},
	{Name: "rom_i2c_writeReg", Addr: 0x400072d8},
	{Name: "rom_i2c_writeReg_Mask", Addr: 0x4000730c},

	{Name: "rom_software_reboot", Addr: 0x40000080},
}
