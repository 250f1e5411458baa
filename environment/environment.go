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

// Package environment collects the settings for a conversion that can be
// supplied through environment variables. Values given on the command line
// take precedence and are applied with the Override functions.
package environment

import (
	"github.com/xyproto/env/v2"
)

// Names of the environment variables read by the package.
const (
	VarBootROM = "ESP2ELF_BOOTROM"
	VarLog     = "ESP2ELF_LOG"
	VarNoColor = "ESP2ELF_NOCOLOR"
)

// Environment is used to provide context for a conversion.
type Environment struct {
	// path to the boot ROM blob. empty string means no file has been
	// specified and a placeholder will be used
	BootROM string

	// echo the central log to stdout
	Log bool

	// never colorize log output, even if stdout is a terminal
	NoColor bool
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type. Fields are initialised from the process environment.
func NewEnvironment() *Environment {
	// the env package caches the process environment on first use. reload it
	// so that changes since the previous Environment are seen
	env.Load()

	return &Environment{
		BootROM: env.Str(VarBootROM),
		Log:     env.Bool(VarLog),
		NoColor: env.Bool(VarNoColor),
	}
}

// OverrideBootROM replaces the boot ROM path if the value is not empty.
func (e *Environment) OverrideBootROM(path string) {
	if path != "" {
		e.BootROM = path
	}
}

// OverrideLog turns on logging if the value is true. Logging requested by the
// environment cannot be turned off by the command line.
func (e *Environment) OverrideLog(log bool) {
	e.Log = e.Log || log
}
