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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kr/pretty"

	"github.com/jetsetilly/esp2elf/convert"
	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/environment"
	"github.com/jetsetilly/esp2elf/hexfile"
	"github.com/jetsetilly/esp2elf/logger"
	"github.com/jetsetilly/esp2elf/memorymap"
	"github.com/jetsetilly/esp2elf/modalflag"
	"github.com/jetsetilly/esp2elf/performance"
	"github.com/jetsetilly/esp2elf/romloader"
	"github.com/jetsetilly/esp2elf/statsview"
	"github.com/jetsetilly/esp2elf/version"
)

// exit values.
const (
	exitSuccess   = 0
	exitArguments = 10
	exitMode      = 20
)

// command line errors. anything else is an error in the mode itself.
const (
	badFlags    = "flags: %v"
	tooFewArgs  = "too few arguments for %s mode"
	tooManyArgs = "too many arguments for %s mode"
	badNumber   = "cannot parse %s (%s): %v"
)

func isArgumentError(err error) bool {
	return curated.Is(err, badFlags) || curated.Is(err, tooFewArgs) ||
		curated.Is(err, tooManyArgs) || curated.Is(err, badNumber)
}

const offsetHelp = `Numeric arguments can be decimal or hex with a 0x prefix.
  start-offset  offset of the ROM header in the dump (default 0)
  irom-offset   offset of the irom0 image (default 0x40000, ignored for OTA)
  irom-length   length of the irom0 image (default 0x3e000, ignored for OTA)`

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the mode specified by the command line arguments. returns the exit
// value for the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CONVERT", "INFO", "HEX", "MEMMAP", "VERSION")
	md.AdditionalHelp(version.Banner())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	env := environment.NewEnvironment()

	switch md.Mode() {
	case "CONVERT":
		err = convertMode(output, md, env)
	case "INFO":
		err = infoMode(output, md, env)
	case "HEX":
		err = hexMode(output, md, env)
	case "MEMMAP":
		err = memmapMode(output, md)
	case "VERSION":
		err = versionMode(output, md)
	}

	// echo is set by the modes. make sure it doesn't outlive the mode
	logger.SetEcho(nil)

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if isArgumentError(err) {
			return exitArguments
		}
		return exitMode
	}

	return exitSuccess
}

// flags shared by the modes that read a ROM.
type romFlags struct {
	bootrom *string
	log     *bool
}

func addROMFlags(md *modalflag.Modes) romFlags {
	return romFlags{
		bootrom: md.AddString("bootrom", "", fmt.Sprintf("boot ROM image, file or URL (default $%s)", environment.VarBootROM)),
		log:     md.AddBool("log", false, fmt.Sprintf("echo log to stdout (default $%s)", environment.VarLog)),
	}
}

// apply flags to the environment and set the log echo.
func (f romFlags) apply(output io.Writer, env *environment.Environment) {
	env.OverrideBootROM(*f.bootrom)
	env.OverrideLog(*f.log)

	if !env.Log {
		logger.SetEcho(nil)
		return
	}

	if o, ok := output.(*os.File); ok && !env.NoColor && logger.IsTerminal(o) {
		logger.SetEcho(logger.NewColorizer(output))
	} else {
		logger.SetEcho(output)
	}
}

// parse a numeric argument. decimal or hex with a 0x prefix.
func parseNumber(name string, s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf(badNumber, name, s, err)
	}
	return int(v), nil
}

// parse the optional offset arguments into the conversion options.
func parseOffsets(md *modalflag.Modes, args []string, opts *convert.Options) error {
	names := []string{"start-offset", "irom-offset", "irom-length"}
	if len(args) > len(names) {
		return curated.Errorf(tooManyArgs, md)
	}

	var v [3]int
	v[0] = opts.StartOffset
	v[1] = opts.Defaults.IromStart
	v[2] = opts.Defaults.IromLength

	for i, s := range args {
		n, err := parseNumber(names[i], s)
		if err != nil {
			return err
		}
		v[i] = n
	}

	opts.StartOffset = v[0]
	opts.Defaults.IromStart = v[1]
	opts.Defaults.IromLength = v[2]

	return nil
}

// parse the flags for the current mode. the help flag results in a nil error
// and a false return value.
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(badFlags, err)
	}
	return true, nil
}

func convertMode(output io.Writer, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.Usage("<input-rom> <output-elf> [start-offset] [irom-offset] [irom-length]")
	md.AdditionalHelp(offsetHelp)

	rf := addROMFlags(md)
	memviz := md.AddString("memviz", "", "write graphviz rendering of the conversion to file")
	profile := md.AddString("profile", "none", "run conversion through profiler: cpu, mem, trace, all (comma separated)")
	stats := md.AddBool("statsview", false, "launch runtime statistics server (statsview builds only)")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) < 2 {
		return curated.Errorf(tooFewArgs, md)
	}

	opts := convert.NewOptions()
	err = parseOffsets(md, md.RemainingArgs()[2:], &opts)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(badFlags, err)
	}

	rf.apply(output, env)
	opts.BootROM = env.BootROM

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(output)
			defer stop()
		} else {
			fmt.Fprintf(output, "! statsview not available in this build\n")
		}
	}

	opts.MemvizFile = *memviz

	rl := romloader.NewLoader(md.GetArg(0))

	return performance.RunProfiler(prof, "convert", func() error {
		return convert.Convert(&rl, md.GetArg(1), opts)
	})
}

func infoMode(output io.Writer, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.Usage("<input-rom> [start-offset] [irom-offset] [irom-length]")
	md.AdditionalHelp(offsetHelp)

	rf := addROMFlags(md)
	verbose := md.AddBool("verbose", false, "dump the parsed ROM layout")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) < 1 {
		return curated.Errorf(tooFewArgs, md)
	}

	opts := convert.NewOptions()
	err = parseOffsets(md, md.RemainingArgs()[1:], &opts)
	if err != nil {
		return err
	}

	rf.apply(output, env)
	opts.BootROM = env.BootROM

	rl := romloader.NewLoader(md.GetArg(0))
	rep, err := convert.Inspect(&rl, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s (sha1 %s)\n", rl.ShortName(), rl.Hash)
	fmt.Fprint(output, rep)

	if *verbose {
		pretty.Fprintf(output, "%# v\n", rep.Layout)
	}

	return nil
}

func hexMode(output io.Writer, md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.Usage("<input-rom> <output-hex> [start-offset] [irom-offset] [irom-length]")
	md.AdditionalHelp(offsetHelp)

	rf := addROMFlags(md)
	lineLength := md.AddInt("linelen", hexfile.DefaultLineLength, "data bytes per record (1 to 255)")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) < 2 {
		return curated.Errorf(tooFewArgs, md)
	}

	if *lineLength < 1 || *lineLength > hexfile.MaxLineLength {
		return curated.Errorf(badNumber, "linelen", strconv.Itoa(*lineLength),
			curated.Errorf(hexfile.LineLength, *lineLength, hexfile.MaxLineLength))
	}

	opts := convert.NewOptions()
	opts.LineLength = *lineLength
	err = parseOffsets(md, md.RemainingArgs()[2:], &opts)
	if err != nil {
		return err
	}

	rf.apply(output, env)
	opts.BootROM = env.BootROM

	rl := romloader.NewLoader(md.GetArg(0))
	return convert.ExportHex(&rl, md.GetArg(1), opts)
}

func memmapMode(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	fmt.Fprint(output, memorymap.Summary())

	return nil
}

func versionMode(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(tooManyArgs, md)
	}

	fmt.Fprintln(output, version.Banner())

	return nil
}
