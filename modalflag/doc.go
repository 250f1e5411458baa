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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "INFO", "VERSION")
//	p, err := md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation. Each mode can have its own flags and expects its own
// arguments. The first sub-mode in the list is the default and is selected
// if the first non-flag argument is not a listed sub-mode. Sub-mode
// comparisons are case insensitive.
//
// Once a mode has been selected, NewMode() prepares the Modes instance for
// the flags of that mode and a second call to Parse() processes them:
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		md.Usage("<input-rom> [start-offset]")
//		verbose := md.AddBool("verbose", false, "dump the parsed header")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		info(md.RemainingArgs(), *verbose)
//	}
//
// Help messages are printed to the Output field automatically when the -help
// flag is encountered. The Usage() and AdditionalHelp() functions supplement
// the help message with a description of the expected arguments.
package modalflag
