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

package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[1m"
	penDetail = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is printed in bold and the detail dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, s := range strings.SplitAfter(string(p), "\n") {
		if s == "" {
			continue
		}

		var m int

		tag, detail, ok := strings.Cut(s, ": ")
		if ok {
			m, err = io.WriteString(c.out, penTag+tag+": "+penNormal+penDetail+strings.TrimSuffix(detail, "\n")+penNormal)
		} else {
			m, err = io.WriteString(c.out, strings.TrimSuffix(s, "\n"))
		}
		if err != nil {
			return n, err
		}
		n += m

		if strings.HasSuffix(s, "\n") {
			m, err = io.WriteString(c.out, "\n")
			if err != nil {
				return n, err
			}
			n += m
		}
	}

	// the number of bytes written to the underlying writer will be more than
	// the length of p. we report len(p) so that the caller does not interpret
	// the difference as a short write
	return len(p), nil
}
