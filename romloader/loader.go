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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/esp2elf/archivefs"
	"github.com/jetsetilly/esp2elf/curated"
	"github.com/jetsetilly/esp2elf/logger"
)

// Sentinal errors.
const (
	InputUnreadable = "romloader: unreadable input (%s): %v"
	HashMismatch    = "romloader: unexpected hash value for %s"
)

// Loader is used to specify the ROM dump to load.
type Loader struct {
	// filename or URL of the ROM dump
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing if
	// there is data already
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// NewLoaderFromData creates a Loader with data that has already been loaded.
// The name argument is used only for reporting.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Data:     data,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (rl Loader) ShortName() string {
	s := filepath.Base(rl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(rl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM data. Filenames with an http or https scheme are fetched over
// the network. Everything else is treated as a local file, which may be inside
// a zip archive (see the archivefs package).
func (rl *Loader) Load() error {
	if len(rl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(rl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf(InputUnreadable, rl.Filename, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(InputUnreadable, rl.Filename, resp.Status)
		}

		rl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(InputUnreadable, rl.Filename, err)
		}

	default:
		rl.Data, err = archivefs.ReadFile(rl.Filename)
		if err != nil {
			return curated.Errorf(InputUnreadable, rl.Filename, err)
		}
	}

	if len(rl.Data) == 0 {
		return curated.Errorf(InputUnreadable, rl.Filename, "file is empty")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(rl.Data))

	// check for hash consistency
	if rl.Hash != "" && rl.Hash != hash {
		rl.Data = nil
		return curated.Errorf(HashMismatch, rl.Filename)
	}

	rl.Hash = hash

	logger.Logf("romloader", "%s: %d bytes (sha1 %s)", rl.ShortName(), len(rl.Data), rl.Hash)

	return nil
}
