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

package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/esp2elf/curated"
)

// Sentinal errors.
const (
	PathError      = "archivefs: %v"
	NotAFile       = "archivefs: %s is not a file"
	AmbiguousEntry = "archivefs: %s contains %d files"
)

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, the in-zip path is split into the
	// directory and the file. the directory uses forward slashes regardless of
	// the host system
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Components of the path that are zip archives are entered as
// though they were directories.
func (afs *Path) Set(p string) error {
	afs.Close()

	p = filepath.Clean(p)
	lst := strings.Split(p, string(filepath.Separator))

	// strings.Split() removes a leading separator. put it back so that
	// filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	p = ""

	for _, l := range lst {
		p = filepath.Join(p, l)

		if afs.zf != nil {
			if afs.inZipFile != "" {
				name := path.Join(afs.inZipPath, afs.inZipFile)
				afs.Close()
				return curated.Errorf(NotAFile, name)
			}

			zp := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(zp)
			if err != nil {
				afs.Close()
				return curated.Errorf(PathError, err)
			}
			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf(PathError, err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = zp
			} else {
				afs.inZipFile = l
			}
			continue
		}

		if afs.current != "" {
			afs.Close()
			return curated.Errorf(NotAFile, p)
		}

		fi, err := os.Stat(p)
		if err != nil {
			afs.Close()
			return curated.Errorf(PathError, err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(p)
		if err == nil {
			// the root of an archive is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf(PathError, err)
		}

		// a regular file. no further path components are allowed
		afs.current = p
	}

	afs.current = filepath.Clean(p)

	return nil
}

// files returns the regular files in the current archive directory.
func (afs Path) files() []*zip.File {
	var files []*zip.File
	for _, f := range afs.zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		d := path.Dir(f.Name)
		if d == "." {
			d = ""
		}
		if d == afs.inZipPath {
			files = append(files, f)
		}
	}
	return files
}

// Read returns the contents of the file previously set by the Set() function.
func (afs Path) Read() ([]byte, error) {
	if afs.zf != nil {
		name := path.Join(afs.inZipPath, afs.inZipFile)

		// a directory in an archive can be read if it has exactly one file
		if afs.inZipFile == "" {
			files := afs.files()
			if len(files) != 1 {
				return nil, curated.Errorf(AmbiguousEntry, afs.current, len(files))
			}
			name = files[0].Name
		}

		f, err := afs.zf.Open(name)
		if err != nil {
			return nil, curated.Errorf(PathError, err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, curated.Errorf(PathError, err)
		}
		return b, nil
	}

	if afs.isDir {
		return nil, curated.Errorf(NotAFile, afs.current)
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, curated.Errorf(PathError, err)
	}
	return b, nil
}
