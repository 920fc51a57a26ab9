// This file is part of Gopherpong.
//
// Gopherpong is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpong is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpong.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherpong/curated"
)

const (
	localResourceDir  = ".gopherpong"
	configResourceDir = "gopherpong"
)

// ErrPath is returned when a resource path cannot be prepared.
const ErrPath = "paths: %v"

// ResourcePath returns the path to the file in the subdirectory of the
// resource directory. Either subPth or file can be empty. Directories are
// created as required but the file itself is not.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf(ErrPath, err)
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf(ErrPath, err)
	}

	return filepath.Join(dir, file), nil
}

func basePath() (string, error) {
	if _, err := os.Stat(localResourceDir); err == nil {
		return localResourceDir, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourceDir), nil
}
