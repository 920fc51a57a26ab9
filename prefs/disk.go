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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherpong/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the game is running ***"

// separates key and value on each line of the preferences file.
const separator = " :: "

// sentinal errors.
const (
	ErrDuplicateKey = "prefs: key already registered (%s)"
	ErrInvalidKey   = "prefs: invalid key (%s)"
	ErrLoad         = "prefs: load: %v"
	ErrSave         = "prefs: save: %v"
)

// Disk associates preference values with keys and reads and writes them to a
// file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(ErrLoad, "no path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add registers a preference value with the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, separator) || strings.ContainsAny(key, "\n") {
		return curated.Errorf(ErrInvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(ErrDuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all registered values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the preferences file into a map of raw strings. a missing file is
// not an error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	raw := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return raw, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the warning
	if !scanner.Scan() {
		return raw, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		raw[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return raw, scanner.Err()
}

// Save the current values to disk. Entries in the file that are not
// registered with this instance are kept.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		return curated.Errorf(ErrSave, err)
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(ErrSave, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, raw[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(ErrSave, err)
	}

	return nil
}

// Load values from disk. Values not present in the file are left as they
// are. If saveOnMissing is true and the file does not exist then the current
// values are written to a new file.
//
// Command line overrides are applied after the file has been read.
func (dsk *Disk) Load(saveOnMissing bool) error {
	if _, err := os.Stat(dsk.path); errors.Is(err, fs.ErrNotExist) && saveOnMissing {
		if err := dsk.Save(); err != nil {
			return err
		}
	}

	raw, err := dsk.read()
	if err != nil {
		return curated.Errorf(ErrLoad, err)
	}

	for k, p := range dsk.entries {
		if v, ok := raw[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ErrLoad, err)
			}
		}
		if ok, v := commandLineValue(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(ErrLoad, err)
			}
		}
	}

	return nil
}
