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
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherpong/curated"
)

// ErrCommandLine is returned by SetCommandLine() when an entry cannot be
// parsed.
const ErrCommandLine = "prefs: command line: %s"

var commandLine struct {
	crit    sync.Mutex
	entries map[string]string
}

// SetCommandLine replaces any existing command line overrides with the
// entries in the string. The string is a list of "key::value" entries
// separated by semicolons:
//
//	sound.volume::0.5; sdlplay.vsync::false
//
// Each override is applied once, the next time the key is loaded by a Disk
// instance.
func SetCommandLine(s string) error {
	entries := make(map[string]string)

	for _, e := range strings.Split(s, ";") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		k, v, ok := strings.Cut(e, "::")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return curated.Errorf(ErrCommandLine, e)
		}
		entries[k] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.entries = entries

	return nil
}

// UnusedCommandLine returns the overrides that have not yet been applied, in
// the same format as accepted by SetCommandLine().
func UnusedCommandLine() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	keys := make([]string, 0, len(commandLine.entries))
	for k := range commandLine.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, k+"::"+commandLine.entries[k])
	}

	return strings.Join(s, "; ")
}

// commandLineValue returns the override for the key and removes it.
func commandLineValue(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	v, ok := commandLine.entries[key]
	if !ok {
		return false, nil
	}
	delete(commandLine.entries, key)

	return true, v
}
