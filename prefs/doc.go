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

// Package prefs stores user preferences and persists them to disk.
//
// Preference values are one of the types Bool, Int, Float or String. Each
// value is registered with a Disk instance under a key. Keys are dotted
// strings, grouped by the package that owns the value:
//
//	var volume prefs.Float
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("sound.volume", &volume)
//	err = dsk.Load(true)
//
// The preferences file is a plain text file with one entry per line, in the
// form:
//
//	key :: value
//
// The first line of the file is always WarningBoilerPlate. Entries in the
// file that are not registered with a Disk instance are preserved when that
// instance saves, so more than one Disk can share the same file.
//
// Values can be overridden from the command line with SetCommandLine(). An
// overridden value replaces whatever was loaded from disk the first time the
// key is loaded.
package prefs
