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

// Package paths prepares paths to gopherpong resources.
//
// ResourcePath() returns a path in the resource directory, creating any
// missing directories along the way:
//
//	pth, err := paths.ResourcePath("dumps", "state.dot")
//
// If a directory called ".gopherpong" exists in the current directory then
// that is used as the resource directory. Otherwise the resource directory is
// "gopherpong" in the directory returned by os.UserConfigDir(). On a modern
// Linux system the example above would return:
//
//	/home/user/.config/gopherpong/dumps/state.dot
package paths
