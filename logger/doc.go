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

// Package logger is the central log for the application. There is only one
// log and it is accessed through the package level functions.
//
// Entries are made up of a tag and a detail string. The tag is normally the
// name of the package making the entry. Consecutive entries with the same tag
// and detail are coalesced and shown with a repeat count, which means that a
// problem that occurs every frame does not flood the log:
//
//	batcher: capacity exceeded: vertices (repeat x60)
//
// Every entry is made with a Permission. Permission is an interface and so
// the environment making the request can decide at run time whether logging
// is appropriate. logger.Allow is always allowed.
package logger
