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

package userinput

// Event is the interface for all user input events.
type Event interface{}

// EventQuit is sent when the window is closed.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Repeat events
// should not be sent.
type EventKeyboard struct {
	Key  KeyCode
	Down bool
}

// EventResize is sent when the window changes size.
type EventResize struct {
	Width  int
	Height int
}
