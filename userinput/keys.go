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

// KeyCode identifies a key on the keyboard independently of the GUI
// implementation.
type KeyCode int

// List of valid KeyCode values. Only the keys that are used by the game are
// listed.
const (
	KeyNone KeyCode = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeySpace
	KeyReturn
	KeyEscape
	KeyF10
)

func (k KeyCode) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyReturn:
		return "Return"
	case KeyEscape:
		return "Escape"
	case KeyF10:
		return "F10"
	}
	return "None"
}
