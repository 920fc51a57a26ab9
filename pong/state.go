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

package pong

// State of the game.
type State int

// List of valid State values.
const (
	Begin State = iota
	Gameplay
	Over
)

func (s State) String() string {
	switch s {
	case Begin:
		return "begin"
	case Gameplay:
		return "gameplay"
	case Over:
		return "over"
	}
	return "unknown state"
}
