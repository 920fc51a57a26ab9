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

import "github.com/jetsetilly/gopherpong/userinput"

// Input is the interface to the keyboard state used by the game.
type Input interface {
	Held(key userinput.KeyCode) bool
	Released(key userinput.KeyCode) bool
	Axis(positive userinput.KeyCode, negative userinput.KeyCode) int
}

// Event is sent to every registered Listener when something happens in the
// game.
type Event int

// List of valid Event values.
const (
	EventServe Event = iota
	EventWall
	EventPaddle
	EventScore
)

func (ev Event) String() string {
	switch ev {
	case EventServe:
		return "serve"
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventScore:
		return "score"
	}
	return "unknown event"
}

// Listener implementations are notified of game events.
type Listener interface {
	GameEvent(ev Event)
}
