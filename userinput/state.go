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

// State of the keyboard for the current and previous frame.
type State struct {
	current  map[KeyCode]bool
	previous map[KeyCode]bool
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{
		current:  make(map[KeyCode]bool),
		previous: make(map[KeyCode]bool),
	}
}

// HandleEvent updates the current key state. Events that are not keyboard
// events are ignored and false is returned.
func (st *State) HandleEvent(ev Event) bool {
	if kb, ok := ev.(EventKeyboard); ok {
		if kb.Key == KeyNone {
			return false
		}
		st.current[kb.Key] = kb.Down
		return true
	}
	return false
}

// Set the state of a key directly.
func (st *State) Set(key KeyCode, down bool) {
	st.current[key] = down
}

// EndFrame takes a snapshot of the current key state. The snapshot is used
// by Pressed() and Released() during the next frame.
func (st *State) EndFrame() {
	clear(st.previous)
	for k, v := range st.current {
		st.previous[k] = v
	}
}

// Held returns true if the key is currently down.
func (st *State) Held(key KeyCode) bool {
	return st.current[key]
}

// Pressed returns true if the key went down since the last call to
// EndFrame().
func (st *State) Pressed(key KeyCode) bool {
	return st.current[key] && !st.previous[key]
}

// Released returns true if the key went up since the last call to
// EndFrame().
func (st *State) Released(key KeyCode) bool {
	return !st.current[key] && st.previous[key]
}

// Axis returns 1 if only the positive key is held, -1 if only the negative
// key is held and 0 otherwise.
func (st *State) Axis(positive KeyCode, negative KeyCode) int {
	var v int
	if st.current[positive] {
		v++
	}
	if st.current[negative] {
		v--
	}
	return v
}
