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

// Package userinput records the state of the keyboard between frames. It
// knows nothing about the GUI implementation that the key events come from.
// The GUI translates its own key codes into the KeyCode type before passing
// them on.
//
// The State type keeps the key state for the current frame and a snapshot of
// the key state for the previous frame. Comparing the two allows the press
// and release of a key to be detected for exactly one frame. The snapshot
// must be taken with EndFrame() once per frame, after the frame's input has
// been consumed and before the next frame's events are applied.
package userinput
