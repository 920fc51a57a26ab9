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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherpong/userinput"
)

// scancodes are used rather than key codes so that the keys are in the same
// physical position regardless of the keyboard layout.
var scancodes = map[sdl.Scancode]userinput.KeyCode{
	sdl.SCANCODE_W:      userinput.KeyW,
	sdl.SCANCODE_S:      userinput.KeyS,
	sdl.SCANCODE_UP:     userinput.KeyUp,
	sdl.SCANCODE_DOWN:   userinput.KeyDown,
	sdl.SCANCODE_SPACE:  userinput.KeySpace,
	sdl.SCANCODE_RETURN: userinput.KeyReturn,
	sdl.SCANCODE_ESCAPE: userinput.KeyEscape,
	sdl.SCANCODE_F10:    userinput.KeyF10,
}

func translateScancode(sc sdl.Scancode) userinput.KeyCode {
	if k, ok := scancodes[sc]; ok {
		return k
	}
	return userinput.KeyNone
}
