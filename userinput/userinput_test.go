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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopherpong/test"
	"github.com/jetsetilly/gopherpong/userinput"
)

func TestEdges(t *testing.T) {
	st := userinput.NewState()

	test.ExpectSuccess(t, st.HandleEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true}))
	test.ExpectSuccess(t, st.Held(userinput.KeySpace))
	test.ExpectSuccess(t, st.Pressed(userinput.KeySpace))
	test.ExpectFailure(t, st.Released(userinput.KeySpace))

	// the press is only seen for one frame
	st.EndFrame()
	test.ExpectSuccess(t, st.Held(userinput.KeySpace))
	test.ExpectFailure(t, st.Pressed(userinput.KeySpace))

	st.HandleEvent(userinput.EventKeyboard{Key: userinput.KeySpace, Down: false})
	test.ExpectFailure(t, st.Held(userinput.KeySpace))
	test.ExpectSuccess(t, st.Released(userinput.KeySpace))

	// and so is the release
	st.EndFrame()
	test.ExpectFailure(t, st.Released(userinput.KeySpace))
}

func TestPressAndReleaseInOneFrame(t *testing.T) {
	st := userinput.NewState()

	// a key that goes down and up between snapshots is not seen at all
	st.HandleEvent(userinput.EventKeyboard{Key: userinput.KeyReturn, Down: true})
	st.HandleEvent(userinput.EventKeyboard{Key: userinput.KeyReturn, Down: false})
	test.ExpectFailure(t, st.Pressed(userinput.KeyReturn))
	test.ExpectFailure(t, st.Released(userinput.KeyReturn))
}

func TestAxis(t *testing.T) {
	st := userinput.NewState()
	test.ExpectEquality(t, st.Axis(userinput.KeyW, userinput.KeyS), 0)

	st.Set(userinput.KeyW, true)
	test.ExpectEquality(t, st.Axis(userinput.KeyW, userinput.KeyS), 1)

	st.Set(userinput.KeyS, true)
	test.ExpectEquality(t, st.Axis(userinput.KeyW, userinput.KeyS), 0)

	st.Set(userinput.KeyW, false)
	test.ExpectEquality(t, st.Axis(userinput.KeyW, userinput.KeyS), -1)
}

func TestNonKeyboardEvents(t *testing.T) {
	st := userinput.NewState()
	test.ExpectFailure(t, st.HandleEvent(userinput.EventQuit{}))
	test.ExpectFailure(t, st.HandleEvent(userinput.EventResize{Width: 10, Height: 10}))
	test.ExpectFailure(t, st.HandleEvent(userinput.EventKeyboard{Key: userinput.KeyNone, Down: true}))
}
