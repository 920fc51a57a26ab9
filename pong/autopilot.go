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

// the autopilot will not move the paddle if the ball is this close to the
// centre of the paddle
const autopilotDeadZone = PaddleHeight / 4

// Autopilot controls a paddle by pressing keys on its behalf.
type Autopilot struct {
	paddle *Paddle
	keys   *userinput.State
}

// NewAutopilot is the preferred method of initialisation for the Autopilot
// type.
func NewAutopilot(paddle *Paddle, keys *userinput.State) *Autopilot {
	return &Autopilot{
		paddle: paddle,
		keys:   keys,
	}
}

// Drive sets the paddle's keys so that the paddle moves towards the ball.
func (ap *Autopilot) Drive(ball *Ball) {
	d := ball.Rect.Centre().Y - ap.paddle.Rect.Centre().Y
	ap.keys.Set(ap.paddle.KeyUp, d > autopilotDeadZone)
	ap.keys.Set(ap.paddle.KeyDown, d < -autopilotDeadZone)
}
