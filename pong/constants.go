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

// paddle dimensions and placement
const (
	PaddleWidth  = 16
	PaddleHeight = 128

	// distance between the edge of the window and the paddle
	PaddleMargin = 16

	// distance moved per frame when a key is held
	PaddleSpeed = 8
)

// ball dimensions and speed
const (
	BallSize = 16

	// distance moved per frame on each axis
	BallSpeed = 6
)

// keys that control the state of the game
const (
	LaunchKey  = userinput.KeySpace
	RestartKey = userinput.KeyReturn
)

// net drawn down the centre of the court
const (
	netWidth  = 4
	netDash   = 16
	netPeriod = 32
)
