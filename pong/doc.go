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

// Package pong implements the rules of the game. It has no knowledge of the
// window, the graphics device or the audio device.
//
// A Game is advanced one frame at a time with Update() and drawn with Draw().
// Update() reads the keyboard through the Input interface and Draw() pushes
// rectangles into a batcher.Buffer. Anything that is interested in what is
// happening in the game, sound effects for example, can register a Listener.
//
// The game is always in one of three states:
//
//	Begin     the ball is waiting in the centre of the court
//	Gameplay  the ball is in play
//	Over      the ball has left the court and a point has been scored
//
// The launch key moves the game from Begin to Gameplay and the restart key
// moves the game from Over to Begin. In both cases the transition happens
// when the key is released. The paddles can be moved in every state.
package pong
