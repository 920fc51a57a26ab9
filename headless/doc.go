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

// Package headless runs the game without a window. Both paddles can be
// controlled by an autopilot and the ball is served and the game restarted
// automatically. Geometry is flushed to a device that only counts what it
// receives.
//
// The package is useful for checking the batching statistics of the game and
// for profiling the game logic without the overhead of SDL and OpenGL.
package headless
