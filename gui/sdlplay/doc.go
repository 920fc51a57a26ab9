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

// Package sdlplay is the playable window of the game. It opens an SDL window
// with an OpenGL 3.2 core context and provides:
//
//	Platform: the window, the GL context and event polling
//	Device: the batcher.Device implementation that draws the game
//	HUD: the scores and prompts, drawn with Dear ImGui
//
// All functions in this package must be called from the main thread. The
// Platform type locks the calling goroutine to the OS thread when it is
// created.
package sdlplay
