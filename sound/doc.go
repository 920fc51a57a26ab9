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

// Package sound plays short sound effects in response to game events.
//
// Each pong.Event has an effect. By default the effects are synthesised
// square wave tones, in the manner of the original arcade machine. Any effect
// can be replaced by a WAV or MP3 file by setting the corresponding
// preference (for example, sound.sample.paddle) to the path of the file.
//
// Effects are stored as mono 16 bit PCM at SampleRate. Samples loaded from
// disk are mixed down to one channel and resampled as required.
//
// The Sound type implements the pong.Listener interface. Audio is written to
// any number of Output implementations, for example the SDL audio device and
// a WAV file recorder.
package sound
