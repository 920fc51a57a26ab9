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

package sound

import (
	"math"
	"time"

	"github.com/go-audio/audio"
)

// SampleRate of all effects and of the audio sent to an Output.
const SampleRate = 44100

const bitDepth = 16

// amplitude of a synthesised tone at full volume. less than the maximum to
// leave headroom.
const toneAmplitude = math.MaxInt16 / 2

func newBuffer(length int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           make([]int, length),
		SourceBitDepth: bitDepth,
	}
}

// Tone creates a square wave of the given frequency and duration.
func Tone(freq float64, duration time.Duration) *audio.IntBuffer {
	n := int(duration.Seconds() * SampleRate)
	buf := newBuffer(n)

	if freq <= 0 {
		return buf
	}

	period := SampleRate / freq
	for i := range buf.Data {
		if math.Mod(float64(i), period) < period/2 {
			buf.Data[i] = toneAmplitude
		} else {
			buf.Data[i] = -toneAmplitude
		}
	}

	// short linear fade at the end of the tone. prevents a click when the
	// output returns to silence
	fade := min(n, SampleRate/200)
	for i := 0; i < fade; i++ {
		j := n - fade + i
		buf.Data[j] = buf.Data[j] * (fade - i) / fade
	}

	return buf
}

// the tones played when no sample file has been specified. frequencies are
// those of the original arcade game.
var defaultTones = map[string]struct {
	freq     float64
	duration time.Duration
}{
	"serve":  {freq: 880, duration: 60 * time.Millisecond},
	"wall":   {freq: 226, duration: 16 * time.Millisecond},
	"paddle": {freq: 459, duration: 96 * time.Millisecond},
	"score":  {freq: 490, duration: 257 * time.Millisecond},
}
