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

// Package sdlaudio sends audio to the SDL audio device. SDL must have been
// initialised with the audio subsystem before calling NewAudio().
package sdlaudio

import (
	"encoding/binary"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
)

// ErrAudio is returned when the audio device cannot be opened or written to.
const ErrAudio = "sdlaudio: %v"

// the number of samples in the SDL audio buffer. small values reduce the lag
// between a game event and the sound. the precise value is not critical.
const bufferLength = 512

// the most audio that can be queued before the queue is cleared. sound
// effects arriving faster than they can be played would otherwise fall
// further and further behind the game.
const maxQueued = 250 * time.Millisecond

// Audio implements the sound.Output interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// queue limit in bytes
	limit uint32

	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Audio is mono signed 16 bit at the given sample rate.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	request := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error

	// no changes to the spec are allowed. SDL converts to the device format
	// if necessary
	aud.id, err = sdl.OpenAudioDevice("", false, request, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(ErrAudio, err)
	}

	aud.limit = uint32(maxQueued.Seconds()*float64(aud.spec.Freq)) * 2

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// QueueAudio implements the sound.Output interface.
func (aud *Audio) QueueAudio(samples []int16) error {
	if sdl.GetQueuedAudioSize(aud.id) > aud.limit {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf(ErrAudio, err)
	}

	return nil
}

// Mute stops or restarts playback. Audio queued while muted is discarded.
func (aud *Audio) Mute(muted bool) {
	if muted {
		sdl.ClearQueuedAudio(aud.id)
	}
	sdl.PauseAudioDevice(aud.id, muted)
}

// Destroy closes the audio device.
func (aud *Audio) Destroy() {
	sdl.CloseAudioDevice(aud.id)
}
