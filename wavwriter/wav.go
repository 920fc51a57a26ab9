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

// Package wavwriter records audio to disk as a WAV file. Audio data is held
// in memory in its entirety and written to disk when Close() is called.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
)

// ErrWrite is returned when the WAV file cannot be written.
const ErrWrite = "wavwriter: %v"

// the audio format for wav files. value of one means PCM.
const pcmFormat = 1

// WavWriter implements the sound.Output interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(ErrWrite, "no filename")
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf(ErrWrite, "invalid sample rate")
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
	}, nil
}

// QueueAudio implements the sound.Output interface.
func (aw *WavWriter) QueueAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Len returns the number of samples recorded so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the recorded audio to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(ErrWrite, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(ErrWrite, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 16, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ErrWrite, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", len(aw.buffer), aw.filename)

	return nil
}
