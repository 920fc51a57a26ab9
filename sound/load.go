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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
)

// sentinal errors.
const (
	ErrLoad        = "sound: load: %v"
	ErrUnsupported = "sound: unsupported file type (%s)"
)

// Load a WAV or MP3 file. The returned buffer is mono 16 bit PCM at
// SampleRate.
func Load(filename string) (*audio.IntBuffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ErrLoad, err)
	}
	defer f.Close()

	var data []int
	var rate int

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		data, rate, err = decodeWAV(f)
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(ErrUnsupported, ext)
	}
	if err != nil {
		return nil, curated.Errorf(ErrLoad, err)
	}

	logger.Logf(logger.Allow, "sound", "loaded %s (%d samples at %dHz)", filename, len(data), rate)

	buf := newBuffer(0)
	buf.Data = resample(data, rate, SampleRate)

	return buf, nil
}

// decode the first channel of a WAV file, scaled to 16 bits.
func decodeWAV(r io.ReadSeeker) ([]int, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, 0, errors.New("wav file has no channels")
	}

	shift := int(dec.BitDepth) - bitDepth

	data := make([]int, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]

		// 8 bit wav data is unsigned
		if dec.BitDepth == 8 {
			v -= 128
		}

		if shift > 0 {
			v >>= shift
		} else if shift < 0 {
			v <<= -shift
		}
		data = append(data, v)
	}

	return data, int(dec.SampleRate), nil
}

// decode the left channel of an MP3 file. the decoder always produces 16 bit
// little endian stereo regardless of the source.
func decodeMP3(r io.Reader) ([]int, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, err
	}

	var data []int

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	return data, dec.SampleRate(), nil
}

// nearest neighbour resampling. good enough for short sound effects.
func resample(data []int, from int, to int) []int {
	if from == to || from <= 0 || len(data) == 0 {
		return data
	}

	n := int(int64(len(data)) * int64(to) / int64(from))
	out := make([]int, n)
	for i := range out {
		out[i] = data[int64(i)*int64(from)/int64(to)]
	}

	return out
}
