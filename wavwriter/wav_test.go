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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/test"
	"github.com/jetsetilly/gopherpong/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "capture.wav")

	aw, err := wavwriter.New(fn, 22050)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, aw.QueueAudio([]int16{0, 100, -100, 32767}))
	test.ExpectSuccess(t, aw.QueueAudio([]int16{-32768}))
	test.ExpectEquality(t, aw.Len(), 5)
	test.ExpectSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.ExpectSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.ExpectSlice(t, buf.Data, []int{0, 100, -100, 32767, -32768})
}

func TestNew(t *testing.T) {
	_, err := wavwriter.New("", 22050)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.ErrWrite))

	_, err = wavwriter.New("foo.wav", 0)
	test.ExpectSuccess(t, curated.Is(err, wavwriter.ErrWrite))
}
