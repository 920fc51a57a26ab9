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

	"github.com/go-audio/audio"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/pong"
)

// Output receives mono 16 bit PCM audio at SampleRate. The samples slice is
// reused after QueueAudio() returns and must not be retained.
type Output interface {
	QueueAudio(samples []int16) error
}

// ErrNilArg is returned when a nil argument is passed to a function that
// requires a value.
const ErrNilArg = "sound: nil argument: %s"

// Sound plays an effect for every game event. It implements the pong.Listener
// interface.
type Sound struct {
	prefs   *Preferences
	effects map[pong.Event]*audio.IntBuffer
	outputs []Output

	// reused for every effect
	scratch []int16
}

// events that have an effect. the name of the event is used in the
// preference key for the sample file.
var events = []pong.Event{
	pong.EventServe,
	pong.EventWall,
	pong.EventPaddle,
	pong.EventScore,
}

// NewSound is the preferred method of initialisation for the Sound type.
//
// A sample file that cannot be loaded is logged and the synthesised tone is
// used in its place.
func NewSound(p *Preferences) (*Sound, error) {
	if p == nil {
		return nil, curated.Errorf(ErrNilArg, "preferences")
	}

	snd := &Sound{
		prefs:   p,
		effects: make(map[pong.Event]*audio.IntBuffer),
	}

	for _, ev := range events {
		name := ev.String()
		tone := defaultTones[name]
		snd.effects[ev] = Tone(tone.freq, tone.duration)

		s, ok := p.Samples[name]
		if !ok || s.String() == "" {
			continue
		}

		buf, err := Load(s.String())
		if err != nil {
			logger.Logf(logger.Allow, "sound", "%v: using tone for %s", err, name)
			continue
		}
		snd.effects[ev] = buf
	}

	return snd, nil
}

// AddOutput adds a destination for the audio.
func (snd *Sound) AddOutput(out Output) {
	if out == nil {
		logger.Log(logger.Allow, "sound", "nil output ignored")
		return
	}
	snd.outputs = append(snd.outputs, out)
}

// GameEvent implements the pong.Listener interface.
func (snd *Sound) GameEvent(ev pong.Event) {
	if !snd.prefs.Enabled.Get().(bool) {
		return
	}

	buf, ok := snd.effects[ev]
	if !ok {
		return
	}

	vol := snd.prefs.Volume.Get().(float64)

	snd.scratch = snd.scratch[:0]
	for _, v := range buf.Data {
		s := math.Round(float64(v) * vol)
		s = math.Max(math.MinInt16, math.Min(math.MaxInt16, s))
		snd.scratch = append(snd.scratch, int16(s))
	}

	for _, out := range snd.outputs {
		if err := out.QueueAudio(snd.scratch); err != nil {
			logger.Logf(logger.Allow, "sound", "%v", err)
		}
	}
}
