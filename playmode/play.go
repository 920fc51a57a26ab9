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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/gui/sdlaudio"
	"github.com/jetsetilly/gopherpong/gui/sdlplay"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/pong"
	"github.com/jetsetilly/gopherpong/random"
	"github.com/jetsetilly/gopherpong/sound"
	"github.com/jetsetilly/gopherpong/userinput"
	"github.com/jetsetilly/gopherpong/wavwriter"
)

// ErrPlay is returned by Play() for errors that stop the game from starting.
const ErrPlay = "play: %v"

// Config for Play().
type Config struct {
	Title string

	// seed for the direction of the ball. zero means a seed taken from the
	// current time
	Seed int64

	// the audio device is paused but effects are still sent to the WAV file
	Mute bool

	// all audio is also written to the WAV file if the filename is not empty
	WavFile string

	// save preferences when Play() returns
	SavePrefs bool
}

// Play the game in a new window.
func Play(cfg Config) error {
	prf, err := sdlplay.NewPreferences()
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}

	plt, err := sdlplay.NewPlatform(cfg.Title,
		prf.Width.Get().(int), prf.Height.Get().(int), prf.VSync.Get().(bool))
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}
	defer plt.Destroy()

	dev, err := sdlplay.NewDevice(sdlplay.DefaultShaderConfig())
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}
	defer dev.Destroy()

	hud, err := sdlplay.NewHUD(plt)
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}
	defer hud.Destroy()

	w, h := plt.WindowSize()
	g, err := pong.NewGame(geometry.Point{X: int(w), Y: int(h)}, random.NewRandom(cfg.Seed))
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}

	sndPrefs, closeSound, err := attachSound(g, cfg)
	if err != nil {
		return curated.Errorf(ErrPlay, err)
	}
	defer closeSound()

	buf := batcher.NewBuffer(batcher.DefaultCapacity, batcher.DefaultCapacity)
	defer buf.Destroy()

	keys := userinput.NewState()
	meter := newFPSMeter()

	// make sure deferred functions are called when ctrl-c is pressed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	running := true
	for running {
		select {
		case <-intChan:
			running = false
			continue
		default:
		}

		for _, ev := range plt.Poll() {
			switch ev := ev.(type) {
			case userinput.EventQuit:
				running = false
			case userinput.EventResize:
				g.Resize(geometry.Point{X: ev.Width, Y: ev.Height})
			default:
				keys.HandleEvent(ev)
			}
		}
		if !running || !handleKeys(keys, g) {
			break
		}

		err = g.Update(keys)
		if err != nil {
			return curated.Errorf(ErrPlay, err)
		}

		fbWidth, fbHeight := plt.FramebufferSize()
		dev.BeginFrame(g.Bound, fbWidth, fbHeight)

		// geometry that doesn't fit in the buffer is dropped for this frame
		err = g.Draw(buf)
		if err != nil {
			if !curated.Is(err, batcher.ErrCapacity) {
				return curated.Errorf(ErrPlay, err)
			}
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}

		err = buf.Flush(dev)
		if err != nil {
			return curated.Errorf(ErrPlay, err)
		}

		hud.Draw(sdlplay.HUDInfo{
			LeftScore:  g.Left.Score,
			RightScore: g.Right.Score,
			Prompt:     prompt(g.State),
			Stats:      meter.stats(buf.LastFlush()),
			ShowStats:  prf.HUDStats.Get().(bool),
		})

		plt.Present()
		meter.tick(plt.Delta())
		keys.EndFrame()
	}

	if cfg.SavePrefs {
		w, h := plt.WindowSize()
		_ = prf.Width.Set(int(w))
		_ = prf.Height.Set(int(h))
		if err := prf.Save(); err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}
		if err := sndPrefs.Save(); err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}
	}

	return nil
}

// attachSound creates the sound effects and their outputs. Failure to open
// the audio device or the WAV file is not fatal. The returned function closes
// the outputs.
func attachSound(g *pong.Game, cfg Config) (*sound.Preferences, func(), error) {
	sndPrefs, err := sound.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	snd, err := sound.NewSound(sndPrefs)
	if err != nil {
		return nil, nil, err
	}

	var closers []func()

	aud, err := sdlaudio.NewAudio(sound.SampleRate)
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "%v: continuing without audio", err)
	} else {
		aud.Mute(cfg.Mute)
		snd.AddOutput(aud)
		closers = append(closers, aud.Destroy)
	}

	if cfg.WavFile != "" {
		wav, err := wavwriter.New(cfg.WavFile, sound.SampleRate)
		if err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		} else {
			snd.AddOutput(wav)
			closers = append(closers, func() {
				n := wav.Len()
				if err := wav.Close(); err != nil {
					logger.Logf(logger.Allow, "playmode", "%v", err)
					return
				}
				logger.Logf(logger.Allow, "playmode", "%d samples written to %s", n, cfg.WavFile)
			})
		}
	}

	g.AddListener(snd)

	return sndPrefs, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}
