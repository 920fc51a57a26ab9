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
	"fmt"

	"github.com/jetsetilly/gopherpong/paths"
	"github.com/jetsetilly/gopherpong/prefs"
)

// Preferences for the sound package.
type Preferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool
	Volume  prefs.Float

	// paths to sample files that replace the synthesised tones. an empty
	// string means the tone is used
	Samples map[string]*prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences registers the sound preferences with the preferences file
// in the resource directory and loads their values.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{
		Samples: make(map[string]*prefs.String),
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Volume.SetRange(0.0, 1.0)
	p.SetDefaults()

	err = p.dsk.Add("sound.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sound.volume", &p.Volume)
	if err != nil {
		return nil, err
	}

	for name := range defaultTones {
		s := &prefs.String{}
		p.Samples[name] = s
		err = p.dsk.Add(fmt.Sprintf("sound.sample.%s", name), s)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all sound preferences to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Enabled.Set(true)
	_ = p.Volume.Set(0.5)
	for _, s := range p.Samples {
		_ = s.Reset()
	}
}

// Save current sound preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
