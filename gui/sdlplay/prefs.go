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

package sdlplay

import (
	"github.com/jetsetilly/gopherpong/paths"
	"github.com/jetsetilly/gopherpong/prefs"
)

// Preferences for the window and the HUD.
type Preferences struct {
	dsk *prefs.Disk

	Width    prefs.Int
	Height   prefs.Int
	VSync    prefs.Bool
	HUDStats prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p := &Preferences{}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.Width.SetRange(minWindowWidth, maxWindowSize)
	p.Height.SetRange(minWindowHeight, maxWindowSize)
	p.SetDefaults()

	err = p.dsk.Add("sdlplay.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.vsync", &p.VSync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.hudstats", &p.HUDStats)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// window size limits
const (
	minWindowWidth  = 320
	minWindowHeight = 240
	maxWindowSize   = 8192
)

// SetDefaults reverts all preferences to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Width.Set(1024)
	_ = p.Height.Set(768)
	_ = p.VSync.Set(true)
	_ = p.HUDStats.Set(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
