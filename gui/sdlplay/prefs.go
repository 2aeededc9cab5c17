// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"github.com/jetsetilly/gopherboy/gui/viewport"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Preferences for the play window.
type Preferences struct {
	dsk *prefs.Disk

	Scaling prefs.Int
}

// newPreferences always returns a usable Preferences instance. If the
// preferences file cannot be used the error is returned alongside the default
// values and nothing will be saved.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return p, err
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return p, err
	}

	err = dsk.Add("sdlplay.scaling", &p.Scaling)
	if err != nil {
		return p, err
	}

	err = dsk.Load()
	if err != nil {
		p.SetDefaults()
		return p, err
	}

	p.dsk = dsk

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scaling.Set(int(viewport.ModeKeepAspectRatio))
}

func (p *Preferences) scalingMode() viewport.Mode {
	m := viewport.Mode(p.Scaling.Get().(int))
	if !m.Valid() {
		return viewport.ModeKeepAspectRatio
	}
	return m
}

func (p *Preferences) save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
