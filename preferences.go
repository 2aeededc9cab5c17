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

package main

import (
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
)

// names of the audio backends accepted by the -audio flag.
const (
	audioSDL = "sdl"
	audioOto = "oto"
)

// preferences that can be changed on the command line. the value given on
// the command line is remembered for the next time.
type preferences struct {
	dsk *prefs.Disk

	audio  prefs.String
	fpsCap prefs.Bool
}

// newPreferences always returns usable preferences. if the preferences file
// can't be used the defaults are returned alongside the error.
func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return p, err
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return p, err
	}

	err = dsk.Add("gopherboy.audio", &p.audio)
	if err != nil {
		return p, err
	}
	err = dsk.Add("gopherboy.fpscap", &p.fpsCap)
	if err != nil {
		return p, err
	}

	err = dsk.Load()
	if err != nil {
		p.setDefaults()
		return p, err
	}

	p.dsk = dsk

	return p, nil
}

func (p *preferences) setDefaults() {
	_ = p.audio.Set(audioSDL)
	_ = p.fpsCap.Set(true)
}

// save the preferences. does nothing if the preferences file could not be
// opened.
func (p *preferences) save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
