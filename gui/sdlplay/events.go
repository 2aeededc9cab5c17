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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/userinput"
)

// PollEvent implements the userinput.EventSource interface. SDL events that
// have no translation are discarded.
func (scr *SdlPlay) PollEvent() userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := scr.translate(ev); e != nil {
			return e
		}
	}
	return nil
}

// WaitEvent implements the userinput.EventSource interface.
func (scr *SdlPlay) WaitEvent() userinput.Event {
	return scr.translate(sdl.WaitEvent())
}

// Interrupt pushes an interrupt event onto the SDL event queue. It is safe to
// call from any goroutine.
func (scr *SdlPlay) Interrupt() {
	_, err := sdl.PushEvent(&sdl.UserEvent{
		Type:      scr.interruptEvent,
		Timestamp: sdl.GetTicks(),
	})
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}

func keyMod() userinput.KeyMod {
	mod := userinput.KeyModNone
	state := sdl.GetModState()
	if state&sdl.KMOD_SHIFT != 0 {
		mod |= userinput.KeyModShift
	}
	if state&sdl.KMOD_CTRL != 0 {
		mod |= userinput.KeyModCtrl
	}
	if state&sdl.KMOD_ALT != 0 {
		mod |= userinput.KeyModAlt
	}
	if state&sdl.KMOD_GUI != 0 {
		mod |= userinput.KeyModGUI
	}
	return mod
}

func (scr *SdlPlay) translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.DropEvent:
		if ev.Type == sdl.DROPFILE {
			return userinput.EventDropFile{Filename: ev.File}
		}

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return userinput.EventWindowResized{}
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Mod:    keyMod(),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.UserEvent:
		if ev.Type == scr.interruptEvent {
			return userinput.EventInterrupt{}
		}
	}

	return nil
}
