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
)

// ShowError implements the diagnostics.Popup interface. It blocks until the
// user dismisses the message.
func (scr *SdlPlay) ShowError(title string, message string) {
	err := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, message, scr.window)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}

// the background colour of the window while waiting for a file
var promptColour = [3]uint8{0x88, 0xc0, 0x70}

// WaitForFile shows the window and waits for the user to drop a file onto it.
// Returns false if the user closed the window or the process was interrupted
// before a file was dropped.
func (scr *SdlPlay) WaitForFile() (string, bool) {
	scr.SetTitle("drop a ROM file onto this window")
	scr.Show()
	defer scr.SetTitle("")

	for {
		scr.drawPrompt()

		switch ev := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			return "", false
		case *sdl.DropEvent:
			if ev.Type == sdl.DROPFILE {
				return ev.File, true
			}
		case *sdl.UserEvent:
			if ev.Type == scr.interruptEvent {
				return "", false
			}
		case *sdl.WindowEvent:
			scr.UpdateViewport()
		}
	}
}

func (scr *SdlPlay) drawPrompt() {
	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err == nil {
		err = scr.renderer.Clear()
	}
	if err == nil {
		err = scr.renderer.SetDrawColor(promptColour[0], promptColour[1], promptColour[2], 255)
	}
	if err == nil {
		err = scr.renderer.FillRect(&scr.viewport)
	}
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}
	scr.renderer.Present()
}
