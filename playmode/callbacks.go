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

package playmode

import (
	"github.com/jetsetilly/gopherboy/logger"
)

// VBlank implements the engine.Callbacks interface. The frame is presented,
// the recorder is flushed and input events are handled. Commands set by the
// input handler are not acted upon here.
func (pm *Playmode) VBlank() {
	if err := pm.display.Present(pm.pixels); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	if pm.recorder != nil {
		if err := pm.recorder.Flush(); err != nil {
			logger.Log(logger.Allow, "playmode", err)
		}
	}

	pm.input.Poll()
}

// RGBEncode implements the engine.Callbacks interface.
func (pm *Playmode) RGBEncode(r, g, b uint8) uint32 {
	return pm.display.MapRGB(r, g, b)
}
