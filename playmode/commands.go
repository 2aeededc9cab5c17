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
	"github.com/jetsetilly/gopherboy/emulation"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/paths"
)

// handlePendingCommand applies the pending command. These commands can't be
// applied from the VBlank callback because the engine is mid-step at that
// point. Returns true if the emulation must be restarted.
//
// The command is taken before it is handled so a handler that fails never
// leaves the command pending.
func (pm *Playmode) handlePendingCommand() bool {
	cmd, param := pm.session.TakeCommand()

	switch cmd {
	case emulation.CommandNone:
		return false

	case emulation.CommandSaveState:
		pth := paths.SnapshotPath(pm.session.Filename, param)
		_, _ = pm.capture.Wrap(func() error {
			return pm.eng.SaveState(pth)
		}, true, false)
		return false

	case emulation.CommandLoadState:
		pth := paths.SnapshotPath(pm.session.Filename, param)
		_, _ = pm.capture.Wrap(func() error {
			return pm.eng.LoadState(pth)
		}, true, false)
		return false

	case emulation.CommandReset:
		pm.eng.Reset()
		return false

	case emulation.CommandBreak:
		if !pm.eng.DebuggerIsStopped() {
			pm.eng.DebuggerBreak()
		}
		return false

	case emulation.CommandToggleDebugger:
		if pm.eng.DebuggerIsStopped() {
			pm.eng.DebuggerContinue()
		} else {
			pm.eng.DebuggerBreak()
		}
		return false

	case emulation.CommandToggleModel:
		pm.saveBattery()
		pm.session.DMG = !pm.session.DMG
		return true

	case emulation.CommandNewFile:
		pm.saveBattery()
		return true
	}

	logger.Logf(logger.Allow, "playmode", "unhandled command: %s", cmd)
	return false
}

// saveBattery of the current program before the emulation is restarted.
func (pm *Playmode) saveBattery() {
	if pm.session.BatteryPath == "" {
		return
	}
	if err := pm.eng.SaveBattery(pm.session.BatteryPath); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}
