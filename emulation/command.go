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

// Package emulation holds the state of a play session that is shared between
// the input dispatcher and the run loop: the program being played, the
// hardware model, the pause flag and the single pending command.
//
// Commands are produced by the input dispatcher and consumed by the run loop
// between engine steps. There is at most one pending command. Setting a
// command while another is pending replaces it.
package emulation

import "fmt"

// Command is an out-of-band request to the run loop.
type Command int

// List of valid Command values.
const (
	CommandNone Command = iota

	// a new program has been selected. the Session Filename field has already
	// been replaced
	CommandNewFile

	// reset the emulated machine, keeping the loaded program
	CommandReset

	// switch between the classic and colour models. requires a restart
	CommandToggleModel

	// save or load a snapshot. the slot is the command parameter
	CommandSaveState
	CommandLoadState

	// stop the engine in its debugger. does nothing if already stopped
	CommandBreak

	// toggle the engine debugger between stopped and running
	CommandToggleDebugger
)

func (cmd Command) String() string {
	switch cmd {
	case CommandNone:
		return "none"
	case CommandNewFile:
		return "new file"
	case CommandReset:
		return "reset"
	case CommandToggleModel:
		return "toggle model"
	case CommandSaveState:
		return "save state"
	case CommandLoadState:
		return "load state"
	case CommandBreak:
		return "break"
	case CommandToggleDebugger:
		return "toggle debugger"
	}
	return fmt.Sprintf("unknown command (%d)", int(cmd))
}
