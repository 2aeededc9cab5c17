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

package emulation

import (
	"github.com/jetsetilly/gopherboy/engine"
)

// Session is the shared state of a play session. It is only ever accessed
// from the thread that runs the engine.
type Session struct {
	// the program image being played. replaced only by ReplaceFilename()
	Filename string

	// the battery file for the current program. set when the program is
	// loaded and used when the session ends
	BatteryPath string

	// the classic model is used when DMG is true
	DMG bool

	// while paused the run loop waits for input events rather than running
	// the engine
	Paused bool

	command Command
	param   int

	quit bool
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(filename string, dmg bool) *Session {
	return &Session{
		Filename: filename,
		DMG:      dmg,
	}
}

// SetCommand replaces any pending command. The parameter is only meaningful
// for CommandSaveState and CommandLoadState.
func (s *Session) SetCommand(cmd Command, param int) {
	s.command = cmd
	s.param = param
}

// PendingCommand returns the pending command and its parameter without
// clearing it.
func (s *Session) PendingCommand() (Command, int) {
	return s.command, s.param
}

// TakeCommand returns the pending command and its parameter. The pending
// command is reset to CommandNone.
func (s *Session) TakeCommand() (Command, int) {
	cmd, param := s.command, s.param
	s.command = CommandNone
	s.param = 0
	return cmd, param
}

// ClearCommand discards any pending command.
func (s *Session) ClearCommand() {
	s.TakeCommand()
}

// ReplaceFilename changes the program image for the session.
func (s *Session) ReplaceFilename(filename string) {
	s.Filename = filename
}

// RequestQuit indicates that the session should end.
func (s *Session) RequestQuit() {
	s.quit = true
}

// QuitRequested returns true if RequestQuit() has been called.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Model returns the engine model indicated by the DMG field.
func (s *Session) Model() engine.Model {
	if s.DMG {
		return engine.ModelDMG
	}
	return engine.ModelCGB
}
