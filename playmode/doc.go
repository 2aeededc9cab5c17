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

// Package playmode is the run loop of the emulator. It owns the session state
// and the pixel buffer, configures the engine, loads the program and its
// associated files, and applies pending commands between engine steps.
//
// The engine calls back into the Playmode type once per frame (VBlank) and
// for each colour it needs encoding (RGBEncode). Input is serviced from the
// VBlank callback, which means commands are only ever set while the engine is
// running. Commands are applied after engine.Run() has returned.
//
// Run() returns nil when the user quits. A FatalDiagnostics error (see the
// diagnostics package) means the emulation could not start.
package playmode
