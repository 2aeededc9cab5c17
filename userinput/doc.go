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

// Package userinput translates platform neutral input and window events into
// engine key states and session commands.
//
// The GUI implementation provides an EventSource. Events are handled by the
// Dispatcher, which is called from the frame presentation callback (Poll) or,
// when the emulation is paused, from the run loop itself (Wait).
//
// The GUI implementation in use during development was SDL and so key names
// follow the names returned by sdl.GetKeyName().
package userinput
