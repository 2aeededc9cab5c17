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

package userinput

// Event represents all the different type of events that can occur in the
// GUI. Events are handled by the Dispatcher.
type Event interface{}

// KeyMod is a bitmask of the modifier keys held when a key event occurred.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
	KeyModGUI

	KeyModNone KeyMod = 0
)

// EventQuit is sent when the user has requested that the window be closed.
type EventQuit struct{}

// EventDropFile is sent when a file has been dropped onto the window.
type EventDropFile struct {
	Filename string
}

// EventWindowResized is sent when the size of the window has changed.
type EventWindowResized struct{}

// EventKeyboard is sent on key press and release. Key is the name of the key
// as it would be printed on the keyboard, eg. "A", "Return", "Left".
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventInterrupt is sent when the process has received an interrupt signal.
type EventInterrupt struct{}

// EventSource is implemented by the GUI.
type EventSource interface {
	// PollEvent returns the next event in the queue. Returns nil if the queue
	// is empty. Events that have no translation are skipped.
	PollEvent() Event

	// WaitEvent blocks until an event is available. Returns nil if the event
	// has no translation.
	WaitEvent() Event
}
