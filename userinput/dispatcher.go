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

import (
	"runtime"

	"github.com/jetsetilly/gopherboy/emulation"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/logger"
)

// Engine is the part of the engine.Engine interface used by the Dispatcher.
type Engine interface {
	SetKeyState(key engine.Key, pressed bool)
	SetTurboMode(on bool)
	DebuggerIsStopped() bool
	SaveBattery(path string) error
}

// Display is implemented by the GUI.
type Display interface {
	// UpdateViewport recalculates the area of the window that the emulated
	// screen occupies.
	UpdateViewport()

	// CycleScaling selects the next scaling mode.
	CycleScaling()
}

// AudioOutput is implemented by the audio device.
type AudioOutput interface {
	Paused() bool
	SetPaused(paused bool)
}

// Dispatcher handles events from an EventSource.
type Dispatcher struct {
	src     EventSource
	eng     Engine
	session *emulation.Session
	display Display
	audio   AudioOutput

	// the command key on macOS is used in place of the control key for
	// emulator shortcuts
	MacOS bool
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The audio argument can be nil.
func NewDispatcher(src EventSource, eng Engine, session *emulation.Session, display Display, audio AudioOutput) *Dispatcher {
	return &Dispatcher{
		src:     src,
		eng:     eng,
		session: session,
		display: display,
		audio:   audio,
		MacOS:   runtime.GOOS == "darwin",
	}
}

// Poll handles all events currently in the queue. It does not block.
func (d *Dispatcher) Poll() {
	for ev := d.src.PollEvent(); ev != nil; ev = d.src.PollEvent() {
		d.handle(ev)
	}
}

// Wait blocks until an event is available and handles it, followed by any
// other events in the queue.
func (d *Dispatcher) Wait() {
	if ev := d.src.WaitEvent(); ev != nil {
		d.handle(ev)
	}
	d.Poll()
}

func (d *Dispatcher) handle(ev Event) {
	switch ev := ev.(type) {
	case EventQuit:
		d.quit()

	case EventDropFile:
		d.session.ReplaceFilename(ev.Filename)
		d.session.SetCommand(emulation.CommandNewFile, 0)

	case EventWindowResized:
		d.display.UpdateViewport()

	case EventKeyboard:
		d.keyboard(ev)

	case EventInterrupt:
		if d.eng.DebuggerIsStopped() {
			d.quit()
		} else {
			d.session.SetCommand(emulation.CommandBreak, 0)
		}
	}
}

// quit saves the battery synchronously so that nothing is lost when the
// process exits.
func (d *Dispatcher) quit() {
	if d.session.BatteryPath != "" {
		if err := d.eng.SaveBattery(d.session.BatteryPath); err != nil {
			logger.Log(logger.Allow, "userinput", err)
		}
	}
	d.session.RequestQuit()
}

func (d *Dispatcher) keyboard(ev EventKeyboard) {
	if b, ok := keymap[ev.Key]; ok {
		switch b.kind {
		case bindingDirectional, bindingAction:
			d.eng.SetKeyState(b.key, ev.Down)
		case bindingSpecial:
			d.eng.SetTurboMode(ev.Down)
		}
	}

	if !ev.Down || ev.Repeat {
		return
	}

	mod := ev.Mod&KeyModCtrl == KeyModCtrl
	if d.MacOS {
		mod = ev.Mod&KeyModGUI == KeyModGUI
	}
	shift := ev.Mod&KeyModShift == KeyModShift

	// Ctrl+C is always the control key, even on macOS
	if ev.Key == "C" && ev.Mod&KeyModCtrl == KeyModCtrl {
		d.session.SetCommand(emulation.CommandBreak, 0)
		return
	}

	switch ev.Key {
	case "Escape":
		d.session.SetCommand(emulation.CommandToggleDebugger, 0)
		return
	case "Tab":
		d.display.CycleScaling()
		return
	}

	if !mod {
		return
	}

	switch ev.Key {
	case "R":
		d.session.SetCommand(emulation.CommandReset, 0)
	case "T":
		d.session.SetCommand(emulation.CommandToggleModel, 0)
	case "P":
		d.session.Paused = !d.session.Paused
	case "M":
		// Cmd+M minimises the window on macOS
		if d.MacOS && !shift {
			return
		}
		if d.audio != nil {
			d.audio.SetPaused(!d.audio.Paused())
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		slot := int(ev.Key[0] - '0')
		if shift {
			d.session.SetCommand(emulation.CommandLoadState, slot)
		} else {
			d.session.SetCommand(emulation.CommandSaveState, slot)
		}
	}
}
