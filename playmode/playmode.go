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
	"path/filepath"

	"github.com/jetsetilly/gopherboy/diagnostics"
	"github.com/jetsetilly/gopherboy/emulation"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/userinput"
)

// Display is implemented by the GUI.
type Display interface {
	userinput.EventSource
	userinput.Display
	diagnostics.Popup

	// Present the pixel buffer in the window.
	Present(pixels []uint32) error

	// MapRGB encodes a colour in the format expected by Present().
	MapRGB(r, g, b uint8) uint32

	SetTitle(title string)
}

// Recorder is flushed once per frame. The WAV writer is a Recorder.
type Recorder interface {
	Flush() error
}

// names of files that are found relative to the executable.
const (
	bootROMDMG   = "dmg_boot.bin"
	bootROMCGB   = "cgb_boot.bin"
	registersSym = "registers.sym"
)

// Playmode is the run loop.
type Playmode struct {
	eng     engine.Engine
	session *emulation.Session
	display Display
	input   *userinput.Dispatcher
	capture *diagnostics.Capture

	pixels     []uint32
	sampleRate int

	recorder Recorder

	// returns the full path of boot ROMs and the registers symbol file
	ResourcePath func(name string) string
}

// NewPlaymode is the preferred method of initialisation for the Playmode type.
// The audio argument can be nil if there is no audio device.
func NewPlaymode(eng engine.Engine, session *emulation.Session, display Display, audio userinput.AudioOutput, sampleRate int) *Playmode {
	pm := &Playmode{
		eng:          eng,
		session:      session,
		display:      display,
		capture:      diagnostics.NewCapture(eng, display),
		pixels:       make([]uint32, engine.ScreenWidth*engine.ScreenHeight),
		sampleRate:   sampleRate,
		ResourcePath: paths.ExecutableRelative,
	}
	pm.input = userinput.NewDispatcher(display, eng, session, display, audio)

	return pm
}

// SetRecorder attaches a recorder that is flushed once per frame.
func (pm *Playmode) SetRecorder(rec Recorder) {
	pm.recorder = rec
}

// Dispatcher returns the input dispatcher used by the run loop.
func (pm *Playmode) Dispatcher() *userinput.Dispatcher {
	return pm.input
}

// Run the emulation until the user quits. Returns a FatalDiagnostics error
// if the boot ROM or the program could not be loaded.
func (pm *Playmode) Run() error {
	pm.session.ClearCommand()

	for {
		err := pm.start()
		if err != nil {
			return err
		}

		if !pm.loop() {
			return nil
		}
	}
}

// loop returns true if the emulation should be restarted and false if the user
// has quit.
func (pm *Playmode) loop() bool {
	for {
		if pm.session.Paused {
			pm.input.Wait()
		} else {
			pm.eng.Run()
		}

		if pm.session.QuitRequested() {
			return false
		}

		if pm.handlePendingCommand() {
			return true
		}
	}
}

// start (or restart) the emulation with the current session state.
func (pm *Playmode) start() error {
	model := pm.session.Model()

	if pm.eng.IsInited() {
		pm.eng.SwitchModelAndReset(model)
	} else {
		pm.eng.Init(model)
		pm.eng.SetCallbacks(pm)
		pm.eng.SetPixelsOutput(pm.pixels)
		pm.eng.SetSampleRate(pm.sampleRate)
	}

	bootROM := bootROMCGB
	if model == engine.ModelDMG {
		bootROM = bootROMDMG
	}

	_, err := pm.capture.Wrap(func() error {
		return pm.eng.LoadBootROM(pm.ResourcePath(bootROM))
	}, true, true)
	if err != nil {
		return err
	}

	_, err = pm.capture.Wrap(func() error {
		return pm.eng.LoadROM(pm.session.Filename)
	}, true, true)
	if err != nil {
		return err
	}

	pm.session.BatteryPath = paths.BatteryPath(pm.session.Filename)
	if err := pm.eng.LoadBattery(pm.session.BatteryPath); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	if err := pm.eng.LoadSymbolFile(pm.ResourcePath(registersSym)); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
	if err := pm.eng.LoadSymbolFile(paths.SymbolsPath(pm.session.Filename)); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	pm.display.SetTitle(filepath.Base(pm.session.Filename))
	logger.Logf(logger.Allow, "playmode", "started %s on %s", pm.session.Filename, model)

	return nil
}
