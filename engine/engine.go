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

// Package engine defines the interface through which the frontend drives a
// Game Boy emulation core. The frontend never reaches into the core by any
// other route.
//
// Types in this package are shared between the core and the frontend and so
// the package imports nothing from the rest of the project.
package engine

// Dimensions of the pixel buffer registered with SetPixelsOutput().
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Model is the hardware model being emulated.
type Model int

// List of valid Model values.
const (
	ModelDMG Model = iota
	ModelCGB
)

func (m Model) String() string {
	switch m {
	case ModelDMG:
		return "DMG"
	case ModelCGB:
		return "CGB"
	}
	return "unknown model"
}

// Key is a button on the console.
type Key int

// List of valid Key values.
const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeySelect
	KeyStart
)

func (k Key) String() string {
	switch k {
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	}
	return "unknown key"
}

// Sample is a single stereo audio frame.
type Sample struct {
	Left  int16
	Right int16
}

// Callbacks are called by the engine from within Run(). Both functions are
// called synchronously on the thread that called Run().
type Callbacks interface {
	// VBlank is called once per emulated frame, after the pixel buffer has
	// been completely written.
	VBlank()

	// RGBEncode converts a colour into the pixel format of the registered
	// pixel buffer.
	RGBEncode(r, g, b uint8) uint32
}

// LogSink receives diagnostic text from the engine. Text is delivered in
// arbitrary fragments and is not necessarily line terminated.
type LogSink interface {
	Log(text string)
}

// Engine is the cycle-stepped emulation core.
//
// With the exception of IsInited() and CopySamples(), which may be called from
// the audio thread, all functions must be called from the same thread.
type Engine interface {
	// Init prepares the engine for the specified model. Calling Init() on an
	// engine that is already initialised is an error.
	Init(model Model)

	// IsInited returns true once Init() has been called.
	IsInited() bool

	// SwitchModelAndReset changes the model and resets the emulated machine.
	// Loaded programs are forgotten.
	SwitchModelAndReset(model Model)

	// Reset the emulated machine, keeping the loaded program.
	Reset()

	SetCallbacks(cb Callbacks)
	SetPixelsOutput(pixels []uint32)
	SetSampleRate(rate int)

	// SetLogSink installs the receiver of diagnostic text. A nil sink removes
	// the currently installed sink.
	SetLogSink(sink LogSink)

	LoadBootROM(path string) error
	LoadROM(path string) error
	LoadBattery(path string) error
	SaveBattery(path string) error
	LoadState(path string) error
	SaveState(path string) error
	LoadSymbolFile(path string) error

	// Run advances the emulation by one step. Callbacks may be invoked before
	// Run() returns.
	Run()

	SetKeyState(key Key, pressed bool)
	SetTurboMode(on bool)

	DebuggerBreak()
	DebuggerContinue()
	DebuggerIsStopped() bool

	// CopySamples fills dest with generated audio samples. If not enough
	// samples are available the remainder of dest is filled with silence.
	// Safe to call from the audio thread.
	CopySamples(dest []Sample)
}
