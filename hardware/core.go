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

package hardware

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/performance/limiter"
)

// Timing of the emulated machine.
const (
	ClockSpeed        = 4194304
	CyclesPerScanline = 456
	ScanlinesPerFrame = 154
	VBlankScanline    = 144

	// FrameRate is approximately 59.73 frames per second
	FrameRate = float64(ClockSpeed) / (CyclesPerScanline * ScanlinesPerFrame)
)

// size of the boot ROM for each model.
const (
	bootROMSizeDMG = 256
	bootROMSizeCGB = 2304
)

// Sentinel error patterns.
const (
	BootROMError       = "boot ROM: %v"
	BootROMWrongSize   = "boot ROM: %s is %d bytes, expected %d for %s"
	ProgramError       = "program: %v"
	AlreadyInitialised = "core: already initialised"
)

// Core implements the engine.Engine interface.
type Core struct {
	inited atomic.Bool

	model engine.Model

	cb     engine.Callbacks
	pixels []uint32
	sink   engine.LogSink

	sampleRate int
	audio      sampleRing
	tone       tone

	bootROM []byte
	cart    *Cartridge
	ram     []byte
	symbols map[uint32]string

	scanline int
	frame    uint64
	cycles   uint64
	keys     uint8
	turbo    bool
	stopped  bool

	fps    *limiter.FpsLimiter
	fpsCap bool
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore() *Core {
	return &Core{
		fps:     limiter.NewFPSLimiter(FrameRate),
		fpsCap:  true,
		symbols: make(map[uint32]string),
	}
}

// SetFrameCap sets whether the emulation is paced to the refresh rate of the
// emulated machine. When set to false the emulation runs as quickly as
// possible.
func (c *Core) SetFrameCap(on bool) {
	c.fpsCap = on
}

func (c *Core) log(text string) {
	if c.sink != nil {
		c.sink.Log(text)
		return
	}
	logger.Log(logger.Allow, "core", strings.TrimRight(text, "\n"))
}

func (c *Core) logf(format string, args ...any) {
	c.log(fmt.Sprintf(format, args...))
}

// Init implements the engine.Engine interface.
func (c *Core) Init(model engine.Model) {
	if c.inited.Load() {
		logger.Log(logger.Allow, "core", curated.Errorf(AlreadyInitialised))
		return
	}
	c.model = model
	c.reset()
	c.inited.Store(true)
}

// IsInited implements the engine.Engine interface. It is safe to call from any
// goroutine.
func (c *Core) IsInited() bool {
	return c.inited.Load()
}

// SwitchModelAndReset implements the engine.Engine interface. The boot ROM,
// program and symbols are all forgotten.
func (c *Core) SwitchModelAndReset(model engine.Model) {
	c.model = model
	c.bootROM = nil
	c.cart = nil
	c.ram = nil
	clear(c.symbols)
	c.reset()
}

// Reset implements the engine.Engine interface. The cartridge RAM is kept.
func (c *Core) Reset() {
	c.reset()
}

func (c *Core) reset() {
	c.scanline = 0
	c.frame = 0
	c.cycles = 0
	c.keys = 0
	c.stopped = false
	c.tone = tone{}
	c.audio.clear()
}

// Model returns the current hardware model.
func (c *Core) Model() engine.Model {
	return c.model
}

// Frame returns the number of frames since the last reset.
func (c *Core) Frame() uint64 {
	return c.frame
}

// SetCallbacks implements the engine.Engine interface.
func (c *Core) SetCallbacks(cb engine.Callbacks) {
	c.cb = cb
}

// SetPixelsOutput implements the engine.Engine interface.
func (c *Core) SetPixelsOutput(pixels []uint32) {
	c.pixels = pixels
}

// SetSampleRate implements the engine.Engine interface.
func (c *Core) SetSampleRate(rate int) {
	c.sampleRate = rate
	c.tone = tone{}
}

// SetLogSink implements the engine.Engine interface.
func (c *Core) SetLogSink(sink engine.LogSink) {
	c.sink = sink
}

// LoadBootROM implements the engine.Engine interface.
func (c *Core) LoadBootROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.logf("cannot open boot ROM: %s\n", path)
		return curated.Errorf(BootROMError, err)
	}

	expected := bootROMSizeDMG
	if c.model == engine.ModelCGB {
		expected = bootROMSizeCGB
	}

	if len(data) != expected {
		err := curated.Errorf(BootROMWrongSize, path, len(data), expected, c.model)
		c.logf("%v\n", err)
		return err
	}

	c.bootROM = data
	return nil
}

// LoadROM implements the engine.Engine interface.
func (c *Core) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.logf("cannot open program: %s\n", path)
		return curated.Errorf(ProgramError, err)
	}

	cart, err := ParseCartridge(data)
	if err != nil {
		c.logf("%v\n", err)
		return curated.Errorf(ProgramError, err)
	}

	if cart.CGBOnly && c.model == engine.ModelDMG {
		err := curated.Errorf(CartridgeCGBOnly, cart.Title)
		c.logf("%v\n", err)
		return curated.Errorf(ProgramError, err)
	}

	// warnings go to the central log only. text sent to the sink during a
	// load is treated as a problem by the frontend
	if !cart.LogoOK {
		logger.Logf(logger.Allow, "core", "%s: logo does not match", cart.Title)
	}
	if !cart.ChecksumOK {
		logger.Logf(logger.Allow, "core", "%s: header checksum does not match", cart.Title)
	}

	c.cart = cart
	c.ram = make([]byte, cart.RAMSize)
	c.reset()

	logger.Logf(logger.Allow, "core", "loaded %s", cart)

	return nil
}

// SetKeyState implements the engine.Engine interface.
func (c *Core) SetKeyState(key engine.Key, pressed bool) {
	if key < 0 || int(key) >= len(toneFrequency) {
		return
	}
	if pressed {
		c.keys |= 1 << key
	} else {
		c.keys &^= 1 << key
	}
}

// SetTurboMode implements the engine.Engine interface.
func (c *Core) SetTurboMode(on bool) {
	c.turbo = on
}

// DebuggerBreak implements the engine.Engine interface.
func (c *Core) DebuggerBreak() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.logf("debugger: stopped at frame %d, scanline %d%s\n", c.frame, c.scanline, c.symbolAt())
}

// DebuggerContinue implements the engine.Engine interface.
func (c *Core) DebuggerContinue() {
	if !c.stopped {
		return
	}
	c.stopped = false
	c.log("debugger: continuing\n")
}

// DebuggerIsStopped implements the engine.Engine interface.
func (c *Core) DebuggerIsStopped() bool {
	return c.stopped
}
