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

package hardware_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/test"
)

type sink struct {
	strings.Builder
}

func (s *sink) Log(text string) {
	s.WriteString(text)
}

type callbacks struct {
	vblanks int
}

func (cb *callbacks) VBlank() {
	cb.vblanks++
}

func (cb *callbacks) RGBEncode(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// makeROM creates a minimal program file with a valid header.
func makeROM(t *testing.T, name string, title string, cartType byte, ramSize byte) string {
	t.Helper()

	data := make([]byte, 0x8000)
	copy(data[0x0104:], []byte{
		0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b,
		0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
		0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
		0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
		0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc,
		0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
	})
	copy(data[0x0134:0x0143], title)
	data[0x0147] = cartType
	data[0x0149] = ramSize
	data[0x014d] = hardware.HeaderChecksum(data)

	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func newCore(t *testing.T, model engine.Model) (*hardware.Core, *callbacks) {
	t.Helper()

	c := hardware.NewCore()
	c.SetFrameCap(false)
	c.Init(model)

	cb := &callbacks{}
	c.SetCallbacks(cb)
	c.SetPixelsOutput(make([]uint32, engine.ScreenWidth*engine.ScreenHeight))
	c.SetSampleRate(48000)

	return c, cb
}

func TestCartridgeHeader(t *testing.T) {
	fn := makeROM(t, "game.gb", "TESTGAME", 0x03, 0x02)
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	cart, err := hardware.ParseCartridge(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Title, "TESTGAME")
	test.ExpectEquality(t, cart.RAMSize, 8*1024)
	test.ExpectSuccess(t, cart.Battery)
	test.ExpectSuccess(t, cart.LogoOK)
	test.ExpectSuccess(t, cart.ChecksumOK)
	test.ExpectFailure(t, cart.CGBOnly)

	_, err = hardware.ParseCartridge(data[:0x100])
	test.ExpectFailure(t, err)
}

func TestInit(t *testing.T) {
	c := hardware.NewCore()
	test.ExpectFailure(t, c.IsInited())
	c.Init(engine.ModelCGB)
	test.ExpectSuccess(t, c.IsInited())
	test.ExpectEquality(t, c.Model(), engine.ModelCGB)

	c.SwitchModelAndReset(engine.ModelDMG)
	test.ExpectSuccess(t, c.IsInited())
	test.ExpectEquality(t, c.Model(), engine.ModelDMG)
}

func TestLoadROMFailures(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	s := &sink{}
	c.SetLogSink(s)

	// missing file
	err := c.LoadROM(filepath.Join(t.TempDir(), "missing.gb"))
	test.ExpectFailure(t, err)
	test.ExpectInequality(t, s.String(), "")

	// too small
	s.Reset()
	fn := filepath.Join(t.TempDir(), "small.gb")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 0x20), 0o644))
	err = c.LoadROM(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(s.String(), "too small"))

	// CGB only program on DMG hardware
	s.Reset()
	fn = makeROM(t, "cgb.gbc", "COLOUR", 0x00, 0x00)
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	data[0x0143] = 0xc0
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	err = c.LoadROM(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(s.String(), "requires CGB"))

	// success produces no text
	s.Reset()
	fn = makeROM(t, "game.gb", "TESTGAME", 0x00, 0x00)
	test.ExpectSuccess(t, c.LoadROM(fn))
	test.ExpectEquality(t, s.String(), "")
}

func TestBootROM(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	s := &sink{}
	c.SetLogSink(s)

	dir := t.TempDir()
	fn := filepath.Join(dir, "dmg_boot.bin")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 256), 0o644))
	test.ExpectSuccess(t, c.LoadBootROM(fn))
	test.ExpectEquality(t, s.String(), "")

	// the same boot ROM is the wrong size for CGB
	c.SwitchModelAndReset(engine.ModelCGB)
	test.ExpectFailure(t, c.LoadBootROM(fn))
	test.ExpectInequality(t, s.String(), "")

	s.Reset()
	test.ExpectFailure(t, c.LoadBootROM(filepath.Join(dir, "cgb_boot.bin")))
	test.ExpectInequality(t, s.String(), "")
}

func TestRunAndVBlank(t *testing.T) {
	c, cb := newCore(t, engine.ModelDMG)

	for range hardware.ScanlinesPerFrame * 2 {
		c.Run()
	}
	test.ExpectEquality(t, cb.vblanks, 2)
	test.ExpectEquality(t, c.Frame(), uint64(2))
}

func TestAudio(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	samples := make([]engine.Sample, 512)

	// no keys held produces silence
	for range hardware.ScanlinesPerFrame {
		c.Run()
	}
	c.CopySamples(samples)
	for _, s := range samples {
		test.DemandEquality(t, s, engine.Sample{})
	}

	// a key held produces a tone
	c.SetKeyState(engine.KeyA, true)
	for range hardware.ScanlinesPerFrame {
		c.Run()
	}
	c.CopySamples(samples)
	var nonzero bool
	for _, s := range samples {
		if s.Left != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectSuccess(t, nonzero)

	// ring is empty so the buffer is filled with silence
	c.CopySamples(samples)
	c.CopySamples(samples)
	test.ExpectEquality(t, samples[len(samples)-1], engine.Sample{})
}

func TestResetDiscardsSamples(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	c.SetKeyState(engine.KeyA, true)
	for range hardware.ScanlinesPerFrame {
		c.Run()
	}

	// samples generated before the reset are never played
	c.Reset()
	samples := make([]engine.Sample, 512)
	c.CopySamples(samples)
	for _, s := range samples {
		test.DemandEquality(t, s, engine.Sample{})
	}
}

func TestDebugger(t *testing.T) {
	c, cb := newCore(t, engine.ModelDMG)

	s := &sink{}
	c.SetLogSink(s)

	c.DebuggerBreak()
	test.ExpectSuccess(t, c.DebuggerIsStopped())
	test.ExpectInequality(t, s.String(), "")

	// stopped emulation does not advance but still calls VBlank
	c.Run()
	c.Run()
	test.ExpectEquality(t, c.Frame(), uint64(0))
	test.ExpectEquality(t, cb.vblanks, 2)

	c.DebuggerContinue()
	test.ExpectFailure(t, c.DebuggerIsStopped())
}

func TestBattery(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	fn := makeROM(t, "game.gb", "TESTGAME", 0x03, 0x02)
	test.DemandSuccess(t, c.LoadROM(fn))

	sav := filepath.Join(t.TempDir(), "game.sav")
	test.ExpectFailure(t, c.LoadBattery(sav))

	c.PokeRAM(0x10, 0xaa)
	test.DemandSuccess(t, c.SaveBattery(sav))

	c.PokeRAM(0x10, 0x00)
	test.DemandSuccess(t, c.LoadBattery(sav))
	test.ExpectEquality(t, c.PeekRAM(0x10), uint8(0xaa))

	// no battery
	fn = makeROM(t, "nobatt.gb", "NOBATT", 0x00, 0x00)
	test.DemandSuccess(t, c.LoadROM(fn))
	test.ExpectSuccess(t, c.LoadBattery(filepath.Join(t.TempDir(), "nobatt.sav")))
}

func TestSymbols(t *testing.T) {
	c, _ := newCore(t, engine.ModelDMG)

	fn := filepath.Join(t.TempDir(), "game.sym")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("; comment\n00:0100 Entry\n\n01:4000 BankOne\nnot a symbol\n"), 0o644))
	test.DemandSuccess(t, c.LoadSymbolFile(fn))

	s, ok := c.Symbol(0, 0x0100)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "Entry")

	s, ok = c.Symbol(1, 0x4000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "BankOne")

	test.ExpectFailure(t, c.LoadSymbolFile(filepath.Join(t.TempDir(), "missing.sym")))
}
