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
	"github.com/jetsetilly/gopherboy/engine"
)

// Run implements the engine.Engine interface. Each call advances the emulation
// by one scanline.
//
// When the debugger is stopped the emulation does not advance but the VBlank
// callback is still called once per frame period so that the frontend remains
// responsive.
func (c *Core) Run() {
	if !c.inited.Load() {
		return
	}

	if c.stopped {
		c.pace()
		if c.cb != nil {
			c.cb.VBlank()
		}
		return
	}

	if c.scanline < engine.ScreenHeight {
		c.renderScanline(c.scanline)
	}
	c.generateAudio()

	c.cycles += CyclesPerScanline
	c.scanline++

	if c.scanline == VBlankScanline && c.cb != nil {
		c.cb.VBlank()
	}

	if c.scanline >= ScanlinesPerFrame {
		c.scanline = 0
		c.frame++
		c.pace()
	}
}

func (c *Core) pace() {
	if c.turbo || !c.fpsCap {
		return
	}
	c.fps.Wait()
}

var dmgPalette = [4][3]uint8{
	{0xe0, 0xf8, 0xd0},
	{0x88, 0xc0, 0x70},
	{0x34, 0x68, 0x56},
	{0x08, 0x18, 0x20},
}

// renderScanline draws one line of the test pattern. The pattern scrolls once
// per frame and each key being held inverts part of it.
func (c *Core) renderScanline(y int) {
	if c.cb == nil || len(c.pixels) < engine.ScreenWidth*engine.ScreenHeight {
		return
	}

	line := c.pixels[y*engine.ScreenWidth : (y+1)*engine.ScreenWidth]
	scroll := int(c.frame)

	for x := range line {
		shade := ((x+scroll)>>3 + y>>3) & 3
		if c.keys&(1<<((x>>5)&7)) != 0 {
			shade ^= 3
		}

		switch c.model {
		case engine.ModelCGB:
			r := uint8((x + scroll) * 255 / engine.ScreenWidth)
			g := uint8(y * 255 / engine.ScreenHeight)
			b := uint8(0x40 * (3 - shade))
			line[x] = c.cb.RGBEncode(r, g, b)
		default:
			p := dmgPalette[shade]
			line[x] = c.cb.RGBEncode(p[0], p[1], p[2])
		}
	}
}
