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

// Package hardware is a reference implementation of the engine.Engine
// interface. It is not an accurate Game Boy. It validates cartridge headers,
// keeps battery backed RAM, serialises snapshots and reads symbol files. In
// place of real video and audio it draws a moving test pattern and plays a
// tone for each button being held.
//
// Timing follows the real machine closely enough for the frontend to be paced
// correctly: each call to Run() advances one scanline of 456 cycles, a frame
// is 154 scanlines and the VBlank callback is called on entry to scanline 144.
//
// Diagnostic text is sent to the installed engine.LogSink. When no sink is
// installed the text is sent to the central logger under the "core" tag.
package hardware
