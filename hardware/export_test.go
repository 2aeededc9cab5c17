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

// PokeRAM writes a value to cartridge RAM. The address is relative to the start
// of cartridge RAM. Writes outside of cartridge RAM are ignored.
func (c *Core) PokeRAM(addr int, value uint8) {
	if addr >= 0 && addr < len(c.ram) {
		c.ram[addr] = value
	}
}

// PeekRAM reads a value from cartridge RAM. Returns zero for addresses outside
// of cartridge RAM.
func (c *Core) PeekRAM(addr int) uint8 {
	if addr >= 0 && addr < len(c.ram) {
		return c.ram[addr]
	}
	return 0
}
