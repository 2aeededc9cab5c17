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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// Sentinel error patterns.
const (
	SymbolsError = "symbols: %v"
)

func symbolKey(bank uint16, addr uint16) uint32 {
	return uint32(bank)<<16 | uint32(addr)
}

// LoadSymbolFile implements the engine.Engine interface. Symbol files have one
// symbol per line in the form:
//
//	bank:address name
//
// Bank and address are hexadecimal. Blank lines and lines beginning with a
// semicolon are ignored. Symbols are added to any previously loaded symbols.
func (c *Core) LoadSymbolFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(SymbolsError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	n := 0
	for scanner.Scan() {
		n++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		bank, addr, name, ok := parseSymbol(line)
		if !ok {
			logger.Logf(logger.Allow, "core", "%s: malformed symbol on line %d", path, n)
			continue
		}

		c.symbols[symbolKey(bank, addr)] = name
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(SymbolsError, err)
	}

	return nil
}

func parseSymbol(line string) (uint16, uint16, string, bool) {
	loc, name, ok := strings.Cut(line, " ")
	if !ok {
		return 0, 0, "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, 0, "", false
	}

	b, a, ok := strings.Cut(loc, ":")
	if !ok {
		return 0, 0, "", false
	}

	bank, err := strconv.ParseUint(b, 16, 16)
	if err != nil {
		return 0, 0, "", false
	}
	addr, err := strconv.ParseUint(a, 16, 16)
	if err != nil {
		return 0, 0, "", false
	}

	return uint16(bank), uint16(addr), name, true
}

// Symbol returns the name of the symbol at the bank and address.
func (c *Core) Symbol(bank uint16, addr uint16) (string, bool) {
	s, ok := c.symbols[symbolKey(bank, addr)]
	return s, ok
}

// the reference core has no program counter. the entry point of the program
// is used instead when describing where the debugger stopped
func (c *Core) symbolAt() string {
	if s, ok := c.Symbol(0, 0x0100); ok {
		return fmt.Sprintf(" (%s)", s)
	}
	return ""
}
