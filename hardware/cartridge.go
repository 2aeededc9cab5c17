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
	"bytes"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// offsets into the cartridge header.
const (
	headerLogo          = 0x0104
	headerTitle         = 0x0134
	headerTitleEnd      = 0x0144
	headerCGBFlag       = 0x0143
	headerType          = 0x0147
	headerRAMSize       = 0x0149
	headerChecksum      = 0x014d
	headerChecksumStart = 0x0134
	headerEnd           = 0x0150
)

// Sentinel error patterns.
const (
	CartridgeTooSmall  = "cartridge: too small (%d bytes)"
	CartridgeCGBOnly   = "cartridge: %s requires CGB hardware"
	CartridgeRAMSize   = "cartridge: unsupported RAM size (%02xh)"
	CartridgeNoProgram = "cartridge: no program loaded"
)

var nintendoLogo = []byte{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
	0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
	0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc,
	0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// cartridge types that have battery backed RAM.
var batteryTypes = map[byte]bool{
	0x03: true, 0x06: true, 0x09: true, 0x0d: true, 0x0f: true,
	0x10: true, 0x13: true, 0x1b: true, 0x1e: true, 0xff: true,
}

// Cartridge is the information found in the cartridge header.
type Cartridge struct {
	Title   string
	Type    byte
	RAMSize int
	Battery bool
	CGBOnly bool

	// whether the logo and header checksum are as expected
	LogoOK     bool
	ChecksumOK bool
}

func (cart *Cartridge) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [type %02xh]", cart.Title, cart.Type))
	if cart.RAMSize > 0 {
		s.WriteString(fmt.Sprintf(" %dK RAM", cart.RAMSize/1024))
	}
	if cart.Battery {
		s.WriteString(" +battery")
	}
	return s.String()
}

// ParseCartridge reads the header of the cartridge data.
func ParseCartridge(data []byte) (*Cartridge, error) {
	if len(data) < headerEnd {
		return nil, curated.Errorf(CartridgeTooSmall, len(data))
	}

	cart := &Cartridge{
		Type:    data[headerType],
		Battery: batteryTypes[data[headerType]],
		CGBOnly: data[headerCGBFlag] == 0xc0,
	}

	// the title area is shortened on later cartridges to make room for the
	// manufacturer code and the CGB flag. zero bytes end the title in every
	// case
	title := data[headerTitle:headerTitleEnd]
	if i := bytes.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}
	if data[headerCGBFlag]&0x80 == 0x80 && len(title) > 15 {
		title = title[:15]
	}
	cart.Title = strings.TrimRight(string(title), " ")

	switch data[headerRAMSize] {
	case 0x00:
		cart.RAMSize = 0
	case 0x01:
		cart.RAMSize = 2 * 1024
	case 0x02:
		cart.RAMSize = 8 * 1024
	case 0x03:
		cart.RAMSize = 32 * 1024
	case 0x04:
		cart.RAMSize = 128 * 1024
	case 0x05:
		cart.RAMSize = 64 * 1024
	default:
		return nil, curated.Errorf(CartridgeRAMSize, data[headerRAMSize])
	}

	// MBC2 has RAM built in and the header reports no RAM
	if cart.Type == 0x05 || cart.Type == 0x06 {
		cart.RAMSize = 512
	}

	cart.LogoOK = bytes.Equal(data[headerLogo:headerLogo+len(nintendoLogo)], nintendoLogo)
	cart.ChecksumOK = HeaderChecksum(data) == data[headerChecksum]

	return cart, nil
}

// HeaderChecksum calculates the checksum of the cartridge header. Data must be
// at least 0x150 bytes long.
func HeaderChecksum(data []byte) byte {
	var x byte
	for i := headerChecksumStart; i < headerChecksum; i++ {
		x = x - data[i] - 1
	}
	return x
}
