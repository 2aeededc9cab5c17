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
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/engine"
)

// Sentinel error patterns.
const (
	SnapshotError          = "snapshot: %v"
	SnapshotNotSnapshot    = "snapshot: %s is not a snapshot file"
	SnapshotVersion        = "snapshot: unsupported version (%d)"
	SnapshotDifferentModel = "snapshot: made with a different model (%s)"
	SnapshotDifferentCart  = "snapshot: made with a different program (%s)"
)

var snapshotMagic = [4]byte{'G', 'B', 'S', 'S'}

const snapshotVersion = 1

// snapshotHeader is the fixed size part of the snapshot file. it is followed
// by RAMLen bytes of cartridge RAM.
type snapshotHeader struct {
	Magic    [4]byte
	Version  uint16
	Model    uint8
	Keys     uint8
	Scanline uint16
	Frame    uint64
	Cycles   uint64
	Title    [16]byte
	RAMLen   uint32
}

// SaveState implements the engine.Engine interface.
func (c *Core) SaveState(path string) error {
	if c.cart == nil {
		err := curated.Errorf(SnapshotError, curated.Errorf(CartridgeNoProgram))
		c.logf("%v\n", err)
		return err
	}

	hdr := snapshotHeader{
		Magic:    snapshotMagic,
		Version:  snapshotVersion,
		Model:    uint8(c.model),
		Keys:     c.keys,
		Scanline: uint16(c.scanline),
		Frame:    c.frame,
		Cycles:   c.cycles,
		RAMLen:   uint32(len(c.ram)),
	}
	copy(hdr.Title[:], c.cart.Title)

	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, hdr); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	b.Write(c.ram)

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		c.logf("cannot write snapshot: %s\n", path)
		return curated.Errorf(SnapshotError, err)
	}

	return nil
}

// LoadState implements the engine.Engine interface. The snapshot is checked
// completely before any state is changed, so a failed load leaves the
// emulation as it was.
func (c *Core) LoadState(path string) error {
	err := c.loadState(path)
	if err != nil {
		c.logf("%v\n", err)
	}
	return err
}

func (c *Core) loadState(path string) error {
	if c.cart == nil {
		return curated.Errorf(SnapshotError, curated.Errorf(CartridgeNoProgram))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}

	r := bytes.NewReader(data)

	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf(SnapshotNotSnapshot, path)
	}
	if hdr.Magic != snapshotMagic {
		return curated.Errorf(SnapshotNotSnapshot, path)
	}
	if hdr.Version != snapshotVersion {
		return curated.Errorf(SnapshotVersion, hdr.Version)
	}
	if engine.Model(hdr.Model) != c.model {
		return curated.Errorf(SnapshotDifferentModel, engine.Model(hdr.Model))
	}

	title := string(bytes.TrimRight(hdr.Title[:], "\x00"))
	if title != c.cart.Title {
		return curated.Errorf(SnapshotDifferentCart, title)
	}
	if int(hdr.RAMLen) != len(c.ram) {
		return curated.Errorf(SnapshotDifferentCart, title)
	}
	if int(hdr.Scanline) >= ScanlinesPerFrame {
		return curated.Errorf(SnapshotNotSnapshot, path)
	}

	ram := make([]byte, hdr.RAMLen)
	if _, err := io.ReadFull(r, ram); err != nil {
		return curated.Errorf(SnapshotNotSnapshot, path)
	}

	// everything checks out. apply the snapshot
	c.keys = hdr.Keys
	c.scanline = int(hdr.Scanline)
	c.frame = hdr.Frame
	c.cycles = hdr.Cycles
	copy(c.ram, ram)
	c.audio.clear()

	return nil
}
