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
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinel error patterns.
const (
	BatteryError    = "battery: %v"
	BatteryNotFound = "battery: no battery file for %s"
)

// LoadBattery implements the engine.Engine interface. Loading a battery file
// for a cartridge without battery backed RAM does nothing and is not an error.
func (c *Core) LoadBattery(path string) error {
	if c.cart == nil {
		return curated.Errorf(BatteryError, curated.Errorf(CartridgeNoProgram))
	}
	if !c.cart.Battery || len(c.ram) == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(BatteryNotFound, c.cart.Title)
		}
		return curated.Errorf(BatteryError, err)
	}

	// battery files written by other emulators sometimes have extra data
	// appended (eg. RTC state). only the RAM portion is used
	copy(c.ram, data)

	return nil
}

// SaveBattery implements the engine.Engine interface. Saving the battery for a
// cartridge without battery backed RAM does nothing and is not an error.
func (c *Core) SaveBattery(path string) error {
	if c.cart == nil || !c.cart.Battery || len(c.ram) == 0 {
		return nil
	}

	if err := os.WriteFile(path, c.ram, 0o644); err != nil {
		return curated.Errorf(BatteryError, err)
	}

	return nil
}
