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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ReplaceExtension returns the path with the extension of the final path
// element replaced. If the final element has no extension then the new
// extension is appended.
func ReplaceExtension(pth string, ext string) string {
	return strings.TrimSuffix(pth, filepath.Ext(pth)) + ext
}

// BatteryPath returns the path of the battery backed RAM file for the
// program image.
func BatteryPath(rom string) string {
	return ReplaceExtension(rom, ".sav")
}

// SymbolsPath returns the path of the debugger symbols file for the program
// image.
func SymbolsPath(rom string) string {
	return ReplaceExtension(rom, ".sym")
}

// MaxSnapshotSlot is the highest numbered snapshot slot.
const MaxSnapshotSlot = 9

// SnapshotPath returns the path of the numbered snapshot file for the
// program image. Slots outside of the range 0 to MaxSnapshotSlot are clamped.
func SnapshotPath(rom string, slot int) string {
	slot = max(0, min(slot, MaxSnapshotSlot))
	return ReplaceExtension(rom, fmt.Sprintf(".s%d", slot))
}
