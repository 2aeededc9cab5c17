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

// Package paths contains functions to prepare paths to gopherboy resources
// and to files that sit alongside a program image.
//
// The ResourcePath() function returns a path inside the configuration
// directory. If a directory named ".gopherboy" is present in the current
// directory then that is used, otherwise the user's configuration directory
// (as reported by os.UserConfigDir()) is used. The directory is created if
// necessary.
//
//	p, err := paths.ResourcePath("", "preferences")
//
// ExecutableRelative() returns a path in the same directory as the running
// executable. Boot ROMs and the global register symbols file are found this
// way.
//
// Files that belong to a program image are named by replacing the extension
// of the program path. For a program image named "game.gb":
//
//	game.sav	battery backed RAM (BatteryPath)
//	game.s0	snapshot slot 0 (SnapshotPath), through to game.s9
//	game.sym	debugger symbols (SymbolsPath)
package paths
