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

package userinput

import (
	"github.com/jetsetilly/gopherboy/engine"
)

type bindingKind int

const (
	bindingDirectional bindingKind = iota
	bindingAction
	bindingSpecial
)

type binding struct {
	kind bindingKind
	key  engine.Key
}

// keymap is applied identically on key press and key release. Keys in the map
// are forwarded regardless of modifier keys.
var keymap = map[string]binding{
	"Right":     {kind: bindingDirectional, key: engine.KeyRight},
	"Left":      {kind: bindingDirectional, key: engine.KeyLeft},
	"Up":        {kind: bindingDirectional, key: engine.KeyUp},
	"Down":      {kind: bindingDirectional, key: engine.KeyDown},
	"X":         {kind: bindingAction, key: engine.KeyA},
	"Z":         {kind: bindingAction, key: engine.KeyB},
	"Backspace": {kind: bindingAction, key: engine.KeySelect},
	"Return":    {kind: bindingAction, key: engine.KeyStart},

	// turbo mode
	"Space": {kind: bindingSpecial},
}
