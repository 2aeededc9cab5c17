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

package engine_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/test"
)

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, engine.ModelDMG.String(), "DMG")
	test.ExpectEquality(t, engine.ModelCGB.String(), "CGB")
	test.ExpectEquality(t, engine.KeyStart.String(), "Start")
	test.ExpectEquality(t, engine.Key(100).String(), "unknown key")
}
