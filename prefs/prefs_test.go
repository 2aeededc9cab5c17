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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	// loading a missing file leaves values untouched
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, s.Set("oto"))
	test.ExpectSuccess(t, dsk.Add("audio.backend", &s))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "oto")
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sharing the file should see the saved value and
	// should not clobber entries it doesn't know about
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s2 prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk2.Add("audio.backend", &s2))
	test.ExpectSuccess(t, dsk2.Add("sdlplay.scaling", &n))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "oto")

	test.ExpectSuccess(t, n.Set(2))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "audio.backend :: oto\nsdlplay.scaling :: 2\n")
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(val prefs.Value) error {
		seen = val.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set("7"))
	test.ExpectEquality(t, seen, 7)
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad :: key", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
}
