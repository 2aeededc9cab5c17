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

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/test"
)

func defaultPreferences() *preferences {
	p := &preferences{}
	p.setDefaults()
	return p
}

func TestParseArgs(t *testing.T) {
	tw := &test.Writer{}

	opts, _, ok := parseArgs([]string{"--dmg", "-audio", "oto", "game.gb"}, tw, defaultPreferences())
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, opts.dmg)
	test.ExpectEquality(t, opts.audio, audioOto)
	test.ExpectSuccess(t, opts.fpsCap)
	test.ExpectEquality(t, opts.path, "game.gb")
	test.ExpectSuccess(t, opts.visited["audio"])
	test.ExpectFailure(t, opts.visited["fpscap"])
	test.ExpectEquality(t, tw.String(), "")
}

func TestNoProgram(t *testing.T) {
	tw := &test.Writer{}

	opts, _, ok := parseArgs([]string{}, tw, defaultPreferences())
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, opts.dmg)
	test.ExpectEquality(t, opts.path, "")
	test.ExpectEquality(t, opts.audio, audioSDL)
}

func TestPreferencesAsDefaults(t *testing.T) {
	p := defaultPreferences()
	_ = p.audio.Set(audioOto)
	_ = p.fpsCap.Set(false)

	opts, _, ok := parseArgs([]string{"game.gb"}, &test.Writer{}, p)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, opts.audio, audioOto)
	test.ExpectFailure(t, opts.fpsCap)
}

func TestRepeatedDMG(t *testing.T) {
	tw := &test.Writer{}

	_, code, ok := parseArgs([]string{"--dmg", "--dmg"}, tw, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 1)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), usage+"\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "-dmg"))
}

func TestDMGAfterPath(t *testing.T) {
	tw := &test.Writer{}

	opts, _, ok := parseArgs([]string{"game.gb", "--dmg"}, tw, defaultPreferences())
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, opts.dmg)
	test.ExpectEquality(t, opts.path, "game.gb")
	test.ExpectEquality(t, tw.String(), "")

	_, code, ok := parseArgs([]string{"--dmg", "game.gb", "-dmg"}, tw, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 1)
}

func TestTooManyArguments(t *testing.T) {
	tw := &test.Writer{}

	_, code, ok := parseArgs([]string{"a.gb", "b.gb"}, tw, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 1)
	test.ExpectSuccess(t, strings.Contains(tw.String(), usage+"\n"))
}

func TestUnknownAudio(t *testing.T) {
	_, code, ok := parseArgs([]string{"-audio", "alsa"}, &test.Writer{}, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 1)
}

func TestProfileFlag(t *testing.T) {
	opts, _, ok := parseArgs([]string{"-profile", "cpu,trace"}, &test.Writer{}, defaultPreferences())
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, opts.profile, performance.ProfileCPU|performance.ProfileTrace)

	_, code, ok := parseArgs([]string{"-profile", "disk"}, &test.Writer{}, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 1)
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}

	_, code, ok := parseArgs([]string{"-help"}, tw, defaultPreferences())
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, code, 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "Keys:"))
}

func TestPreferencesUnavailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("configuration directory cannot be redirected on windows")
	}

	fn := filepath.Join(t.TempDir(), "not-a-directory")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0o644))
	t.Setenv("XDG_CONFIG_HOME", fn)
	t.Setenv("HOME", fn)

	p, err := newPreferences()
	test.ExpectFailure(t, err)
	test.DemandSuccess(t, p != nil)
	test.ExpectEquality(t, p.audio.String(), audioSDL)
	test.ExpectSuccess(t, p.save())
}
