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

package cmdline_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/cmdline"
	"github.com/jetsetilly/gopherboy/test"
)

func TestNoFlags(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{})

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ar.Parsed())
	test.ExpectEquality(t, len(ar.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{"-test", "--audio", "oto", "game.gb"})
	testFlag := ar.AddBool("test", false, "test flag")
	audio := ar.AddString("audio", "sdl", "audio backend")

	test.ExpectFailure(t, *testFlag)

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, *audio, "oto")
	test.ExpectEquality(t, len(ar.RemainingArgs()), 1)
	test.ExpectEquality(t, ar.GetArg(0), "game.gb")
}

func TestOnceBool(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{"--dmg", "game.gb"})
	dmg := ar.AddOnceBool("dmg", "force classic model")

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *dmg)
}

func TestOnceBoolRepeated(t *testing.T) {
	tw := &test.Writer{}

	ar := cmdline.Args{Output: tw, Usage: "Usage: gopherboy [--dmg] [rom]"}
	ar.NewArgs([]string{"--dmg", "--dmg"})
	ar.AddOnceBool("dmg", "force classic model")

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseError)
	test.ExpectFailure(t, err)

	expectedUsage := "Usage: gopherboy [--dmg] [rom]\n" +
		"  -dmg\n" +
		"    	force classic model\n"
	test.ExpectEquality(t, tw.String(), expectedUsage)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	ar := cmdline.Args{Output: tw}
	ar.NewArgs([]string{"-help"})

	p, _ := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	ar := cmdline.Args{Output: tw}
	ar.NewArgs([]string{"-help"})
	ar.AddBool("test", true, "test flag")
	ar.AdditionalHelp("more help")

	p, _ := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\nmore help\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestInterspersed(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{"game.gb", "--dmg", "-audio", "oto", "extra"})
	dmg := ar.AddOnceBool("dmg", "force classic model")
	audio := ar.AddString("audio", "sdl", "audio backend")

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *dmg)
	test.ExpectEquality(t, *audio, "oto")
	test.ExpectEquality(t, len(ar.RemainingArgs()), 2)
	test.ExpectEquality(t, ar.GetArg(0), "game.gb")
	test.ExpectEquality(t, ar.GetArg(1), "extra")
	test.ExpectEquality(t, ar.GetArg(2), "")
}

func TestOnceBoolRepeatedAfterArgument(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{"--dmg", "game.gb", "--dmg"})
	ar.AddOnceBool("dmg", "force classic model")

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseError)
	test.ExpectFailure(t, err)
}

func TestTerminator(t *testing.T) {
	ar := cmdline.Args{}
	ar.NewArgs([]string{"a.gb", "--", "--dmg"})
	dmg := ar.AddOnceBool("dmg", "force classic model")

	p, err := ar.Parse()
	test.ExpectEquality(t, p, cmdline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, *dmg)
	test.ExpectEquality(t, len(ar.RemainingArgs()), 2)
	test.ExpectEquality(t, ar.GetArg(1), "--dmg")
}
