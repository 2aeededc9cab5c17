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

// Package cmdline is a wrapper for the flag package in the Go standard
// library. Whereas, with flag.FlagSet you call Parse() with the array of
// strings as the only argument, with cmdline you first NewArgs() with the
// array of arguments and then Parse() with no arguments. For example (note
// that no error handling of the Parse() function is shown here):
//
//	ar := cmdline.Args{Output: os.Stdout, Usage: "Usage: gopherboy [--dmg] [rom]"}
//	ar.NewArgs(os.Args[1:])
//	dmg := ar.AddOnceBool("dmg", "force the classic model")
//	_, _ = ar.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// AddOnceBool() differs from AddBool() in that specifying the flag more than
// once on the command line is a parse error.
//
// Flags can be specified with one or two leading dashes, as with the flag
// package.
package cmdline
