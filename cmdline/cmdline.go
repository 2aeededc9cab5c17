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

package cmdline

import (
	"flag"
	"fmt"
	"io"
)

// Args provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Args struct {
	// where to print output (help messages etc)
	Output io.Writer

	// the first line of any help or usage message. if empty the flag package
	// default of "Usage:" is used
	Usage string

	// whether Parse() has been called since the last NewArgs()
	parsed bool

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args []string

	// arguments that aren't flags, in the order they appear
	positional []string

	additionalHelp string
}

// NewArgs with a string of arguments (from the command line for example).
func (ar *Args) NewArgs(args []string) {
	ar.args = args
	ar.flags = flag.NewFlagSet("", flag.ContinueOnError)
	ar.positional = nil
	ar.parsed = false
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (ar *Args) AdditionalHelp(help string) {
	ar.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since a call to
// NewArgs(). Note that Args is considered to be Parsed() even if Parse()
// results in an error.
func (ar *Args) Parsed() bool {
	return ar.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value. the
	// usage message has been printed.
	ParseError
)

// Parse the arguments. Returns a value of ParseResult. The idiomatic usage is
// as follows:
//
//	r, err := ar.Parse()
//	switch r {
//	case ParseHelp:
//		// help message has already been printed
//		return 0
//	case ParseError:
//		// usage message has already been printed
//		printError(err)
//		return 1
//	}
func (ar *Args) Parse() (ParseResult, error) {
	ar.parsed = true

	// output from the flag package is captured and discarded. help and usage
	// messages are written by the helpWriter
	hw := &helpWriter{}
	ar.flags.SetOutput(hw)

	err := ar.parse()
	if err != nil {
		if err == flag.ErrHelp {
			ar.PrintHelp()
			return ParseHelp, nil
		}
		ar.PrintUsage()
		return ParseError, err
	}

	return ParseContinue, nil
}

// parse the argument list. flags may appear after positional arguments. an
// argument of "--" ends flag parsing and everything after it is positional.
func (ar *Args) parse() error {
	args := ar.args

	for {
		err := ar.flags.Parse(args)
		if err != nil {
			return err
		}

		rest := ar.flags.Args()
		if len(rest) == 0 {
			return nil
		}

		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			ar.positional = append(ar.positional, rest...)
			return nil
		}

		ar.positional = append(ar.positional, rest[0])
		args = rest[1:]
	}
}

// PrintUsage writes the usage line and the list of flags to Output. It can be
// used when the caller finds a problem with the arguments that Parse() cannot
// detect, for example too many remaining arguments.
func (ar *Args) PrintUsage() {
	ar.printDefaults("")
}

// PrintHelp is like PrintUsage but also writes any additional help.
func (ar *Args) PrintHelp() {
	ar.printDefaults(ar.additionalHelp)
}

func (ar *Args) printDefaults(additionalHelp string) {
	if ar.Output == nil {
		return
	}
	hw := &helpWriter{}
	ar.flags.SetOutput(hw)
	ar.flags.PrintDefaults()
	hw.Help(ar.Output, ar.Usage, additionalHelp)
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags.
func (ar *Args) RemainingArgs() []string {
	return ar.positional
}

// GetArg returns the numbered argument that isn't a flag.
func (ar *Args) GetArg(i int) string {
	if i < 0 || i >= len(ar.positional) {
		return ""
	}
	return ar.positional[i]
}

// AddBool flag for next call to Parse().
func (ar *Args) AddBool(name string, value bool, usage string) *bool {
	return ar.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (ar *Args) AddString(name string, value string, usage string) *string {
	return ar.flags.String(name, value, usage)
}

// AddOnceBool adds a boolean flag that defaults to false and which can be
// specified at most once. Specifying it twice causes Parse() to return
// ParseError.
func (ar *Args) AddOnceBool(name string, usage string) *bool {
	v := false
	ar.flags.Var(&onceBool{value: &v}, name, usage)
	return &v
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (ar *Args) Visit(fn func(flag string)) {
	ar.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// onceBool implements the flag.Value interface.
type onceBool struct {
	value *bool
	set   bool
}

func (b *onceBool) String() string {
	if b.value == nil {
		return "false"
	}
	return fmt.Sprintf("%v", *b.value)
}

func (b *onceBool) Set(s string) error {
	if b.set {
		return fmt.Errorf("specified more than once")
	}
	b.set = true

	switch s {
	case "true", "1", "t", "T", "TRUE", "True":
		*b.value = true
	case "false", "0", "f", "F", "FALSE", "False":
		*b.value = false
	default:
		return fmt.Errorf("not a boolean value")
	}
	return nil
}

// IsBoolFlag means the flag can be specified without a value.
func (b *onceBool) IsBoolFlag() bool {
	return true
}
