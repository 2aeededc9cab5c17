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
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"golang.org/x/term"

	"github.com/jetsetilly/gopherboy/audiobridge"
	"github.com/jetsetilly/gopherboy/cmdline"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/diagnostics"
	"github.com/jetsetilly/gopherboy/emulation"
	"github.com/jetsetilly/gopherboy/gui/otoaudio"
	"github.com/jetsetilly/gopherboy/gui/sdlaudio"
	"github.com/jetsetilly/gopherboy/gui/sdlplay"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/playmode"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/userinput"
	"github.com/jetsetilly/gopherboy/version"
	"github.com/jetsetilly/gopherboy/wavwriter"
)

// the first line of the usage message
const usage = "Usage: gopherboy [--dmg] [rom]"

const additionalHelp = `Keys:
  arrow keys, X, Z, Backspace, Return    joypad
  Space                                  turbo (hold)
  Tab                                    cycle scaling mode
  Ctrl+R                                 reset
  Ctrl+T                                 toggle model
  Ctrl+P                                 pause
  Ctrl+M                                 mute
  Ctrl+0..9                              save snapshot
  Ctrl+Shift+0..9                        load snapshot
  Ctrl+C                                 debugger break
  Escape                                 debugger break/continue

Boot ROMs (dmg_boot.bin, cgb_boot.bin) and registers.sym are loaded from the
same directory as the executable.`

// maximum number of frames given to the audio device in one go
const bridgeFrames = 2048

// sampleRate of the audio device and of the emulated audio
func sampleRate() int {
	if runtime.GOOS == "windows" {
		return 44100
	}
	return 96000
}

// options from the command line.
type options struct {
	dmg       bool
	log       bool
	wav       string
	audio     string
	fpsCap    bool
	statsview bool
	profile   performance.Profile

	// empty if no program was specified
	path string

	// names of the flags that were given on the command line
	visited map[string]bool
}

// SDL requires that all calls are made from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run returns the exit status of the program.
func run() int {
	pref, err := newPreferences()
	if err != nil {
		logger.Log(logger.Allow, "gopherboy", err)
	}

	opts, code, ok := parseArgs(os.Args[1:], os.Stderr, pref)
	if !ok {
		return code
	}

	fmt.Fprintln(os.Stderr, version.Banner())

	if opts.visited["audio"] || opts.visited["fpscap"] {
		_ = pref.audio.Set(opts.audio)
		_ = pref.fpsCap.Set(opts.fpsCap)
		if err := pref.save(); err != nil {
			logger.Log(logger.Allow, "gopherboy", err)
		}
	}

	if opts.log {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stdout), true)
		} else {
			logger.SetEcho(os.Stdout, true)
		}
	}

	if opts.statsview {
		statsview.Launch(os.Stdout)
	}

	err = performance.RunProfiler(opts.profile, "gopherboy", func() error {
		return launch(opts)
	})
	if err != nil {
		// the diagnostic text has already been shown to the user in a popup
		if !curated.Is(err, diagnostics.FatalDiagnostics) {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
		}
		return 1
	}

	return 0
}

// parseArgs returns the options from the command line. If ok is false then the
// program should exit immediately with the returned status. Preference values
// are used as the default for some flags.
func parseArgs(args []string, output io.Writer, pref *preferences) (options, int, bool) {
	var opts options

	ar := cmdline.Args{
		Output: output,
		Usage:  usage,
	}
	ar.NewArgs(args)
	ar.AdditionalHelp(additionalHelp)

	dmg := ar.AddOnceBool("dmg", "force classic model")
	log := ar.AddBool("log", false, "echo debugging log to stdout")
	wav := ar.AddString("wav", "", "record audio to wav file")
	audio := ar.AddString("audio", pref.audio.String(), "audio backend: sdl or oto")
	fpsCap := ar.AddBool("fpscap", pref.fpsCap.Get().(bool), "cap fps to the refresh rate of the console")
	stats := ar.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := ar.AddString("profile", "none", "run performance profilers: cpu, mem, trace (comma separated)")

	r, err := ar.Parse()
	switch r {
	case cmdline.ParseHelp:
		return opts, 0, false
	case cmdline.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return opts, 1, false
	}

	if len(ar.RemainingArgs()) > 1 {
		fmt.Fprintf(output, "* too many arguments\n")
		ar.PrintUsage()
		return opts, 1, false
	}

	if *audio != audioSDL && *audio != audioOto {
		fmt.Fprintf(output, "* unknown audio backend: %s\n", *audio)
		ar.PrintUsage()
		return opts, 1, false
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
		ar.PrintUsage()
		return opts, 1, false
	}

	opts = options{
		dmg:       *dmg,
		log:       *log,
		wav:       *wav,
		audio:     *audio,
		fpsCap:    *fpsCap,
		statsview: *stats,
		profile:   prf,
		path:      ar.GetArg(0),
		visited:   make(map[string]bool),
	}

	ar.Visit(func(flag string) {
		opts.visited[flag] = true
	})

	return opts, 0, true
}

// launch creates the window and the audio device and runs the emulation until
// the user quits.
func launch(opts options) error {
	scr, err := sdlplay.NewSdlPlay()
	if err != nil {
		return err
	}
	defer scr.Destroy()

	// the interrupt signal is forwarded to the window's event queue
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	done := make(chan bool)
	defer close(done)

	go func() {
		for {
			select {
			case <-intChan:
				scr.Interrupt()
			case <-done:
				return
			}
		}
	}()

	filename := opts.path
	if filename == "" {
		var ok bool
		filename, ok = scr.WaitForFile()
		if !ok {
			return nil
		}
	} else {
		scr.Show()
	}

	rate := sampleRate()

	core := hardware.NewCore()
	core.SetFrameCap(opts.fpsCap)

	bridge := audiobridge.NewBridge(core, bridgeFrames)

	// the tap must be attached before the audio device starts reading from
	// the bridge
	var rec *wavwriter.WavWriter
	if opts.wav != "" {
		tap := audiobridge.NewTap(rate)
		rec, err = wavwriter.New(opts.wav, rate, tap)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Log(logger.Allow, "gopherboy", err)
			}
		}()
		bridge.SetTap(tap)
	}

	// the emulation continues without sound if the audio device can't be
	// opened
	var audio userinput.AudioOutput
	switch opts.audio {
	case audioOto:
		aud, err := otoaudio.NewAudio(bridge, rate)
		if err != nil {
			logger.Log(logger.Allow, "gopherboy", err)
		} else {
			defer aud.Close()
			audio = aud
			logger.Logf(logger.Allow, "gopherboy", "oto audio at %dHz", aud.SampleRate())
		}
	default:
		aud, err := sdlaudio.NewAudio(bridge, rate)
		if err != nil {
			logger.Log(logger.Allow, "gopherboy", err)
		} else {
			defer aud.Close()
			audio = aud

			// the device may not honour the requested rate
			logger.Logf(logger.Allow, "gopherboy", "sdl audio at %dHz", aud.SampleRate())
		}
	}

	session := emulation.NewSession(filename, opts.dmg)

	pm := playmode.NewPlaymode(core, session, scr, audio, rate)
	if rec != nil {
		pm.SetRecorder(rec)
	}

	start := time.Now()
	err = pm.Run()

	fps, accuracy := performance.CalcFPS(core.Frame(), time.Since(start), hardware.FrameRate)
	logger.Logf(logger.Allow, "gopherboy", "%s: %d frames at %.2f fps (%.1f%% of %.2f)",
		core.Model(), core.Frame(), fps, accuracy, hardware.FrameRate)

	return err
}
