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

// Package otoaudio outputs sound using the oto library. The oto player reads
// from an audiobridge.Bridge on its own thread whenever it needs more
// samples.
package otoaudio

import (
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/gopherboy/audiobridge"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// amount of audio buffered by the device
const bufferDuration = 40 * time.Millisecond

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player

	sampleRate int
	paused     bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// device starts playing immediately.
func NewAudio(bridge *audiobridge.Bridge, sampleRate int) (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferDuration,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	aud := &Audio{
		ctx:        ctx,
		player:     ctx.NewPlayer(bridge),
		sampleRate: sampleRate,
	}

	// the player's own buffer is kept to the size of one bridge read so that
	// latency is decided by the context
	aud.player.SetBufferSize(bridge.MaxFrames() * audiobridge.BytesPerFrame)
	aud.player.Play()

	return aud, nil
}

// SampleRate returns the sample rate of the audio device.
func (aud *Audio) SampleRate() int {
	return aud.sampleRate
}

// Paused implements the userinput.AudioOutput interface.
func (aud *Audio) Paused() bool {
	return aud.paused
}

// SetPaused implements the userinput.AudioOutput interface.
func (aud *Audio) SetPaused(paused bool) {
	aud.paused = paused

	var err error
	if paused {
		err = aud.ctx.Suspend()
	} else {
		err = aud.ctx.Resume()
	}
	if err != nil {
		logger.Log(logger.Allow, "otoaudio", err)
	}
}

// Close stops the player.
func (aud *Audio) Close() {
	if err := aud.player.Close(); err != nil {
		logger.Log(logger.Allow, "otoaudio", err)
	}
}
