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

// Package sdlaudio outputs sound using the SDL audio queue. Samples are
// pulled from an audiobridge.Bridge by a feeder goroutine and queued on the
// audio device.
package sdlaudio

import (
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/audiobridge"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// the number of frames in each buffer given to the audio device. the value
// has been found through trial and error and is not critical
const bufferLength = 512

// the number of buffers that the feeder tries to keep queued. more buffers
// means more latency but less chance of running dry
const queuedBuffers = 3

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	bridge *audiobridge.Bridge

	// buffer is only accessed by the feeder goroutine
	buffer []byte

	paused atomic.Bool

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// device starts playing immediately.
func NewAudio(bridge *audiobridge.Bridge, sampleRate int) (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		bridge: bridge,
		buffer: make([]byte, bufferLength*audiobridge.BytesPerFrame),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	go aud.feeder()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SampleRate returns the sample rate of the audio device.
func (aud *Audio) SampleRate() int {
	return int(aud.spec.Freq)
}

func (aud *Audio) feeder() {
	defer close(aud.done)

	dur := time.Duration(float64(time.Second) * float64(bufferLength) / float64(aud.spec.Freq))
	tck := time.NewTicker(dur)
	defer tck.Stop()

	target := uint32(len(aud.buffer) * queuedBuffers)

	for {
		select {
		case <-aud.quit:
			return
		case <-tck.C:
		}

		if aud.paused.Load() {
			continue
		}

		for sdl.GetQueuedAudioSize(aud.id) < target {
			n, _ := aud.bridge.Read(aud.buffer)
			if n == 0 {
				break
			}
			if err := sdl.QueueAudio(aud.id, aud.buffer[:n]); err != nil {
				logger.Log(logger.Allow, "sdlaudio", err)
				break
			}
		}
	}
}

// Paused implements the userinput.AudioOutput interface.
func (aud *Audio) Paused() bool {
	return aud.paused.Load()
}

// SetPaused implements the userinput.AudioOutput interface.
func (aud *Audio) SetPaused(paused bool) {
	aud.paused.Store(paused)
	sdl.PauseAudioDevice(aud.id, paused)
	if paused {
		sdl.ClearQueuedAudio(aud.id)
	}
}

// Close stops the feeder and closes the audio device.
func (aud *Audio) Close() {
	close(aud.quit)
	<-aud.done
	sdl.CloseAudioDevice(aud.id)
}
