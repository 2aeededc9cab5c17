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

// Package wavwriter records the audio given to the audio device to a WAV file.
// Samples are collected from an audiobridge.Tap and written to disk as they
// are drained, so memory use does not grow with the length of the recording.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopherboy/audiobridge"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/logger"
)

const (
	bitDepth    = 16
	numChannels = 2

	// PCM audio format in the WAV header
	formatPCM = 1

	// number of samples drained from the tap at a time
	chunkSize = 1024
)

// WavWriter drains an audiobridge.Tap to a WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	tap      *audiobridge.Tap

	samples []engine.Sample
	buf     *audio.IntBuffer

	written int
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is created immediately.
func New(filename string, sampleRate int, tap *audiobridge.Tap) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, numChannels, formatPCM),
		tap:      tap,
		samples:  make([]engine.Sample, chunkSize),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: numChannels,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, 0, chunkSize*numChannels),
			SourceBitDepth: bitDepth,
		},
	}

	return aw, nil
}

// Flush writes all samples waiting in the tap to the file.
func (aw *WavWriter) Flush() error {
	for {
		n := aw.tap.Drain(aw.samples)
		if n == 0 {
			return nil
		}

		aw.buf.Data = aw.buf.Data[:0]
		for _, s := range aw.samples[:n] {
			aw.buf.Data = append(aw.buf.Data, int(s.Left), int(s.Right))
		}

		if err := aw.enc.Write(aw.buf); err != nil {
			return curated.Errorf("wavwriter: %v", err)
		}
		aw.written += n
	}
}

// Close flushes the remaining samples and finalises the WAV file.
func (aw *WavWriter) Close() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if err := aw.Flush(); err != nil {
		return err
	}

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", aw.written, aw.filename)
	if d := aw.tap.Dropped(); d > 0 {
		logger.Logf(logger.Allow, "wavwriter", "%d samples were dropped", d)
	}

	return nil
}
