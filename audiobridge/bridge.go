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

// Package audiobridge connects the engine's sample buffer to an audio device
// that pulls samples on its own thread. The Bridge can be used directly by
// devices that ask for a slice of samples (Fill) and by devices that read a
// byte stream (Read).
//
// Samples are copied from the engine only once the engine has been
// initialised. Before then the device is given silence.
package audiobridge

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherboy/engine"
)

// Source is the part of the engine.Engine interface used by the bridge. Both
// functions must be safe to call from the audio thread.
type Source interface {
	IsInited() bool
	CopySamples(dest []engine.Sample)
}

// BytesPerFrame is the size of one stereo frame of 16 bit samples.
const BytesPerFrame = 4

// Bridge pulls samples from a Source.
type Bridge struct {
	src       Source
	maxFrames int

	// scratch buffer used by Read(). allocated once
	samples []engine.Sample

	tap *Tap
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The maxFrames value limits the number of frames returned by a single call
// to Read().
func NewBridge(src Source, maxFrames int) *Bridge {
	return &Bridge{
		src:       src,
		maxFrames: maxFrames,
		samples:   make([]engine.Sample, maxFrames),
	}
}

// SetTap attaches a tap to the bridge. Every sample given to the audio device
// is also pushed to the tap. Should be called before the audio device is
// started.
func (b *Bridge) SetTap(tap *Tap) {
	b.tap = tap
}

// MaxFrames returns the maximum number of frames returned by Read().
func (b *Bridge) MaxFrames() int {
	return b.maxFrames
}

// Fill dest with samples from the engine or with silence if the engine has not
// been initialised.
func (b *Bridge) Fill(dest []engine.Sample) {
	if b.src.IsInited() {
		b.src.CopySamples(dest)
	} else {
		clear(dest)
	}

	if b.tap != nil {
		for _, s := range dest {
			b.tap.push(s)
		}
	}
}

// Read implements the io.Reader interface. Samples are written as interleaved
// 16 bit little-endian stereo. At most MaxFrames() frames are written in one
// call, whatever the length of p.
func (b *Bridge) Read(p []byte) (int, error) {
	frames := min(len(p)/BytesPerFrame, b.maxFrames)
	if frames == 0 {
		return 0, nil
	}

	s := b.samples[:frames]
	b.Fill(s)

	for i, v := range s {
		binary.LittleEndian.PutUint16(p[i*BytesPerFrame:], uint16(v.Left))
		binary.LittleEndian.PutUint16(p[i*BytesPerFrame+2:], uint16(v.Right))
	}

	return frames * BytesPerFrame, nil
}
