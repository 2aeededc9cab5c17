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

package hardware

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherboy/engine"
)

// number of samples in the ring buffer. must be a power of two.
const ringSize = 8192

// sampleRing is a lock-free ring buffer with a single producer (the emulation
// thread) and a single consumer (the audio thread). Only the consumer writes
// the read index. The producer discards unread samples by publishing a flush
// request, which the consumer applies on its next pop.
type sampleRing struct {
	buf   [ringSize]engine.Sample
	read  atomic.Uint32
	write atomic.Uint32

	// generation in the upper 32 bits and the write index at the time of the
	// flush in the lower 32 bits
	flush atomic.Uint64

	// producer only
	flushGen uint32

	// consumer only
	seenFlush uint64
}

// push a sample. returns false and drops the sample if the ring is full.
func (r *sampleRing) push(s engine.Sample) bool {
	w := r.write.Load()

	// slots discarded by a flush are not reused until the consumer has moved
	// past them
	if w-r.read.Load() >= ringSize {
		return false
	}
	r.buf[w&(ringSize-1)] = s
	r.write.Store(w + 1)
	return true
}

// pop copies as many samples as are available into dest. returns the number of
// samples copied.
func (r *sampleRing) pop(dest []engine.Sample) int {
	rd := r.read.Load()

	if f := r.flush.Load(); f != r.seenFlush {
		r.seenFlush = f
		if pos := uint32(f); int32(pos-rd) > 0 {
			rd = pos
		}
	}

	avail := int(r.write.Load() - rd)
	n := min(avail, len(dest))
	for i := range n {
		dest[i] = r.buf[(rd+uint32(i))&(ringSize-1)]
	}
	r.read.Store(rd + uint32(n))
	return n
}

// clear discards every sample pushed so far. called by the producer.
func (r *sampleRing) clear() {
	r.flushGen++
	r.flush.Store(uint64(r.flushGen)<<32 | uint64(r.write.Load()))
}

// tone frequencies for each key, in the same order as engine.Key
var toneFrequency = [...]float64{
	523.25, // Right
	440.00, // Left
	587.33, // Up
	392.00, // Down
	659.25, // A
	349.23, // B
	293.66, // Select
	783.99, // Start
}

// the amplitude of the generated square wave
const toneAmplitude = 2048

// tone is a square wave generator.
type tone struct {
	phase float64

	// fractional number of samples owed to the output
	acc float64
}

// generate the samples for one scanline.
func (c *Core) generateAudio() {
	if c.sampleRate <= 0 {
		return
	}

	c.tone.acc += float64(c.sampleRate) * CyclesPerScanline / ClockSpeed
	for c.tone.acc >= 1.0 {
		c.tone.acc--
		c.audio.push(c.nextSample())
	}
}

func (c *Core) nextSample() engine.Sample {
	if c.keys == 0 {
		c.tone.phase = 0
		return engine.Sample{}
	}

	// the highest numbered key being held decides the pitch
	var freq float64
	for k := len(toneFrequency) - 1; k >= 0; k-- {
		if c.keys&(1<<k) != 0 {
			freq = toneFrequency[k]
			break
		}
	}

	c.tone.phase += freq / float64(c.sampleRate)
	if c.tone.phase >= 1.0 {
		c.tone.phase -= 1.0
	}

	v := int16(toneAmplitude)
	if c.tone.phase >= 0.5 {
		v = -v
	}

	// Left and Right keys pan the tone
	s := engine.Sample{Left: v, Right: v}
	if c.keys&(1<<engine.KeyLeft) != 0 {
		s.Right /= 2
	}
	if c.keys&(1<<engine.KeyRight) != 0 {
		s.Left /= 2
	}
	return s
}

// CopySamples implements the engine.Engine interface.
func (c *Core) CopySamples(dest []engine.Sample) {
	n := c.audio.pop(dest)
	clear(dest[n:])
}
