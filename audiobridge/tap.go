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

package audiobridge

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherboy/engine"
)

// Tap is a copy of the samples given to the audio device. The audio thread
// pushes to the tap and one other goroutine drains it. The audio thread is
// never blocked: if the tap is full the sample is dropped.
type Tap struct {
	buf  []engine.Sample
	mask uint32

	read    atomic.Uint32
	write   atomic.Uint32
	dropped atomic.Uint64
}

// NewTap is the preferred method of initialisation for the Tap type. The size
// is rounded up to the next power of two.
func NewTap(size int) *Tap {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Tap{
		buf:  make([]engine.Sample, n),
		mask: uint32(n - 1),
	}
}

func (t *Tap) push(s engine.Sample) {
	w := t.write.Load()
	if w-t.read.Load() > t.mask {
		t.dropped.Add(1)
		return
	}
	t.buf[w&t.mask] = s
	t.write.Store(w + 1)
}

// Drain copies waiting samples into dest and returns the number of samples
// copied.
func (t *Tap) Drain(dest []engine.Sample) int {
	r := t.read.Load()
	n := min(int(t.write.Load()-r), len(dest))
	for i := range n {
		dest[i] = t.buf[(r+uint32(i))&t.mask]
	}
	t.read.Store(r + uint32(n))
	return n
}

// Dropped returns the number of samples that have been dropped because the tap
// was full.
func (t *Tap) Dropped() uint64 {
	return t.dropped.Load()
}
