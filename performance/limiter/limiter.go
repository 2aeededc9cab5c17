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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(59.73)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"
)

// FpsLimiter will trigger at most framesPerSecond times a second. It does not
// use a goroutine; Wait() sleeps until the next deadline.
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	// the time at which the next call to Wait() should return
	deadline time.Time

	// if the emulation falls behind by more than this amount then the
	// deadline is reset rather than trying to catch up
	maxLag time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero or
// less means there is no limit.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
	} else {
		lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	}
	lim.maxLag = lim.secondsPerFrame * 4
	lim.deadline = time.Time{}
}

// Limit returns the current frames-per-second limit.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait will block until the next frame is due.
func (lim *FpsLimiter) Wait() {
	if lim.secondsPerFrame == 0 {
		return
	}

	now := lim.now()
	if lim.deadline.IsZero() || now.Sub(lim.deadline) > lim.maxLag {
		lim.deadline = now
	}

	lim.deadline = lim.deadline.Add(lim.secondsPerFrame)
	if d := lim.deadline.Sub(now); d > 0 {
		lim.sleep(d)
	}
}

// HasWaited will return true if the next frame is already due and false if it
// is still yet to happen. It does not block and it does not advance the
// deadline.
func (lim *FpsLimiter) HasWaited() bool {
	if lim.secondsPerFrame == 0 || lim.deadline.IsZero() {
		return true
	}
	return !lim.now().Before(lim.deadline.Add(lim.secondsPerFrame))
}
