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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/performance/limiter"
	"github.com/jetsetilly/gopherboy/test"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func TestWait(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	lim := limiter.NewFPSLimiter(50)
	lim.SetClock(clk.now, clk.sleep)

	lim.Wait()
	lim.Wait()
	lim.Wait()
	test.ExpectEquality(t, len(clk.slept), 3)
	for _, d := range clk.slept {
		test.ExpectEquality(t, d, 20*time.Millisecond)
	}

	// work that takes part of the frame shortens the next sleep
	clk.slept = clk.slept[:0]
	clk.t = clk.t.Add(15 * time.Millisecond)
	lim.Wait()
	test.ExpectEquality(t, clk.slept[0], 5*time.Millisecond)

	// work that overruns the frame by a small amount doesn't sleep
	clk.slept = clk.slept[:0]
	clk.t = clk.t.Add(30 * time.Millisecond)
	lim.Wait()
	test.ExpectEquality(t, len(clk.slept), 0)
}

func TestLag(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	lim := limiter.NewFPSLimiter(50)
	lim.SetClock(clk.now, clk.sleep)

	lim.Wait()

	// a very long stall resets the deadline rather than racing to catch up
	clk.t = clk.t.Add(time.Second)
	clk.slept = clk.slept[:0]
	lim.Wait()
	test.ExpectEquality(t, clk.slept[0], 20*time.Millisecond)
}

func TestNoLimit(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	lim := limiter.NewFPSLimiter(0)
	lim.SetClock(clk.now, clk.sleep)

	lim.Wait()
	test.ExpectEquality(t, len(clk.slept), 0)
	test.ExpectSuccess(t, lim.HasWaited())
}
