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

// Package viewport calculates the area of a window used to display the
// emulated screen.
package viewport

import "fmt"

// Mode is the method used to scale the emulated screen to the window.
type Mode int

// List of valid Mode values.
const (
	// the screen is stretched to fill the entire window
	ModeEntireWindow Mode = iota

	// the screen is as large as possible while keeping its aspect ratio
	ModeKeepAspectRatio

	// as ModeKeepAspectRatio but the scale is a whole number
	ModeIntegerFactor

	numModes
)

func (m Mode) String() string {
	switch m {
	case ModeEntireWindow:
		return "entire window"
	case ModeKeepAspectRatio:
		return "keep aspect ratio"
	case ModeIntegerFactor:
		return "integer factor"
	}
	return fmt.Sprintf("unknown scaling mode (%d)", int(m))
}

// Next returns the mode that follows m. The last mode is followed by the
// first.
func (m Mode) Next() Mode {
	return (m + 1) % numModes
}

// Valid returns true if m is a known scaling mode.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// Rect is an area of the window, in pixels.
type Rect struct {
	X, Y int32
	W, H int32
}

// Calculate the area of a window with dimensions winW by winH that a screen of
// dimensions srcW by srcH should be drawn to. The area is centered in the
// window.
func Calculate(mode Mode, winW, winH int32, srcW, srcH int32) Rect {
	if mode == ModeEntireWindow || srcW <= 0 || srcH <= 0 {
		return Rect{W: winW, H: winH}
	}

	xFactor := float64(winW) / float64(srcW)
	yFactor := float64(winH) / float64(srcH)

	factor := min(xFactor, yFactor)
	if mode == ModeIntegerFactor {
		factor = float64(int(factor))
		if factor < 1 {
			factor = 1
		}
	}

	w := int32(float64(srcW) * factor)
	h := int32(float64(srcH) * factor)

	return Rect{
		X: (winW - w) / 2,
		Y: (winH - h) / 2,
		W: w,
		H: h,
	}
}
