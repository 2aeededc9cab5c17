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

// Package performance contains helper functions relating to performance.
//
// RunProfiler() wraps a function and generates the requested profile types
// while it runs. It does not limit the amount of time the function runs for
// so it is useful for real-world situations, such as a normal play session.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value, as compared to the refresh rate of the console. Not suitable for
// "live" FPS monitoring.
package performance
