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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with Is():
//
//	e := curated.Errorf("snapshot: %v", err)
//	if curated.Is(e, "snapshot: %v") {
//		...
//	}
//
// Has() is similar but looks for the pattern anywhere in the error chain.
//
// Patterns that callers are expected to test for are exported as string
// constants by the package that raises the error. For example, the
// diagnostics package exports FatalDiagnostics.
//
// The Error() implementation normalises the chain by removing adjacent
// duplicate parts, where parts are separated by the ": " sub-string. This
// means a function can wrap an error with its own prefix without worrying
// whether the callee has already done so:
//
//	hardware: hardware: cannot open boot ROM
//
// is printed as:
//
//	hardware: cannot open boot ROM
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can see any error passed as a placeholder value.
package curated
