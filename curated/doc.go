// This file is part of Gopherpong.
//
// Gopherpong is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpong is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpong.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and remember the pattern they were
// created with. The pattern can later be used to identify the error:
//
//	const NotReady = "widget: not ready (%d)"
//
//	e := curated.Errorf(NotReady, 10)
//	if curated.Is(e, NotReady) {
//		...
//	}
//
// Has() is similar to Is() but will also look at any curated errors that were
// used as values when creating the error. In other words, it searches the
// error chain:
//
//	f := curated.Errorf("sdlplay: %v", e)
//	curated.Has(f, NotReady) // true
//	curated.Is(f, NotReady)  // false
//
// Error chains are normalised when printed. Adjacent parts of the chain that
// are identical are only printed once, so wrapping an error with the same
// prefix that it already has is harmless.
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can find wrapped errors that were not created by this
// package.
package curated
