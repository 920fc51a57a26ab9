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

// Package test contains helper functions to remove common boilerplate from
// the tests in the rest of the project.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. A bool is a success if it is true and an error is a
// success if it is nil. The untyped nil is always considered a success
// because that is how errors usually work.
//
// ExpectEquality() compares like-typed values and ExpectApproximate() compares
// floating point values within a tolerance.
//
// The Writer type implements io.Writer and should be used to capture output
// for comparison with Writer.Compare().
package test
