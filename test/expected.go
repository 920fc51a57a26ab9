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

package test

import (
	"math"
	"testing"
)

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If v is nil then the test will fail.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If v is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectEquality compares two values of the same comparable type.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()

	if value != expectedValue {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
		return false
	}

	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()

	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: %v does equal %v", value, value, unexpectedValue)
		return false
	}

	return true
}

// ExpectApproximate compares two floating point values and succeeds if the
// difference is no greater than the tolerance.
func ExpectApproximate[T ~float32 | ~float64](t *testing.T, value T, expectedValue T, tolerance float64) bool {
	t.Helper()

	if math.Abs(float64(value)-float64(expectedValue)) > tolerance {
		t.Errorf("approximation test of type %T failed: %v is not within %v of %v", value, value, tolerance, expectedValue)
		return false
	}

	return true
}

// ExpectSlice compares two slices element by element.
func ExpectSlice[T comparable](t *testing.T, value []T, expectedValue []T) bool {
	t.Helper()

	if len(value) != len(expectedValue) {
		t.Errorf("slice test of type %T failed: length %d does not equal %d", value, len(value), len(expectedValue))
		return false
	}

	for i := range value {
		if value[i] != expectedValue[i] {
			t.Errorf("slice test of type %T failed: element %d: %v does not equal %v", value, i, value[i], expectedValue[i])
			return false
		}
	}

	return true
}
