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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, wrapError))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.IsAny(io.EOF))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectFailure(t, curated.Has(io.EOF, testError))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("sdlplay: %v", curated.Errorf("sdlplay: %v", "no display"))
	test.ExpectEquality(t, e.Error(), "sdlplay: no display")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))

	f := curated.Errorf(wrapError, "not an error")
	test.ExpectFailure(t, errors.Is(f, io.EOF))
}
