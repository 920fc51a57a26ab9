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

package geometry_test

import (
	"testing"

	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/test"
)

func TestRect(t *testing.T) {
	r := geometry.NewRect(10, 20, 30, -5)
	test.ExpectEquality(t, r.Size, geometry.Point{X: 30, Y: 0})

	r.Resize(geometry.Point{X: 16, Y: 128})
	r.Move(geometry.Point{X: 16, Y: 100})
	test.ExpectEquality(t, r.Left(), 16)
	test.ExpectEquality(t, r.Right(), 32)
	test.ExpectEquality(t, r.Bottom(), 100)
	test.ExpectEquality(t, r.Top(), 228)
	test.ExpectEquality(t, r.Centre(), geometry.Point{X: 24, Y: 164})
}

func TestOverlaps(t *testing.T) {
	a := geometry.NewRect(0, 0, 10, 10)
	b := geometry.NewRect(5, 5, 10, 10)
	c := geometry.NewRect(10, 0, 10, 10)
	d := geometry.NewRect(0, 20, 10, 10)

	test.ExpectSuccess(t, geometry.Overlaps(a, b))

	// sharing an edge is not an overlap
	test.ExpectFailure(t, geometry.Overlaps(a, c))
	test.ExpectSuccess(t, geometry.OverlapsY(a, c))
	test.ExpectFailure(t, geometry.OverlapsX(a, c))

	test.ExpectSuccess(t, geometry.OverlapsX(a, d))
	test.ExpectFailure(t, geometry.OverlapsY(a, d))
	test.ExpectFailure(t, geometry.Overlaps(a, d))

	// containment
	e := geometry.NewRect(2, 2, 2, 2)
	test.ExpectSuccess(t, geometry.Overlaps(a, e))
}

func TestOverlapSymmetry(t *testing.T) {
	var rects []geometry.Rect
	for x := -10; x <= 10; x += 5 {
		for y := -10; y <= 10; y += 5 {
			for _, sz := range []int{0, 3, 10} {
				rects = append(rects, geometry.NewRect(x, y, sz, sz+2))
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			if geometry.Overlaps(a, b) != geometry.Overlaps(b, a) {
				t.Fatalf("overlap not symmetric for %s and %s", a, b)
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	bound := geometry.Point{X: 100, Y: 50}

	test.ExpectFailure(t, geometry.OutOfBounds(geometry.NewRect(10, 10, 10, 10), bound))
	test.ExpectSuccess(t, geometry.OutOfBounds(geometry.NewRect(0, 10, 10, 10), bound))
	test.ExpectSuccess(t, geometry.OutOfBounds(geometry.NewRect(10, 0, 10, 10), bound))
	test.ExpectSuccess(t, geometry.OutOfBounds(geometry.NewRect(10, 40, 10, 10), bound))

	// the x-axis test uses the width of the rectangle. a wide but short
	// rectangle touching the right edge is out of bounds
	test.ExpectSuccess(t, geometry.OutOfBounds(geometry.NewRect(60, 10, 40, 5), bound))

	// and a narrow but tall rectangle near the right edge is not
	test.ExpectFailure(t, geometry.OutOfBounds(geometry.NewRect(85, 5, 10, 40), bound))
}

func TestClampY(t *testing.T) {
	bound := geometry.Point{X: 100, Y: 50}

	r := geometry.NewRect(10, -5, 10, 20)
	geometry.ClampY(&r, bound)
	test.ExpectEquality(t, r.Position.Y, 0)

	r.Move(geometry.Point{X: 10, Y: 45})
	geometry.ClampY(&r, bound)
	test.ExpectEquality(t, r.Position.Y, 30)

	r.Move(geometry.Point{X: 10, Y: 15})
	geometry.ClampY(&r, bound)
	test.ExpectEquality(t, r.Position.Y, 15)
}
