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

// apply the matrix to a two dimensional point.
func project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestCourtProjection(t *testing.T) {
	m := geometry.CourtProjection(geometry.Point{X: 1024, Y: 768})

	x, y := project(m, 0, 0)
	test.ExpectApproximate(t, x, -1.0, 0.0001)
	test.ExpectApproximate(t, y, -1.0, 0.0001)

	x, y = project(m, 1024, 768)
	test.ExpectApproximate(t, x, 1.0, 0.0001)
	test.ExpectApproximate(t, y, 1.0, 0.0001)

	x, y = project(m, 512, 384)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, y, 0.0, 0.0001)

	test.ExpectApproximate(t, m[10], -1.0, 0.0001)
	test.ExpectApproximate(t, m[14], 0.0, 0.0001)
	test.ExpectApproximate(t, m[15], 1.0, 0.0001)
}
