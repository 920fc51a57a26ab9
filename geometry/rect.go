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

package geometry

import "fmt"

// Point is a pair of integer coordinates. It is also used for sizes and
// boundaries, in which case X is the width and Y is the height.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Position Point
	Size     Point
}

// NewRect is the preferred method of initialisation for the Rect type.
// Negative size components are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	r := Rect{Position: Point{X: x, Y: y}}
	r.Resize(Point{X: w, Y: h})
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("pos %s size %s", r.Position, r.Size)
}

// Move sets the position of the rectangle.
func (r *Rect) Move(position Point) {
	r.Position = position
}

// Resize sets the size of the rectangle.
func (r *Rect) Resize(size Point) {
	r.Size.X = max(size.X, 0)
	r.Size.Y = max(size.Y, 0)
}

// Left edge of the rectangle.
func (r Rect) Left() int {
	return r.Position.X
}

// Right edge of the rectangle.
func (r Rect) Right() int {
	return r.Position.X + r.Size.X
}

// Bottom edge of the rectangle.
func (r Rect) Bottom() int {
	return r.Position.Y
}

// Top edge of the rectangle.
func (r Rect) Top() int {
	return r.Position.Y + r.Size.Y
}

// Centre returns the centre of the rectangle, rounded towards the origin.
func (r Rect) Centre() Point {
	return Point{
		X: r.Position.X + r.Size.X/2,
		Y: r.Position.Y + r.Size.Y/2,
	}
}
