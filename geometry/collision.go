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

// OverlapsX returns true if the horizontal spans of the rectangles overlap.
// Rectangles that only share an edge do not overlap.
func OverlapsX(a, b Rect) bool {
	return a.Left() < b.Right() && a.Right() > b.Left()
}

// OverlapsY returns true if the vertical spans of the rectangles overlap.
func OverlapsY(a, b Rect) bool {
	return a.Bottom() < b.Top() && a.Top() > b.Bottom()
}

// Overlaps returns true if the rectangles overlap on both axes.
func Overlaps(a, b Rect) bool {
	return OverlapsX(a, b) && OverlapsY(a, b)
}

// OutOfBounds returns true if the rectangle touches or crosses any edge of
// the area (0, 0) to bound.
func OutOfBounds(a Rect, bound Point) bool {
	return a.Left() <= 0 || a.Right() >= bound.X ||
		a.Bottom() <= 0 || a.Top() >= bound.Y
}

// ClampY moves the rectangle vertically so that it lies inside the
// area (0, 0) to bound. If the rectangle is taller than the area it is
// placed at the bottom.
func ClampY(a *Rect, bound Point) {
	if a.Top() >= bound.Y {
		a.Position.Y = bound.Y - a.Size.Y
	}
	if a.Bottom() <= 0 {
		a.Position.Y = 0
	}
}
