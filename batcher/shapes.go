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

package batcher

import (
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
)

// Layout of a single vertex. Every vertex pushed to a Buffer must follow
// this layout:
//
//	x, y, r, g, b, a, u, v, texID
const (
	PositionOffset = 0
	PositionSize   = 2
	ColorOffset    = 2
	ColorSize      = 4
	TexCoordOffset = 6
	TexCoordSize   = 2
	TexIDOffset    = 8
	TexIDSize      = 1

	// number of float32 values in a single vertex
	Stride = 9
)

// Color is a normalised RGBA colour.
type Color struct {
	R, G, B, A float32
}

// List of predefined colours.
var (
	White = Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0}
	Red   = Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0}
	Dim   = Color{R: 0.3, G: 0.3, B: 0.3, A: 1.0}
)

// the two triangles of a quad share the diagonal between the second and
// third vertices
var quadIndices = [6]uint32{
	0, 1, 2,
	1, 2, 3,
}

// Rect pushes a solid coloured rectangle to the buffer as four vertices and
// six indices.
func Rect(buf *Buffer, r geometry.Rect, col Color) error {
	if buf == nil {
		return curated.Errorf(ErrNilArg, "buffer")
	}

	x0 := float32(r.Left())
	y0 := float32(r.Bottom())
	x1 := float32(r.Right())
	y1 := float32(r.Top())

	vertices := [4 * Stride]float32{
		x0, y0, col.R, col.G, col.B, col.A, 0.0, 0.0, 0.0,
		x1, y0, col.R, col.G, col.B, col.A, 1.0, 0.0, 0.0,
		x0, y1, col.R, col.G, col.B, col.A, 0.0, 1.0, 0.0,
		x1, y1, col.R, col.G, col.B, col.A, 1.0, 1.0, 0.0,
	}

	return buf.Push(vertices[:], quadIndices[:])
}
