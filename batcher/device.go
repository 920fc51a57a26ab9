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

// Device is the graphics device that a Buffer is flushed to.
type Device interface {
	// UploadVertices replaces the contents of the device's vertex buffer
	UploadVertices(data []float32)

	// UploadIndices replaces the contents of the device's index buffer
	UploadIndices(data []uint32)

	// DrawTriangles draws an indexed triangle list made from the first count
	// entries in the index buffer
	DrawTriangles(count int)
}
