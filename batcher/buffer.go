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
)

// DefaultCapacity is the number of elements allocated for both the vertex
// and index data, unless specified otherwise.
const DefaultCapacity = 65536

// Sentinel error patterns.
const (
	ErrCapacity = "batcher: capacity exceeded: %s"
	ErrNilArg   = "batcher: nil argument: %s"
)

// FlushStats records what was sent to the device by a call to Flush().
type FlushStats struct {
	Vertices  int
	Indices   int
	DrawCalls int
}

// Buffer accumulates vertex and index data between calls to Flush().
type Buffer struct {
	vertices []float32
	indices  []uint32

	// the largest index value pushed since the last flush. used to re-base
	// the indices in subsequent calls to PushIndices()
	largest uint32

	last FlushStats
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// The capacity values are the number of float32 and uint32 elements that
// will be allocated.
func NewBuffer(vertexCapacity int, indexCapacity int) *Buffer {
	return &Buffer{
		vertices: make([]float32, 0, max(vertexCapacity, 0)),
		indices:  make([]uint32, 0, max(indexCapacity, 0)),
	}
}

// Destroy releases the host memory used by the buffer. The Buffer should not
// be used after calling Destroy().
func (buf *Buffer) Destroy() {
	buf.vertices = nil
	buf.indices = nil
	buf.largest = 0
}

// VertexCount is the number of float32 elements in the buffer.
func (buf *Buffer) VertexCount() int {
	return len(buf.vertices)
}

// VertexCapacity is the maximum number of float32 elements that can be
// allocated.
func (buf *Buffer) VertexCapacity() int {
	return cap(buf.vertices)
}

// IndexCount is the number of uint32 elements in the buffer.
func (buf *Buffer) IndexCount() int {
	return len(buf.indices)
}

// IndexCapacity is the maximum number of uint32 elements that can be
// allocated.
func (buf *Buffer) IndexCapacity() int {
	return cap(buf.indices)
}

// LargestIndex is the largest index value pushed since the last flush.
func (buf *Buffer) LargestIndex() uint32 {
	return buf.largest
}

// Vertices returns the vertex data currently in the buffer. The returned
// slice is only valid until the next push or flush.
func (buf *Buffer) Vertices() []float32 {
	return buf.vertices
}

// Indices returns the index data currently in the buffer. The returned
// slice is only valid until the next push or flush.
func (buf *Buffer) Indices() []uint32 {
	return buf.indices
}

// LastFlush returns the statistics for the most recent call to Flush().
func (buf *Buffer) LastFlush() FlushStats {
	return buf.last
}

// a push of n elements is accepted only if count+n stays strictly below
// capacity. an empty push always fits
func fits(count int, n int, capacity int) bool {
	if n == 0 {
		return true
	}
	return count+n < capacity
}

func (buf *Buffer) fitsVertices(n int) bool {
	return fits(len(buf.vertices), n, cap(buf.vertices))
}

func (buf *Buffer) fitsIndices(n int) bool {
	return fits(len(buf.indices), n, cap(buf.indices))
}

// PushVertices appends vertex data to the buffer. Either all the data is
// appended or none of it is.
func (buf *Buffer) PushVertices(data []float32) error {
	if !buf.fitsVertices(len(data)) {
		return curated.Errorf(ErrCapacity, "vertices")
	}
	buf.vertices = append(buf.vertices, data...)
	return nil
}

// PushIndices appends index data to the buffer. The indices should be local
// to the vertices of the shape being pushed, ie. starting from zero. They
// are re-based so that they follow on from the largest index previously
// pushed. Either all the data is appended or none of it is.
func (buf *Buffer) PushIndices(data []uint32) error {
	if !buf.fitsIndices(len(data)) {
		return curated.Errorf(ErrCapacity, "indices")
	}
	buf.appendIndices(data)
	return nil
}

// Push appends vertex and index data for a single shape. Neither the vertex
// data nor the index data is appended unless there is room for both.
func (buf *Buffer) Push(vertices []float32, indices []uint32) error {
	if !buf.fitsVertices(len(vertices)) {
		return curated.Errorf(ErrCapacity, "vertices")
	}
	if !buf.fitsIndices(len(indices)) {
		return curated.Errorf(ErrCapacity, "indices")
	}
	buf.vertices = append(buf.vertices, vertices...)
	buf.appendIndices(indices)
	return nil
}

func (buf *Buffer) appendIndices(data []uint32) {
	// the first shape after a flush is not offset. every subsequent shape
	// starts one after the largest index seen so far
	var base uint32
	if buf.largest > 0 {
		base = buf.largest + 1
	}

	for _, i := range data {
		v := i + base
		buf.indices = append(buf.indices, v)
		if v > buf.largest {
			buf.largest = v
		}
	}
}

// Reset empties the buffer without sending anything to the device.
func (buf *Buffer) Reset() {
	buf.vertices = buf.vertices[:0]
	buf.indices = buf.indices[:0]
	buf.largest = 0
}

// Flush sends the contents of the buffer to the device with a single draw
// call and then resets the buffer. An empty buffer does not cause a draw
// call.
func (buf *Buffer) Flush(dev Device) error {
	if dev == nil {
		return curated.Errorf(ErrNilArg, "device")
	}

	buf.last = FlushStats{
		Vertices: len(buf.vertices),
		Indices:  len(buf.indices),
	}

	if len(buf.indices) > 0 {
		dev.UploadVertices(buf.vertices)
		dev.UploadIndices(buf.indices)
		dev.DrawTriangles(len(buf.indices))
		buf.last.DrawCalls = 1
	}

	buf.Reset()

	return nil
}
