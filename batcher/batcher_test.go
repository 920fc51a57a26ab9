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

package batcher_test

import (
	"testing"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/test"
)

// device records everything that is sent to it.
type device struct {
	vertices  []float32
	indices   []uint32
	drawCalls int
	drawCount int
}

func (dev *device) UploadVertices(data []float32) {
	dev.vertices = append(dev.vertices[:0], data...)
}

func (dev *device) UploadIndices(data []uint32) {
	dev.indices = append(dev.indices[:0], data...)
}

func (dev *device) DrawTriangles(count int) {
	dev.drawCalls++
	dev.drawCount = count
}

func TestTwoRects(t *testing.T) {
	buf := batcher.NewBuffer(1000, 1000)

	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.Red)
	test.ExpectSuccess(t, err)
	err = batcher.Rect(buf, geometry.NewRect(20, 20, 10, 10), batcher.Red)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, buf.VertexCount(), 72)
	test.ExpectEquality(t, buf.IndexCount(), 12)
	test.ExpectSlice(t, buf.Indices(), []uint32{0, 1, 2, 1, 2, 3, 4, 5, 6, 5, 6, 7})
	test.ExpectEquality(t, buf.LargestIndex(), uint32(7))

	// first vertex of second rectangle
	v := buf.Vertices()[4*batcher.Stride:]
	test.ExpectSlice(t, v[:batcher.Stride], []float32{20, 20, 1, 0, 0, 1, 0, 0, 0})

	// last vertex of second rectangle
	v = buf.Vertices()[7*batcher.Stride:]
	test.ExpectSlice(t, v[:batcher.Stride], []float32{30, 30, 1, 0, 0, 1, 1, 1, 0})
}

func TestRebasing(t *testing.T) {
	buf := batcher.NewBuffer(batcher.DefaultCapacity, batcher.DefaultCapacity)

	const n = 50
	for i := 0; i < n; i++ {
		err := batcher.Rect(buf, geometry.NewRect(i, i*2, 5, 7), batcher.White)
		test.ExpectSuccess(t, err)
	}

	// every index of rectangle k must refer to one of the vertices of that
	// rectangle
	idx := buf.Indices()
	for k := 0; k < n; k++ {
		for _, i := range idx[k*6 : k*6+6] {
			if i < uint32(4*k) || i >= uint32(4*k+4) {
				t.Fatalf("rectangle %d has index %d outside of its vertices", k, i)
			}
		}
	}

	// and the vertex referenced by the first index of each rectangle must be
	// the bottom-left corner of that rectangle
	vtx := buf.Vertices()
	for k := 0; k < n; k++ {
		i := idx[k*6]
		test.ExpectEquality(t, vtx[int(i)*batcher.Stride], float32(k))
		test.ExpectEquality(t, vtx[int(i)*batcher.Stride+1], float32(k*2))
	}
}

func TestCapacity(t *testing.T) {
	// room for exactly one rectangle. the capacity test is conservative so
	// the capacity must be one greater than the size of a rectangle
	buf := batcher.NewBuffer(4*batcher.Stride+1, 7)

	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, err)

	vtx := append([]float32{}, buf.Vertices()...)
	idx := append([]uint32{}, buf.Indices()...)

	err = batcher.Rect(buf, geometry.NewRect(10, 10, 10, 10), batcher.White)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, batcher.ErrCapacity))

	// nothing has changed
	test.ExpectEquality(t, buf.VertexCount(), 4*batcher.Stride)
	test.ExpectEquality(t, buf.IndexCount(), 6)
	test.ExpectSlice(t, buf.Vertices(), vtx)
	test.ExpectSlice(t, buf.Indices(), idx)
	test.ExpectEquality(t, buf.LargestIndex(), uint32(3))
}

func TestCapacityExact(t *testing.T) {
	// a push that would fill the buffer exactly is rejected
	buf := batcher.NewBuffer(4*batcher.Stride, 6)
	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, buf.VertexCount(), 0)
	test.ExpectEquality(t, buf.IndexCount(), 0)
}

func TestPushAtomicity(t *testing.T) {
	// plenty of room for vertices but not for indices. a failed rectangle
	// must not leave its vertices behind
	buf := batcher.NewBuffer(1000, 8)

	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, err)
	err = batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, curated.Is(err, batcher.ErrCapacity))
	test.ExpectEquality(t, buf.VertexCount(), 4*batcher.Stride)
	test.ExpectEquality(t, buf.IndexCount(), 6)

	// individual pushes are also all or nothing
	err = buf.PushVertices(make([]float32, 1000))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, buf.VertexCount(), 4*batcher.Stride)

	err = buf.PushIndices([]uint32{0, 1})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, buf.IndexCount(), 6)

	err = buf.PushIndices([]uint32{0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, buf.IndexCount(), 7)
	test.ExpectEquality(t, buf.Indices()[6], uint32(4))
}

func TestFlush(t *testing.T) {
	buf := batcher.NewBuffer(1000, 1000)
	dev := &device{}

	// flushing an empty buffer does not draw anything
	err := buf.Flush(dev)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dev.drawCalls, 0)
	test.ExpectEquality(t, buf.LastFlush().DrawCalls, 0)

	for i := 0; i < 3; i++ {
		err = batcher.Rect(buf, geometry.NewRect(i*20, 0, 10, 10), batcher.White)
		test.ExpectSuccess(t, err)
	}

	err = buf.Flush(dev)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dev.drawCalls, 1)
	test.ExpectEquality(t, dev.drawCount, 18)
	test.ExpectEquality(t, len(dev.vertices), 3*4*batcher.Stride)
	test.ExpectEquality(t, len(dev.indices), 18)
	test.ExpectEquality(t, buf.LastFlush(), batcher.FlushStats{Vertices: 108, Indices: 18, DrawCalls: 1})

	// buffer is empty after the flush
	test.ExpectEquality(t, buf.VertexCount(), 0)
	test.ExpectEquality(t, buf.IndexCount(), 0)
	test.ExpectEquality(t, buf.LargestIndex(), uint32(0))

	// and behaves as if it were new
	err = batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, err)
	test.ExpectSlice(t, buf.Indices(), []uint32{0, 1, 2, 1, 2, 3})

	err = buf.Flush(nil)
	test.ExpectSuccess(t, curated.Is(err, batcher.ErrNilArg))
}

func TestNilBuffer(t *testing.T) {
	err := batcher.Rect(nil, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, curated.Is(err, batcher.ErrNilArg))
}

func TestDestroy(t *testing.T) {
	buf := batcher.NewBuffer(100, 100)
	buf.Destroy()
	test.ExpectEquality(t, buf.VertexCapacity(), 0)
	test.ExpectEquality(t, buf.IndexCapacity(), 0)

	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectFailure(t, err)
}

func TestEmptyPush(t *testing.T) {
	// an empty push is accepted even when there is no room left
	buf := batcher.NewBuffer(0, 0)
	test.ExpectSuccess(t, buf.PushVertices(nil))
	test.ExpectSuccess(t, buf.PushIndices([]uint32{}))
	test.ExpectSuccess(t, buf.Push(nil, nil))

	buf = batcher.NewBuffer(100, 100)
	buf.Destroy()
	test.ExpectSuccess(t, buf.Push(nil, nil))
	test.ExpectEquality(t, buf.VertexCount(), 0)
	test.ExpectEquality(t, buf.IndexCount(), 0)

	// and doesn't change a full buffer
	buf = batcher.NewBuffer(37, 7)
	err := batcher.Rect(buf, geometry.NewRect(0, 0, 10, 10), batcher.White)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, buf.Push(nil, nil))
	test.ExpectEquality(t, buf.VertexCount(), 36)
	test.ExpectEquality(t, buf.IndexCount(), 6)
	test.ExpectEquality(t, buf.LargestIndex(), uint32(3))
}
