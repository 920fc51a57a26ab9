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

// Package batcher accumulates the geometry for an entire frame and sends it
// to the graphics device as a single upload and a single draw call.
//
// Shapes are pushed into a Buffer with local indices starting at zero. The
// Buffer re-bases those indices so that they refer to the vertices pushed
// alongside them, without the caller having to keep track of how many
// vertices are already in the buffer:
//
//	buf := batcher.NewBuffer(batcher.DefaultCapacity, batcher.DefaultCapacity)
//	batcher.Rect(buf, paddle, batcher.White)
//	batcher.Rect(buf, ball, batcher.White)
//	buf.Flush(device)
//
// Capacity is fixed when the Buffer is created. A push that does not fit is
// rejected in its entirety with an ErrCapacity error and the buffer is left
// unchanged. Note that the capacity check is conservative: a push is rejected
// if it would fill the buffer exactly, so at most capacity-1 elements are
// ever held.
//
// The Device interface is the hand-off to the graphics API. Flush() is the
// only function in the package that calls it.
package batcher
