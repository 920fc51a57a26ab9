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

package sdlplay

import (
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/gui/sdlplay/shaders"
)

// ErrDevice is returned when the device cannot be created.
const ErrDevice = "sdlplay: device: %v"

const (
	floatSize = 4
	indexSize = 4
)

// vertex attributes in location order.
var quadAttributes = []string{"aPosition", "aColor", "aTexCoord", "aTexID"}

// DefaultShaderConfig returns the shader program used to draw the game.
func DefaultShaderConfig() ShaderConfig {
	return ShaderConfig{
		Vertex:     string(shaders.QuadVertexShader),
		Fragment:   string(shaders.QuadFragmentShader),
		Attributes: quadAttributes,
	}
}

// Device implements the batcher.Device interface with OpenGL. The GL context
// must be current when NewDevice() is called.
type Device struct {
	prg *program

	vao uint32
	vbo uint32
	ebo uint32

	projection int32
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(cfg ShaderConfig) (*Device, error) {
	if len(cfg.Attributes) == 0 {
		cfg.Attributes = quadAttributes
	}

	prg, err := newProgram(cfg)
	if err != nil {
		return nil, curated.Errorf(ErrDevice, err)
	}

	dev := &Device{prg: prg}
	dev.projection = prg.uniform("uMatrixProjection")

	gl.GenVertexArrays(1, &dev.vao)
	gl.GenBuffers(1, &dev.vbo)
	gl.GenBuffers(1, &dev.ebo)

	gl.BindVertexArray(dev.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, dev.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, dev.ebo)

	stride := int32(batcher.Stride * floatSize)

	layout := []struct {
		size   int32
		offset int
	}{
		{size: batcher.PositionSize, offset: batcher.PositionOffset},
		{size: batcher.ColorSize, offset: batcher.ColorOffset},
		{size: batcher.TexCoordSize, offset: batcher.TexCoordOffset},
		{size: batcher.TexIDSize, offset: batcher.TexIDOffset},
	}

	for i, l := range layout {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), l.size, gl.FLOAT, false, stride, uintptr(l.offset*floatSize))
	}

	gl.BindVertexArray(0)

	return dev, nil
}

// Destroy releases all GL resources.
func (dev *Device) Destroy() {
	if dev.vbo != 0 {
		gl.DeleteBuffers(1, &dev.vbo)
		dev.vbo = 0
	}
	if dev.ebo != 0 {
		gl.DeleteBuffers(1, &dev.ebo)
		dev.ebo = 0
	}
	if dev.vao != 0 {
		gl.DeleteVertexArrays(1, &dev.vao)
		dev.vao = 0
	}
	dev.prg.destroy()
}

// BeginFrame clears the framebuffer and prepares the device for drawing a
// court of the given size to a framebuffer of the given size.
func (dev *Device) BeginFrame(court geometry.Point, fbWidth int32, fbHeight int32) {
	gl.Viewport(0, 0, fbWidth, fbHeight)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(dev.prg.handle)
	proj := geometry.CourtProjection(court)
	gl.UniformMatrix4fv(dev.projection, 1, false, &proj[0])
}

// UploadVertices implements the batcher.Device interface.
func (dev *Device) UploadVertices(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindVertexArray(dev.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, dev.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STREAM_DRAW)
}

// UploadIndices implements the batcher.Device interface.
func (dev *Device) UploadIndices(data []uint32) {
	if len(data) == 0 {
		return
	}
	gl.BindVertexArray(dev.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, dev.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*indexSize, gl.Ptr(data), gl.STREAM_DRAW)
}

// DrawTriangles implements the batcher.Device interface.
func (dev *Device) DrawTriangles(count int) {
	gl.UseProgram(dev.prg.handle)
	gl.BindVertexArray(dev.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}
