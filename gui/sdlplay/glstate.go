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

import "github.com/go-gl/gl/v3.2-core/gl"

// glState is the GL state that the HUD changes. it is restored once the HUD
// has been drawn.
type glState struct {
	program      int32
	texture      int32
	activeTex    int32
	arrayBuffer  int32
	elementArray int32
	vertexArray  int32
	viewport     [4]int32
	scissorBox   [4]int32
	blend        bool
	cullFace     bool
	depthTest    bool
	scissorTest  bool
}

func storeGLState() *glState {
	st := &glState{}
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.texture)
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.activeTex)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.arrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &st.elementArray)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.vertexArray)
	gl.GetIntegerv(gl.VIEWPORT, &st.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.scissorBox[0])
	st.blend = gl.IsEnabled(gl.BLEND)
	st.cullFace = gl.IsEnabled(gl.CULL_FACE)
	st.depthTest = gl.IsEnabled(gl.DEPTH_TEST)
	st.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (st *glState) restoreGLState() {
	gl.UseProgram(uint32(st.program))
	gl.ActiveTexture(uint32(st.activeTex))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.texture))
	gl.BindVertexArray(uint32(st.vertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.arrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(st.elementArray))
	setEnabled(gl.BLEND, st.blend)
	setEnabled(gl.CULL_FACE, st.cullFace)
	setEnabled(gl.DEPTH_TEST, st.depthTest)
	setEnabled(gl.SCISSOR_TEST, st.scissorTest)
	gl.Viewport(st.viewport[0], st.viewport[1], st.viewport[2], st.viewport[3])
	gl.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}
