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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/gui/sdlplay/shaders"
)

// ErrHUD is returned when the HUD cannot be created.
const ErrHUD = "sdlplay: hud: %v"

// HUDInfo is the information shown by the HUD.
type HUDInfo struct {
	LeftScore  int
	RightScore int

	// shown in the middle of the window. an empty string shows nothing
	Prompt string

	// shown in the bottom left corner if ShowStats is true
	Stats     string
	ShowStats bool
}

// HUD draws text over the game with Dear ImGui.
type HUD struct {
	plt     *Platform
	context *imgui.Context
	io      imgui.IO

	prg         *program
	fontTexture uint32
	vbo         uint32
	ebo         uint32

	projMtx  int32
	texture  int32
	position int32
	uv       int32
	color    int32
}

const (
	scoreScale  = 4.0
	promptScale = 1.5
)

// NewHUD is the preferred method of initialisation for the HUD type. The
// Platform must have been created first.
func NewHUD(plt *Platform) (*HUD, error) {
	hud := &HUD{
		plt:     plt,
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
	}

	// no imgui.ini file
	hud.io.SetIniFilename("")

	var err error
	hud.prg, err = newProgram(ShaderConfig{
		Vertex:   string(shaders.HUDVertexShader),
		Fragment: string(shaders.HUDFragmentShader),
	})
	if err != nil {
		hud.context.Destroy()
		return nil, curated.Errorf(ErrHUD, err)
	}

	hud.projMtx = hud.prg.uniform("ProjMtx")
	hud.texture = hud.prg.uniform("Texture")
	hud.position = hud.prg.attrib("Position")
	hud.uv = hud.prg.attrib("UV")
	hud.color = hud.prg.attrib("Color")

	gl.GenBuffers(1, &hud.vbo)
	gl.GenBuffers(1, &hud.ebo)

	hud.setupFonts()

	return hud, nil
}

func (hud *HUD) setupFonts() {
	atlas := hud.io.Fonts()
	atlas.AddFontDefault()

	image := atlas.TextureDataAlpha8()
	gl.GenTextures(1, &hud.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, hud.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height), 0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	atlas.SetTextureID(imgui.TextureID(hud.fontTexture))
}

// Destroy releases all GL and imgui resources.
func (hud *HUD) Destroy() {
	if hud.vbo != 0 {
		gl.DeleteBuffers(1, &hud.vbo)
		hud.vbo = 0
	}
	if hud.ebo != 0 {
		gl.DeleteBuffers(1, &hud.ebo)
		hud.ebo = 0
	}
	if hud.fontTexture != 0 {
		gl.DeleteTextures(1, &hud.fontTexture)
		hud.io.Fonts().SetTextureID(0)
		hud.fontTexture = 0
	}
	hud.prg.destroy()
	hud.context.Destroy()
}

// Draw the HUD over whatever has already been drawn to the framebuffer.
func (hud *HUD) Draw(info HUDInfo) {
	w, h := hud.plt.WindowSize()
	hud.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})
	if d := hud.plt.Delta().Seconds(); d > 0 {
		hud.io.SetDeltaTime(float32(d))
	}

	imgui.NewFrame()
	hud.layout(info, float32(w), float32(h))
	imgui.Render()

	hud.render()
}

const overlayFlags = imgui.WindowFlagsNoDecoration |
	imgui.WindowFlagsNoBackground |
	imgui.WindowFlagsNoInputs |
	imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsAlwaysAutoResize

// place a window of text with its pivot at the position.
func overlayText(id string, text string, scale float32, pos imgui.Vec2, pivot imgui.Vec2) {
	imgui.SetNextWindowPosV(pos, imgui.ConditionAlways, pivot)
	imgui.BeginV(id, nil, overlayFlags)
	imgui.SetWindowFontScale(scale)
	imgui.Text(text)
	imgui.End()
}

func (hud *HUD) layout(info HUDInfo, w float32, h float32) {
	overlayText("##leftscore", fmt.Sprintf("%d", info.LeftScore), scoreScale,
		imgui.Vec2{X: w * 0.25, Y: 10}, imgui.Vec2{X: 0.5, Y: 0})
	overlayText("##rightscore", fmt.Sprintf("%d", info.RightScore), scoreScale,
		imgui.Vec2{X: w * 0.75, Y: 10}, imgui.Vec2{X: 0.5, Y: 0})

	if info.Prompt != "" {
		overlayText("##prompt", info.Prompt, promptScale,
			imgui.Vec2{X: w / 2, Y: h * 0.66}, imgui.Vec2{X: 0.5, Y: 0.5})
	}

	if info.ShowStats {
		overlayText("##stats", info.Stats, 1.0,
			imgui.Vec2{X: 10, Y: h - 10}, imgui.Vec2{X: 0, Y: 1})
	}
}

// render translates the imgui draw data to GL commands.
func (hud *HUD) render() {
	displayWidth, displayHeight := hud.plt.WindowSize()
	fbWidth, fbHeight := hud.plt.FramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(displayWidth),
		Y: float32(fbHeight) / float32(displayHeight),
	})

	st := storeGLState()
	defer st.restoreGLState()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, fbWidth, fbHeight)

	// imgui coordinates have the origin in the top left corner
	proj := [4][4]float32{
		{2.0 / float32(displayWidth), 0.0, 0.0, 0.0},
		{0.0, 2.0 / -float32(displayHeight), 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}

	gl.UseProgram(hud.prg.handle)
	gl.Uniform1i(hud.texture, 0)
	gl.UniformMatrix4fv(hud.projMtx, 1, false, &proj[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, hud.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, hud.ebo)

	vertexSize, offsetPos, offsetUV, offsetCol := imgui.VertexBufferLayout()
	gl.EnableVertexAttribArray(uint32(hud.position))
	gl.EnableVertexAttribArray(uint32(hud.uv))
	gl.EnableVertexAttribArray(uint32(hud.color))
	gl.VertexAttribPointerWithOffset(uint32(hud.position), 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetPos))
	gl.VertexAttribPointerWithOffset(uint32(hud.uv), 2, gl.FLOAT, false, int32(vertexSize), uintptr(offsetUV))
	gl.VertexAttribPointerWithOffset(uint32(hud.color), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(offsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		var offset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clip := cmd.ClipRect()
				gl.Scissor(int32(clip.X), fbHeight-int32(clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, offset)
			}
			offset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	gl.DeleteVertexArrays(1, &vao)
}
