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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/gopherpong/curated"
)

// sentinal errors.
const (
	ErrShaderCompile = "sdlplay: shader compile: %s"
	ErrShaderLink    = "sdlplay: shader link: %s"
)

// ShaderConfig is the source for a shader program.
type ShaderConfig struct {
	Vertex   string
	Fragment string

	// attribute names bound to locations before linking. the index in the
	// slice is the location
	Attributes []string
}

type program struct {
	handle uint32
}

func (prg *program) destroy() {
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
}

func (prg *program) uniform(name string) int32 {
	return gl.GetUniformLocation(prg.handle, gl.Str(name+"\x00"))
}

func (prg *program) attrib(name string) int32 {
	return gl.GetAttribLocation(prg.handle, gl.Str(name+"\x00"))
}

// compile and link the shader program.
func newProgram(cfg ShaderConfig) (*program, error) {
	vert, err := compileShader(gl.VERTEX_SHADER, cfg.Vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(gl.FRAGMENT_SHADER, cfg.Fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	prg := &program{handle: gl.CreateProgram()}
	gl.AttachShader(prg.handle, vert)
	gl.AttachShader(prg.handle, frag)

	for i, a := range cfg.Attributes {
		gl.BindAttribLocation(prg.handle, uint32(i), gl.Str(a+"\x00"))
	}

	gl.LinkProgram(prg.handle)

	var status int32
	gl.GetProgramiv(prg.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prg.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prg.handle, logLength, nil, gl.Str(log))
		prg.destroy()
		return nil, curated.Errorf(ErrShaderLink, strings.TrimRight(log, "\x00"))
	}

	// the shaders are no longer needed once linked
	gl.DetachShader(prg.handle, vert)
	gl.DetachShader(prg.handle, frag)

	return prg, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(shaderType)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the log length includes the null terminator
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)

		return 0, curated.Errorf(ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}
