// This file is part of Petvis.
//
// Petvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Petvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Petvis.  If not, see <https://www.gnu.org/licenses/>.

package sdlvis

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/petvis/glyphs"
	"github.com/jetsetilly/petvis/gui/sdlvis/shaders"
	"github.com/jetsetilly/petvis/protocol"
)

type shaderProgram interface {
	destroy()
	setAttributes(shaderEnvironment)
}

type shaderEnvironment struct {
	// the function used to trigger the shader program
	draw func()

	// vertex projection
	presentationProj [4][4]float32

	// projection to use for texture-to-texture processing
	internalProj [4][4]float32

	// whether to use the internalProj matrix
	useInternalProj bool

	// the texture the shader will work with
	srcTextureID uint32

	// width and height of texture. optional depending on the shader
	width  int32
	height int32
}

type shader struct {
	handle uint32

	// vertex
	projMtx  int32 // uniform
	position int32
	uv       int32
	color    int32

	// fragment
	texture int32 // uniform
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

func (sh *shader) setAttributes(env shaderEnvironment) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, env.srcTextureID)
	gl.Uniform1i(sh.texture, 0)

	if env.useInternalProj {
		gl.UniformMatrix4fv(sh.projMtx, 1, false, &env.internalProj[0][0])
	} else {
		gl.UniformMatrix4fv(sh.projMtx, 1, false, &env.presentationProj[0][0])
	}
	gl.BindSampler(0, 0) // Rely on combined texture/sampler state.

	gl.EnableVertexAttribArray(uint32(sh.uv))
	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.EnableVertexAttribArray(uint32(sh.color))

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(uint32(sh.uv), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(uint32(sh.position), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(uint32(sh.color), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))
}

// compile and link shader programs.
func (sh *shader) createProgram(vertProgram string, fragProgram string) {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	// vertex and fragment glsl source defined in the shaders package
	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := sh.getShaderCompileError(vertHandle); log != "" {
		panic(log)
	}

	gl.CompileShader(fragHandle)
	if log := sh.getShaderCompileError(fragHandle); log != "" {
		panic(log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	// now that the shader program has linked we no longer need the individual
	// shader programs
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	// get references to shader attributes and uniforms variables
	sh.projMtx = gl.GetUniformLocation(sh.handle, gl.Str("ProjMtx"+"\x00"))
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV"+"\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color"+"\x00"))
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))
}

// getShaderCompileError returns the most recent error generated
// by the shader compiler.
func (sh *shader) getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// The maxLength includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}

type guiShader struct {
	shader
}

func newGUIShader() shaderProgram {
	sh := &guiShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(shaders.GUIShader))
	return sh
}

// decayShader folds a fresh glyph render into the persistence accumulator.
type decayShader struct {
	shader

	newFrame int32
	sustain  int32
}

func newDecayShader() shaderProgram {
	sh := &decayShader{}
	sh.createProgram(string(shaders.YFlipVertexShader), string(shaders.DecayFragShader))
	sh.newFrame = gl.GetUniformLocation(sh.handle, gl.Str("NewFrame"+"\x00"))
	sh.sustain = gl.GetUniformLocation(sh.handle, gl.Str("Sustain"+"\x00"))
	return sh
}

func (sh *decayShader) setAttributesArgs(env shaderEnvironment, sustain float32, newFrame uint32) {
	sh.shader.setAttributes(env)
	gl.Uniform1f(sh.sustain, sustain)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, newFrame)
	gl.Uniform1i(sh.newFrame, 1)
}

// presentShader colours the persistence accumulator for display.
type presentShader struct {
	shader

	colouration int32
}

func newPresentShader() shaderProgram {
	sh := &presentShader{}
	sh.createProgram(string(shaders.StraightVertexShader), string(shaders.PresentFragShader))
	sh.colouration = gl.GetUniformLocation(sh.handle, gl.Str("Colouration"+"\x00"))
	return sh
}

func (sh *presentShader) setAttributesArgs(env shaderEnvironment, colouration [4]float32) {
	sh.shader.setAttributes(env)
	gl.Uniform4f(sh.colouration, colouration[0], colouration[1], colouration[2], colouration[3])
}

// glyphShader draws one frame of glyphs with a single instanced draw call.
// Unlike the other shaders it does not take its vertex data from the imgui
// command list, so it carries its own vertex array and buffers.
type glyphShader struct {
	shader

	cellSize  int32
	glyphSize int32

	corner         int32
	positionOffset int32
	texOffset      int32

	vao         uint32
	quadVBO     uint32
	instanceVBO uint32
}

// corners of the unit quad, two triangles. the vertex shader scales these
// to one grid cell.
var glyphQuad = []float32{
	0.0, 0.0,
	1.0, 0.0,
	0.0, 1.0,
	1.0, 0.0,
	1.0, 1.0,
	0.0, 1.0,
}

func newGlyphShader() *glyphShader {
	sh := &glyphShader{}
	sh.createProgram(string(shaders.GlyphVertexShader), string(shaders.GlyphFragShader))

	sh.cellSize = gl.GetUniformLocation(sh.handle, gl.Str("CellSize"+"\x00"))
	sh.glyphSize = gl.GetUniformLocation(sh.handle, gl.Str("GlyphSize"+"\x00"))
	sh.corner = gl.GetAttribLocation(sh.handle, gl.Str("Corner"+"\x00"))
	sh.positionOffset = gl.GetAttribLocation(sh.handle, gl.Str("PositionOffset"+"\x00"))
	sh.texOffset = gl.GetAttribLocation(sh.handle, gl.Str("TexOffset"+"\x00"))

	gl.GenVertexArrays(1, &sh.vao)
	gl.BindVertexArray(sh.vao)

	gl.GenBuffers(1, &sh.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(glyphQuad)*4, gl.Ptr(glyphQuad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(uint32(sh.corner))
	gl.VertexAttribPointerWithOffset(uint32(sh.corner), 2, gl.FLOAT, false, 8, 0)

	gl.GenBuffers(1, &sh.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.instanceVBO)
	gl.EnableVertexAttribArray(uint32(sh.positionOffset))
	gl.VertexAttribPointerWithOffset(uint32(sh.positionOffset), 2, gl.FLOAT, false, 16, 0)
	gl.VertexAttribDivisor(uint32(sh.positionOffset), 1)
	gl.EnableVertexAttribArray(uint32(sh.texOffset))
	gl.VertexAttribPointerWithOffset(uint32(sh.texOffset), 2, gl.FLOAT, false, 16, 8)
	gl.VertexAttribDivisor(uint32(sh.texOffset), 1)

	gl.BindVertexArray(0)

	return sh
}

func (sh *glyphShader) destroy() {
	gl.DeleteBuffers(1, &sh.quadVBO)
	gl.DeleteBuffers(1, &sh.instanceVBO)
	gl.DeleteVertexArrays(1, &sh.vao)
	sh.shader.destroy()
}

// render the instance list using the supplied glyph sheet texture. the
// caller is responsible for attaching the destination framebuffer and
// setting the viewport.
func (sh *glyphShader) render(instances []glyphs.Instance, sheet glyphs.Sheet, sheetTexture uint32) {
	if len(instances) == 0 {
		return
	}

	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sheetTexture)
	gl.Uniform1i(sh.texture, 0)

	gl.Uniform2f(sh.cellSize, glyphs.CellWidth, glyphs.CellHeight)
	gl.Uniform2f(sh.glyphSize, 1.0/float32(sheet.Cols), 1.0/float32(sheet.Rows))

	gl.BindVertexArray(sh.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*16, gl.Ptr(instances), gl.STREAM_DRAW)

	gl.Disable(gl.BLEND)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(glyphQuad)/2), int32(len(instances)))
	gl.Enable(gl.BLEND)

	gl.BindVertexArray(0)
}

// aspect ratio of the glyph grid. used when fitting the display into the
// window.
const displayAspect = float32(protocol.NumCols) / float32(protocol.NumRows)
