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

// Package shaders embeds the GLSL sources used by the sdlvis renderer.
package shaders

import _ "embed"

//go:embed "straight.vert"
var StraightVertexShader []byte

//go:embed "yflip.vert"
var YFlipVertexShader []byte

//go:embed "gui.frag"
var GUIShader []byte

//go:embed "glyph.vert"
var GlyphVertexShader []byte

//go:embed "glyph.frag"
var GlyphFragShader []byte

//go:embed "decay.frag"
var DecayFragShader []byte

//go:embed "present.frag"
var PresentFragShader []byte
