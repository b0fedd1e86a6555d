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
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/petvis/curated"
	"github.com/jetsetilly/petvis/glyphs"
	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/resources"
)

// the glyph sheet image looked for in the resources directory when no path
// is given on the command line.
const sheetFilename = "charsheet.png"

// glyphSheet is the character sheet image uploaded as a GL texture.
type glyphSheet struct {
	Layout    glyphs.Sheet
	TextureID uint32
}

// newGlyphSheet loads the sheet image and uploads it. An empty path means
// look in the resources directory. Requires a current GL context.
func newGlyphSheet(path string) (*glyphSheet, error) {
	if path == "" {
		var err error
		path, err = resources.JoinPath(sheetFilename)
		if err != nil {
			return nil, curated.Errorf("glyphsheet: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("glyphsheet: %v", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, curated.Errorf("glyphsheet: %v", err)
	}

	// the GL upload needs contiguous RGBA pixels
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	sheet := &glyphSheet{
		Layout: glyphs.DefaultSheet,
	}

	sz := rgba.Bounds().Size()
	logger.Logf("glyphsheet", "%s (%dx%d)", path, sz.X, sz.Y)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &sheet.TextureID)
	gl.BindTexture(gl.TEXTURE_2D, sheet.TextureID)

	// nearest filtering. linear sampling would bleed neighbouring glyph
	// tiles into one another at the tile edges
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(rgba.Stride)/4)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(sz.X), int32(sz.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	return sheet, nil
}

func (sheet *glyphSheet) destroy() {
	gl.DeleteTextures(1, &sheet.TextureID)
}
