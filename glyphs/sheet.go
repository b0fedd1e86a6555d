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

// Package glyphs maps glyph codes from the wire protocol to locations on
// the glyph sheet and builds the per-cell instance data consumed by the GPU
// draw call. Everything in this package is pure arithmetic; the GL specific
// work lives in the gui packages.
package glyphs

import (
	"github.com/jetsetilly/petvis/protocol"
)

// Sheet describes the layout of the glyph sheet image: a grid of glyph
// tiles, one row group per character set.
type Sheet struct {
	// number of glyph tiles across and down the sheet
	Cols int
	Rows int

	// the tile row where each character set begins
	GraphicsRowOffset int
	TextRowOffset     int
}

// DefaultSheet is the layout of the PetASCII glyph sheet asset shipped with
// the application: 16x32 tiles, graphics set in the top half, text set in
// the bottom half.
var DefaultSheet = Sheet{
	Cols:              16,
	Rows:              32,
	GraphicsRowOffset: 0,
	TextRowOffset:     16,
}

// Coords returns the tile column and row on the sheet for the given glyph
// code and character set.
func (sh Sheet) Coords(code byte, set protocol.CharSet) (col int, row int) {
	rowOffset := sh.GraphicsRowOffset
	if set == protocol.Text {
		rowOffset = sh.TextRowOffset
	}

	col = int(code) % sh.Cols
	row = rowOffset + int(code)/sh.Cols

	return col, row
}

// TexOffset returns the texture coordinate offset of the tile at the given
// column and row, in the normalised [0,1] space of the sheet texture.
func (sh Sheet) TexOffset(col int, row int) [2]float32 {
	return [2]float32{
		float32(col) / float32(sh.Cols),
		float32(row) / float32(sh.Rows),
	}
}
