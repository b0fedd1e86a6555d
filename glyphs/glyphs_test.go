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

package glyphs_test

import (
	"testing"

	"github.com/jetsetilly/petvis/glyphs"
	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/test"
)

func TestSheetCoords(t *testing.T) {
	sheet := glyphs.DefaultSheet

	// code 0 is the top-left tile of each set's half of the sheet
	col, row := sheet.Coords(0, protocol.Graphics)
	test.Equate(t, col, 0)
	test.Equate(t, row, 0)

	col, row = sheet.Coords(0, protocol.Text)
	test.Equate(t, col, 0)
	test.Equate(t, row, 16)

	// the character set spans exactly half the sheet
	col, row = sheet.Coords(255, protocol.Graphics)
	test.Equate(t, col, 15)
	test.Equate(t, row, 15)

	col, row = sheet.Coords(255, protocol.Text)
	test.Equate(t, col, 15)
	test.Equate(t, row, 31)
}

func TestTexOffset(t *testing.T) {
	sheet := glyphs.DefaultSheet

	off := sheet.TexOffset(0, 0)
	test.Equate(t, off[0], float32(0))
	test.Equate(t, off[1], float32(0))

	off = sheet.TexOffset(8, 16)
	test.Equate(t, off[0], float32(0.5))
	test.Equate(t, off[1], float32(0.5))
}

func TestInstanceCount(t *testing.T) {
	frm := protocol.NewBlankFrame()
	instances := glyphs.BuildInstances(nil, frm, glyphs.DefaultSheet)
	test.Equate(t, len(instances), protocol.NumRows*protocol.NumCols)
}

func TestInstanceGrid(t *testing.T) {
	// position offsets form a uniform, non-overlapping grid
	frm := protocol.NewBlankFrame()
	instances := glyphs.BuildInstances(nil, frm, glyphs.DefaultSheet)

	seen := make(map[[2]float32]bool)
	for _, ins := range instances {
		if seen[ins.PositionOffset] {
			t.Fatalf("duplicate position offset %v", ins.PositionOffset)
		}
		seen[ins.PositionOffset] = true
	}

	// corner cells are where the layout contract says they are
	test.Equate(t, instances[0].PositionOffset[0], float32(0))
	test.Equate(t, instances[0].PositionOffset[1], float32(0))

	last := instances[len(instances)-1]
	test.Equate(t, last.PositionOffset[0], float32(protocol.NumCols-1)*glyphs.CellWidth)
	test.Equate(t, last.PositionOffset[1], float32(protocol.NumRows-1)*glyphs.CellHeight)

	// adjacent cells are exactly one cell apart
	test.Equate(t, instances[1].PositionOffset[0], glyphs.CellWidth)
	test.Equate(t, instances[protocol.NumCols].PositionOffset[1], glyphs.CellHeight)
}

func TestInstanceReuse(t *testing.T) {
	// the allocation is reused when a correctly sized slice is supplied
	frm := protocol.NewBlankFrame()
	instances := glyphs.BuildInstances(nil, frm, glyphs.DefaultSheet)

	frm2 := protocol.NewRandomFrame()
	instances2 := glyphs.BuildInstances(instances, frm2, glyphs.DefaultSheet)
	test.Equate(t, &instances[0] == &instances2[0], true)
}

func TestInstanceCharSet(t *testing.T) {
	// the same glyph code lands on a different half of the sheet depending
	// on the frame's character set
	frm := protocol.NewBlankFrame()
	frm.Status.Set = protocol.Graphics
	graphics := glyphs.BuildInstances(nil, frm, glyphs.DefaultSheet)

	frm.Status.Set = protocol.Text
	text := glyphs.BuildInstances(nil, frm, glyphs.DefaultSheet)

	test.Equate(t, graphics[0].TexOffset[0], text[0].TexOffset[0])
	test.EquateTolerance(t, float64(text[0].TexOffset[1]-graphics[0].TexOffset[1]), 0.5, 1e-6)
}
