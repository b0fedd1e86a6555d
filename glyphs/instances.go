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

package glyphs

import (
	"github.com/jetsetilly/petvis/protocol"
)

// Instance is the per-cell data for the instanced glyph draw: where the
// cell's quad sits in normalised device space and where its glyph tile sits
// on the sheet texture.
//
// The memory layout matters: instances are uploaded to the GPU as-is, four
// contiguous float32 values per cell.
type Instance struct {
	PositionOffset [2]float32
	TexOffset      [2]float32
}

// NumInstances is the length of the slice returned by BuildInstances.
const NumInstances = protocol.FrameDataLen

// CellWidth and CellHeight are the dimensions of one glyph cell in
// normalised device coordinates (the full [-1,1] range divided evenly by
// the grid).
const (
	CellWidth  = 2.0 / float32(protocol.NumCols)
	CellHeight = 2.0 / float32(protocol.NumRows)
)

// BuildInstances converts a frame's glyph grid into the flat instance data
// for the GPU draw call. One instance per grid cell, row-major, exactly
// NumInstances of them. Position offsets are relative to a base quad in the
// top-left corner of the grid.
//
// It is a pure function of the frame and the sheet layout. The slice is
// rebuilt every render tick rather than patched incrementally; at 40x50
// cells a full rebuild is cheap and has no state to get wrong.
//
// The instances slice must be NumInstances long (a slice is accepted, and
// returned, so that the caller can reuse the allocation across ticks).
func BuildInstances(instances []Instance, frm *protocol.Frame, sheet Sheet) []Instance {
	if instances == nil || len(instances) != NumInstances {
		instances = make([]Instance, NumInstances)
	}

	for i, code := range frm.Data {
		col := i % protocol.NumCols
		row := i / protocol.NumCols

		shCol, shRow := sheet.Coords(code, frm.Status.Set)

		instances[i] = Instance{
			PositionOffset: [2]float32{
				float32(col) * CellWidth,
				float32(row) * CellHeight,
			},
			TexOffset: sheet.TexOffset(shCol, shRow),
		}
	}

	return instances
}
