package tilemap

import "fmt"

// Capacity is the number of cells the shader-visible tile buffer can hold.
const Capacity = 4096

// TileCell is the encoded value of one map cell: the atlas column and row of its
// tile, or EmptyCell. Atlas rows count from the bottom of the atlas image.
type TileCell struct {
	Col int32
	Row int32
}

// EmptyCell marks a cell with no tile. The shader discards fragments that sample it.
var EmptyCell = TileCell{Col: -1, Row: -1}

func (c TileCell) IsEmpty() bool {
	return c.Col < 0 || c.Row < 0
}

// Vec4 returns the cell as the vec4 layout the tile shader reads.
func (c TileCell) Vec4() [4]float32 {
	return [4]float32{float32(c.Col), float32(c.Row), 0, 0}
}

// NormalizedIndex returns the cell's zero-based atlas index divided by the number of
// atlas cells, or -1 for an empty cell. It is derived from the same encoding and is
// meant for consumers that sample a 1-D index texture.
func (c TileCell) NormalizedIndex(cols, rows int) float32 {
	if c.IsEmpty() || cols <= 0 || rows <= 0 {
		return -1
	}
	idx := (rows-1-int(c.Row))*cols + int(c.Col)
	return float32(idx) / float32(cols*rows)
}

// EncodedTileBuffer holds one encoded cell per map cell in row-major order.
// It never holds more than Capacity cells.
type EncodedTileBuffer struct {
	cells []TileCell
}

func (b EncodedTileBuffer) Len() int {
	return len(b.cells)
}

func (b EncodedTileBuffer) At(i int) TileCell {
	if i < 0 || i >= len(b.cells) {
		return EmptyCell
	}
	return b.cells[i]
}

// Cells returns a copy of the encoded cells.
func (b EncodedTileBuffer) Cells() []TileCell {
	return append([]TileCell(nil), b.cells...)
}

// Vec4s returns the buffer in the shader upload layout.
func (b EncodedTileBuffer) Vec4s() [][4]float32 {
	out := make([][4]float32, len(b.cells))
	for i, c := range b.cells {
		out[i] = c.Vec4()
	}
	return out
}

// EncodeCell converts one raw tile identifier into its atlas cell.
func EncodeCell(gid uint32, cols, rows int) (TileCell, error) {
	if gid == 0 {
		return EmptyCell, nil
	}
	idx := int(gid - 1)
	if idx >= cols*rows {
		return EmptyCell, fmt.Errorf("%w: gid %d, atlas has %d tiles", ErrTileIndexOutOfRange, gid, cols*rows)
	}
	return TileCell{
		Col: int32(idx % cols),
		Row: int32((rows - 1) - idx/cols),
	}, nil
}

// EncodeLayer encodes a row-major grid of tile identifiers against an atlas of
// cols x rows tiles. Grids larger than Capacity fail before any cell is encoded.
func EncodeLayer(grid [][]uint32, cols, rows int) (EncodedTileBuffer, error) {
	if cols <= 0 || rows <= 0 {
		return EncodedTileBuffer{}, fmt.Errorf("%w: atlas grid %dx%d", ErrInvalidDimensions, cols, rows)
	}
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	if width*height > Capacity {
		return EncodedTileBuffer{}, fmt.Errorf("%w: %dx%d map has %d cells, limit is %d",
			ErrCapacityExceeded, width, height, width*height, Capacity)
	}

	cells := make([]TileCell, 0, width*height)
	for y, row := range grid {
		if len(row) != width {
			return EncodedTileBuffer{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridMismatch, y, len(row), width)
		}
		for x, gid := range row {
			cell, err := EncodeCell(gid, cols, rows)
			if err != nil {
				return EncodedTileBuffer{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			cells = append(cells, cell)
		}
	}
	return EncodedTileBuffer{cells: cells}, nil
}
