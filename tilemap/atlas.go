package tilemap

// TileSetInfo describes the single atlas image shared by every layer of a map.
type TileSetInfo struct {
	AtlasWidth  int
	AtlasHeight int
	TileWidth   int
	TileHeight  int
	Image       string
}

// Grid returns the number of tile columns and rows in the atlas.
func (ts TileSetInfo) Grid() (cols, rows int, err error) {
	return AtlasGrid(ts.AtlasWidth, ts.AtlasHeight, ts.TileWidth, ts.TileHeight)
}

// AtlasGrid returns the tile grid of an atlas image. The atlas pixel size must be
// an exact multiple of the tile size.
func AtlasGrid(atlasW, atlasH, tileW, tileH int) (cols, rows int, err error) {
	if atlasW <= 0 || atlasH <= 0 || tileW <= 0 || tileH <= 0 ||
		atlasW%tileW != 0 || atlasH%tileH != 0 {
		return 0, 0, &AtlasError{AtlasWidth: atlasW, AtlasHeight: atlasH, TileWidth: tileW, TileHeight: tileH}
	}
	return atlasW / tileW, atlasH / tileH, nil
}
