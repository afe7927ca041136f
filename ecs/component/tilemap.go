package component

import "github.com/milk9111/tilemap/tilemap"

// TilemapDimensions is the map size in tiles.
type TilemapDimensions struct {
	Width  int
	Height int
}

var TilemapDimensionsComponent = NewComponent[TilemapDimensions]()

// TilesheetDimensions is the atlas size in tiles.
type TilesheetDimensions struct {
	Width  int
	Height int
}

var TilesheetDimensionsComponent = NewComponent[TilesheetDimensions]()

// TilemapLayer carries one compiled layer's name and encoded tiles.
type TilemapLayer struct {
	Name  string
	Tiles tilemap.EncodedTileBuffer
}

var TilemapLayerComponent = NewComponent[TilemapLayer]()

// TilemapOwner tags every entity created for one loaded map.
type TilemapOwner struct {
	MapID uint64
}

var TilemapOwnerComponent = NewComponent[TilemapOwner]()
