package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilemap/tilemap"
)

var (
	ErrFileOpenFailed = errors.New("levels: file open failed")
	ErrParseFailed    = errors.New("levels: parse failed")
)

// FileOpenError reports a map file that could not be read.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("levels: open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() []error { return []error{ErrFileOpenFailed, e.Err} }

// ParseError reports a map file whose contents could not be used.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("levels: parse %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("levels: parse %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParseFailed}
	}
	return []error{ErrParseFailed, e.Err}
}

// Tiled stores flip and rotation flags in the top bits of every gid.
const (
	FlippedHorizontally uint32 = 0x80000000
	FlippedVertically   uint32 = 0x40000000
	FlippedDiagonally   uint32 = 0x20000000

	flipFlags = FlippedHorizontally | FlippedVertically | FlippedDiagonally
)

// ClearFlipFlags returns gid without its flip and rotation bits.
func ClearFlipFlags(gid uint32) uint32 {
	return gid &^ flipFlags
}

// Tileset is one tileset referenced by a map. Image is relative to the map file.
type Tileset struct {
	Name        string
	FirstGID    uint32
	TileWidth   int
	TileHeight  int
	Image       string
	ImageWidth  int
	ImageHeight int
}

// Layer is one tile layer with row-major global tile ids.
type Layer struct {
	Name string
	Data []uint32
}

// ParsedMap is the format-independent result of reading a map file.
type ParsedMap struct {
	Path       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Tilesets   []Tileset
	Layers     []Layer
}

func (m *ParsedMap) parseErr(reason string, err error) error {
	return &ParseError{Path: m.Path, Reason: reason, Err: err}
}

// TileSetInfo describes the map's first tileset, the only one the renderer samples.
func (m *ParsedMap) TileSetInfo() (tilemap.TileSetInfo, error) {
	if len(m.Tilesets) == 0 {
		return tilemap.TileSetInfo{}, m.parseErr("map has no tileset", nil)
	}
	ts := m.Tilesets[0]
	if ts.Image == "" {
		return tilemap.TileSetInfo{}, m.parseErr(fmt.Sprintf("tileset %q has no image", ts.Name), nil)
	}
	tileW, tileH := ts.TileWidth, ts.TileHeight
	if tileW <= 0 {
		tileW = m.TileWidth
	}
	if tileH <= 0 {
		tileH = m.TileHeight
	}
	return tilemap.TileSetInfo{
		AtlasWidth:  ts.ImageWidth,
		AtlasHeight: ts.ImageHeight,
		TileWidth:   tileW,
		TileHeight:  tileH,
		Image:       ts.Image,
	}, nil
}

// Descriptor converts the map into tile grids. Global ids are rebased so that 1
// is the first cell of the first tileset; 0 stays empty.
func (m *ParsedMap) Descriptor() (tilemap.TileMapDescriptor, error) {
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return tilemap.TileMapDescriptor{}, m.parseErr(
			fmt.Sprintf("map %dx%d with %dx%d tiles", m.Width, m.Height, m.TileWidth, m.TileHeight),
			tilemap.ErrInvalidDimensions)
	}
	firstGID := uint32(1)
	if len(m.Tilesets) > 0 && m.Tilesets[0].FirstGID > 0 {
		firstGID = m.Tilesets[0].FirstGID
	}

	desc := tilemap.TileMapDescriptor{
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Layers:     make([]tilemap.TileLayer, 0, len(m.Layers)),
	}
	for _, l := range m.Layers {
		if len(l.Data) != m.Width*m.Height {
			return tilemap.TileMapDescriptor{}, fmt.Errorf("%w: layer %q has %d cells, want %d",
				tilemap.ErrGridMismatch, l.Name, len(l.Data), m.Width*m.Height)
		}
		rows := make([][]uint32, m.Height)
		for y := range rows {
			row := make([]uint32, m.Width)
			for x := range row {
				gid := l.Data[y*m.Width+x]
				switch {
				case gid == 0:
				case gid < firstGID:
					return tilemap.TileMapDescriptor{}, fmt.Errorf("%w: layer %q gid %d is below first gid %d",
						tilemap.ErrTileIndexOutOfRange, l.Name, gid, firstGID)
				default:
					row[x] = gid - firstGID + 1
				}
			}
			rows[y] = row
		}
		desc.Layers = append(desc.Layers, tilemap.TileLayer{Name: l.Name, Tiles: rows})
	}
	return desc, nil
}
