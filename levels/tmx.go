package levels

import (
	"io"

	"github.com/lafriks/go-tiled"
)

// ParseTMX reads a Tiled XML map. External tilesets are resolved relative to
// baseDir. Flip flags are dropped; the renderer has no per-tile transforms.
// Infinite maps carry no flat tile data and fail in Descriptor.
func ParseTMX(path, baseDir string, r io.Reader) (*ParsedMap, error) {
	tm, err := tiled.LoadReader(baseDir, r)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "decode tmx", Err: err}
	}

	m := &ParsedMap{
		Path:       path,
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}
	for _, ts := range tm.Tilesets {
		out := Tileset{
			Name:       ts.Name,
			FirstGID:   ts.FirstGID,
			TileWidth:  ts.TileWidth,
			TileHeight: ts.TileHeight,
		}
		if ts.Image != nil {
			out.Image = ts.Image.Source
			out.ImageWidth = ts.Image.Width
			out.ImageHeight = ts.Image.Height
		}
		m.Tilesets = append(m.Tilesets, out)
	}
	for _, l := range tm.Layers {
		data := make([]uint32, len(l.Tiles))
		for i, t := range l.Tiles {
			if t == nil || t.Nil || t.Tileset == nil {
				continue
			}
			data[i] = t.Tileset.FirstGID + t.ID
		}
		m.Layers = append(m.Layers, Layer{Name: l.Name, Data: data})
	}
	return m, nil
}
