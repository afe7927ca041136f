package levels

import (
	"encoding/json"
	"fmt"
)

// jsonMap is the subset of Tiled's JSON map export the renderer reads.
type jsonMap struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	TileWidth  int           `json:"tilewidth"`
	TileHeight int           `json:"tileheight"`
	Infinite   bool          `json:"infinite,omitempty"`
	Tilesets   []jsonTileset `json:"tilesets"`
	Layers     []jsonLayer   `json:"layers"`
}

type jsonTileset struct {
	Name        string `json:"name"`
	FirstGID    uint32 `json:"firstgid"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	Source      string `json:"source,omitempty"`
}

type jsonLayer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Data    []uint32 `json:"data"`
	Visible *bool    `json:"visible,omitempty"`
}

// ParseJSON reads a Tiled JSON map. Only embedded tilesets are supported.
func ParseJSON(path string, data []byte) (*ParsedMap, error) {
	var jm jsonMap
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, &ParseError{Path: path, Reason: "unmarshal json", Err: err}
	}
	if jm.Infinite {
		return nil, &ParseError{Path: path, Reason: "infinite maps are not supported"}
	}

	m := &ParsedMap{
		Path:       path,
		Width:      jm.Width,
		Height:     jm.Height,
		TileWidth:  jm.TileWidth,
		TileHeight: jm.TileHeight,
	}
	for _, ts := range jm.Tilesets {
		if ts.Source != "" {
			return nil, m.parseErr(fmt.Sprintf("external tileset %q is not supported in json maps", ts.Source), nil)
		}
		m.Tilesets = append(m.Tilesets, Tileset{
			Name:        ts.Name,
			FirstGID:    ts.FirstGID,
			TileWidth:   ts.TileWidth,
			TileHeight:  ts.TileHeight,
			Image:       ts.Image,
			ImageWidth:  ts.ImageWidth,
			ImageHeight: ts.ImageHeight,
		})
	}
	for _, l := range jm.Layers {
		if l.Type != "" && l.Type != "tilelayer" {
			continue
		}
		data := make([]uint32, len(l.Data))
		for i, gid := range l.Data {
			data[i] = ClearFlipFlags(gid)
		}
		m.Layers = append(m.Layers, Layer{Name: l.Name, Data: data})
	}
	return m, nil
}
