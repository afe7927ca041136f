package tilemap

import (
	"errors"
	"testing"
)

func TestAtlasGrid(t *testing.T) {
	cases := []struct {
		name               string
		atlasW, atlasH     int
		tileW, tileH       int
		wantCols, wantRows int
		wantErr            bool
	}{
		{"square", 64, 64, 32, 32, 2, 2, false},
		{"wide", 256, 32, 16, 16, 16, 2, false},
		{"non_square_tiles", 96, 40, 32, 8, 3, 5, false},
		{"not_divisible_width", 65, 64, 32, 32, 0, 0, true},
		{"not_divisible_height", 64, 70, 32, 32, 0, 0, true},
		{"zero_tile", 64, 64, 0, 32, 0, 0, true},
		{"negative_atlas", -64, 64, 32, 32, 0, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cols, rows, err := AtlasGrid(c.atlasW, c.atlasH, c.tileW, c.tileH)
			if c.wantErr {
				if !errors.Is(err, ErrMalformedAtlas) {
					t.Fatalf("AtlasGrid err = %v, want ErrMalformedAtlas", err)
				}
				var atlasErr *AtlasError
				if !errors.As(err, &atlasErr) || atlasErr.TileWidth != c.tileW {
					t.Fatalf("AtlasGrid err = %#v, want *AtlasError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AtlasGrid: unexpected error %v", err)
			}
			if cols != c.wantCols || rows != c.wantRows {
				t.Errorf("AtlasGrid = (%d, %d), want (%d, %d)", cols, rows, c.wantCols, c.wantRows)
			}
		})
	}
}

func TestEncodeLayerEmptyCellsUseSentinel(t *testing.T) {
	grid := [][]uint32{
		{0, 3, 0},
		{1, 0, 4},
	}
	buf, err := EncodeLayer(grid, 2, 2)
	if err != nil {
		t.Fatalf("EncodeLayer: %v", err)
	}
	for i, raw := range []uint32{0, 3, 0, 1, 0, 4} {
		cell := buf.At(i)
		if raw == 0 {
			if cell != EmptyCell || !cell.IsEmpty() {
				t.Errorf("cell %d = %v, want EmptyCell", i, cell)
			}
			if cell.NormalizedIndex(2, 2) >= 0 {
				t.Errorf("cell %d normalized index = %v, want negative", i, cell.NormalizedIndex(2, 2))
			}
			continue
		}
		if cell.IsEmpty() {
			t.Errorf("cell %d is empty, want atlas cell for gid %d", i, raw)
		}
	}
}

func TestEncodeLayerZeroBasedAndRowFlip(t *testing.T) {
	buf, err := EncodeLayer([][]uint32{{1, 2}}, 2, 1)
	if err != nil {
		t.Fatalf("EncodeLayer: %v", err)
	}
	if got, want := buf.At(0), (TileCell{Col: 0, Row: 0}); got != want {
		t.Errorf("gid 1 = %v, want %v", got, want)
	}
	if got, want := buf.At(1), (TileCell{Col: 1, Row: 0}); got != want {
		t.Errorf("gid 2 = %v, want %v", got, want)
	}

	// 3 rows: gid 1 is in the top atlas row, which is row 2 counted from the bottom.
	buf, err = EncodeLayer([][]uint32{{1, 4, 6}}, 2, 3)
	if err != nil {
		t.Fatalf("EncodeLayer: %v", err)
	}
	want := []TileCell{{Col: 0, Row: 2}, {Col: 1, Row: 1}, {Col: 1, Row: 0}}
	for i, w := range want {
		if got := buf.At(i); got != w {
			t.Errorf("cell %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeLayerGroundScenario(t *testing.T) {
	buf, err := EncodeLayer([][]uint32{{1, 0}, {2, 3}}, 2, 2)
	if err != nil {
		t.Fatalf("EncodeLayer: %v", err)
	}
	if buf.Len() != 4 {
		t.Fatalf("Len = %d, want 4", buf.Len())
	}
	if !buf.At(1).IsEmpty() {
		t.Errorf("position 1 = %v, want sentinel", buf.At(1))
	}
	want := map[int]TileCell{0: {Col: 0, Row: 1}, 2: {Col: 1, Row: 1}, 3: {Col: 0, Row: 0}}
	for i, w := range want {
		if got := buf.At(i); got != w {
			t.Errorf("position %d = %v, want %v", i, got, w)
		}
	}
}

func TestEncodeLayerCapacity(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"at_limit", 64, 64, false},
		{"one_over", 4097, 1, true},
		{"tall", 2, 2049, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid := make([][]uint32, c.h)
			for y := range grid {
				grid[y] = make([]uint32, c.w)
			}
			buf, err := EncodeLayer(grid, 1, 1)
			if c.wantErr {
				if !errors.Is(err, ErrCapacityExceeded) {
					t.Fatalf("err = %v, want ErrCapacityExceeded", err)
				}
				if buf.Len() != 0 {
					t.Fatalf("Len = %d after failure, want 0", buf.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeLayer: %v", err)
			}
			if buf.Len() != c.w*c.h {
				t.Errorf("Len = %d, want %d", buf.Len(), c.w*c.h)
			}
		})
	}
}

func TestEncodeLayerErrors(t *testing.T) {
	if _, err := EncodeLayer([][]uint32{{5}}, 2, 2); !errors.Is(err, ErrTileIndexOutOfRange) {
		t.Errorf("gid beyond atlas: err = %v, want ErrTileIndexOutOfRange", err)
	}
	if _, err := EncodeLayer([][]uint32{{1, 1}, {1}}, 2, 2); !errors.Is(err, ErrGridMismatch) {
		t.Errorf("ragged grid: err = %v, want ErrGridMismatch", err)
	}
	if _, err := EncodeLayer([][]uint32{{1}}, 0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero columns: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestNormalizedIndex(t *testing.T) {
	cell, err := EncodeCell(3, 2, 2)
	if err != nil {
		t.Fatalf("EncodeCell: %v", err)
	}
	if got, want := cell.NormalizedIndex(2, 2), float32(2)/4; got != want {
		t.Errorf("NormalizedIndex = %v, want %v", got, want)
	}
}

func TestGeneratePlane(t *testing.T) {
	mesh, err := GeneratePlane(16, 16, 10, 4)
	if err != nil {
		t.Fatalf("GeneratePlane: %v", err)
	}
	tris := mesh.Triangulate()
	if len(tris) != 6 || len(mesh.Indices)/3 != 2 {
		t.Fatalf("got %d vertex refs / %d triangles, want 6 / 2", len(tris), len(mesh.Indices)/3)
	}

	uvs := map[[2]float32]bool{}
	for _, v := range mesh.Vertices {
		uvs[v.TexCoord] = true
		if x := v.Position[0]; x != 80 && x != -80 {
			t.Errorf("x = %v, want ±80", x)
		}
		if y := v.Position[1]; y != 32 && y != -32 {
			t.Errorf("y = %v, want ±32", y)
		}
		// v=0 sits on the bottom edge.
		if (v.Position[1] < 0) != (v.TexCoord[1] == 0) {
			t.Errorf("vertex %v: uv v not flipped against rows", v)
		}
	}
	for _, want := range [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if !uvs[want] {
			t.Errorf("missing corner uv %v", want)
		}
	}

	if _, err := GeneratePlane(0, 16, 1, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero tile: err = %v, want ErrInvalidDimensions", err)
	}
}

func groundDescriptor() (TileMapDescriptor, TileSetInfo) {
	desc := TileMapDescriptor{
		Width: 2, Height: 2, TileWidth: 32, TileHeight: 32,
		Layers: []TileLayer{
			{Name: "ground", Tiles: [][]uint32{{1, 0}, {2, 3}}},
			{Name: "decor", Tiles: [][]uint32{{0, 0}, {0, 4}}},
		},
	}
	ts := TileSetInfo{AtlasWidth: 64, AtlasHeight: 64, TileWidth: 32, TileHeight: 32, Image: "tiles.png"}
	return desc, ts
}

func TestCompileMap(t *testing.T) {
	desc, ts := groundDescriptor()
	compiled, err := CompileMap(desc, ts)
	if err != nil {
		t.Fatalf("CompileMap: %v", err)
	}
	if len(compiled.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(compiled.Layers))
	}
	for _, l := range compiled.Layers {
		if l.Mesh != compiled.Mesh {
			t.Errorf("layer %q does not share the map mesh", l.Name)
		}
		if l.Translation.X() != 32 || l.Translation.Y() != 32 {
			t.Errorf("layer %q translation = %v, want (32, 32, 0)", l.Name, l.Translation)
		}
		if l.Material != "tiles.png" {
			t.Errorf("layer %q material = %q", l.Name, l.Material)
		}
		if l.WorldSize != (Size2{2, 2}) || l.TilesheetSize != (Size2{2, 2}) {
			t.Errorf("layer %q sizes = %v / %v", l.Name, l.WorldSize, l.TilesheetSize)
		}
	}
	if m := compiled.Layers[0].Model(); m.At(0, 3) != 32 || m.At(1, 3) != 32 {
		t.Errorf("model translation = (%v, %v), want (32, 32)", m.At(0, 3), m.At(1, 3))
	}
}

func TestCompileMapAllOrNothing(t *testing.T) {
	desc, ts := groundDescriptor()
	desc.Layers = append(desc.Layers, TileLayer{Name: "bad", Tiles: [][]uint32{{9, 0}, {0, 0}}})

	compiled, err := CompileMap(desc, ts)
	if compiled != nil {
		t.Fatalf("CompileMap returned %d layers for a failing map", len(compiled.Layers))
	}
	if !errors.Is(err, ErrEncodingFailed) || !errors.Is(err, ErrTileIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrEncodingFailed wrapping ErrTileIndexOutOfRange", err)
	}
	var compileErr *CompileError
	if !errors.As(err, &compileErr) || compileErr.Layer != "bad" {
		t.Errorf("err = %#v, want *CompileError for layer bad", err)
	}
}

func TestCompileMapValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TileMapDescriptor, *TileSetInfo)
		want   error
	}{
		{"duplicate_name", func(d *TileMapDescriptor, _ *TileSetInfo) {
			d.Layers[1].Name = "ground"
		}, ErrDuplicateLayer},
		{"short_grid", func(d *TileMapDescriptor, _ *TileSetInfo) {
			d.Layers[0].Tiles = d.Layers[0].Tiles[:1]
		}, ErrGridMismatch},
		{"bad_atlas", func(_ *TileMapDescriptor, ts *TileSetInfo) {
			ts.AtlasWidth = 70
		}, ErrMalformedAtlas},
		{"too_large", func(d *TileMapDescriptor, _ *TileSetInfo) {
			d.Width, d.Height = 128, 64
			d.Layers = nil
		}, ErrCapacityExceeded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			desc, ts := groundDescriptor()
			c.mutate(&desc, &ts)
			if _, err := CompileMap(desc, ts); !errors.Is(err, c.want) {
				t.Errorf("CompileMap err = %v, want %v", err, c.want)
			}
		})
	}
}
