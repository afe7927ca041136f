package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/tilemap/levels"
	"github.com/milk9111/tilemap/tilemap"
)

var (
	colorHeading = color.Style{color.FgCyan, color.OpBold}
	colorLabel   = color.Style{color.FgGray}
	colorOK      = color.Style{color.FgGreen}
	colorDenied  = color.Style{color.FgRed, color.OpBold}
)

// LayerStats counts the cells of one layer.
type LayerStats struct {
	Name   string
	Filled int
	Empty  int
	Err    error
}

// Report describes a map the way the renderer will see it.
type Report struct {
	Path                  string
	Width, Height         int
	TileWidth, TileHeight int
	AtlasCols, AtlasRows  int
	Image                 string
	Layers                []LayerStats
	Problems              []string
}

// BuildReport compiles every layer of parsed and collects per-layer counts.
// The returned error is the first problem found; the report is filled in as
// far as possible either way.
func BuildReport(parsed *levels.ParsedMap) (*Report, error) {
	r := &Report{
		Path:       parsed.Path,
		Width:      parsed.Width,
		Height:     parsed.Height,
		TileWidth:  parsed.TileWidth,
		TileHeight: parsed.TileHeight,
	}

	ts, err := parsed.TileSetInfo()
	if err != nil {
		r.Problems = append(r.Problems, err.Error())
		return r, err
	}
	r.Image = ts.Image
	cols, rows, err := ts.Grid()
	if err != nil {
		r.Problems = append(r.Problems, err.Error())
		return r, err
	}
	r.AtlasCols, r.AtlasRows = cols, rows

	var first error
	note := func(err error) {
		r.Problems = append(r.Problems, err.Error())
		if first == nil {
			first = err
		}
	}

	if n := parsed.Width * parsed.Height; n > tilemap.Capacity {
		note(fmt.Errorf("%w: %d cells, limit is %d", tilemap.ErrCapacityExceeded, n, tilemap.Capacity))
	}

	names := mapset.New[string]()
	for _, l := range parsed.Layers {
		if names.Has(l.Name) {
			note(fmt.Errorf("%w: %q", tilemap.ErrDuplicateLayer, l.Name))
		}
		names.Put(l.Name)
	}

	desc, err := parsed.Descriptor()
	if err != nil {
		note(err)
		return r, first
	}
	for _, layer := range desc.Layers {
		stats := LayerStats{Name: layer.Name}
		buf, err := tilemap.EncodeLayer(layer.Tiles, cols, rows)
		if err != nil {
			stats.Err = err
			note(fmt.Errorf("layer %q: %w", layer.Name, err))
		}
		for i := 0; i < buf.Len(); i++ {
			if buf.At(i).IsEmpty() {
				stats.Empty++
			} else {
				stats.Filled++
			}
		}
		r.Layers = append(r.Layers, stats)
	}
	return r, first
}

// Render formats the report with terminal colours.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintln(&b, colorHeading.Sprint(r.Path))
	fmt.Fprintf(&b, "%s %dx%d tiles of %dx%d px\n", colorLabel.Sprint("map:  "), r.Width, r.Height, r.TileWidth, r.TileHeight)
	if r.Image != "" {
		fmt.Fprintf(&b, "%s %s (%dx%d cells)\n", colorLabel.Sprint("atlas:"), r.Image, r.AtlasCols, r.AtlasRows)
	}
	for _, l := range r.Layers {
		status := colorOK.Sprint("ok")
		if l.Err != nil {
			status = colorDenied.Sprint("error")
		}
		fmt.Fprintf(&b, "  %-16s filled %5d  empty %5d  %s\n", l.Name, l.Filled, l.Empty, status)
	}
	for _, p := range r.Problems {
		fmt.Fprintln(&b, colorDenied.Sprint("! "+p))
	}
	return b.String()
}
