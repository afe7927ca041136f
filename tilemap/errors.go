package tilemap

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedAtlas      = errors.New("tilemap: malformed atlas")
	ErrTileIndexOutOfRange = errors.New("tilemap: tile index out of range")
	ErrCapacityExceeded    = errors.New("tilemap: tile buffer capacity exceeded")
	ErrGridMismatch        = errors.New("tilemap: layer grid does not match map size")
	ErrDuplicateLayer      = errors.New("tilemap: duplicate layer name")
	ErrInvalidDimensions   = errors.New("tilemap: invalid dimensions")
	ErrEncodingFailed      = errors.New("tilemap: encoding failed")
)

// AtlasError reports atlas and tile pixel sizes that do not form a grid.
type AtlasError struct {
	AtlasWidth, AtlasHeight int
	TileWidth, TileHeight   int
}

func (e *AtlasError) Error() string {
	return fmt.Sprintf("tilemap: malformed atlas: %dx%d px is not a grid of %dx%d px tiles",
		e.AtlasWidth, e.AtlasHeight, e.TileWidth, e.TileHeight)
}

func (e *AtlasError) Unwrap() error { return ErrMalformedAtlas }

// CompileError is returned when a layer cannot be compiled.
type CompileError struct {
	Layer string
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("tilemap: compile layer %q: %v", e.Layer, e.Err)
}

// Unwrap exposes both ErrEncodingFailed and the underlying cause to errors.Is.
func (e *CompileError) Unwrap() []error { return []error{ErrEncodingFailed, e.Err} }
