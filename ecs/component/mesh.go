package component

import "github.com/milk9111/tilemap/assets"

// MeshRef points at an uploaded mesh in the mesh storage.
type MeshRef struct {
	Handle assets.Handle
}

var MeshRefComponent = NewComponent[MeshRef]()
