package component

import "github.com/milk9111/tilemap/assets"

// Material names the texture a drawable samples.
type Material struct {
	Albedo assets.Handle
}

var MaterialComponent = NewComponent[Material]()
