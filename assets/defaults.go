package assets

// MaterialDefaults holds the fallback texture drawn while a material's own
// texture is still loading.
type MaterialDefaults struct {
	Albedo Handle
}

func NewMaterialDefaults(l *Loader) MaterialDefaults {
	return MaterialDefaults{Albedo: l.LoadTextureFromData(Checkerboard(16))}
}
