package levels

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json *.png
var LevelsFS embed.FS

// Load reads a .tmx or .json map from disk.
func Load(path string) (*ParsedMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tmx":
		return ParseTMX(path, filepath.Dir(path), f)
	case ".json", ".tmj":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, &FileOpenError{Path: path, Err: err}
		}
		return ParseJSON(path, data)
	default:
		return nil, &ParseError{Path: path, Reason: "unsupported map extension " + filepath.Ext(path)}
	}
}

// LoadFromFS reads a JSON map from fsys, defaulting to the embedded levels.
func LoadFromFS(fsys fs.FS, name string) (*ParsedMap, error) {
	if fsys == nil {
		fsys = LevelsFS
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &FileOpenError{Path: name, Err: err}
	}
	return ParseJSON(name, data)
}
