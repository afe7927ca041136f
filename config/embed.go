package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var ConfigFS embed.FS

// Dir is the on-disk directory checked before the embedded files.
var Dir = "config"

func Load(name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if filepath.IsAbs(name) {
		return os.ReadFile(name)
	}
	if data, err := os.ReadFile(diskConfigPath(clean)); err == nil {
		return data, nil
	}
	return ConfigFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskConfigPath(cleanConfigPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanConfigPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}

func diskConfigPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
