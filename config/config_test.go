package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigEmbedded(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Map.File != "demo.tmx" || cfg.Map.Dir != "levels" {
		t.Errorf("map = %+v, want levels/demo.tmx", cfg.Map)
	}
	want := []string{"sky", "ground", "decor"}
	if len(cfg.Passes) != len(want) {
		t.Fatalf("passes = %v, want %v", cfg.Passes, want)
	}
	for i := range want {
		if cfg.Passes[i] != want[i] {
			t.Errorf("pass %d = %q, want %q", i, cfg.Passes[i], want[i])
		}
	}
	if cfg.Camera.Right != 320 || cfg.Camera.Top != 180 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
}

func TestLoadConfigDiskOverrideAndDefaults(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	data := []byte("map:\n  file: other.json\npasses: [ground]\n")
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig("custom.yaml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Map.File != "other.json" || cfg.Map.Dir != "." {
		t.Errorf("map = %+v", cfg.Map)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 540 || cfg.Window.Title != "tilemap" {
		t.Errorf("window defaults = %+v", cfg.Window)
	}
	if cfg.Camera.Right != 960 || cfg.Camera.Top != 540 {
		t.Errorf("camera defaults = %+v, want window-sized box", cfg.Camera)
	}
	if _, ok := ModTime("custom.yaml"); !ok {
		t.Error("ModTime did not find the disk file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Map: MapSpec{File: "a.tmx"}, Passes: []string{"ground"}}, false},
		{"no_map", Config{Passes: []string{"ground"}}, true},
		{"no_passes", Config{Map: MapSpec{File: "a.tmx"}}, true},
		{"duplicate_pass", Config{Map: MapSpec{File: "a.tmx"}, Passes: []string{"ground", "ground"}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[Config]("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("passes: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpec[Config](bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestIsWatchedFile(t *testing.T) {
	cases := map[string]bool{
		"levels/demo.tmx":  true,
		"levels/demo.JSON": true,
		"levels/tiles.png": true,
		"levels/notes.txt": false,
		"levels/demo.tmx~": false,
	}
	for path, want := range cases {
		if got := IsWatchedFile(path); got != want {
			t.Errorf("IsWatchedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsMapChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "demo.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Errorf("event for %q, want %q", got, target)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for map file")
	}
}
