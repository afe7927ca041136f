package assets

import (
	"image"
	"log"
	"sync"

	"github.com/milk9111/tilemap/ecs/render"
	"github.com/milk9111/tilemap/tilemap"
)

type decodedTexture struct {
	handle   Handle
	path     string
	img      image.Image
	err      error
	progress *ProgressCounter
}

// Loader turns files and in-memory data into GPU resources. Texture files are
// decoded on background goroutines; the decoded images are uploaded by Process,
// which must run on the render thread.
type Loader struct {
	backend  render.Backend
	Textures *Storage[render.Texture]
	Meshes   *Storage[render.Mesh]

	decode func(path string) (image.Image, error)

	mu      sync.Mutex
	pending []decodedTexture
	wg      sync.WaitGroup
}

func NewLoader(backend render.Backend) *Loader {
	return &Loader{
		backend:  backend,
		Textures: NewStorage[render.Texture](),
		Meshes:   NewStorage[render.Mesh](),
		decode:   DecodeImageFile,
	}
}

// LoadTexture starts loading an image file and returns its handle immediately.
// The handle resolves once Process has uploaded the image.
func (l *Loader) LoadTexture(path string, progress *ProgressCounter) Handle {
	h := l.Textures.Reserve()
	progress.Add(1)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.decode(path)
		l.mu.Lock()
		l.pending = append(l.pending, decodedTexture{handle: h, path: path, img: img, err: err, progress: progress})
		l.mu.Unlock()
	}()
	return h
}

// LoadTextureFromData uploads img synchronously.
func (l *Loader) LoadTextureFromData(img image.Image) Handle {
	return l.Textures.Insert(l.backend.NewTexture(img))
}

// LoadMeshFromData uploads mesh synchronously.
func (l *Loader) LoadMeshFromData(mesh *tilemap.Mesh) Handle {
	return l.Meshes.Insert(l.backend.NewMesh(mesh))
}

// Process uploads every texture decoded since the last call and returns how
// many were applied. Results for handles released while decoding are dropped.
func (l *Loader) Process() int {
	l.mu.Lock()
	ready := l.pending
	l.pending = nil
	l.mu.Unlock()

	applied := 0
	for _, r := range ready {
		if r.err != nil {
			log.Printf("assets: load texture %s: %v", r.path, r.err)
			r.progress.Failed()
			continue
		}
		if l.Textures.IsLive(r.handle) {
			l.Textures.Set(r.handle, l.backend.NewTexture(r.img))
			applied++
		}
		r.progress.Done()
	}
	return applied
}

// Wait blocks until every background decode has queued its result.
func (l *Loader) Wait() {
	l.wg.Wait()
}
