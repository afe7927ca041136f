package system

import (
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/render"
)

// Pipeline runs passes in the order they were added, back to front.
type Pipeline struct {
	passes []Pass
}

func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: passes}
}

func (p *Pipeline) Add(pass Pass) {
	if pass == nil {
		return
	}
	p.passes = append(p.passes, pass)
}

func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.passes)
}

// Run executes every pass and returns the total number of draw calls.
func (p *Pipeline) Run(w *ecs.World, frame Frame, dev render.Device) int {
	if p == nil {
		return 0
	}
	draws := 0
	for _, pass := range p.passes {
		draws += pass.Run(w, frame, dev)
	}
	return draws
}

// PipelineFromLayers builds one pass per layer name, or a single ordered pass
// when consolidated is set.
func PipelineFromLayers(layers []string, consolidated bool) *Pipeline {
	if consolidated {
		return NewPipeline(NewOrderedTilemapPass(layers...))
	}
	p := NewPipeline()
	for _, name := range layers {
		p.Add(NewDrawTilemapPass(name))
	}
	return p
}
