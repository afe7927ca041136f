package assets

import "sync/atomic"

// ProgressCounter tracks asynchronous loads. It is safe for concurrent use.
type ProgressCounter struct {
	total  atomic.Int64
	done   atomic.Int64
	failed atomic.Int64
}

func (p *ProgressCounter) Add(n int) {
	if p == nil {
		return
	}
	p.total.Add(int64(n))
}

func (p *ProgressCounter) Done() {
	if p == nil {
		return
	}
	p.done.Add(1)
}

func (p *ProgressCounter) Failed() {
	if p == nil {
		return
	}
	p.failed.Add(1)
}

// IsComplete reports whether every added load has finished, successfully or not.
func (p *ProgressCounter) IsComplete() bool {
	if p == nil {
		return true
	}
	return p.done.Load()+p.failed.Load() >= p.total.Load()
}

// Progress returns finished and total load counts.
func (p *ProgressCounter) Progress() (finished, total int) {
	if p == nil {
		return 0, 0
	}
	return int(p.done.Load() + p.failed.Load()), int(p.total.Load())
}

func (p *ProgressCounter) NumFailed() int {
	if p == nil {
		return 0
	}
	return int(p.failed.Load())
}
