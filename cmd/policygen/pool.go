package main

import (
	"runtime"
	"sync"
	"time"
)

// maxAutoWorkers caps the GOMAXPROCS-derived pool size.
const maxAutoWorkers = 8

// RendererPool hands out PDF renderers to batch workers. Each renderer owns
// a browser, so renderers are created lazily on first acquire and only
// batches that print PDFs pay for Chrome.
type RendererPool struct {
	size      int
	timeout   time.Duration
	newFn     func(time.Duration) Renderer
	renderers []Renderer
	sem       chan Renderer
	mu        sync.Mutex
	created   int
	closed    bool
}

// NewRendererPool creates a pool with capacity for n renderers.
func NewRendererPool(n int, timeout time.Duration, newFn func(time.Duration) Renderer) *RendererPool {
	if n < 1 {
		n = 1
	}
	return &RendererPool{
		size:      n,
		timeout:   timeout,
		newFn:     newFn,
		renderers: make([]Renderer, 0, n),
		sem:       make(chan Renderer, n),
	}
}

// Acquire gets a renderer, creating one if the pool is not full.
// Blocks while all renderers are in use.
func (p *RendererPool) Acquire() Renderer {
	select {
	case r := <-p.sem:
		return r
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		r := p.newFn(p.timeout)

		p.mu.Lock()
		p.renderers = append(p.renderers, r)
		p.mu.Unlock()
		return r
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a renderer to the pool.
func (p *RendererPool) Release(r Renderer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- r
	}
}

// Close shuts down every renderer the pool created.
func (p *RendererPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	renderers := p.renderers
	p.mu.Unlock()

	var lastErr error
	for _, r := range renderers {
		if err := r.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count: the explicit value when
// positive, otherwise half of GOMAXPROCS clamped to [1, maxAutoWorkers].
// GOMAXPROCS is container-aware once automaxprocs has run.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
