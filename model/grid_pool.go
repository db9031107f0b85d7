package model

import "sync"

// GridPool recycles scratch grids between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resized to size x size and cleared
func (p *GridPool) Get(size int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(size)
	return g
}

// Put returns a grid to the pool
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}
