package navigation

// GraphCache rebuilds the graph only when marked dirty
// Generation advances on every rebuild so consumers can tell their paths are stale
type GraphCache struct {
	Graph *Graph

	dirty      bool
	generation uint64
	// Rebuilds counts completed rebuilds
	Rebuilds int
}

// NewGraphCache creates a cache that builds on first use
func NewGraphCache() *GraphCache {
	return &GraphCache{
		Graph: NewGraph(0, 0),
		dirty: true,
	}
}

// MarkDirty forces a rebuild on the next Ensure
func (c *GraphCache) MarkDirty() {
	c.dirty = true
}

// Dirty reports a pending rebuild
func (c *GraphCache) Dirty() bool {
	return c.dirty
}

// Generation returns the number of the current build
func (c *GraphCache) Generation() uint64 {
	return c.generation
}

// Ensure runs build when dirty; returns the current generation and whether a rebuild happened
func (c *GraphCache) Ensure(build func(g *Graph)) (uint64, bool) {
	if !c.dirty {
		return c.generation, false
	}
	build(c.Graph)
	c.dirty = false
	c.generation++
	c.Rebuilds++
	return c.generation, true
}
