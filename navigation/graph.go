package navigation

import (
	"github.com/lixenwraith/hollow/core"
)

// Path is an ordered cell sequence including both endpoints
type Path []core.Point

// Graph is the 4-neighbour connectivity of a room's walkable cells
// Adjacency is a bitmask per flat index (y*Width + x), bit i set for an edge toward core.Cardinals[i]
type Graph struct {
	Width, Height int
	adj           []uint8
	walkable      []bool

	// Reusable BFS buffers
	parent []int32
	queue  []int32
}

// NewGraph creates an empty graph for the given dimensions
func NewGraph(width, height int) *Graph {
	g := &Graph{}
	g.Resize(width, height)
	return g
}

// Resize adjusts dimensions and drops every edge
func (g *Graph) Resize(width, height int) {
	size := width * height
	if cap(g.adj) < size {
		g.adj = make([]uint8, size)
		g.walkable = make([]bool, size)
		g.parent = make([]int32, size)
		g.queue = make([]int32, 0, size)
	} else {
		g.adj = g.adj[:size]
		g.walkable = g.walkable[:size]
		g.parent = g.parent[:size]
		clear(g.adj)
		clear(g.walkable)
	}
	g.Width = width
	g.Height = height
}

// Build recomputes the graph: every walkable cell links to each walkable 4-neighbour
func (g *Graph) Build(width, height int, blocked func(p core.Point) bool) {
	g.Resize(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.walkable[y*width+x] = !blocked(core.Pt(x, y))
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !g.walkable[idx] {
				continue
			}
			// Right and Down cover every pair once
			if x+1 < width && g.walkable[idx+1] {
				g.link(idx, 1, idx+1)
			}
			if y+1 < height && g.walkable[idx+width] {
				g.link(idx, 2, idx+width)
			}
		}
	}
}

// Walkable reports whether p was walkable at the last build
func (g *Graph) Walkable(p core.Point) bool {
	return p.In(g.Width, g.Height) && g.walkable[p.Y*g.Width+p.X]
}

// AddEdge links two 4-adjacent in-bounds cells; returns false otherwise
func (g *Graph) AddEdge(a, b core.Point) bool {
	i, ok := g.dirIndex(a, b)
	if !ok {
		return false
	}
	g.link(g.index(a), i, g.index(b))
	return true
}

// RemoveEdge unlinks two adjacent cells
func (g *Graph) RemoveEdge(a, b core.Point) {
	i, ok := g.dirIndex(a, b)
	if !ok {
		return
	}
	g.adj[g.index(a)] &^= 1 << i
	g.adj[g.index(b)] &^= 1 << ((i + 2) % 4)
}

// Connected reports an edge between a and b
func (g *Graph) Connected(a, b core.Point) bool {
	i, ok := g.dirIndex(a, b)
	return ok && g.adj[g.index(a)]&(1<<i) != 0
}

// Neighbors returns the linked neighbours of p in core.Cardinals order
func (g *Graph) Neighbors(p core.Point) []core.Point {
	if !p.In(g.Width, g.Height) {
		return nil
	}
	mask := g.adj[g.index(p)]
	var out []core.Point
	for i, d := range core.Cardinals {
		if mask&(1<<i) != 0 {
			out = append(out, p.Add(d))
		}
	}
	return out
}

// Attach links p, walkable or not, to its walkable neighbours
// Used for endpoints such as door cells; returns the number of edges added
func (g *Graph) Attach(p core.Point) int {
	if !p.In(g.Width, g.Height) {
		return 0
	}
	n := 0
	for _, d := range core.Cardinals {
		q := p.Add(d)
		if g.Walkable(q) && g.AddEdge(p, q) {
			n++
		}
	}
	return n
}

// Search runs a breadth-first search from src to dst
// Neighbours expand in core.Cardinals order and the search stops when dst is dequeued
// Returns false with a nil path when dst is unreachable
func (g *Graph) Search(src, dst core.Point) (Path, bool) {
	if !src.In(g.Width, g.Height) || !dst.In(g.Width, g.Height) {
		return nil, false
	}
	start, goal := int32(g.index(src)), int32(g.index(dst))

	for i := range g.parent {
		g.parent[i] = -1
	}
	g.parent[start] = start
	g.queue = append(g.queue[:0], start)

	found := false
	for head := 0; head < len(g.queue); head++ {
		idx := g.queue[head]
		if idx == goal {
			found = true
			break
		}
		mask := g.adj[idx]
		for i := 0; i < 4; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			n := idx + g.offset(i)
			if g.parent[n] == -1 {
				g.parent[n] = idx
				g.queue = append(g.queue, n)
			}
		}
	}
	if !found {
		return nil, false
	}

	length := 1
	for idx := goal; idx != start; idx = g.parent[idx] {
		length++
	}
	path := make(Path, length)
	for idx, i := goal, length-1; i >= 0; idx, i = g.parent[idx], i-1 {
		path[i] = g.point(idx)
	}
	return path, true
}

func (g *Graph) link(a int, dir int, b int) {
	g.adj[a] |= 1 << dir
	g.adj[b] |= 1 << ((dir + 2) % 4)
}

func (g *Graph) index(p core.Point) int {
	return p.Y*g.Width + p.X
}

func (g *Graph) point(idx int32) core.Point {
	return core.Pt(int(idx)%g.Width, int(idx)/g.Width)
}

// offset returns the flat index step of core.Cardinals[i]
func (g *Graph) offset(i int) int32 {
	d := core.Cardinals[i]
	return int32(d.Y*g.Width + d.X)
}

// dirIndex returns the Cardinals index leading from a to b
func (g *Graph) dirIndex(a, b core.Point) (int, bool) {
	if !a.In(g.Width, g.Height) || !b.In(g.Width, g.Height) {
		return 0, false
	}
	d := core.DirectionTo(a, b)
	if a.Add(d) != b {
		return 0, false
	}
	for i, c := range core.Cardinals {
		if c == d {
			return i, true
		}
	}
	return 0, false
}
