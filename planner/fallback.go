package planner

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/egress/floorgrid"
	"github.com/katalvlaran/egress/hazard"
)

// SearchFrom is the deterministic fallback: a best-first search from start
// to the nearest member of exits under the hazard cost model. The
// heuristic (minimum Euclidean distance to any exit) never overestimates
// the remaining cost, so the returned route is cost-minimal among all
// routes valid under the current step rules. Returns ErrNoRoute when no
// exit is reachable; a partial route is never returned.
//
// SearchFrom shares the planner's step-validity and penalty rules, which
// is what lets the signage layer reuse it for per-point guidance.
//
// Complexity: O(H×W log(H×W)) time, O(H×W) memory.
func SearchFrom(g *floorgrid.FloorGrid, f *hazard.Field, start floorgrid.Coord, exits []floorgrid.Coord) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if f == nil {
		return Result{}, ErrNilField
	}
	if len(exits) == 0 {
		return Result{}, ErrNoExits
	}
	if !g.InBounds(start) {
		return Result{}, ErrOutOfBounds
	}

	goals := mapset.New[floorgrid.Coord]()
	for _, e := range exits {
		if !g.InBounds(e) {
			return Result{}, ErrOutOfBounds
		}
		goals.Put(e)
	}
	if goals.Has(start) {
		return Result{Route: []floorgrid.Coord{start}, Cost: 0}, nil
	}

	h := func(pos floorgrid.Coord) float64 {
		best := math.Inf(1)
		for _, e := range exits {
			if d := floorgrid.Distance(pos, e); d < best {
				best = d
			}
		}
		return best
	}

	buffer := f.ActiveStage().Buffer()
	gCost := map[floorgrid.Coord]float64{start: 0}
	parent := map[floorgrid.Coord]floorgrid.Coord{}
	visited := mapset.New[floorgrid.Coord]()

	// Lazy-decrease-key min-heap: improved distances push duplicates, and
	// stale entries are skipped on pop via the visited set.
	pq := make(searchPQ, 0, g.Height()*g.Width()/4)
	heap.Init(&pq)
	heap.Push(&pq, &searchNode{pos: start, f: h(start)})

	for pq.Len() > 0 {
		node := heap.Pop(&pq).(*searchNode)
		if visited.Has(node.pos) {
			continue
		}
		visited.Put(node.pos)

		if goals.Has(node.pos) {
			return Result{Route: rebuild(parent, node.pos), Cost: gCost[node.pos]}, nil
		}

		for _, n := range g.Neighbors(node.pos) {
			if !stepAllowed(g, f, node.pos, n, buffer) {
				continue
			}
			pen := f.Penalty(n)
			if math.IsInf(pen, 1) {
				continue
			}

			tentative := gCost[node.pos] + floorgrid.Distance(node.pos, n)*(1+pen)
			if prev, ok := gCost[n]; ok && tentative >= prev {
				continue
			}
			gCost[n] = tentative
			parent[n] = node.pos
			heap.Push(&pq, &searchNode{pos: n, f: tentative + h(n)})
		}
	}

	return Result{}, ErrNoRoute
}

// rebuild walks the parent links from goal back to the search root and
// reverses them into a start→goal route.
func rebuild(parent map[floorgrid.Coord]floorgrid.Coord, goal floorgrid.Coord) []floorgrid.Coord {
	route := []floorgrid.Coord{goal}
	node := goal
	for {
		p, ok := parent[node]
		if !ok {
			break
		}
		route = append(route, p)
		node = p
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// searchNode is a heap entry: a coordinate and its f = g + h priority.
type searchNode struct {
	pos floorgrid.Coord
	f   float64
}

// searchPQ is a min-heap of *searchNode ordered by f ascending.
type searchPQ []*searchNode

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
