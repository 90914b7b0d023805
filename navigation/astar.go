package navigation

import (
	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

const unreachable = 1<<30 - 1

// --- Min-heap for A* frontier ---

type heapEntry struct {
	idx int // Flat grid index (y*width + x)
	f   int // g + Manhattan heuristic
	g   int // Steps from start
	seq int // Insertion order, final tie-break
}

// less orders by f, then lower g, then insertion order, keeping expansion
// deterministic for identical inputs
func (a heapEntry) less(b heapEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].less((*h)[i]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if (*h)[i].less((*h)[smallest]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// FindPath runs A* from start to goal and returns the shortest path
// inclusive of both endpoints, or nil when the goal is unreachable.
// All edges cost 1 and the Manhattan heuristic never overestimates
// orthogonal step distance, so the first pop of the goal is optimal.
func FindPath(g *maze.Grid, start, goal core.Point) []core.Point {
	start = g.Normalize(start)
	goal = g.Normalize(goal)
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return nil
	}
	if start == goal {
		return []core.Point{start}
	}

	w := g.Width
	size := w * g.Height
	gScore := make([]int, size)
	cameFrom := make([]int32, size)
	closed := make([]bool, size)
	for i := 0; i < size; i++ {
		gScore[i] = unreachable
		cameFrom[i] = -1
	}

	idx := func(p core.Point) int { return p.Y*w + p.X }
	startIdx := idx(start)
	goalIdx := idx(goal)
	gScore[startIdx] = 0

	var heap minHeap
	seq := 0
	heap.push(heapEntry{idx: startIdx, f: start.Manhattan(goal), g: 0, seq: seq})

	var buf [4]core.Point
	for len(heap) > 0 {
		cur := heap.pop()
		if closed[cur.idx] {
			continue // Stale entry
		}
		closed[cur.idx] = true

		if cur.idx == goalIdx {
			return reconstruct(cameFrom, w, goalIdx)
		}

		curPoint := core.Point{X: cur.idx % w, Y: cur.idx / w}
		for _, n := range g.Neighbors(curPoint, buf[:0]) {
			ni := idx(n)
			if closed[ni] {
				continue
			}
			newG := cur.g + 1
			if newG >= gScore[ni] {
				continue
			}
			gScore[ni] = newG
			cameFrom[ni] = int32(cur.idx)
			seq++
			heap.push(heapEntry{idx: ni, f: newG + n.Manhattan(goal), g: newG, seq: seq})
		}
	}

	return nil // Frontier empty: disconnected components
}

func reconstruct(cameFrom []int32, width, goalIdx int) []core.Point {
	var rev []core.Point
	for i := goalIdx; i != -1; i = int(cameFrom[i]) {
		rev = append(rev, core.Point{X: i % width, Y: i / width})
	}
	path := make([]core.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
