package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/chomp/core"
)

// Config controls board generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect spanning tree) to 1.0 (no dead ends).
	// Braiding only removes walls, so connectivity is preserved.
	Braiding float64

	Seed int64 // Optional (0 = time-derived)
}

// Result is a generated board plus the spawn cells derived from it
type Result struct {
	Grid        *Grid
	PlayerSpawn core.Point
	GhostSpawns []core.Point
	Seed        int64 // Seed that actually produced the board
}

const (
	minDimension = 9

	spawnClearRadius = 2
	pelletFreeRadius = 2
	powerCornerInset = 2
)

// Generate carves a fully connected board with randomized Prim frontier
// growth. The left half is grown as a spanning tree and mirrored onto the
// right half before the tunnel rows and border are carved, so bilateral
// symmetry never breaks connectivity: the always-open tunnel rows join the
// two halves. Every non-wall cell is reachable from every other; a seed
// that fails the flood-fill check is retried with a derived seed.
func Generate(cfg Config) (Result, error) {
	if cfg.Width < minDimension || cfg.Height < minDimension {
		return Result{}, fmt.Errorf("board dimensions %dx%d below minimum %d", cfg.Width, cfg.Height, minDimension)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := generateOnce(cfg, seed+int64(attempt))
		if err == nil {
			return res, nil
		}
		lastErr = err
	}
	return Result{}, fmt.Errorf("maze generation failed after %d seeds: %w", maxAttempts, lastErr)
}

const maxAttempts = 8

func generateOnce(cfg Config, seed int64) (Result, error) {
	w, h := cfg.Width, cfg.Height
	tunnels := [2]int{h / 3, 2 * h / 3}
	g := newGrid(w, h, tunnels)
	rng := rand.New(rand.NewSource(seed))

	// 1. Spanning tree over the left half
	carvePrim(g, rng, w/2)

	// 2. Mirror left onto right before any post-processing
	mirror(g)

	// 3. Braiding (cycle introduction, full width)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	// 4. Tunnel rows always open, then the permanent border with the
	// tunnel mouths left open
	for _, ty := range tunnels {
		for x := 0; x < w; x++ {
			g.setWall(core.Point{X: x, Y: ty}, Passage)
		}
	}
	carveBorder(g)

	// 5. Spawn clearings
	ghostHouse := core.Point{X: w / 2, Y: 5}
	playerSpawn := core.Point{X: w / 2, Y: h - 5}
	clearArea(g, ghostHouse, spawnClearRadius)
	clearArea(g, playerSpawn, spawnClearRadius)

	// 6. Pellets and corner power pellets
	placePellets(g)

	// 7. Connectivity invariant
	if !fullyConnected(g, playerSpawn) {
		return Result{}, fmt.Errorf("seed %d produced a disconnected board", seed)
	}

	ghostSpawns := []core.Point{
		{X: ghostHouse.X - 1, Y: ghostHouse.Y},
		{X: ghostHouse.X + 1, Y: ghostHouse.Y},
		{X: ghostHouse.X, Y: ghostHouse.Y - 1},
		{X: ghostHouse.X, Y: ghostHouse.Y + 1},
	}

	return Result{
		Grid:        g,
		PlayerSpawn: playerSpawn,
		GhostSpawns: ghostSpawns,
		Seed:        seed,
	}, nil
}

// carvePrim grows a spanning tree over the odd-coordinate lattice of the
// columns [1, halfWidth), connecting each newly opened node to exactly one
// already-open neighbor. Only tree edges are carved, so the opened set is
// connected and acyclic by construction.
func carvePrim(g *Grid, rng *rand.Rand, halfWidth int) {
	type node = core.Point

	inRegion := func(p node) bool {
		return p.X >= 1 && p.X < halfWidth && p.Y >= 1 && p.Y < g.Height-1
	}

	jumps := [4]core.Point{{X: 0, Y: -2}, {X: -2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}}

	open := make(map[node]bool)
	var frontier []node
	inFrontier := make(map[node]bool)

	pushFrontier := func(p node) {
		for _, d := range jumps {
			q := p.Add(d)
			if inRegion(q) && !open[q] && !inFrontier[q] {
				frontier = append(frontier, q)
				inFrontier[q] = true
			}
		}
	}

	seedNode := node{X: 1, Y: 1}
	open[seedNode] = true
	g.setWall(seedNode, Passage)
	pushFrontier(seedNode)

	for len(frontier) > 0 {
		// Uniform pick; swap-remove keeps the pick O(1)
		i := rng.Intn(len(frontier))
		cur := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		delete(inFrontier, cur)

		// Connect to exactly one already-open neighbor
		var opened []node
		for _, d := range jumps {
			q := cur.Add(d)
			if inRegion(q) && open[q] {
				opened = append(opened, q)
			}
		}
		if len(opened) == 0 {
			continue // Cannot happen: frontier nodes border an open node
		}
		link := opened[rng.Intn(len(opened))]
		between := core.Point{X: (cur.X + link.X) / 2, Y: (cur.Y + link.Y) / 2}

		g.setWall(cur, Passage)
		g.setWall(between, Passage)
		open[cur] = true
		pushFrontier(cur)
	}
}

// mirror copies the left half onto the right half, column-reflected
func mirror(g *Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width/2; x++ {
			src := core.Point{X: x, Y: y}
			dst := core.Point{X: g.Width - 1 - x, Y: y}
			g.setWall(dst, g.walls[g.index(src)])
		}
	}
}

// braid opens a wall next to dead-end cells with the given probability,
// turning tree leaves into loop junctions. Walls are only removed, never
// added, so the connected component can only grow.
func braid(g *Grid, probability float64, rng *rand.Rand) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			p := core.Point{X: x, Y: y}
			if g.walls[g.index(p)] == Wall {
				continue
			}

			exits := 0
			for _, d := range core.CardinalDirs {
				if g.IsWalkable(p.Add(d)) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			// Knock through a wall that leads to another open cell
			var candidates []core.Point
			for _, d := range core.CardinalDirs {
				wallCell := p.Add(d)
				beyond := p.Add(d.Scale(2))
				if g.InBounds(beyond) && !g.IsWalkable(wallCell) && g.IsWalkable(beyond) &&
					wallCell.X >= 1 && wallCell.X < g.Width-1 && wallCell.Y >= 1 && wallCell.Y < g.Height-1 {
					candidates = append(candidates, wallCell)
				}
			}
			if len(candidates) > 0 {
				g.setWall(candidates[rng.Intn(len(candidates))], Passage)
			}
		}
	}
}

// carveBorder walls the outer ring except the tunnel mouths
func carveBorder(g *Grid) {
	for x := 0; x < g.Width; x++ {
		g.setWall(core.Point{X: x, Y: 0}, Wall)
		g.setWall(core.Point{X: x, Y: g.Height - 1}, Wall)
	}
	for y := 0; y < g.Height; y++ {
		if g.isTunnelRow(y) {
			continue
		}
		g.setWall(core.Point{X: 0, Y: y}, Wall)
		g.setWall(core.Point{X: g.Width - 1, Y: y}, Wall)
	}
}

// clearArea opens a box around center, staying inside the border
func clearArea(g *Grid, center core.Point, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := core.Point{X: center.X + dx, Y: center.Y + dy}
			if p.X >= 1 && p.X < g.Width-1 && p.Y >= 1 && p.Y < g.Height-1 {
				g.setWall(p, Passage)
			}
		}
	}
}

// placePellets fills walkable cells with dots, keeps the board center
// clear, and forces a power pellet open at each corner
func placePellets(g *Grid) {
	center := core.Point{X: g.Width / 2, Y: g.Height / 2}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.IsWalkable(p) {
				continue
			}
			if absInt(x-center.X) <= pelletFreeRadius && absInt(y-center.Y) <= pelletFreeRadius {
				continue
			}
			g.setPellet(p, PelletDot)
		}
	}

	corners := [4]core.Point{
		{X: powerCornerInset, Y: powerCornerInset},
		{X: g.Width - 1 - powerCornerInset, Y: powerCornerInset},
		{X: powerCornerInset, Y: g.Height - 1 - powerCornerInset},
		{X: g.Width - 1 - powerCornerInset, Y: g.Height - 1 - powerCornerInset},
	}
	for _, c := range corners {
		forceOpen(g, c)
		g.setPellet(c, PelletPower)
	}
}

// forceOpen makes p walkable, tunneling toward the interior if the cell
// would otherwise be isolated
func forceOpen(g *Grid, p core.Point) {
	g.setWall(p, Passage)

	for _, d := range core.CardinalDirs {
		if g.IsWalkable(p.Add(d)) {
			return
		}
	}

	// Isolated: open the neighbor closer to the board center
	step := core.Point{X: sign(g.Width/2 - p.X), Y: 0}
	if step.X == 0 {
		step.Y = sign(g.Height/2 - p.Y)
	}
	q := p.Add(step)
	for g.InBounds(q) && q.X >= 1 && q.X < g.Width-1 && q.Y >= 1 && q.Y < g.Height-1 {
		if g.IsWalkable(q) {
			return
		}
		g.setWall(q, Passage)
		q = q.Add(step)
	}
}

// fullyConnected flood-fills from start and checks every passage was reached
func fullyConnected(g *Grid, start core.Point) bool {
	if !g.IsWalkable(start) {
		return false
	}

	total := 0
	for _, wall := range g.walls {
		if wall == Passage {
			total++
		}
	}

	seen := make([]bool, len(g.walls))
	queue := []core.Point{start}
	seen[g.index(start)] = true
	reached := 1

	var buf [4]core.Point
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur, buf[:0]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				reached++
				queue = append(queue, n)
			}
		}
	}

	return reached == total
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
