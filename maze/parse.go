package maze

import (
	"fmt"

	"github.com/lixenwraith/chomp/core"
)

// Parse builds a Grid from an ASCII picture: '#' wall, '.' dot, 'o' power
// pellet, anything else open floor. Rows whose first and last cells are
// both open become tunnel rows (at most two). Intended for tests and the
// preview tool; gameplay boards come from Generate.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	h := len(rows)
	w := len(rows[0])
	for i, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d", i, len(r), w)
		}
	}

	tunnels := [2]int{-1, -1}
	ti := 0
	for y, r := range rows {
		if r[0] != '#' && r[w-1] != '#' && ti < 2 {
			tunnels[ti] = y
			ti++
		}
	}

	g := newGrid(w, h, tunnels)
	for y, r := range rows {
		for x, c := range r {
			p := core.Point{X: x, Y: y}
			if c == '#' {
				continue
			}
			g.setWall(p, Passage)
			switch c {
			case '.':
				g.setPellet(p, PelletDot)
			case 'o':
				g.setPellet(p, PelletPower)
			}
		}
	}
	return g, nil
}
