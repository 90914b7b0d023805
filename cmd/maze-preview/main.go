// Command maze-preview generates boards on demand and prints them as
// ASCII, useful for tuning braiding and eyeballing pellet layouts.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== BOARD GENERATOR ===")

		w := getInt(reader, "Width (default 28): ", 28)
		h := getInt(reader, "Height (default 31): ", 31)
		braid := getFloat(reader, "Braiding Factor [0.0 - 1.0] (default 0.5): ", 0.5)
		seed := getInt(reader, "Seed (default random): ", 0)

		cfg := maze.Config{
			Width:    w,
			Height:   h,
			Braiding: braid,
			Seed:     int64(seed),
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v (seed %d)\n", dur, res.Seed)
		fmt.Printf("Pellets: %d  Tunnel rows: %v\n", res.Grid.RemainingPellets(), res.Grid.TunnelRows())

		draw(res)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(res maze.Result) {
	g := res.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}

			switch {
			case p == res.PlayerSpawn:
				fmt.Print("P")
			case isGhostSpawn(res, p):
				fmt.Print("G")
			case !g.IsWalkable(p):
				fmt.Print("█")
			case g.PelletAt(p) == maze.PelletPower:
				fmt.Print("o")
			case g.PelletAt(p) == maze.PelletDot:
				fmt.Print("·")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func isGhostSpawn(res maze.Result, p core.Point) bool {
	for _, g := range res.GhostSpawns {
		if g == p {
			return true
		}
	}
	return false
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
