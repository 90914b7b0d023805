// Package render draws the session onto a tcell screen. One cell of the
// board maps to one terminal cell; the board is centered with a one-line
// HUD above it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chomp/core"
	"github.com/lixenwraith/chomp/engine"
	"github.com/lixenwraith/chomp/ghost"
	"github.com/lixenwraith/chomp/maze"
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorNavy)
	stylePellet = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePower  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFruit  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFright = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWarn   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// ghostStyles maps brain names to body colors; unknown names cycle gray
var ghostStyles = map[string]tcell.Style{
	"Blinky": tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	"Pinky":  tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true),
	"Inky":   tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	"Clyde":  tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
}

// Renderer draws frames; it owns no game state
type Renderer struct {
	screen tcell.Screen
}

// New wraps an initialized screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one full frame
func (r *Renderer) Draw(s *engine.Session) {
	r.screen.Clear()

	g := s.Grid()
	sw, sh := r.screen.Size()
	offX := (sw - g.Width) / 2
	offY := (sh - g.Height - 2) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 1 {
		offY = 1
	}
	offY++ // HUD line above the board

	r.drawBoard(g, offX, offY)

	if s.FruitActive() {
		p := s.FruitPos()
		r.screen.SetContent(offX+p.X, offY+p.Y, '♦', nil, styleFruit)
	}

	for _, gh := range s.Ghosts() {
		r.screen.SetContent(offX+gh.Pos.X, offY+gh.Pos.Y, 'M', nil, r.ghostStyle(gh))
	}

	pl := s.Player()
	r.screen.SetContent(offX+pl.Pos.X, offY+pl.Pos.Y, playerRune(pl.Dir), nil, stylePlayer)

	if s.Debug() {
		r.drawDebug(s, offX, offY)
	}

	r.drawHUD(s, offX, offY-1, g.Width)
	r.drawBanners(s, offX, offY, g)

	r.screen.Show()
}

func (r *Renderer) drawBoard(g *maze.Grid, offX, offY int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.IsWalkable(p) {
				r.screen.SetContent(offX+x, offY+y, '█', nil, styleWall)
				continue
			}
			switch g.PelletAt(p) {
			case maze.PelletDot:
				r.screen.SetContent(offX+x, offY+y, '·', nil, stylePellet)
			case maze.PelletPower:
				r.screen.SetContent(offX+x, offY+y, '●', nil, stylePower)
			}
		}
	}
}

func (r *Renderer) ghostStyle(gh *ghost.Ghost) tcell.Style {
	if gh.Vulnerable {
		return styleFright
	}
	if st, ok := ghostStyles[gh.Brain.Name()]; ok {
		return st
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true)
}

// playerRune faces the mouth along the travel direction
func playerRune(dir core.Point) rune {
	switch dir {
	case core.Left:
		return '>'
	case core.Right:
		return '<'
	case core.Up:
		return 'v'
	case core.Down:
		return '^'
	}
	return 'O'
}

// drawDebug marks each ghost's target tile and lists brain states
func (r *Renderer) drawDebug(s *engine.Session, offX, offY int) {
	g := s.Grid()
	for i, gh := range s.Ghosts() {
		if i >= 4 {
			break // Stress extras would flood the overlay
		}
		t := gh.Target
		if g.InBounds(t) {
			r.screen.SetContent(offX+t.X, offY+t.Y, '+', nil, r.ghostStyle(gh))
		}
		line := fmt.Sprintf("%-6s %s", gh.Brain.Name(), gh.Mode)
		r.drawText(offX+g.Width+2, offY+i, line, r.ghostStyle(gh))
	}
}

func (r *Renderer) drawHUD(s *engine.Session, x, y, width int) {
	hud := fmt.Sprintf("Score %d  Lives %d  Level %d  Pellets %d",
		s.Score(), s.Lives(), s.Level(), s.Grid().RemainingPellets())
	r.drawText(x, y, hud, styleHUD)

	flags := ""
	if s.VulnerableActive() {
		flags += " VULNERABLE"
	}
	if s.Stress() {
		flags += " STRESS"
	}
	if s.Debug() {
		flags += " DEBUG"
	}
	if flags != "" {
		r.drawText(x+len(hud)+1, y, flags, styleWarn)
	}
}

func (r *Renderer) drawBanners(s *engine.Session, offX, offY int, g *maze.Grid) {
	center := func(text string, style tcell.Style) {
		r.drawText(offX+(g.Width-len(text))/2, offY+g.Height/2, text, style)
	}
	switch s.State() {
	case engine.StatePaused:
		center(" PAUSED ", styleBanner)
	case engine.StateGameOver:
		center(" GAME OVER - press R ", styleBanner)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, c := range text {
		r.screen.SetContent(x+i, y, c, nil, style)
	}
}
