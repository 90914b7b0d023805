package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chomp/audio"
	"github.com/lixenwraith/chomp/engine"
	"github.com/lixenwraith/chomp/input"
	"github.com/lixenwraith/chomp/parameter"
	"github.com/lixenwraith/chomp/render"
)

// Game wires the session to the terminal shell
type Game struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	sound    *audio.Player
}

func NewGame() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	session, err := engine.NewSession(engine.DefaultConfig())
	if err != nil {
		screen.Fini()
		return nil, err
	}

	sound, err := audio.NewPlayer()
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return &Game{
		screen:   screen,
		session:  session,
		renderer: render.New(screen),
		sound:    sound,
	}, nil
}

// handleIntent applies one input action; returns false to quit
func (g *Game) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentMove:
		g.session.QueueDirection(in.Dir)
	case input.IntentPause:
		g.session.TogglePause()
	case input.IntentDebug:
		g.session.ToggleDebug()
	case input.IntentStress:
		if err := g.session.ToggleStress(); err != nil {
			log.Printf("Stress toggle failed: %v", err)
		}
	case input.IntentRestart:
		if err := g.session.Restart(); err != nil {
			log.Printf("Restart failed: %v", err)
		}
	case input.IntentResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / parameter.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleIntent(input.Translate(ev)) {
				return
			}

		case <-ticker.C:
			events := g.session.Update()
			g.sound.Handle(events)
			g.renderer.Draw(g.session)
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}

func main() {
	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
