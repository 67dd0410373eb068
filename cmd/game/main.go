// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/input"
	"go-arena-brawl/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "match seed, 0 for a random one")
	rulesPath := flag.String("rules", "", "path to rules.json")
	fightersPath := flag.String("fighters", "", "path to fighters.json")
	className := flag.String("class", "", "player class or 1-6; skips the menu")
	flag.Parse()

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		loaded, err := defs.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
		rules = loaded
	}
	if *seed != 0 {
		rules.Seed = *seed
	}
	if *fightersPath != "" {
		if err := defs.LoadFighterDefinitions(*fightersPath); err != nil {
			log.Fatalf("Failed to load fighter definitions: %v", err)
		}
	}

	session := &state.Session{
		Rules:    rules,
		FontFace: basicfont.Face7x13,
		Input:    input.NewEbitenInput(),
	}

	sm := state.NewStateMachine()
	if *className != "" {
		class, err := defs.ParseClass(*className)
		if err != nil {
			log.Printf("%v, using %s", err, defs.DefaultClass)
			class = defs.DefaultClass
		}
		session.Class = class
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Brawl")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
