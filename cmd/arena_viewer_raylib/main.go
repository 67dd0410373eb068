// cmd/arena_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-arena-brawl/internal/app"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/input"
	"go-arena-brawl/internal/interfaces"
	"go-arena-brawl/internal/ui/rlui"
	"go-arena-brawl/internal/utils"
)

// Зритель: игрок стоит на месте, враги дерутся между собой и с ним.
// P — пауза, N — шаг на паузе, R — новый матч.
func main() {
	seed := flag.Int64("seed", 0, "match seed, 0 for a random one")
	rulesPath := flag.String("rules", "", "path to rules.json")
	className := flag.String("class", string(defs.DefaultClass), "player class")
	flag.Parse()

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		loaded, err := defs.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
		rules = loaded
	}
	rules.Seed = *seed
	class := defs.ClassOrDefault(*className)

	var ctrl interfaces.InputProvider = input.Idle{}
	clock := utils.NewManualClock(0)
	newMatch := func() *app.Game {
		clock.Set(0)
		return app.NewGame(app.Options{Rules: rules, PlayerClass: class, Clock: clock})
	}
	game := newMatch()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Arena Brawl - spectator")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TickRate)

	paused := false
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyR) {
			game = newMatch()
		}
		step := !paused || rl.IsKeyPressed(rl.KeyN)
		if step && !game.Over() {
			clock.Advance(utils.TickMillis(config.TickRate))
			game.Tick(ctrl.Poll())
		}

		rl.BeginDrawing()
		rl.ClearBackground(rlui.ColorToRL(config.BackgroundColor))
		rlui.DrawArena(game)
		rlui.DrawLivesPanel(config.ArenaWidth, 0, append(game.Combatants(), game.Fallen()...))

		status := fmt.Sprintf("tick %d  seed %d", game.ECS.Tick, game.Seed())
		if paused {
			status += "  PAUSED"
		}
		rl.DrawText(status, 6, config.ScreenHeight-18, 14, rl.RayWhite)
		if game.Over() {
			msg := "MATCH OVER - R to restart"
			w := rl.MeasureText(msg, 30)
			rl.DrawText(msg, (config.ArenaWidth-w)/2, config.ScreenHeight/2-15, 30, rl.RayWhite)
		}
		rl.EndDrawing()
	}
}
