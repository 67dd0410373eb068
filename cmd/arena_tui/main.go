// cmd/arena_tui/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-arena-brawl/internal/app"
	"go-arena-brawl/internal/component"
	"go-arena-brawl/internal/config"
	"go-arena-brawl/internal/defs"
	"go-arena-brawl/internal/input"
	"go-arena-brawl/internal/utils"
	"go-arena-brawl/pkg/geom"
)

// Размер клетки терминала в единицах арены: 800x600 -> 80x30.
const (
	cellW = 10
	cellH = 20

	holdTicks = 8 // терминал не сообщает об отпускании клавиш
)

type terminalGame struct {
	screen tcell.Screen
	rules  defs.Rules
	class  defs.Class
	game   *app.Game
	clock  *utils.ManualClock
	latch  *input.Latch
	paused bool
}

func newTerminalGame(screen tcell.Screen, rules defs.Rules, class defs.Class) *terminalGame {
	t := &terminalGame{
		screen: screen,
		clock:  utils.NewManualClock(0),
		latch:  input.NewLatch(holdTicks),
		rules:  rules,
		class:  class,
	}
	t.restart()
	return t
}

func (t *terminalGame) restart() {
	t.clock.Set(0)
	t.game = app.NewGame(app.Options{Rules: t.rules, PlayerClass: t.class, Clock: t.clock})
	t.paused = false
}

func (t *terminalGame) run() {
	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			in := t.latch.Poll()
			if in.Restart {
				t.restart()
			}
			if in.Pause {
				t.paused = !t.paused
			}
			if !t.paused && !t.game.Over() {
				t.clock.Advance(utils.TickMillis(config.TickRate))
				t.game.Tick(in)
			}
			t.draw()
		}
	}
}

func (t *terminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.latch.Move(input.Up)
		case tcell.KeyDown:
			t.latch.Move(input.Down)
		case tcell.KeyLeft:
			t.latch.Move(input.Left)
		case tcell.KeyRight:
			t.latch.Move(input.Right)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				t.latch.Move(input.Up)
			case 's':
				t.latch.Move(input.Down)
			case 'a':
				t.latch.Move(input.Left)
			case 'd':
				t.latch.Move(input.Right)
			case ' ':
				t.latch.Melee()
			case 'f':
				if target, ok := t.nearestEnemy(); ok {
					t.latch.Fire(target)
				}
			case 'p':
				t.latch.Pause()
			case 'r':
				t.latch.Restart()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			t.latch.Fire(cellToArena(x, y))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// nearestEnemy — точка прицеливания для выстрела с клавиатуры.
func (t *terminalGame) nearestEnemy() (geom.Point, bool) {
	player := t.game.Player()
	if player == nil {
		return geom.Point{}, false
	}
	from := player.Center()
	best, found := geom.Point{}, false
	bestDist := 0
	for _, e := range t.game.ECS.Enemies() {
		d := from.DistSq(e.Center())
		if !found || d < bestDist {
			best, bestDist, found = e.Center(), d, true
		}
	}
	return best, found
}

func (t *terminalGame) draw() {
	t.screen.Clear()
	cols, rows := config.ArenaWidth/cellW, config.ArenaHeight/cellH
	border := tcell.StyleDefault.Foreground(toTcell(config.ArenaBorderColor))
	for x := -1; x <= cols; x++ {
		t.put(x, -1, '─', border)
		t.put(x, rows, '─', border)
	}
	for y := 0; y < rows; y++ {
		t.put(-1, y, '│', border)
		t.put(cols, y, '│', border)
	}

	for _, c := range t.game.Fallen() {
		x, y := arenaToCell(c.Center())
		t.put(x, y, 'x', tcell.StyleDefault.Foreground(toTcell(config.SkullColor)))
	}
	for _, p := range t.game.Projectiles() {
		x, y := arenaToCell(p.Pos)
		t.put(x, y, '*', tcell.StyleDefault.Foreground(toTcell(defs.Fighter(p.Class).ProjectileColor)))
	}
	for _, c := range t.game.Combatants() {
		t.drawCombatant(c)
	}
	if champ := t.game.Champion(); champ != nil {
		x, y := arenaToCell(champ.Center())
		t.put(x, y-1, '^', tcell.StyleDefault.Foreground(toTcell(config.CrownColor)).Bold(true))
	}

	t.drawPanel(cols + 3)
	t.screen.Show()
}

func (t *terminalGame) drawCombatant(c *component.Combatant) {
	def := defs.Fighter(c.Class)
	style := tcell.StyleDefault.Foreground(toTcell(def.Color))
	if t.game.Flashing(c.ID) {
		style = style.Reverse(true)
	}
	if c.IsPlayer() {
		style = style.Bold(true).Underline(true)
	}
	symbol := []rune(def.Symbol)
	r := '?'
	if len(symbol) > 0 {
		r = symbol[0]
	}
	x, y := arenaToCell(c.Center())
	t.put(x, y, r, style)
}

func (t *terminalGame) drawPanel(left int) {
	text := tcell.StyleDefault.Foreground(toTcell(config.TextLightColor))
	y := 0
	t.print(left, y, fmt.Sprintf("tick %d seed %d", t.game.ECS.Tick, t.game.Seed()), text)
	y += 2
	fighters := append(t.game.Combatants(), t.game.Fallen()...)
	for _, c := range fighters {
		def := defs.Fighter(c.Class)
		bar := strings.Repeat("█", max(c.Health, 0)) + strings.Repeat("░", c.MaxHealth-max(c.Health, 0))
		label := fmt.Sprintf("%s %s x%d", def.Symbol, bar, c.Lives)
		if c.IsPlayer() {
			label += " (you)"
		}
		t.print(left, y, label, tcell.StyleDefault.Foreground(toTcell(def.Color)))
		y++
	}
	y++
	switch {
	case t.game.Over():
		t.print(left, y, "GAME OVER - r to restart", text.Bold(true))
	case t.paused:
		t.print(left, y, "PAUSED - p to resume", text.Bold(true))
	default:
		t.print(left, y, "wasd move, space melee", text)
		t.print(left, y+1, "f / click fire, p pause, q quit", text)
	}
}

func (t *terminalGame) put(x, y int, r rune, style tcell.Style) {
	// +1 за рамку арены
	t.screen.SetContent(x+1, y+1, r, nil, style)
}

func (t *terminalGame) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.put(x+i, y, r, style)
	}
}

func arenaToCell(p geom.Point) (int, int) {
	return p.X / cellW, p.Y / cellH
}

func cellToArena(x, y int) geom.Point {
	return geom.Point{X: (x-1)*cellW + cellW/2, Y: (y-1)*cellH + cellH/2}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func main() {
	seed := flag.Int64("seed", 0, "match seed, 0 for a random one")
	rulesPath := flag.String("rules", "", "path to rules.json")
	className := flag.String("class", string(defs.DefaultClass), "player class or 1-6")
	logPath := flag.String("log", "", "write the match log to this file")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		loaded, err := defs.LoadRules(*rulesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
			os.Exit(1)
		}
		rules = loaded
	}
	if *seed != 0 {
		rules.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorWhite))

	newTerminalGame(screen, rules, defs.ClassOrDefault(*className)).run()
}
