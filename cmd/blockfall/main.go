package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const (
	windowTitle    = "Blockfall"
	smallCellScale = 10
	inspectorWidth = 340
)

func main() {
	cfg := tetris.DefaultConfig()
	flag.IntVar(&cfg.Rows, "rows", tetris.DefaultRows, "Number of board rows.")
	flag.IntVar(&cfg.Columns, "columns", tetris.DefaultColumns, "Number of board columns.")
	flag.IntVar(&cfg.Scale, "scale", tetris.DefaultScale, "Cell size in pixels.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Seed for piece selection. 0 seeds from the clock.")
	flag.BoolVar(&cfg.LegacyRotation, "legacy-rotation", false, "Rotate 3x3 pieces the same way for both rotation keys.")
	small := flag.Bool("p", false, "Use small 10 pixel cells.")
	bag := flag.Bool("bag", false, "Deal pieces from shuffled bags instead of uniformly.")
	gravity := flag.Duration("gravity", 500*time.Millisecond, "Time between gravity steps.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector.")
	flag.Parse()

	if *small {
		cfg.Scale = smallCellScale
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	newSession := func() *game.Session {
		c := cfg
		if *bag {
			c.Source = tetris.NewBagSource(cfg.Seed)
		}

		board, err := tetris.NewBoard(c)
		if err != nil {
			log.Fatalf("Failed to create board: %v", err)
		}

		session := game.NewSession(board)
		session.Register(&game.GravitySystem{Interval: gravity.Seconds()})
		session.OnGameOver(func(r game.Result) {
			log.Printf("Final Score: %d (%d lines, %d pieces)", r.Score, r.Lines, r.Pieces)
		})
		return session
	}

	frontend := &Frontend{
		cfg:        cfg,
		newSession: newSession,
	}

	if *debug {
		frontend.offsetX = inspectorWidth
		width, height := frontend.screenSize()
		frontend.imgui = debugui_ebiten.NewImguiBackend(windowTitle, width, height)
		frontend.imguiSystem = &debugui.ImguiSystem{}
		frontend.imguiSystem.Add(debugui.NewPerformanceStats(120).Render)
		frontend.imguiSystem.Add(debugui.NewBoardInspector().Render)
	} else {
		width, height := frontend.screenSize()
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	frontend.restart()
	log.Printf("Starting %dx%d board", cfg.Columns, cfg.Rows)

	if err := ebiten.RunGame(frontend); err != nil {
		log.Fatal(err)
	}
}
