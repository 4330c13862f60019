package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const frameTime = 1.0 / 60.0

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	maxGames := flag.Int("games", 0, "Stop after this many games. 0 plays until the duration ends.")
	actionsPerTick := flag.Int("actions", 1, "Random actions the bot queues every frame.")
	seed := flag.Uint64("seed", 1, "Seed for piece selection and bot input.")
	bag := flag.Bool("bag", false, "Deal pieces from shuffled bags instead of uniformly.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	cfg := tetris.DefaultConfig()
	report := &Report{
		Duration:       *duration,
		Rows:           cfg.Rows,
		Columns:        cfg.Columns,
		ActionsPerTick: *actionsPerTick,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		Spawned:        make(map[tetris.Shape]int),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

	for i := 0; *maxGames == 0 || i < *maxGames; i++ {
		gameSeed := *seed + uint64(i)
		c := cfg
		c.Seed = gameSeed
		if *bag {
			c.Source = tetris.NewBagSource(gameSeed)
		}

		finished, err := playGame(ctx, c, NewBotSystem(gameSeed, *actionsPerTick), report)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		if !finished {
			break
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Scores.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Stress test finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// playGame runs one bot game to completion. It reports false when ctx ended
// the game early, in which case nothing but update times is recorded.
func playGame(ctx context.Context, cfg tetris.Config, bot *BotSystem, report *Report) (bool, error) {
	board, err := tetris.NewBoard(cfg)
	if err != nil {
		return false, err
	}

	session := game.NewSession(board)
	session.Register(bot)
	session.Register(&game.GravitySystem{Interval: game.DefaultGravity})

	for {
		select {
		case <-ctx.Done():
			return false, nil
		case <-session.Done():
			result, _ := session.Result()
			report.Record(result, session.Snapshot().Stats, session.Stats())
			return true, nil
		default:
			updateStart := time.Now()
			session.Once(frameTime)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}
}
