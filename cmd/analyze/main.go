// Command analyze samples seeded boards and prints quick, human-readable
// statistics about random placement. It reports how many gems and obstacles
// actually land (colliding draws are skipped, so boards can come up short),
// how often a player starts boxed in with no legal move, and how far each
// player starts from the nearest gem.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gemduel/game/engine"
)

// Analysis aggregates placement statistics over a range of seeds.
type Analysis struct {
	Boards         int
	GemCounts      map[int]int
	ObstacleCounts map[int]int
	UnderFilled    int
	BoxedIn        map[engine.Occupant]int
	GemDistance    map[engine.Occupant]int
	NoGems         int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "sample seeded boards and report placement statistics",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "from", Usage: "first seed", Value: 1},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of seeds to sample", Value: 1000},
			&cli.BoolFlag{Name: "show", Usage: "print the first sampled board"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			count := cmd.Int("count")
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			from := cmd.Uint64("from")
			if cmd.Bool("show") {
				fmt.Printf("Seed %d:\n", from)
				seededBoard(from).Display(os.Stdout)
				fmt.Println()
			}
			report(os.Stdout, analyzeSeeds(from, count))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func seededBoard(seed uint64) *engine.Board {
	return engine.NewBoard(rand.New(rand.NewPCG(seed, seed)))
}

// analyzeSeeds builds one board per seed in [from, from+count)
func analyzeSeeds(from uint64, count int) *Analysis {
	a := &Analysis{
		GemCounts:      map[int]int{},
		ObstacleCounts: map[int]int{},
		BoxedIn:        map[engine.Occupant]int{},
		GemDistance:    map[engine.Occupant]int{},
	}
	for i := 0; i < count; i++ {
		analyzeBoard(a, seededBoard(from+uint64(i)))
	}
	return a
}

func analyzeBoard(a *Analysis, board *engine.Board) {
	a.Boards++

	gems := engine.CountOccupant(board, engine.Gem)
	obstacles := engine.CountOccupant(board, engine.Obstacle)
	a.GemCounts[gems]++
	a.ObstacleCounts[obstacles]++
	if gems < engine.GemCount || obstacles < engine.ObstacleCount {
		a.UnderFilled++
	}
	if gems == 0 {
		a.NoGems++
	}

	for _, tag := range []engine.Occupant{engine.Player1, engine.Player2} {
		pos, ok := board.PlayerPosition(tag)
		if !ok {
			continue
		}
		player := engine.NewPlayer(tag, pos, board, nil)
		if len(board.PossibleMoves(player)) == 0 {
			a.BoxedIn[tag]++
		}
		if _, distance, found := engine.NearestGem(board, pos); found {
			a.GemDistance[tag] += distance
		}
	}
}

func report(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Boards sampled: %d\n", a.Boards)
	if a.Boards == 0 {
		return
	}

	fmt.Fprintln(w, "Gems placed:")
	for n := engine.GemCount; n >= 0; n-- {
		if c := a.GemCounts[n]; c > 0 {
			fmt.Fprintf(w, "  %d: %d (%.1f%%)\n", n, c, percent(c, a.Boards))
		}
	}
	fmt.Fprintln(w, "Obstacles placed:")
	for n := engine.ObstacleCount; n >= 0; n-- {
		if c := a.ObstacleCounts[n]; c > 0 {
			fmt.Fprintf(w, "  %d: %d (%.1f%%)\n", n, c, percent(c, a.Boards))
		}
	}

	fmt.Fprintf(w, "Under-filled boards: %d (%.1f%%)\n", a.UnderFilled, percent(a.UnderFilled, a.Boards))
	if a.NoGems > 0 {
		fmt.Fprintf(w, "Boards with no gems: %d\n", a.NoGems)
	}
	for _, tag := range []engine.Occupant{engine.Player1, engine.Player2} {
		fmt.Fprintf(w, "%s boxed in at start: %d (%.1f%%)\n", tag, a.BoxedIn[tag], percent(a.BoxedIn[tag], a.Boards))
	}
	for _, tag := range []engine.Occupant{engine.Player1, engine.Player2} {
		fmt.Fprintf(w, "%s average distance to nearest gem: %.2f\n", tag, average(a.GemDistance[tag], a.Boards-a.NoGems))
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func average(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
