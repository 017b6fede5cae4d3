// Package engine provides the core game logic for Gem Duel.
//
// The engine package implements the game mechanics including:
//   - A fixed 6x6 grid with gems and obstacles
//   - Two players alternating single-step moves (U, D, L, R)
//   - Gem collection on the cell a player is about to enter
//   - Turn-limit and gem-exhaustion end conditions
//
// Core Types:
//
// Board is the source of truth for occupancy and enforces the spatial rules.
// Player holds identity, position and gem count and reaches the board only
// through the BoardAccess capability. Game owns one Board and two Players and
// runs the state machine from InProgress to Over.
//
// Usage:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	game := engine.NewGame(engine.NewBoard(rng), engine.WithOutput(os.Stdout))
//
//	result, err := game.Play(ctx, keys)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Game Rules:
//
// P1 starts at (0,0) and P2 at (5,5). Six gem draws and four obstacle draws
// are scattered over the grid; a draw that hits an occupied cell is skipped.
// Moves off the board or into an obstacle are rejected and the same player
// tries again. The game ends after 30 accepted moves or when no gems remain,
// and the player holding more gems wins.
package engine
