package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// KeySource produces one key per prompt
type KeySource interface {
	ReadKey() (rune, error)
}

type keyResult struct {
	key rune
	err error
}

// readKey waits for one key or for ctx to end, whichever comes first.
// A read abandoned on cancellation finishes in the background and is dropped.
func readKey(ctx context.Context, keys KeySource) (rune, error) {
	done := make(chan keyResult, 1)
	go func() {
		key, err := keys.ReadKey()
		done <- keyResult{key, err}
	}()

	select {
	case res := <-done:
		return res.key, res.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Game owns the board and both players and drives the turn loop
type Game struct {
	id      string
	board   *Board
	players [2]*Player
	current int
	turns   int
	history []MoveHistoryEntry
	out     io.Writer
	log     logrus.FieldLogger
}

// Option configures a Game
type Option func(*Game)

// WithOutput sets the line-oriented sink for prompts, renders and diagnostics
func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		if w != nil {
			g.out = w
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithID overrides the generated game ID
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// NewGame creates a game over board with P1 holding the first turn.
// Players start on the cells the board tracks for their tags.
func NewGame(board *Board, opts ...Option) *Game {
	g := &Game{
		id:    uuid.NewString(),
		board: board,
		out:   os.Stdout,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.log = g.log.WithField("game_id", g.id)
	board.SetOutput(g.out)

	for i, tag := range []Occupant{Player1, Player2} {
		pos, ok := board.PlayerPosition(tag)
		if !ok {
			pos = StartPositions[tag]
			board.Relocate(tag, pos)
		}
		g.players[i] = NewPlayer(tag, pos, board, g.out)
	}

	gems := CountOccupant(board, Gem)
	obstacles := CountOccupant(board, Obstacle)
	entry := g.log.WithFields(logrus.Fields{
		"gems":      gems,
		"obstacles": obstacles,
	})
	if gems < GemCount || obstacles < ObstacleCount {
		entry.Info("Board under-placed after colliding draws")
	}
	entry.Debug("Game created")

	return g
}

// ID returns the game identifier used in logs
func (g *Game) ID() string {
	return g.id
}

// Board returns the game board
func (g *Game) Board() *Board {
	return g.board
}

// Player returns player 1 or 2
func (g *Game) Player(n int) *Player {
	if n < 1 || n > len(g.players) {
		return nil
	}
	return g.players[n-1]
}

// CurrentPlayer returns the player holding the turn
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.current]
}

// Turns returns the number of accepted moves so far
func (g *Game) Turns() int {
	return g.turns
}

// History returns a copy of the accepted moves in order
func (g *Game) History() []MoveHistoryEntry {
	return slices.Clone(g.history)
}

// RemainingGems counts gem cells left on the board
func (g *Game) RemainingGems() int {
	return CountOccupant(g.board, Gem)
}

// IsOver evaluates the end condition
func (g *Game) IsOver() bool {
	return g.turns >= TurnLimit || g.RemainingGems() == 0
}

// Status returns the state machine state
func (g *Game) Status() Status {
	if g.IsOver() {
		return Over
	}
	return InProgress
}

// PossibleMoves returns the directions open to the current player
func (g *Game) PossibleMoves() []Direction {
	return g.board.PossibleMoves(g.CurrentPlayer())
}

// Turn applies one direction for the current player.
// A rejected move reports "Invalid move!" and keeps the same player on turn.
func (g *Game) Turn(direction Direction) error {
	if g.IsOver() {
		return ErrGameOver
	}

	player := g.CurrentPlayer()
	if !g.board.IsValidMove(player, direction) {
		report(g.out, ErrInvalidMove)
		g.log.WithFields(logrus.Fields{
			"player":    player.Name(),
			"direction": direction.String(),
		}).Debug("Move rejected")
		return ErrInvalidMove
	}

	from := player.Position()
	collected, err := g.board.CollectGem(player, direction)
	if err != nil {
		return fmt.Errorf("collect gem: %w", err)
	}
	if err := player.Move(direction); err != nil {
		return fmt.Errorf("move %s: %w", player.Name(), err)
	}

	g.turns++
	g.history = append(g.history, MoveHistoryEntry{
		Turn:         g.turns,
		Player:       player.Name(),
		Direction:    direction,
		FromPosition: from,
		ToPosition:   player.Position(),
		GemCollected: collected,
	})

	entry := g.log.WithFields(logrus.Fields{
		"turn":      g.turns,
		"player":    player.Name(),
		"direction": direction.String(),
	})
	if collected {
		entry.WithField("gems", player.GemCount()).Debug("Gem collected")
	}
	entry.Debug("Move accepted")

	g.switchTurn()
	return nil
}

func (g *Game) switchTurn() {
	g.current = 1 - g.current
}

// Play runs the prompt loop until the game is over and announces the winner.
// It returns early when keys fails or ctx is done, even mid-read.
func (g *Game) Play(ctx context.Context, keys KeySource) (*Result, error) {
	g.log.Info("Game started")

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		player := g.CurrentPlayer()
		fmt.Fprintf(g.out, "Turn %d\n", g.turns+1)
		g.board.Display(g.out)
		fmt.Fprintf(g.out, "Current Player: %s\n", player.Name())
		fmt.Fprint(g.out, "Enter direction (U/D/L/R): ")

		key, err := readKey(ctx, keys)
		fmt.Fprintln(g.out)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			return nil, fmt.Errorf("read direction for %s: %w", player.Name(), err)
		}

		if err := g.Turn(ParseDirection(key)); err != nil && !errors.Is(err, ErrInvalidMove) {
			return nil, err
		}
	}

	result := g.Result()
	g.Announce(result)
	g.log.WithFields(logrus.Fields{
		"turns":        result.Turns,
		"player1_gems": result.Player1Gems,
		"player2_gems": result.Player2Gems,
		"winner":       result.Winner,
	}).Info("Game over")

	return &result, nil
}

// Result computes gem counts and the winner at this moment
func (g *Game) Result() Result {
	p1, p2 := g.players[0].GemCount(), g.players[1].GemCount()
	result := Result{
		Player1Gems: p1,
		Player2Gems: p2,
		Winner:      Empty,
		Turns:       g.turns,
	}
	switch {
	case p1 > p2:
		result.Winner = Player1
	case p2 > p1:
		result.Winner = Player2
	}
	return result
}

// Announce writes the end-of-game report
func (g *Game) Announce(result Result) {
	fmt.Fprintln(g.out, "Game Over!")
	fmt.Fprintf(g.out, "Player 1 gems: %d\n", result.Player1Gems)
	fmt.Fprintf(g.out, "Player 2 gems: %d\n", result.Player2Gems)

	switch result.Winner {
	case Player1:
		fmt.Fprintln(g.out, "Player 1 wins!")
	case Player2:
		fmt.Fprintln(g.out, "Player 2 wins!")
	default:
		fmt.Fprintln(g.out, "It's a tie!")
	}
}
