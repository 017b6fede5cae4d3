package engine

import (
	"errors"
	"fmt"
	"io"
	"unicode"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrOutOfBounds      = errors.New("cannot move outside the board")
	ErrObstacle         = errors.New("cannot move into an obstacle")
	ErrGemBlocked       = errors.New("cannot collect gem: obstacle in the way")
	ErrInvalidMove      = errors.New("invalid move")
	ErrGameOver         = errors.New("game is over")
)

// diagnostics holds the exact line shown to the players for each rejection
var diagnostics = map[error]string{
	ErrInvalidDirection: "Invalid direction",
	ErrOutOfBounds:      "Cannot move outside the board.",
	ErrObstacle:         "Cannot move into an obstacle.",
	ErrGemBlocked:       "Cannot collect gem. Obstacle in the way.",
	ErrInvalidMove:      "Invalid move!",
}

// Diagnostic returns the player-facing text for a rejection
func Diagnostic(err error) string {
	for sentinel, text := range diagnostics {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return err.Error()
}

// ParseDirection normalizes a key to an upper-case direction code.
// Unrecognized keys come back unchanged and fail Delta.
func ParseDirection(key rune) Direction {
	return Direction(unicode.ToUpper(key))
}

// Delta returns the row and column offsets for the direction.
// U and D move along rows, L and R along columns.
func (d Direction) Delta() (dRow, dCol int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

// Valid reports whether the direction is one of U, D, L, R
func (d Direction) Valid() bool {
	_, _, ok := d.Delta()
	return ok
}

func (d Direction) String() string {
	return string(d)
}

// destination computes the cell one step from pos in direction d.
// It is shared by Board and Player so both decode directions identically.
func destination(pos Position, d Direction) (Position, error) {
	dRow, dCol, ok := d.Delta()
	if !ok {
		return pos, ErrInvalidDirection
	}
	next := Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
	if !next.InBounds() {
		return next, ErrOutOfBounds
	}
	return next, nil
}

// report writes a diagnostic line to the output sink
func report(w io.Writer, err error) {
	if w == nil {
		return
	}
	fmt.Fprintln(w, Diagnostic(err))
}
