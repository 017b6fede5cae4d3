package engine

import "io"

// Player holds identity, position and gem count
type Player struct {
	name  Occupant
	pos   Position
	gems  int
	board BoardAccess
	out   io.Writer
}

// NewPlayer creates a player bound to a board.
// Diagnostics from rejected moves are written to out.
func NewPlayer(name Occupant, pos Position, board BoardAccess, out io.Writer) *Player {
	if out == nil {
		out = io.Discard
	}
	return &Player{
		name:  name,
		pos:   pos,
		board: board,
		out:   out,
	}
}

// Name returns the player's tag
func (p *Player) Name() Occupant {
	return p.name
}

// Position returns the player's current cell
func (p *Player) Position() Position {
	return p.pos
}

// GemCount returns the number of gems collected so far
func (p *Player) GemCount() int {
	return p.gems
}

func (p *Player) addGem() {
	p.gems++
}

// Move steps the player one cell in direction.
// Rejected moves are reported to the output sink and leave the player in place.
func (p *Player) Move(direction Direction) error {
	next, err := destination(p.pos, direction)
	if err != nil {
		report(p.out, err)
		return err
	}

	if p.board.OccupantAt(next) == Obstacle {
		report(p.out, ErrObstacle)
		return ErrObstacle
	}

	p.pos = next
	p.board.Relocate(p.name, next)
	return nil
}
