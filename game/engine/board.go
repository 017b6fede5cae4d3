package engine

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// BoardAccess is the capability a Player uses to see and update occupancy
type BoardAccess interface {
	OccupantAt(pos Position) Occupant
	Relocate(tag Occupant, to Position)
}

// Board owns the 6x6 grid and is the source of truth for occupancy
type Board struct {
	grid    [BoardSize][BoardSize]Cell
	players map[Occupant]Position
	rng     *rand.Rand
	out     io.Writer
}

// StartPositions are the fixed starting cells of the two players
var StartPositions = map[Occupant]Position{
	Player1: {Row: 0, Col: 0},
	Player2: {Row: BoardSize - 1, Col: BoardSize - 1},
}

// NewBoard creates a board and seeds it with players, gems and obstacles
func NewBoard(rng *rand.Rand) *Board {
	b := &Board{
		rng: rng,
		out: io.Discard,
	}
	b.Initialize()
	return b
}

// ParseLayout builds a board from six rows of six characters.
// '1' and '2' are the players, 'G' a gem, 'O' an obstacle and '-' empty.
func ParseLayout(layout []string) (*Board, error) {
	if len(layout) != BoardSize {
		return nil, fmt.Errorf("layout must have %d rows, got %d", BoardSize, len(layout))
	}

	b := &Board{
		players: make(map[Occupant]Position, 2),
		out:     io.Discard,
	}

	for row, line := range layout {
		if len(line) != BoardSize {
			return nil, fmt.Errorf("layout row %d must have %d characters, got %d", row+1, BoardSize, len(line))
		}
		for col, char := range line {
			pos := Position{Row: row, Col: col}
			var occ Occupant
			switch char {
			case '-':
				occ = Empty
			case 'G':
				occ = Gem
			case 'O':
				occ = Obstacle
			case '1':
				occ = Player1
			case '2':
				occ = Player2
			default:
				return nil, fmt.Errorf("invalid character '%c' at row %d, col %d", char, row+1, col+1)
			}
			if occ.IsPlayer() {
				if _, dup := b.players[occ]; dup {
					return nil, fmt.Errorf("layout places %s more than once", occ)
				}
				b.players[occ] = pos
			}
			b.grid[row][col].Occupant = occ
		}
	}

	for _, tag := range []Occupant{Player1, Player2} {
		if _, ok := b.players[tag]; !ok {
			return nil, fmt.Errorf("layout must place %s", tag)
		}
	}

	return b, nil
}

// Initialize clears the grid, places the players on their start cells and
// draws gems then obstacles uniformly over the whole grid. A draw that lands
// on an occupied cell is skipped, so fewer than GemCount gems or
// ObstacleCount obstacles may end up on the board.
func (b *Board) Initialize() {
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col] = Cell{Occupant: Empty}
		}
	}

	b.players = make(map[Occupant]Position, 2)
	for tag, pos := range StartPositions {
		b.grid[pos.Row][pos.Col].Occupant = tag
		b.players[tag] = pos
	}

	b.scatter(Gem, GemCount)
	b.scatter(Obstacle, ObstacleCount)
}

func (b *Board) scatter(occ Occupant, draws int) {
	for i := 0; i < draws; i++ {
		row := b.rng.IntN(BoardSize)
		col := b.rng.IntN(BoardSize)
		if b.grid[row][col].Occupant == Empty {
			b.grid[row][col].Occupant = occ
		}
	}
}

// SetOutput sets the sink that receives board diagnostics
func (b *Board) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	b.out = w
}

// OccupantAt returns the tag at pos, or Empty when pos is off the board
func (b *Board) OccupantAt(pos Position) Occupant {
	if !pos.InBounds() {
		return Empty
	}
	return b.grid[pos.Row][pos.Col].Occupant
}

// PlayerPosition returns the cell tracked for a player tag
func (b *Board) PlayerPosition(tag Occupant) (Position, bool) {
	pos, ok := b.players[tag]
	return pos, ok
}

// Relocate marks tag's new cell and releases its tracked previous cell.
// Players may share a cell; the cell shows the last player to enter it and
// falls back to the other player when that one leaves.
func (b *Board) Relocate(tag Occupant, to Position) {
	if !to.InBounds() {
		return
	}
	from, tracked := b.players[tag]
	b.grid[to.Row][to.Col].Occupant = tag
	b.players[tag] = to
	if !tracked || from == to || b.grid[from.Row][from.Col].Occupant != tag {
		return
	}

	b.grid[from.Row][from.Col].Occupant = Empty
	for other, pos := range b.players {
		if other != tag && pos == from {
			b.grid[from.Row][from.Col].Occupant = other
		}
	}
}

// IsValidMove checks whether player may step in direction without changing state
func (b *Board) IsValidMove(player *Player, direction Direction) bool {
	next, err := destination(player.Position(), direction)
	if err != nil {
		return false
	}
	return b.OccupantAt(next) != Obstacle
}

// CollectGem takes the gem on the cell player is about to enter.
// It must run before the player moves.
func (b *Board) CollectGem(player *Player, direction Direction) (bool, error) {
	next, err := destination(player.Position(), direction)
	if err != nil {
		report(b.out, err)
		return false, err
	}

	cell := &b.grid[next.Row][next.Col]
	switch cell.Occupant {
	case Gem:
		player.addGem()
		cell.Occupant = Empty
		return true, nil
	case Obstacle:
		report(b.out, ErrGemBlocked)
		return false, ErrGemBlocked
	}
	return false, nil
}

// PossibleMoves returns all directions player may currently take
func (b *Board) PossibleMoves(player *Player) []Direction {
	var possible []Direction
	for _, d := range Directions {
		if b.IsValidMove(player, d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// Render returns the grid as six lines of space-separated tokens
func (b *Board) Render() string {
	var sb strings.Builder
	tokens := make([]string, BoardSize)
	for row := range b.grid {
		for col := range b.grid[row] {
			tokens[col] = string(b.grid[row][col].Occupant)
		}
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display writes the rendered grid to w
func (b *Board) Display(w io.Writer) {
	io.WriteString(w, b.Render())
}
