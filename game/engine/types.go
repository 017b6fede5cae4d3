package engine

// Occupant is the tag stored in a board cell
type Occupant string

const (
	Empty    Occupant = "-"
	Player1  Occupant = "P1"
	Player2  Occupant = "P2"
	Gem      Occupant = "G"
	Obstacle Occupant = "O"

	// Fixed rules
	BoardSize     = 6
	GemCount      = 6
	ObstacleCount = 4
	TurnLimit     = 30
)

// IsPlayer reports whether the occupant is one of the two player tags
func (o Occupant) IsPlayer() bool {
	return o == Player1 || o == Player2
}

// Cell represents a single grid cell
type Cell struct {
	Occupant Occupant `json:"occupant"`
}

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Direction is a single-character move code
type Direction rune

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Directions lists the four recognized codes in prompt order
var Directions = []Direction{Up, Down, Left, Right}

// Status is the game state machine state
type Status int

const (
	InProgress Status = iota
	Over
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// MoveHistoryEntry represents a single accepted move
type MoveHistoryEntry struct {
	Turn         int       `json:"turn"`
	Player       Occupant  `json:"player"`
	Direction    Direction `json:"direction"`
	FromPosition Position  `json:"from_position"`
	ToPosition   Position  `json:"to_position"`
	GemCollected bool      `json:"gem_collected"`
}

// Result is the outcome reported when the game is over
type Result struct {
	Player1Gems int      `json:"player1_gems"`
	Player2Gems int      `json:"player2_gems"`
	Winner      Occupant `json:"winner"` // Empty on a tie
	Turns       int      `json:"turns"`
}

// Tie reports whether both players finished with the same gem count
func (r Result) Tie() bool {
	return r.Winner == Empty
}
