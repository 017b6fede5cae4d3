package engine

import (
	"encoding/json"
	"testing"
)

func TestOccupantConstants(t *testing.T) {
	tests := []struct {
		occupant Occupant
		expected string
	}{
		{Empty, "-"},
		{Player1, "P1"},
		{Player2, "P2"},
		{Gem, "G"},
		{Obstacle, "O"},
	}

	for _, test := range tests {
		if string(test.occupant) != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, string(test.occupant))
		}
	}
}

func TestRuleConstants(t *testing.T) {
	tests := []struct {
		name     string
		actual   int
		expected int
	}{
		{"BoardSize", BoardSize, 6},
		{"GemCount", GemCount, 6},
		{"ObstacleCount", ObstacleCount, 4},
		{"TurnLimit", TurnLimit, 30},
	}

	for _, test := range tests {
		if test.actual != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, test.actual)
		}
	}
}

func TestOccupantIsPlayer(t *testing.T) {
	for _, occ := range []Occupant{Player1, Player2} {
		if !occ.IsPlayer() {
			t.Errorf("Expected %s to be a player", occ)
		}
	}
	for _, occ := range []Occupant{Empty, Gem, Obstacle} {
		if occ.IsPlayer() {
			t.Errorf("Expected %s not to be a player", occ)
		}
	}
}

func TestPositionInBounds(t *testing.T) {
	tests := []struct {
		pos      Position
		expected bool
	}{
		{Position{0, 0}, true},
		{Position{5, 5}, true},
		{Position{0, 5}, true},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{6, 0}, false},
		{Position{0, 6}, false},
	}

	for _, test := range tests {
		if got := test.pos.InBounds(); got != test.expected {
			t.Errorf("InBounds(%+v): expected %v, got %v", test.pos, test.expected, got)
		}
	}
}

func TestPositionJSONMarshaling(t *testing.T) {
	data, err := json.Marshal(Position{Row: 2, Col: 4})
	if err != nil {
		t.Fatalf("Failed to marshal position: %v", err)
	}
	if string(data) != `{"row":2,"col":4}` {
		t.Errorf("Expected row/col keys, got %s", data)
	}
}

func TestStatusString(t *testing.T) {
	if InProgress.String() != "in_progress" {
		t.Errorf("Expected in_progress, got %s", InProgress)
	}
	if Over.String() != "over" {
		t.Errorf("Expected over, got %s", Over)
	}
	if Status(42).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Status(42))
	}
}

func TestResultTie(t *testing.T) {
	if !(Result{Player1Gems: 2, Player2Gems: 2, Winner: Empty}).Tie() {
		t.Error("Expected equal counts with no winner to be a tie")
	}
	if (Result{Player1Gems: 3, Player2Gems: 2, Winner: Player1}).Tie() {
		t.Error("Expected a winner not to be a tie")
	}
}
