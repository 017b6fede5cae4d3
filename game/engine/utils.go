package engine

// CountOccupant counts the cells on the board carrying occ
func CountOccupant(b *Board, occ Occupant) int {
	count := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell.Occupant == occ {
				count++
			}
		}
	}
	return count
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// NearestGem finds the closest gem to pos and returns its position and distance
func NearestGem(b *Board, pos Position) (Position, int, bool) {
	minDistance := -1
	var nearest Position
	found := false

	for row := range b.grid {
		for col := range b.grid[row] {
			if b.grid[row][col].Occupant != Gem {
				continue
			}
			gem := Position{Row: row, Col: col}
			distance := ManhattanDistance(pos, gem)
			if minDistance == -1 || distance < minDistance {
				minDistance = distance
				nearest = gem
				found = true
			}
		}
	}

	return nearest, minDistance, found
}
