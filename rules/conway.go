package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly 3 live neighbors is born, a live cell with 2 or 3
live neighbors survives, every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return IsSurvival(neighbors)
	}
	return IsBirth(neighbors)
}

// IsBirth reports whether a dead cell with the given neighbor count comes alive
func IsBirth(neighbors int) bool {
	return neighbors == 3
}

// IsSurvival reports whether a live cell with the given neighbor count stays alive
func IsSurvival(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}
