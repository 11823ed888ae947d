// Package rules holds the cell update rule shared by every step mode.
package rules

const (
	// BirthNeighbors brings a dead cell to life
	BirthNeighbors = 3
	// SurviveMin and SurviveMax bound the neighbor count that keeps a live cell alive
	SurviveMin = 2
	SurviveMax = 3
)

// ApplyConwayRules reports whether a cell is alive in the next generation under B3/S23
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthNeighbors
}
