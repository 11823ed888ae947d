package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-lifesim/rules"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Live
)

const (
	// LiveGlyph and DeadGlyph are the characters used by Life 1.05 files and the text renderer
	LiveGlyph = '*'
	DeadGlyph = '.'
)

// Glyph returns the text character for the cell state
func (c Cell) Glyph() byte {
	if c == Live {
		return LiveGlyph
	}
	return DeadGlyph
}

// Grid is a fixed-size bordered board; positions outside it are never alive
type Grid struct {
	width  int
	height int
	cells  [][]Cell

	// Cached bounding box of live cells, used by the bounded step
	activeBounds struct {
		minX, maxX, minY, maxY int
		valid                  bool
	}
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions with every cell dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// Set sets the state of a cell; coordinates outside the grid are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = c
		g.activeBounds.valid = false
	}
}

// Get returns the state of a cell, Dead outside the grid
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Dead
	}
	return g.cells[y][x]
}

// IsAlive reports whether the cell at (x, y) is live
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == Live
}

// CopyFrom overwrites g with the size and contents of src
func (g *Grid) CopyFrom(src *Grid) {
	g.Reset(src.width, src.height)
	for y := range src.height {
		copy(g.cells[y], src.cells[y])
	}
	g.activeBounds = src.activeBounds
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	c.CopyFrom(g)
	return c
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountNeighborsOptimized counts living neighbors; positions past the edge do not count
func (g *Grid) CountNeighborsOptimized(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] == Live {
				count++
			}
		}
	}

	return count
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != Live {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minX = x
				g.activeBounds.maxX = x
				g.activeBounds.minY = y
				g.activeBounds.maxY = y
				g.activeBounds.valid = true
			} else {
				g.activeBounds.minX = min(g.activeBounds.minX, x)
				g.activeBounds.maxX = max(g.activeBounds.maxX, x)
				g.activeBounds.minY = min(g.activeBounds.minY, y)
				g.activeBounds.maxY = max(g.activeBounds.maxY, y)
			}
		}
	}
}

// GetBoundingBoxSize returns the area of the box enclosing all live cells
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxX - g.activeBounds.minX + 1) *
		(g.activeBounds.maxY - g.activeBounds.minY + 1)
}

// nextCell applies the rule to one position of g
func (g *Grid) nextCell(x, y int) Cell {
	if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x] == Live) {
		return Live
	}
	return Dead
}

// NextGenerationSerial writes the generation after g into next, one row after another
func (g *Grid) NextGenerationSerial(next *Grid) {
	for y := range g.height {
		for x := range g.width {
			next.cells[y][x] = g.nextCell(x, y)
		}
	}
	next.activeBounds.valid = false
}

// NextGenerationParallel writes the generation after g into next, splitting rows across workers.
// next must have the same dimensions as g and must not be g.
func (g *Grid) NextGenerationParallel(next *Grid) error {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					next.cells[y][x] = g.nextCell(x, y)
				}
			}
			return nil
		})
	}

	next.activeBounds.valid = false
	return eg.Wait()
}

// NextGenerationBounded writes the generation after g into next, visiting only the live region
func (g *Grid) NextGenerationBounded(next *Grid) {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next.Clear()

	// No live cells: nothing can be born
	if !g.activeBounds.valid {
		return
	}

	// Active region + 1 margin
	minX := max(0, g.activeBounds.minX-1)
	maxX := min(g.width-1, g.activeBounds.maxX+1)
	minY := max(0, g.activeBounds.minY-1)
	maxY := min(g.height-1, g.activeBounds.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			next.cells[y][x] = g.nextCell(x, y)
		}
	}

	next.calculateActiveBounds()
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Live {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 fingerprint of the grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = byte(g.cells[y][x])
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with one line of glyphs per row
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := range g.height {
		for x := range g.width {
			buf = append(buf, g.cells[y][x].Glyph())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
