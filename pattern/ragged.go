package pattern

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

// Ragged is a pattern whose rows may have different lengths
type Ragged [][]model.Cell

// Width returns the length of the longest row
func (p Ragged) Width() int {
	w := 0
	for _, row := range p {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows
func (p Ragged) Height() int {
	return len(p)
}

// Center places the pattern in the middle of a width x height grid.
// Cells not covered by a row are dead.
func (p Ragged) Center(width, height int) (*model.Grid, error) {
	w, h := p.Width(), p.Height()
	if w > width || h > height {
		return nil, errors.Wrapf(ErrPatternTooLarge, "[Ragged.Center] %dx%d pattern on %dx%d grid", w, h, width, height)
	}

	var (
		grid = model.NewGrid(width, height)
		ytop = (height - h) / 2
		xtop = (width - w) / 2
	)
	for y, row := range p {
		for x, c := range row {
			grid.Set(xtop+x, ytop+y, c)
		}
	}
	return grid, nil
}
