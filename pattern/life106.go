package pattern

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

// decodeLife106 reads one "x y" live cell coordinate per line. Coordinates are absolute,
// no centering is applied.
func decodeLife106(lr *lineReader, width, height int) (*model.Grid, error) {
	grid := model.NewGrid(width, height)

	for {
		raw, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrFileOpen, "[decodeLife106] failed to read input: %v", err)
		}

		x, y, err := parseCoordinate(trimEOL(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "[decodeLife106] line %d", lr.line)
		}
		if x < 0 || y < 0 {
			return nil, errors.Wrapf(ErrNegativeCoordinate, "[decodeLife106] line %d: (%d, %d)", lr.line, x, y)
		}
		if x >= width || y >= height {
			return nil, errors.Wrapf(ErrPatternTooLarge, "[decodeLife106] line %d: (%d, %d) outside %dx%d grid",
				lr.line, x, y, width, height)
		}
		grid.Set(x, y, model.Live)
	}

	return grid, nil
}

// parseCoordinate reads the two leading integers of line; anything after them is ignored
func parseCoordinate(line string) (x, y int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, errors.Wrapf(ErrMalformedLine, "%q", line)
	}
	if x, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedLine, "%q", line)
	}
	if y, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedLine, "%q", line)
	}
	return x, y, nil
}
