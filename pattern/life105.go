package pattern

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

const descriptionPrefix = "#D"

// decodeLife105 reads Life 1.05 rows of '.' and '*' following the header line.
// Blank lines and #D descriptions are skipped; the pattern is centered on the grid.
func decodeLife105(lr *lineReader, width, height int) (*model.Grid, error) {
	var pattern Ragged

	for {
		raw, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrFileOpen, "[decodeLife105] failed to read input: %v", err)
		}

		line := trimEOL(raw)
		if line == "" || strings.HasPrefix(line, descriptionPrefix) {
			continue
		}
		if lineTooLong(raw, width) {
			return nil, errors.Wrapf(ErrLineTooLong, "[decodeLife105] line %d", lr.line)
		}
		if len(line) > width {
			return nil, errors.Wrapf(ErrPatternTooWide, "[decodeLife105] line %d is %d cells wide, grid is %d",
				lr.line, len(line), width)
		}
		// Out of rows: fail before storing anything more
		if len(pattern) == height {
			return nil, errors.Wrapf(ErrPatternTooTall, "[decodeLife105] line %d exceeds %d rows", lr.line, height)
		}

		row := make([]model.Cell, len(line))
		for i := range len(line) {
			switch line[i] {
			case model.DeadGlyph:
				row[i] = model.Dead
			case model.LiveGlyph:
				row[i] = model.Live
			default:
				return nil, errors.Wrapf(ErrInvalidCharacter, "[decodeLife105] line %d column %d: %q",
					lr.line, i+1, line[i])
			}
		}
		pattern = append(pattern, row)
	}

	return pattern.Center(width, height)
}
