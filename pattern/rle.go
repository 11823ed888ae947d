package pattern

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

// dimensionLine matches "x = <int>, y = <int>"; trailing fields such as the rule are ignored
var dimensionLine = regexp.MustCompile(`^x\s*=\s*([+-]?\d+)\s*,\s*y\s*=\s*([+-]?\d+)`)

const (
	rleComment = '#'
	rleDead    = 'b'
	rleLive    = 'o'
	rleNewRow  = '$'
	rleEnd     = '!'
)

// rleDecoder holds the write cursor while RLE data lines are consumed
type rleDecoder struct {
	width, height int

	grid        *model.Grid
	dimensioned bool
	xtop, ytop  int
	bottom      int // first row below the declared pattern
	curx, cury  int
	done        bool
	line        int
}

// decodeRLE decodes an RLE pattern. first is the line the dispatcher already consumed.
func decodeRLE(first string, lr *lineReader, width, height int) (*model.Grid, error) {
	d := &rleDecoder{width: width, height: height}

	raw := first
	d.line = lr.line
	for {
		if err := d.consume(raw); err != nil {
			return nil, err
		}
		if d.done {
			break
		}

		var err error
		raw, err = lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrFileOpen, "[decodeRLE] failed to read input: %v", err)
		}
		d.line = lr.line
	}

	if !d.dimensioned {
		return nil, errors.Wrap(ErrMissingDimensions, "[decodeRLE] no dimension line before end of input")
	}
	return d.grid, nil
}

// consume handles one raw input line
func (d *rleDecoder) consume(raw string) error {
	if lineTooLong(raw, d.width) {
		return errors.Wrapf(ErrLineTooLong, "[decodeRLE] line %d", d.line)
	}
	line := trimEOL(raw)

	switch {
	case strings.HasPrefix(line, string(rleComment)):
		return nil
	case !d.dimensioned:
		return d.dimensions(line)
	default:
		return d.tokens(line)
	}
}

// dimensions parses the header line and allocates the centered, all-dead grid
func (d *rleDecoder) dimensions(line string) error {
	m := dimensionLine.FindStringSubmatch(line)
	if m == nil {
		return errors.Wrapf(ErrMissingDimensions, "[decodeRLE] line %d: %q", d.line, line)
	}
	x, errX := strconv.Atoi(m[1])
	y, errY := strconv.Atoi(m[2])
	if errX != nil || errY != nil {
		return errors.Wrapf(ErrMissingDimensions, "[decodeRLE] line %d: unreadable dimensions %q", d.line, line)
	}
	if x < 0 || y < 0 {
		return errors.Wrapf(ErrMissingDimensions, "[decodeRLE] line %d: negative dimensions x=%d y=%d", d.line, x, y)
	}
	if x > d.width || y > d.height {
		return errors.Wrapf(ErrPatternTooLarge, "[decodeRLE] line %d: %dx%d pattern on %dx%d grid",
			d.line, x, y, d.width, d.height)
	}

	d.grid = model.NewGrid(d.width, d.height)
	d.ytop = (d.height - y) / 2
	d.xtop = (d.width - x) / 2
	d.bottom = d.ytop + y
	d.cury = d.ytop
	d.curx = d.xtop
	d.dimensioned = true
	return nil
}

// tokens processes the run-length data on one line; '!' ends the whole pattern
func (d *rleDecoder) tokens(line string) error {
	for i := 0; i < len(line); {
		ch := line[i]
		switch {
		case ch == rleEnd:
			d.done = true
			return nil
		case ch == rleNewRow:
			d.newRows(1)
			i++
		case ch == rleDead || ch == rleLive:
			if err := d.write(ch); err != nil {
				return err
			}
			i++
		case isDigit(ch):
			j := i
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			count, err := strconv.Atoi(line[i:j])
			if err != nil {
				return errors.Wrapf(ErrInvalidToken, "[decodeRLE] line %d: run count %q", d.line, line[i:j])
			}
			if j == len(line) {
				return errors.Wrapf(ErrInvalidToken, "[decodeRLE] line %d: run count %d has no tag", d.line, count)
			}
			if err = d.run(count, line[j]); err != nil {
				return err
			}
			i = j + 1
		case isSpace(ch):
			i++
		default:
			return errors.Wrapf(ErrInvalidToken, "[decodeRLE] line %d column %d: %q", d.line, i+1, ch)
		}
	}
	return nil
}

// run applies a counted tag
func (d *rleDecoder) run(count int, tag byte) error {
	switch tag {
	case rleDead, rleLive:
		for range count {
			if err := d.write(tag); err != nil {
				return err
			}
		}
		return nil
	case rleNewRow:
		d.newRows(count)
		return nil
	default:
		return errors.Wrapf(ErrInvalidToken, "[decodeRLE] line %d: run of %q", d.line, tag)
	}
}

// newRows moves the cursor down n rows and back to the pattern's left edge.
// Rows past the grid are clamped; writing there fails anyway.
func (d *rleDecoder) newRows(n int) {
	d.cury = min(d.cury+min(n, d.height), d.height)
	d.curx = d.xtop
}

func (d *rleDecoder) write(tag byte) error {
	if d.curx == d.width {
		return errors.Wrapf(ErrColumnOverflow, "[decodeRLE] line %d: run passes column %d", d.line, d.width)
	}
	if d.cury >= d.bottom || d.cury >= d.height {
		return errors.Wrapf(ErrRowOverflow, "[decodeRLE] line %d: row %d is below the declared pattern",
			d.line, d.cury-d.ytop+1)
	}

	c := model.Dead
	if tag == rleLive {
		c = model.Live
	}
	d.grid.Set(d.curx, d.cury, c)
	d.curx++
	return nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}
