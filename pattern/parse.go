// Package pattern decodes Life 1.05, Life 1.06 and RLE starting positions into fixed-size grids.
//
// Only limited versions of each format are understood: no #P blocks, #R rules or other
// tagged directives. Patterns larger than the grid are rejected, never cropped.
package pattern

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

const lifeHeaderPrefix = "#Life 1.0"

// ParseFile opens path and decodes it onto a width x height grid. The file is closed on return.
func ParseFile(path string, width, height int) (*model.Grid, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	grid, err := Parse(rc, width, height)
	if err != nil {
		return nil, errors.WithMessagef(err, "[ParseFile] %s", path)
	}
	return grid, nil
}

// Parse sniffs the first line of r and runs the matching decoder.
// Input without a "#Life 1.0" prefix is treated as RLE.
func Parse(r io.Reader, width, height int) (*model.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[Parse] invalid grid size %dx%d", width, height)
	}

	lr := newLineReader(r)
	first, err := lr.next()
	if err == io.EOF {
		return nil, errors.Wrap(ErrEmptyInput, "[Parse]")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "[Parse] failed to read header: %v", err)
	}

	if !strings.HasPrefix(first, lifeHeaderPrefix) {
		return decodeRLE(first, lr, width, height)
	}

	var version byte
	if len(first) > len(lifeHeaderPrefix) {
		version = first[len(lifeHeaderPrefix)]
	}
	switch version {
	case '5':
		return decodeLife105(lr, width, height)
	case '6':
		return decodeLife106(lr, width, height)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "[Parse] header %q", trimEOL(first))
	}
}
