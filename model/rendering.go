package model

import (
	"bufio"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// TextRenderer writes a grid as rows of '*' and '.' with no header or footer
type TextRenderer struct {
	out      io.Writer
	clearSeq string
}

// NewTextRenderer builds a renderer for out. clearSeq is written by Clear and may be empty.
func NewTextRenderer(out io.Writer, clearSeq string) *TextRenderer {
	return &TextRenderer{out: out, clearSeq: clearSeq}
}

// Display renders the grid, one terminated line per row
func (r *TextRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	for y := range g.height {
		for x := range g.width {
			if err := w.WriteByte(g.cells[y][x].Glyph()); err != nil {
				return errors.Wrap(err, "[TextRenderer.Display] failed to write cell")
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[TextRenderer.Display] failed to write row")
		}
	}
	return errors.Wrap(w.Flush(), "[TextRenderer.Display] failed to flush")
}

// Clear writes the clear sequence, if one was supplied
func (r *TextRenderer) Clear() error {
	if r.clearSeq == "" {
		return nil
	}
	_, err := io.WriteString(r.out, r.clearSeq)
	return errors.Wrap(err, "[TextRenderer.Clear] failed to write clear sequence")
}

// ClearSequence asks the terminal database (through the clear command) for the screen clear
// sequence. It returns an empty string and an error when the terminal cannot be cleared.
func ClearSequence() (string, error) {
	out, err := exec.Command(clearCmd).Output()
	if err != nil {
		return "", errors.Wrapf(err, "[ClearSequence] %s failed", clearCmd)
	}
	if len(out) == 0 {
		return "", errors.New("[ClearSequence] terminal has no clear capability")
	}
	return string(out), nil
}
