package pattern

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// zstdMagic starts every zstd frame
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type fileReader struct {
	io.Reader
	file *os.File
	zr   *zstd.Decoder
}

func (f *fileReader) Close() error {
	if f.zr != nil {
		f.zr.Close()
	}
	return f.file.Close()
}

// Open opens a pattern file, transparently decompressing zstd input.
// The caller must Close the result.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "[Open] %s: %v", path, err)
	}

	br := bufio.NewReader(f)
	magic, _ := br.Peek(len(zstdMagic))
	if !bytes.Equal(magic, zstdMagic) {
		return &fileReader{Reader: br, file: f}, nil
	}

	zr, err := zstd.NewReader(br)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrFileOpen, "[Open] %s: zstd: %v", path, err)
	}
	return &fileReader{Reader: zr, file: f, zr: zr}, nil
}

// lineReader hands out raw lines, terminator included, and counts them
type lineReader struct {
	r    *bufio.Reader
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next raw line, or io.EOF once the input is exhausted
func (lr *lineReader) next() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
	}
	lr.line++
	return line, nil
}

// lineTooLong reports whether raw would not fit a width+3 byte line buffer
// (width cells, "\r\n" and a terminator).
func lineTooLong(raw string, width int) bool {
	return len(strings.TrimSuffix(raw, "\n")) > width+1
}

// trimEOL strips any trailing '\r' and '\n' characters
func trimEOL(raw string) string {
	return strings.TrimRight(raw, "\r\n")
}
