package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifesim/model"
)

const gliderRLE = "#N Glider\nx = 3, y = 3\nbo$2bo$3o!\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, "glider.rle", []byte(gliderRLE))

	g, err := ParseFile(path, 40, 10)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	expectCells(t, g, 40, 10, [][2]int{{19, 3}, {20, 4}, {18, 5}, {19, 5}, {20, 5}})
}

func TestParseFileZstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	compressed := enc.EncodeAll([]byte(gliderRLE), nil)
	enc.Close()

	plain, err := ParseFile(writeFile(t, "glider.rle", []byte(gliderRLE)), 40, 10)
	if err != nil {
		t.Fatalf("ParseFile plain: %v", err)
	}
	packed, err := ParseFile(writeFile(t, "glider.rle.zst", compressed), 40, 10)
	if err != nil {
		t.Fatalf("ParseFile zstd: %v", err)
	}
	if !packed.Equal(plain) {
		t.Fatalf("zstd input decoded differently:\n%s\nvs\n%s", packed, plain)
	}
}

func TestParseFileErrors(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.rle"), 40, 10); !errors.Is(err, ErrFileOpen) {
		t.Fatalf("got error %v, expected %v", err, ErrFileOpen)
	}

	if _, err := ParseFile(t.TempDir(), 40, 10); !errors.Is(err, ErrFileOpen) || Category(err) != "FileOpenFailure" {
		t.Fatalf("directory: got error %v (category %q), expected %v", err, Category(err), ErrFileOpen)
	}

	empty := writeFile(t, "empty.lif", nil)
	if _, err := ParseFile(empty, 40, 10); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got error %v, expected %v", err, ErrEmptyInput)
	}

	bad := writeFile(t, "bad.lif", []byte("#Life 1.05\n.x.\n"))
	if _, err := ParseFile(bad, 40, 10); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("got error %v, expected %v", err, ErrInvalidCharacter)
	}
}

func TestRaggedCenter(t *testing.T) {
	p := Ragged{
		{model.Live},
		{model.Dead, model.Dead, model.Live, model.Live},
	}
	if p.Width() != 4 || p.Height() != 2 {
		t.Fatalf("got %dx%d, expected 4x2", p.Width(), p.Height())
	}

	g, err := p.Center(9, 5)
	if err != nil {
		t.Fatalf("Center: %v", err)
	}
	// xtop = (9-4)/2 = 2, ytop = (5-2)/2 = 1
	expectCells(t, g, 9, 5, [][2]int{{2, 1}, {4, 2}, {5, 2}})

	if _, err = p.Center(3, 5); !errors.Is(err, ErrPatternTooLarge) {
		t.Fatalf("got error %v, expected %v", err, ErrPatternTooLarge)
	}
}
