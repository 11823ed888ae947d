package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"width": 40, "use_bounded_grid": true}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultConfig()
	want.Width = 40
	want.UseBoundedGrid = true
	if config != want {
		t.Fatalf("got %+v, expected %+v", config, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }, "failed to read file"},
		{"bad json", func(t *testing.T) string { return writeConfig(t, `{"width": `) }, "failed to unmarshal"},
		{"empty grid", func(t *testing.T) string { return writeConfig(t, `{"height": 0}`) }, "at least 1x1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got error %v, expected it to mention %q", err, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.InitialPopulation = 5
	s.Finish(10, 4, 5, 9, "abc123")

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()
	for _, want := range []string{"Gen: 10 (computed 4)", "Living: 5 -> 5", "Bounding box: 9 cells", "Fingerprint: abc123"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output %q is missing %q", out, want)
		}
	}
}
