package utils

import (
	"fmt"
	"io"
	"time"
)

// Stats summarises a finished run
type Stats struct {
	GenerationsPerSecond float64
	TotalGenerations     int
	ComputedGenerations  int
	InitialPopulation    int
	FinalPopulation      int
	BoundingBoxSize      int
	Fingerprint          string
	StartTime            time.Time
	Elapsed              time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Finish records the outcome of the run
func (s *Stats) Finish(generations, computed, population, boundingBox int, fingerprint string) {
	s.Elapsed = time.Since(s.StartTime)
	s.TotalGenerations = generations
	s.ComputedGenerations = computed
	s.FinalPopulation = population
	s.BoundingBoxSize = boundingBox
	s.Fingerprint = fingerprint
	if s.Elapsed > 0 {
		s.GenerationsPerSecond = float64(computed) / s.Elapsed.Seconds()
	}
}

// Print writes the summary lines
func (s *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "Gen: %d (computed %d) | Living: %d -> %d | Bounding box: %d cells\n",
		s.TotalGenerations, s.ComputedGenerations, s.InitialPopulation, s.FinalPopulation, s.BoundingBoxSize)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Runtime: %s | Fingerprint: %s\n",
		s.GenerationsPerSecond, s.Elapsed, s.Fingerprint)
}
