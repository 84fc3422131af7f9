package utils

import (
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

// Stats summarizes the most recent generation
type Stats struct {
	Generation   int
	Population   int
	Births       int
	Deaths       int
	Survivals    int
	StepDuration time.Duration
	StartTime    time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, tally rules.Tally, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	s.Births = tally.Births()
	s.Deaths = tally.Deaths()
	s.Survivals = tally.Survivals()
	s.StepDuration = duration
}
