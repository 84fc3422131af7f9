package utils

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/rules"
)

func TestStatsUpdate(t *testing.T) {
	var tally rules.Tally
	tally.Add(rules.Reproduction)
	tally.Add(rules.Underpopulation)
	tally.Add(rules.Overcrowding)
	tally.Add(rules.Survival)

	s := NewStats()
	if s.StartTime.IsZero() {
		t.Fatal("expected start time to be set")
	}
	s.Update(3, 2, tally, time.Millisecond)

	if s.Generation != 3 || s.Population != 2 {
		t.Fatalf("expected generation 3 and population 2, got %d and %d", s.Generation, s.Population)
	}
	if s.Births != 1 || s.Deaths != 2 || s.Survivals != 1 {
		t.Fatalf("expected 1 birth, 2 deaths, 1 survival, got %d, %d, %d", s.Births, s.Deaths, s.Survivals)
	}
	if s.StepDuration != time.Millisecond {
		t.Fatalf("expected 1ms step, got %v", s.StepDuration)
	}
}
