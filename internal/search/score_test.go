package search

import (
	"math"
	"testing"
)

func TestNewScoreRejectsNaN(t *testing.T) {
	if _, err := NewScore(math.NaN()); err == nil {
		t.Fatal("Expected error for NaN score")
	}

	s, err := NewScore(1.5)
	if err != nil {
		t.Fatalf("NewScore(1.5) failed: %v", err)
	}
	if s.Float64() != 1.5 {
		t.Errorf("Expected 1.5, got %v", s.Float64())
	}
}

func TestScoreLess(t *testing.T) {
	if !MustScore(1.0).Less(MustScore(2.0)) {
		t.Error("Expected 1.0 < 2.0")
	}
	if MustScore(2.0).Less(MustScore(1.0)) {
		t.Error("Expected !(2.0 < 1.0)")
	}
	if MustScore(1.0).Less(MustScore(1.0)) {
		t.Error("Expected !(1.0 < 1.0)")
	}
	if !MustScore(-3.0).Less(MustScore(0.0)) {
		t.Error("Expected -3.0 < 0.0")
	}
}

func TestMustScorePanicsOnNaN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for NaN score")
		}
	}()
	MustScore(math.NaN())
}
