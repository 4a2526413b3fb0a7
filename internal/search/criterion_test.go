package search

import "testing"

func TestGreedyProbability(t *testing.T) {
	c := Greedy{}

	if p := c.Probability(MustScore(1.0), MustScore(0.5)); p != 1 {
		t.Errorf("Improving trial: expected probability 1, got %v", p)
	}
	if p := c.Probability(MustScore(1.0), MustScore(1.0)); p != 0 {
		t.Errorf("Equal trial: expected probability 0, got %v", p)
	}
	if p := c.Probability(MustScore(1.0), MustScore(2.0)); p != 0 {
		t.Errorf("Degrading trial: expected probability 0, got %v", p)
	}
}

func TestEpsilonGreedyProbability(t *testing.T) {
	c := EpsilonGreedy{Epsilon: 0.3}

	if p := c.Probability(MustScore(1.0), MustScore(0.5)); p != 1 {
		t.Errorf("Improving trial: expected probability 1, got %v", p)
	}
	if p := c.Probability(MustScore(1.0), MustScore(2.0)); p != 0.3 {
		t.Errorf("Degrading trial: expected probability 0.3, got %v", p)
	}
}

func TestEpsilonZeroMatchesGreedy(t *testing.T) {
	eg := EpsilonGreedy{Epsilon: 0}
	g := Greedy{}

	pairs := [][2]float64{{1, 0.5}, {1, 1}, {1, 2}, {5, 4.999}, {0.1, 0.2}}
	for _, pair := range pairs {
		current, trial := MustScore(pair[0]), MustScore(pair[1])
		if eg.Probability(current, trial) != g.Probability(current, trial) {
			t.Errorf("Probabilities diverge for (%v, %v)", pair[0], pair[1])
		}
	}
}

func TestRelativeDeltaProbability(t *testing.T) {
	c := RelativeDelta{Weight: 10}

	// No degradation means certain acceptance.
	if p := c.Probability(MustScore(1.0), MustScore(1.0)); p != 1 {
		t.Errorf("Equal scores: expected probability 1, got %v", p)
	}

	// Improving trials exceed 1 (clamped by the acceptance draw).
	if p := c.Probability(MustScore(1.0), MustScore(0.9)); p < 1 {
		t.Errorf("Improving trial: expected probability >= 1, got %v", p)
	}

	// Strictly decreasing in the degradation.
	p1 := c.Probability(MustScore(1.0), MustScore(1.1))
	p2 := c.Probability(MustScore(1.0), MustScore(1.2))
	if p1 <= p2 {
		t.Errorf("Expected decreasing probabilities, got %v <= %v", p1, p2)
	}
	if p1 >= 1 {
		t.Errorf("Degrading trial: expected probability < 1, got %v", p1)
	}
}

func TestLogisticDeltaProbability(t *testing.T) {
	c := LogisticDelta{Weight: 10}

	if p := c.Probability(MustScore(1.0), MustScore(1.0)); p != 1 {
		t.Errorf("Equal scores: expected probability 1, got %v", p)
	}

	p1 := c.Probability(MustScore(1.0), MustScore(1.1))
	p2 := c.Probability(MustScore(1.0), MustScore(1.2))
	if p1 <= p2 {
		t.Errorf("Expected decreasing probabilities, got %v <= %v", p1, p2)
	}
	if p1 >= 1 || p1 <= 0 {
		t.Errorf("Degrading trial: expected probability in (0, 1), got %v", p1)
	}
}

func TestTemperatureDeltaProbability(t *testing.T) {
	c := &TemperatureDelta{MaxTemp: 1.0, MinTemp: 0.1}
	c.Advance(0, 100)

	if p := c.Probability(MustScore(2.0), MustScore(2.0)); p != 1 {
		t.Errorf("Equal scores: expected probability 1, got %v", p)
	}
	if p := c.Probability(MustScore(2.0), MustScore(1.0)); p != 1 {
		t.Errorf("Improving trial: expected probability 1, got %v", p)
	}

	p1 := c.Probability(MustScore(1.0), MustScore(1.5))
	p2 := c.Probability(MustScore(1.0), MustScore(2.0))
	if p1 <= p2 {
		t.Errorf("Expected decreasing probabilities, got %v <= %v", p1, p2)
	}
}

func TestTemperatureDeltaCooling(t *testing.T) {
	c := &TemperatureDelta{MaxTemp: 1.0, MinTemp: 0.1}

	// A fixed degradation is accepted less readily as the schedule cools.
	c.Advance(0, 100)
	early := c.Probability(MustScore(1.0), MustScore(1.5))
	c.Advance(99, 100)
	late := c.Probability(MustScore(1.0), MustScore(1.5))

	if late >= early {
		t.Errorf("Expected cooling to shrink acceptance, got early=%v late=%v", early, late)
	}
}
