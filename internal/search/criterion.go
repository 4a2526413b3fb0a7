package search

import "math"

// Criterion maps a (current, trial) score pair to an acceptance probability
// in [0, 1]. The engine draws r uniformly from [0, 1) and accepts the trial
// iff the probability exceeds r, so a returned value of 1 (or more) is a
// certain accept and 0 is a certain reject.
type Criterion interface {
	Probability(current, trial Score) float64
}

// scheduled is implemented by criteria whose probability depends on loop
// progress. The engine calls Advance once per iteration before evaluating
// the criterion.
type scheduled interface {
	Advance(iter, total int)
}

// Greedy accepts a trial iff it strictly improves on the current score.
type Greedy struct{}

func (Greedy) Probability(current, trial Score) float64 {
	if trial.Less(current) {
		return 1
	}
	return 0
}

// EpsilonGreedy accepts improving trials unconditionally and non-improving
// trials with fixed probability Epsilon.
type EpsilonGreedy struct {
	Epsilon float64
}

func (c EpsilonGreedy) Probability(current, trial Score) float64 {
	if trial.Less(current) {
		return 1
	}
	return c.Epsilon
}

// RelativeDelta computes exp(-w * d) where d is the relative score
// degradation (trial - current) / current. No degradation means certain
// acceptance; the probability decreases monotonically as the trial gets
// worse relative to the current score.
type RelativeDelta struct {
	Weight float64
}

func (c RelativeDelta) Probability(current, trial Score) float64 {
	d := (trial.Float64() - current.Float64()) / current.Float64()
	return math.Exp(-c.Weight * d)
}

// LogisticDelta computes 2 / (1 + exp(w * d)) over the relative score
// degradation d. Equal scores give probability 1; the logistic shape damps
// the tails compared to RelativeDelta.
type LogisticDelta struct {
	Weight float64
}

func (c LogisticDelta) Probability(current, trial Score) float64 {
	d := (trial.Float64() - current.Float64()) / current.Float64()
	return 2 / (1 + math.Exp(c.Weight*d))
}

// TemperatureDelta is the Metropolis criterion: exp(-(trial - current) / T)
// with T cooled geometrically from MaxTemp to MinTemp over the run. It is
// stateful; the engine creates a fresh instance per run.
type TemperatureDelta struct {
	MaxTemp float64
	MinTemp float64

	temp float64
}

func (c *TemperatureDelta) Probability(current, trial Score) float64 {
	d := trial.Float64() - current.Float64()
	if d <= 0 {
		return 1
	}
	t := c.temp
	if t <= 0 {
		t = c.MaxTemp
	}
	return math.Exp(-d / t)
}

// Advance cools the temperature for iteration iter of a total-iteration run.
func (c *TemperatureDelta) Advance(iter, total int) {
	if total <= 1 {
		c.temp = c.MinTemp
		return
	}
	frac := float64(iter) / float64(total-1)
	c.temp = c.MaxTemp * math.Pow(c.MinTemp/c.MaxTemp, frac)
}
