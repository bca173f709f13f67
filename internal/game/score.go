package game

import "time"

// ScoreConfig holds the scoring thresholds. Thresholds are strictly
// increasing: a win at or under Fast earns 3 base stars, at or under
// Medium earns 2, anything slower earns 1.
type ScoreConfig struct {
	FastThreshold         time.Duration
	MediumThreshold       time.Duration
	UsagePenaltyThreshold int // Mask uses above this cost one star
}

// DefaultScoreConfig returns the default scoring thresholds.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		FastThreshold:         30 * time.Second,
		MediumThreshold:       60 * time.Second,
		UsagePenaltyThreshold: 5,
	}
}

// Result is the pass/fail summary of a finished run. It is derived
// once at session termination and immutable thereafter.
type Result struct {
	Elapsed    time.Duration
	MaskUsages int
	Stars      int // 0..3
	Won        bool
}

// ComputeResult derives the star rating from elapsed time and mask
// usage. A lost run is always 0 stars. A won run earns base stars from
// the time thresholds, minus one star if mask usage exceeds the penalty
// threshold, floored at zero. Pure function of its inputs, so results
// can be recomputed for replay.
func ComputeResult(elapsed time.Duration, maskUsages int, won bool, cfg ScoreConfig) Result {
	r := Result{
		Elapsed:    elapsed,
		MaskUsages: maskUsages,
		Won:        won,
	}
	if !won {
		return r
	}

	switch {
	case elapsed <= cfg.FastThreshold:
		r.Stars = 3
	case elapsed <= cfg.MediumThreshold:
		r.Stars = 2
	default:
		r.Stars = 1
	}

	if maskUsages > cfg.UsagePenaltyThreshold {
		r.Stars--
	}
	if r.Stars < 0 {
		r.Stars = 0
	}
	return r
}
