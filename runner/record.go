package runner

import (
	"github.com/samber/lo"

	"github.com/domino14/knightour/board"
	"github.com/domino14/knightour/stats"
	"github.com/domino14/knightour/warnsdorff"
)

// AttemptRecord is the immutable per-attempt log entry, meant for
// serializing to a stats file for later analysis.
type AttemptRecord struct {
	Attempt         int                    `json:"attempt" yaml:"attempt"`
	Strategy        string                 `json:"strategy" yaml:"strategy"`
	Seed            int64                  `json:"random_seed" yaml:"random_seed"`
	PreferenceOrder []int                  `json:"move_preferences" yaml:"move_preferences,flow"`
	Start           board.Position         `json:"start_position" yaml:"start_position"`
	Timestamp       string                 `json:"timestamp" yaml:"timestamp"`
	Successful      bool                   `json:"successful" yaml:"successful"`
	Duplicate       bool                   `json:"duplicate,omitempty" yaml:"duplicate,omitempty"`
	PathLength      int                    `json:"path_length" yaml:"path_length"`
	Fingerprint     uint64                 `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Moves           []warnsdorff.MoveTrace `json:"move_tracking,omitempty" yaml:"move_tracking,omitempty"`
}

// StrategyReport aggregates the attempts that ran under one strategy.
type StrategyReport struct {
	Strategy       string   `json:"strategy" yaml:"strategy"`
	Attempts       int     `json:"attempts" yaml:"attempts"`
	Successes      int     `json:"successes" yaml:"successes"`
	SuccessRate    float64 `json:"success_rate" yaml:"success_rate"`
	MeanPathLength float64 `json:"mean_path_length" yaml:"mean_path_length"`
}

// RunReport is the queryable summary of a whole multi-attempt run.
type RunReport struct {
	TotalAttempts int              `json:"total_attempts" yaml:"total_attempts"`
	PerStrategy   []StrategyReport `json:"per_strategy" yaml:"per_strategy"`
}

// Report aggregates the records collected so far, grouped by strategy in
// the fixed cycle order.
func (r *TourRunner) Report() RunReport {
	groups := lo.GroupBy(r.records, func(rec AttemptRecord) string {
		return rec.Strategy
	})
	report := RunReport{TotalAttempts: len(r.records)}
	for s := warnsdorff.Strategy(0); s < warnsdorff.NumStrategies; s++ {
		recs, ok := groups[s.String()]
		if !ok {
			continue
		}
		successes := lo.CountBy(recs, func(rec AttemptRecord) bool {
			return rec.Successful
		})
		lengths := &stats.Statistic{}
		for _, rec := range recs {
			lengths.Push(float64(rec.PathLength))
		}
		report.PerStrategy = append(report.PerStrategy, StrategyReport{
			Strategy:       s.String(),
			Attempts:       len(recs),
			Successes:      successes,
			SuccessRate:    float64(successes) / float64(len(recs)),
			MeanPathLength: lengths.Mean(),
		})
	}
	return report
}
