// Run is the in-process entry point: scenario + options in, KPI record
// (plus optional timeline) out. Both error categories, configuration
// errors and post-run infeasibility, surface here synchronously.

package sim

import (
	"fmt"

	"github.com/drift-sim/drift-sim/sim/trace"
)

// SimulationResult is produced once per run and returned immutable.
type SimulationResult struct {
	KPIs     *Metrics
	Timeline *trace.Timeline // nil unless RunOptions.RecordTimeline was set
}

// Run validates the scenario, executes the dispatch loop and aggregates
// KPIs. A structurally valid configuration that cannot make any progress
// over a horizon of at least one day is reported as a deadlock error, never
// as a silent all-zero result.
func Run(sc Scenario, opts RunOptions) (*SimulationResult, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if opts.HorizonDays < 0 {
		return nil, fmt.Errorf("horizon_days must be >= 0, got %d", opts.HorizonDays)
	}
	if opts.Resources != nil {
		if err := opts.Resources.validate(); err != nil {
			return nil, fmt.Errorf("invalid run options: %w", err)
		}
	}

	s := NewSimulator(&sc, opts)
	s.Run()

	m := AggregateKPIs(s)
	if m.HorizonDays >= 1 && m.RoundsTotal == 0 && m.TotalBusyMinutes() == 0 {
		return nil, fmt.Errorf(
			"deadlock: no heading made any progress over %d day(s); check resource capacities and blast timing",
			m.HorizonDays)
	}

	res := &SimulationResult{KPIs: m}
	if s.Recorder != nil {
		tl := s.Recorder.Finalize(string(StageIdle))
		if err := tl.Validate(sc.Headings); err != nil {
			return nil, fmt.Errorf("timeline invariant violated: %w", err)
		}
		res.Timeline = tl
	}
	return res, nil
}
