// Scenario is the one canonical configuration schema for the engine.
// UI-facing adapters (cmd package) translate external shapes into it and are
// responsible for legacy field names; nothing duck-typed reaches this file.

package sim

import "fmt"

// BlastPolicy selects when a blast-ready heading actually fires.
type BlastPolicy string

const (
	// BlastImmediate fires as soon as a charge crew unit is free.
	BlastImmediate BlastPolicy = "immediate"
	// BlastEndOfShift defers all firing to the start of the shift-change window.
	BlastEndOfShift BlastPolicy = "end-of-shift"
)

// ShiftConfig describes the recurring daily shift pattern. Shifts start at
// the day boundary and run back-to-back; ShiftsPerDay × ShiftMinutes scheduled
// minutes per day, the remainder of the day is off-shift. Work is permitted
// only during the first WorkableMinutes of each shift; the tail of the shift
// is the shift-change window.
type ShiftConfig struct {
	ShiftsPerDay    int
	ShiftMinutes    int64 // scheduled shift length including the shift-change window
	WorkableMinutes int64
	BlastPolicy     BlastPolicy
}

// StageDurations holds the nominal per-stage durations in minutes.
// Support of 0 means the scenario has no support stage.
type StageDurations struct {
	Drill   int64
	Charge  int64
	Muck    int64
	Support int64
}

// ResourceConfig gives the capacity of each shared resource kind.
// A nil *ResourceConfig on the Scenario means every kind is unconstrained;
// an explicit capacity of 0 means no units exist at all.
type ResourceConfig struct {
	DrillRigs    int
	ChargeCrews  int
	Loaders      int
	SupportCrews int
}

// Capacity returns the configured capacity for kind.
func (rc *ResourceConfig) Capacity(kind ResourceKind) int {
	switch kind {
	case ResourceDrillRig:
		return rc.DrillRigs
	case ResourceChargeCrew:
		return rc.ChargeCrews
	case ResourceLoader:
		return rc.Loaders
	case ResourceSupportCrew:
		return rc.SupportCrews
	}
	panic("Capacity: unknown resource kind " + string(kind))
}

// Scenario is the immutable per-run configuration.
type Scenario struct {
	SimDays        int     // simulation horizon in days
	TickMinutes    int64   // stage starts are rounded up to this granularity (1 = exact)
	Headings       int     // number of independent production headings
	MetresPerRound float64 // advance credited per completed round
	Shifts         ShiftConfig
	Durations      StageDurations
	ReentryMinutes int64 // post-blast ventilation/lockout delay
	JumboBolting   bool  // SUPPORT consumes drill-rig capacity
	Resources      *ResourceConfig
}

// RunOptions are the per-invocation knobs layered over a Scenario.
type RunOptions struct {
	HorizonDays    int             // 0 = use Scenario.SimDays
	Resources      *ResourceConfig // nil = use Scenario.Resources
	RecordTimeline bool
}

// DefaultScenario returns a workable two-shift scenario used by the CLI when
// no scenario file is given.
func DefaultScenario() Scenario {
	return Scenario{
		SimDays:        7,
		TickMinutes:    1,
		Headings:       3,
		MetresPerRound: 3.2,
		Shifts: ShiftConfig{
			ShiftsPerDay:    2,
			ShiftMinutes:    720,
			WorkableMinutes: 660,
			BlastPolicy:     BlastEndOfShift,
		},
		Durations: StageDurations{
			Drill:   180,
			Charge:  60,
			Muck:    240,
			Support: 90,
		},
		ReentryMinutes: 30,
		Resources: &ResourceConfig{
			DrillRigs:    2,
			ChargeCrews:  1,
			Loaders:      2,
			SupportCrews: 1,
		},
	}
}

// StageDuration returns the nominal duration of a work or re-entry stage.
func (sc *Scenario) StageDuration(s Stage) int64 {
	switch s {
	case StageDrill:
		return sc.Durations.Drill
	case StageCharge:
		return sc.Durations.Charge
	case StageMuck:
		return sc.Durations.Muck
	case StageSupport:
		return sc.Durations.Support
	case StageReentry:
		return sc.ReentryMinutes
	}
	panic("StageDuration: " + string(s) + " has no nominal duration")
}

// Validate is the pre-run structural check. It fails fast with one distinct,
// human-readable reason per violated field and never starts a simulation on
// invalid input.
func (sc *Scenario) Validate() error {
	if sc.SimDays <= 0 {
		return fmt.Errorf("sim_days must be > 0, got %d", sc.SimDays)
	}
	if sc.TickMinutes <= 0 {
		return fmt.Errorf("tick_minutes must be > 0, got %d", sc.TickMinutes)
	}
	if sc.Headings <= 0 {
		return fmt.Errorf("headings must be > 0, got %d", sc.Headings)
	}
	if sc.MetresPerRound <= 0 {
		return fmt.Errorf("metres_per_round must be > 0, got %v", sc.MetresPerRound)
	}
	if sc.Shifts.ShiftsPerDay < 1 {
		return fmt.Errorf("shifts_per_day must be >= 1, got %d", sc.Shifts.ShiftsPerDay)
	}
	if sc.Shifts.ShiftMinutes <= 0 {
		return fmt.Errorf("shift_minutes must be > 0, got %d", sc.Shifts.ShiftMinutes)
	}
	if scheduled := int64(sc.Shifts.ShiftsPerDay) * sc.Shifts.ShiftMinutes; scheduled > MinutesPerDay {
		return fmt.Errorf("shifts_per_day × shift_minutes must fit in a day: %d > %d", scheduled, MinutesPerDay)
	}
	if sc.Shifts.WorkableMinutes <= 0 {
		return fmt.Errorf("workable_minutes must be > 0, got %d", sc.Shifts.WorkableMinutes)
	}
	if sc.Shifts.WorkableMinutes > sc.Shifts.ShiftMinutes {
		return fmt.Errorf("workable_minutes (%d) must not exceed shift_minutes (%d)",
			sc.Shifts.WorkableMinutes, sc.Shifts.ShiftMinutes)
	}
	switch sc.Shifts.BlastPolicy {
	case BlastImmediate, BlastEndOfShift:
	default:
		return fmt.Errorf("blast_policy must be %q or %q, got %q", BlastImmediate, BlastEndOfShift, sc.Shifts.BlastPolicy)
	}
	if sc.Durations.Drill <= 0 {
		return fmt.Errorf("drill_minutes must be > 0, got %d", sc.Durations.Drill)
	}
	if sc.Durations.Charge <= 0 {
		return fmt.Errorf("charge_minutes must be > 0, got %d", sc.Durations.Charge)
	}
	if sc.Durations.Muck <= 0 {
		return fmt.Errorf("muck_minutes must be > 0, got %d", sc.Durations.Muck)
	}
	if sc.Durations.Support < 0 {
		return fmt.Errorf("support_minutes must be >= 0, got %d", sc.Durations.Support)
	}
	if sc.ReentryMinutes < 0 {
		return fmt.Errorf("reentry_minutes must be >= 0, got %d", sc.ReentryMinutes)
	}
	// A work stage longer than the workable window can never fit in any shift.
	for _, s := range []Stage{StageDrill, StageCharge, StageMuck, StageSupport} {
		d := sc.StageDuration(s)
		if d > 0 && d > sc.Shifts.WorkableMinutes {
			return fmt.Errorf("%s duration (%d) exceeds workable_minutes (%d) and can never fit in a shift",
				s, d, sc.Shifts.WorkableMinutes)
		}
	}
	if sc.Resources != nil {
		if err := sc.Resources.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (rc *ResourceConfig) validate() error {
	for _, kind := range ResourceKinds {
		if rc.Capacity(kind) < 0 {
			return fmt.Errorf("resource capacity for %s must be >= 0, got %d", kind, rc.Capacity(kind))
		}
	}
	return nil
}
