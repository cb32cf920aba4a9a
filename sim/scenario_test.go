package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScenarioIsValid(t *testing.T) {
	sc := DefaultScenario()
	require.NoError(t, sc.Validate())
}

func TestValidateRejectsEachBadField(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Scenario)
		wantMsg string
	}{
		{"zero days", func(sc *Scenario) { sc.SimDays = 0 }, "sim_days"},
		{"zero tick", func(sc *Scenario) { sc.TickMinutes = 0 }, "tick_minutes"},
		{"zero headings", func(sc *Scenario) { sc.Headings = 0 }, "headings"},
		{"negative metres", func(sc *Scenario) { sc.MetresPerRound = -1 }, "metres_per_round"},
		{"zero shifts per day", func(sc *Scenario) { sc.Shifts.ShiftsPerDay = 0 }, "shifts_per_day"},
		{"zero shift length", func(sc *Scenario) { sc.Shifts.ShiftMinutes = 0 }, "shift_minutes"},
		{"shifts overflow the day", func(sc *Scenario) { sc.Shifts.ShiftsPerDay = 4; sc.Shifts.ShiftMinutes = 480 }, "fit in a day"},
		{"zero workable", func(sc *Scenario) { sc.Shifts.WorkableMinutes = 0 }, "workable_minutes"},
		{"workable exceeds scheduled", func(sc *Scenario) { sc.Shifts.WorkableMinutes = sc.Shifts.ShiftMinutes + 1 }, "workable_minutes"},
		{"unknown blast policy", func(sc *Scenario) { sc.Shifts.BlastPolicy = "sometimes" }, "blast_policy"},
		{"zero drill", func(sc *Scenario) { sc.Durations.Drill = 0 }, "drill_minutes"},
		{"zero charge", func(sc *Scenario) { sc.Durations.Charge = 0 }, "charge_minutes"},
		{"zero muck", func(sc *Scenario) { sc.Durations.Muck = 0 }, "muck_minutes"},
		{"negative support", func(sc *Scenario) { sc.Durations.Support = -5 }, "support_minutes"},
		{"negative reentry", func(sc *Scenario) { sc.ReentryMinutes = -1 }, "reentry_minutes"},
		{"stage longer than workable", func(sc *Scenario) { sc.Durations.Muck = sc.Shifts.WorkableMinutes + 1 }, "never fit"},
		{"negative capacity", func(sc *Scenario) { sc.Resources = &ResourceConfig{DrillRigs: -1, ChargeCrews: 1, Loaders: 1, SupportCrews: 1} }, "DRILL_RIG"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := DefaultScenario()
			c.mutate(&sc)
			err := sc.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantMsg)
		})
	}
}

func TestValidateAcceptsUnconstrainedResources(t *testing.T) {
	sc := DefaultScenario()
	sc.Resources = nil
	assert.NoError(t, sc.Validate())
}

func TestValidateAcceptsZeroCapacity(t *testing.T) {
	// Zero capacity is structurally valid; the post-run deadlock check is
	// what rejects a zero-capacity-but-required configuration.
	sc := DefaultScenario()
	sc.Resources = &ResourceConfig{DrillRigs: 0, ChargeCrews: 1, Loaders: 1, SupportCrews: 1}
	assert.NoError(t, sc.Validate())
}

func TestStageDuration(t *testing.T) {
	sc := DefaultScenario()
	assert.Equal(t, sc.Durations.Drill, sc.StageDuration(StageDrill))
	assert.Equal(t, sc.Durations.Support, sc.StageDuration(StageSupport))
	assert.Equal(t, sc.ReentryMinutes, sc.StageDuration(StageReentry))
	assert.Panics(t, func() { sc.StageDuration(StageBlastReady) })
}

func TestWorkStageResourceMapping(t *testing.T) {
	assert.Equal(t, ResourceDrillRig, WorkStageResource(StageDrill, false))
	assert.Equal(t, ResourceChargeCrew, WorkStageResource(StageCharge, false))
	assert.Equal(t, ResourceLoader, WorkStageResource(StageMuck, false))
	assert.Equal(t, ResourceSupportCrew, WorkStageResource(StageSupport, false))
	// Jumbo bolting: the drill rig does the support work.
	assert.Equal(t, ResourceDrillRig, WorkStageResource(StageSupport, true))
	assert.Panics(t, func() { WorkStageResource(StageBlastReady, false) })
}
