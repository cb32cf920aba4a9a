// The blast policy gate: decides when a blast-ready heading fires and when
// work may resume afterwards.
//
// End-of-shift rule (the source system had two divergent readings; this is
// the one canonical rule here): the blast fires at the start of the
// shift-change window, and the heading resumes at fire + max(shift-change
// window, re-entry delay). With a change window at least as long as the
// re-entry delay the delay is fully absorbed into the window; with no change
// window at all the fixed re-entry delay still applies after the boundary
// blast.

package sim

// BlastGate resolves the BLAST_READY gate for one scenario.
type BlastGate struct {
	Policy         BlastPolicy
	Cal            ShiftCalendar
	ReentryMinutes int64
}

// NewBlastGate builds the gate from a scenario's shift configuration.
func NewBlastGate(sc *Scenario) BlastGate {
	return BlastGate{
		Policy:         sc.Shifts.BlastPolicy,
		Cal:            NewShiftCalendar(sc.Shifts),
		ReentryMinutes: sc.ReentryMinutes,
	}
}

// ResolveEndOfShift returns the firing minute and the minute mucking may
// resume for a heading that became blast-ready at minute ready. ready is
// the end of a shift-fitted charge stage, so it lies inside a workable
// window or exactly on its end boundary.
func (g BlastGate) ResolveEndOfShift(ready int64) (fire, resume int64) {
	if g.Cal.IsWorkingTime(ready) {
		fire = g.Cal.shiftStart(ready) + g.Cal.WorkableMinutes
	} else {
		// Charging ran right up to the workable boundary; fire immediately.
		fire = ready
	}
	lockout := g.Cal.ShiftMinutes - g.Cal.WorkableMinutes
	if g.ReentryMinutes > lockout {
		lockout = g.ReentryMinutes
	}
	return fire, fire + lockout
}
