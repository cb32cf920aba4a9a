// Defines HeadingState, the per-production-unit state machine. Tracks the
// current stage, accumulated busy time and round/advance counters. Mutated
// only by the engine loop.

package sim

import "fmt"

// HeadingState models a single development heading through the round cycle
// DRILL → CHARGE → BLAST_READY → (blast) → MUCK → [SUPPORT] → DRILL …
//
// REENTRY and WAITING_FOR_BLAST are resolved atomically by the blast gate
// commit, so the stored Stage jumps from BLAST_READY to MUCK; both lockout
// phases still appear in the recorded timeline.
type HeadingState struct {
	Index   int
	Stage   Stage
	ReadyAt int64 // earliest minute the current stage may start

	BusyMinutes int64 // cumulative work-stage minutes
	Rounds      int
	Metres      float64

	// Done is set when no further stage can complete within the horizon, or
	// when a required resource has zero capacity and the heading is stalled
	// for good.
	Done bool
}

// NewHeadingState creates a heading at the top of its first round.
func NewHeadingState(index int) *HeadingState {
	return &HeadingState{
		Index: index,
		Stage: StageDrill,
	}
}

// enterStage moves the heading into s, ready to start at minute t.
// Stage durations are nominal per-scenario values, so they are looked up at
// planning time rather than stored here.
func (h *HeadingState) enterStage(s Stage, t int64) {
	h.Stage = s
	h.ReadyAt = t
}

// completeStage transitions the heading out of its finished stage at minute
// end, crediting a completed round where the cycle wraps.
func (h *HeadingState) completeStage(sc *Scenario, end int64) {
	switch h.Stage {
	case StageDrill:
		h.enterStage(StageCharge, end)
	case StageCharge:
		h.enterStage(StageBlastReady, end)
	case StageMuck:
		if sc.Durations.Support > 0 {
			h.enterStage(StageSupport, end)
			return
		}
		h.completeRound(sc, end)
	case StageSupport:
		h.completeRound(sc, end)
	default:
		panic(fmt.Sprintf("completeStage: heading %d cannot complete %s", h.Index, h.Stage))
	}
}

func (h *HeadingState) completeRound(sc *Scenario, end int64) {
	h.Rounds++
	h.Metres += sc.MetresPerRound
	h.enterStage(StageDrill, end)
}

func (h *HeadingState) String() string {
	return fmt.Sprintf("Heading: (Index: %d, Stage: %s, ReadyAt: %d, Rounds: %d, Metres: %.1f)",
		h.Index, h.Stage, h.ReadyAt, h.Rounds, h.Metres)
}
