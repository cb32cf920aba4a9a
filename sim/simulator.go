// The event-dispatch engine loop. Each iteration finds, across all unfinished
// headings, the earliest feasible start for that heading's next stage
// (accounting for its own clock, resource availability and shift fit) and
// commits that single stage interval. Ties break by heading index. Interval
// boundaries are exact, not tick-quantized; only stage starts are rounded up
// to the scenario tick.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/drift-sim/drift-sim/sim/trace"
)

// Simulator holds simulation time, the heading states and the shared
// resource pool for one run. All state is owned by the loop; nothing is
// exposed for mutation mid-run.
type Simulator struct {
	Scenario *Scenario
	Clock    int64
	Horizon  int64

	Cal      ShiftCalendar
	Gate     BlastGate
	Pool     *Pool
	Headings []*HeadingState
	Recorder *trace.Recorder // nil when no timeline was requested
}

// NewSimulator prepares a run of sc under opts. The caller is responsible
// for having validated sc.
func NewSimulator(sc *Scenario, opts RunOptions) *Simulator {
	days := opts.HorizonDays
	if days == 0 {
		days = sc.SimDays
	}
	resources := opts.Resources
	if resources == nil {
		resources = sc.Resources
	}
	horizon := int64(days) * MinutesPerDay

	headings := make([]*HeadingState, sc.Headings)
	for i := range headings {
		headings[i] = NewHeadingState(i)
	}
	var rec *trace.Recorder
	if opts.RecordTimeline {
		rec = trace.NewRecorder(sc.Headings, horizon, sc.Shifts.ShiftMinutes)
	}
	return &Simulator{
		Scenario: sc,
		Horizon:  horizon,
		Cal:      NewShiftCalendar(sc.Shifts),
		Gate:     NewBlastGate(sc),
		Pool:     NewPool(resources),
		Headings: headings,
		Recorder: rec,
	}
}

// stagePlan is one feasible stage interval for one heading, computed against
// the current pool state and committed only if it is the globally earliest.
type stagePlan struct {
	h     *HeadingState
	stage Stage
	start int64
	end   int64

	kind ResourceKind // resource the stage occupies ("" for lockout phases)
	unit int

	ready      int64 // when the heading finished its previous stage
	resourceAt int64 // when the resource unit frees (== ready when unconstrained)

	// End-of-shift gate resolution: BLAST_READY hold [ready, fire), then
	// WAITING_FOR_BLAST lockout [fire, end).
	gate bool
	fire int64
}

// quantize rounds t up to the scenario's tick granularity.
func (s *Simulator) quantize(t int64) int64 {
	tick := s.Scenario.TickMinutes
	return (t + tick - 1) / tick * tick
}

// plan computes the next feasible stage interval for h. A nil plan with a
// non-empty stalled kind means the heading can never progress (zero
// capacity); a nil plan otherwise means nothing more fits in the horizon.
func (s *Simulator) plan(h *HeadingState) (*stagePlan, ResourceKind) {
	sc := s.Scenario

	if h.Stage.IsWork() {
		kind := WorkStageResource(h.Stage, sc.JumboBolting)
		d := sc.StageDuration(h.Stage)
		unit, freeAt, ok := s.Pool.Probe(kind, h.ReadyAt)
		if !ok {
			return nil, kind
		}
		start := s.quantize(freeAt)
		for {
			if start+d > s.Horizon {
				return nil, ""
			}
			fitted := s.quantize(s.Cal.FitStage(start, d))
			if fitted == start {
				break
			}
			start = fitted
		}
		return &stagePlan{
			h: h, stage: h.Stage,
			start: start, end: start + d,
			kind: kind, unit: unit,
			ready: h.ReadyAt, resourceAt: freeAt,
		}, ""
	}

	// BLAST_READY gate.
	switch s.Gate.Policy {
	case BlastImmediate:
		// Firing needs a charge crew free at the instant but holds it for
		// zero minutes; the fixed re-entry lockout follows.
		_, fireAt, ok := s.Pool.Probe(ResourceChargeCrew, h.ReadyAt)
		if !ok {
			return nil, ResourceChargeCrew
		}
		if fireAt+sc.ReentryMinutes > s.Horizon {
			return nil, ""
		}
		return &stagePlan{
			h: h, stage: StageReentry,
			start: fireAt, end: fireAt + sc.ReentryMinutes,
			kind:  ResourceChargeCrew,
			ready: h.ReadyAt, resourceAt: fireAt,
		}, ""
	default: // BlastEndOfShift
		fire, resume := s.Gate.ResolveEndOfShift(h.ReadyAt)
		if resume > s.Horizon {
			return nil, ""
		}
		return &stagePlan{
			h: h, stage: StageWaitingBlast,
			start: h.ReadyAt, end: resume,
			ready: h.ReadyAt, resourceAt: h.ReadyAt,
			gate:  true, fire: fire,
		}, ""
	}
}

// commit applies one selected plan: records its intervals, reserves the
// resource and advances the heading's state machine. Resource consumption
// and state transition happen atomically within one commit.
func (s *Simulator) commit(p *stagePlan) {
	h := p.h
	sc := s.Scenario
	s.Clock = p.start

	if p.gate {
		s.record(h, StageBlastReady, p.ready, p.fire, "")
		s.record(h, StageWaitingBlast, p.fire, p.end, "")
		logrus.Infof("[min %07d] heading %d fires at shift change, mucking resumes at %d", p.fire, h.Index, p.end)
		h.enterStage(StageMuck, p.end)
		return
	}

	if p.resourceAt > p.ready {
		s.record(h, StageWaitingResource, p.ready, p.resourceAt, p.kind)
	}
	s.recordShiftGap(h, p.resourceAt, p.start)

	if p.stage.IsWork() {
		s.record(h, p.stage, p.start, p.end, p.kind)
		s.Pool.Reserve(p.kind, p.unit, p.start, p.end)
		h.BusyMinutes += p.end - p.start
		logrus.Infof("[min %07d] heading %d %s until %d (%s)", p.start, h.Index, p.stage, p.end, p.kind)
		h.completeStage(sc, p.end)
		return
	}

	// Immediate-policy blast: instantaneous firing, then the re-entry lockout.
	s.record(h, StageReentry, p.start, p.end, "")
	logrus.Infof("[min %07d] heading %d blasts, re-entry until %d", p.start, h.Index, p.end)
	h.enterStage(StageMuck, p.end)
}

// recordShiftGap fills [from, to) with the reason the heading stood still:
// minutes outside a workable window are OFF_SHIFT, minutes inside one (a
// stage deferred whole because it would cross the workable boundary) are
// IDLE. The split keeps rendered working time honest.
func (s *Simulator) recordShiftGap(h *HeadingState, from, to int64) {
	for t := from; t < to; {
		var end int64
		if s.Cal.IsWorkingTime(t) {
			end = s.Cal.shiftStart(t) + s.Cal.WorkableMinutes
			if end > to {
				end = to
			}
			s.record(h, StageIdle, t, end, "")
		} else {
			end = s.Cal.NextShiftBoundary(t)
			if end > to {
				end = to
			}
			s.record(h, StageOffShift, t, end, "")
		}
		t = end
	}
}

func (s *Simulator) record(h *HeadingState, stage Stage, start, end int64, waiting ResourceKind) {
	if s.Recorder == nil || end <= start {
		return
	}
	iv := trace.Interval{
		Heading: h.Index,
		Stage:   string(stage),
		Start:   start,
		End:     end,
	}
	if stage == StageWaitingResource {
		iv.WaitingResource = string(waiting)
	}
	s.Recorder.Record(iv)
}

// Run executes the dispatch loop to exhaustion: it terminates when no
// heading has a stage that can still complete within the horizon.
func (s *Simulator) Run() {
	for {
		var best *stagePlan
		for _, h := range s.Headings {
			if h.Done {
				continue
			}
			p, stalled := s.plan(h)
			if p == nil {
				h.Done = true
				if stalled != "" {
					logrus.Warnf("heading %d is permanently starved of %s (zero capacity)", h.Index, stalled)
					if h.ReadyAt < s.Horizon {
						s.record(h, StageWaitingResource, h.ReadyAt, s.Horizon, stalled)
					}
				} else {
					logrus.Debugf("heading %d: no further stage fits before minute %d", h.Index, s.Horizon)
				}
				continue
			}
			if best == nil || p.start < best.start {
				best = p
			}
		}
		if best == nil {
			break
		}
		s.commit(best)
	}
	s.Clock = s.Horizon
	logrus.Infof("[min %07d] simulation ended", s.Clock)
}
