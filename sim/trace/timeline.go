// Package trace records per-heading stage-occupancy intervals during a
// simulation run. The finalized Timeline is the structure the external
// Gantt-style renderer consumes: for every heading a contiguous,
// non-overlapping sequence of intervals covering exactly [0, horizon),
// with gaps represented as explicit idle intervals, never omitted.
package trace

import "fmt"

// Interval is one recorded stage occupancy for one heading.
// Stage carries the engine's stage identifier (including the
// WAITING_FOR_RESOURCE / OFF_SHIFT / IDLE pseudo-stages); WaitingResource
// names the starved resource kind on waiting intervals only.
type Interval struct {
	Heading         int    `json:"heading"`
	Stage           string `json:"stage"`
	Start           int64  `json:"start_minute"`
	End             int64  `json:"end_minute"`
	WaitingResource string `json:"waiting_resource,omitempty"`
}

// Timeline is the finalized, immutable recording of one run.
// ShiftMinutes is carried so renderers can draw shift-boundary markers
// without re-deriving the scenario.
type Timeline struct {
	HorizonMinutes int64      `json:"horizon_minutes"`
	ShiftMinutes   int64      `json:"shift_minutes"`
	Intervals      []Interval `json:"intervals"`
}

// Recorder accumulates intervals during a run. The engine must append each
// heading's intervals in time order with no gaps; the Recorder panics on a
// violation because that is a simulator bug, not a configuration error.
type Recorder struct {
	horizon      int64
	shiftMinutes int64
	perHeading   [][]Interval
}

// NewRecorder creates a Recorder for the given number of headings.
func NewRecorder(headings int, horizon, shiftMinutes int64) *Recorder {
	return &Recorder{
		horizon:      horizon,
		shiftMinutes: shiftMinutes,
		perHeading:   make([][]Interval, headings),
	}
}

// Record appends one interval. Zero-length intervals are dropped.
func (r *Recorder) Record(iv Interval) {
	if iv.End <= iv.Start {
		return
	}
	if iv.Heading < 0 || iv.Heading >= len(r.perHeading) {
		panic(fmt.Sprintf("trace: heading %d out of range", iv.Heading))
	}
	ivs := r.perHeading[iv.Heading]
	expect := int64(0)
	if len(ivs) > 0 {
		expect = ivs[len(ivs)-1].End
	}
	if iv.Start != expect {
		panic(fmt.Sprintf("trace: heading %d interval starts at %d, previous ended at %d",
			iv.Heading, iv.Start, expect))
	}
	if iv.End > r.horizon {
		panic(fmt.Sprintf("trace: heading %d interval ends at %d, past horizon %d",
			iv.Heading, iv.End, r.horizon))
	}
	r.perHeading[iv.Heading] = append(ivs, iv)
}

// Finalize pads every heading's tail with an idle interval up to the horizon
// and returns the completed Timeline, ordered by heading then start time.
func (r *Recorder) Finalize(idleStage string) *Timeline {
	var out []Interval
	for heading, ivs := range r.perHeading {
		last := int64(0)
		if len(ivs) > 0 {
			last = ivs[len(ivs)-1].End
		}
		out = append(out, ivs...)
		if last < r.horizon {
			out = append(out, Interval{
				Heading: heading,
				Stage:   idleStage,
				Start:   last,
				End:     r.horizon,
			})
		}
	}
	return &Timeline{
		HorizonMinutes: r.horizon,
		ShiftMinutes:   r.shiftMinutes,
		Intervals:      out,
	}
}

// HeadingIntervals returns the intervals belonging to one heading, in time
// order.
func (t *Timeline) HeadingIntervals(heading int) []Interval {
	var out []Interval
	for _, iv := range t.Intervals {
		if iv.Heading == heading {
			out = append(out, iv)
		}
	}
	return out
}

// Validate checks the timeline completeness contract: per heading, intervals
// are contiguous, non-overlapping and together span exactly [0, horizon).
func (t *Timeline) Validate(headings int) error {
	for h := 0; h < headings; h++ {
		ivs := t.HeadingIntervals(h)
		if len(ivs) == 0 {
			return fmt.Errorf("heading %d has no intervals", h)
		}
		if ivs[0].Start != 0 {
			return fmt.Errorf("heading %d timeline starts at %d, want 0", h, ivs[0].Start)
		}
		for i, iv := range ivs {
			if iv.End <= iv.Start {
				return fmt.Errorf("heading %d has empty interval %s [%d, %d)", h, iv.Stage, iv.Start, iv.End)
			}
			if i > 0 && iv.Start != ivs[i-1].End {
				return fmt.Errorf("heading %d has a gap: %d -> %d", h, ivs[i-1].End, iv.Start)
			}
		}
		if end := ivs[len(ivs)-1].End; end != t.HorizonMinutes {
			return fmt.Errorf("heading %d timeline ends at %d, want horizon %d", h, end, t.HorizonMinutes)
		}
	}
	return nil
}
