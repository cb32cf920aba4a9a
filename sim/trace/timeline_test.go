package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderFinalizePadsIdleTail(t *testing.T) {
	r := NewRecorder(2, 1000, 480)
	r.Record(Interval{Heading: 0, Stage: "DRILL", Start: 0, End: 180})
	r.Record(Interval{Heading: 0, Stage: "CHARGE", Start: 180, End: 240})
	// Heading 1 records nothing at all.

	tl := r.Finalize("IDLE")
	require.NoError(t, tl.Validate(2))
	assert.Equal(t, int64(1000), tl.HorizonMinutes)
	assert.Equal(t, int64(480), tl.ShiftMinutes)

	h0 := tl.HeadingIntervals(0)
	require.Len(t, h0, 3)
	assert.Equal(t, "IDLE", h0[2].Stage)
	assert.Equal(t, int64(240), h0[2].Start)
	assert.Equal(t, int64(1000), h0[2].End)

	h1 := tl.HeadingIntervals(1)
	require.Len(t, h1, 1)
	assert.Equal(t, "IDLE", h1[0].Stage)
	assert.Equal(t, int64(0), h1[0].Start)
	assert.Equal(t, int64(1000), h1[0].End)
}

func TestRecorderDropsZeroLengthIntervals(t *testing.T) {
	r := NewRecorder(1, 100, 100)
	r.Record(Interval{Heading: 0, Stage: "BLAST_READY", Start: 0, End: 0})
	r.Record(Interval{Heading: 0, Stage: "DRILL", Start: 0, End: 50})
	tl := r.Finalize("IDLE")
	require.NoError(t, tl.Validate(1))
	assert.Equal(t, "DRILL", tl.HeadingIntervals(0)[0].Stage)
}

func TestRecorderPanicsOnGap(t *testing.T) {
	r := NewRecorder(1, 1000, 480)
	r.Record(Interval{Heading: 0, Stage: "DRILL", Start: 0, End: 180})
	assert.Panics(t, func() {
		r.Record(Interval{Heading: 0, Stage: "CHARGE", Start: 200, End: 260})
	})
}

func TestRecorderPanicsPastHorizon(t *testing.T) {
	r := NewRecorder(1, 100, 100)
	assert.Panics(t, func() {
		r.Record(Interval{Heading: 0, Stage: "DRILL", Start: 0, End: 101})
	})
}

func TestValidateReportsViolations(t *testing.T) {
	tl := &Timeline{
		HorizonMinutes: 100,
		Intervals: []Interval{
			{Heading: 0, Stage: "DRILL", Start: 0, End: 40},
			{Heading: 0, Stage: "MUCK", Start: 50, End: 100},
		},
	}
	err := tl.Validate(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")

	tl = &Timeline{
		HorizonMinutes: 100,
		Intervals: []Interval{
			{Heading: 0, Stage: "DRILL", Start: 0, End: 90},
		},
	}
	err = tl.Validate(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ends at 90")

	// A heading with no intervals at all is reported once the earlier
	// headings pass.
	tl = &Timeline{
		HorizonMinutes: 100,
		Intervals: []Interval{
			{Heading: 0, Stage: "DRILL", Start: 0, End: 100},
		},
	}
	require.NoError(t, tl.Validate(1))
	err = tl.Validate(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no intervals")
}
