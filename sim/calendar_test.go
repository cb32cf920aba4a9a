package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// threeShiftCal models a 24h mine running 3×480 min shifts with a 30 min
// shift-change window at the end of each.
func threeShiftCal() ShiftCalendar {
	return ShiftCalendar{ShiftsPerDay: 3, ShiftMinutes: 480, WorkableMinutes: 450}
}

// twoShiftCal leaves the tail of the day off-shift entirely.
func twoShiftCal() ShiftCalendar {
	return ShiftCalendar{ShiftsPerDay: 2, ShiftMinutes: 480, WorkableMinutes: 480}
}

func TestDayDecomposition(t *testing.T) {
	cal := threeShiftCal()
	assert.Equal(t, int64(0), cal.DayIndex(0))
	assert.Equal(t, int64(0), cal.DayIndex(1439))
	assert.Equal(t, int64(1), cal.DayIndex(1440))
	assert.Equal(t, int64(1), cal.DayIndex(1500))
	assert.Equal(t, int64(60), cal.WithinDay(1500))
	assert.Equal(t, int64(0), cal.WithinDay(2880))
}

func TestIsWorkingTime(t *testing.T) {
	cal := threeShiftCal()
	cases := []struct {
		t    int64
		want bool
	}{
		{0, true},
		{449, true},
		{450, false}, // shift-change window
		{479, false},
		{480, true}, // second shift starts
		{929, true}, // last workable minute of the second shift
		{930, false},
		{960, true},
		{1430, false},          // third shift's change window
		{1440, true},           // next day
		{1440 + 455, false},    // change window repeats daily
		{2 * 1440, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cal.IsWorkingTime(c.t), "t=%d", c.t)
	}

	// With only two scheduled shifts, the day tail is off-shift.
	off := twoShiftCal()
	assert.True(t, off.IsWorkingTime(959))
	assert.False(t, off.IsWorkingTime(960))
	assert.False(t, off.IsWorkingTime(1439))
	assert.True(t, off.IsWorkingTime(1440))
}

func TestNextShiftBoundary(t *testing.T) {
	cal := threeShiftCal()
	cases := []struct {
		t, want int64
	}{
		{0, 0}, // already a boundary
		{1, 480},
		{480, 480},
		{700, 960},
		{960, 960},
		{1400, 1440}, // past the last shift start of the day
		{1441, 1440 + 480},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cal.NextShiftBoundary(c.t), "t=%d", c.t)
	}

	// Off-shift times roll to the next day's first shift.
	off := twoShiftCal()
	assert.Equal(t, int64(1440), off.NextShiftBoundary(1000))
	assert.Equal(t, int64(1440), off.NextShiftBoundary(1439))
}

func TestShiftEndTime(t *testing.T) {
	cal := threeShiftCal()
	assert.Equal(t, int64(480), cal.ShiftEndTime(0))
	assert.Equal(t, int64(480), cal.ShiftEndTime(479))
	assert.Equal(t, int64(960), cal.ShiftEndTime(480))
	assert.Equal(t, int64(960), cal.ShiftEndTime(500))
	assert.Equal(t, int64(1440), cal.ShiftEndTime(1439))

	// Off-shift: next day's first shift end.
	off := twoShiftCal()
	assert.Equal(t, int64(1440+480), off.ShiftEndTime(1000))
}

func TestFitStage(t *testing.T) {
	cal := threeShiftCal()
	cases := []struct {
		name    string
		t, d    int64
		want    int64
	}{
		{"fits exactly", 0, 450, 0},
		{"fits inside", 100, 300, 100},
		{"would cross workable end", 10, 450, 480},
		{"starts in change window", 455, 60, 480},
		{"starts off day's last workable window", 1400, 100, 1440},
		{"ends exactly on workable boundary", 390, 60, 390},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cal.FitStage(c.t, c.d))
		})
	}
}

func TestFitStageNeverSplitsAcrossBoundary(t *testing.T) {
	cal := twoShiftCal()
	// 240 min of mucking cannot start 100 min before shift end.
	got := cal.FitStage(380, 240)
	assert.Equal(t, int64(480), got)
	// The deferred start fits whole in the next shift.
	assert.Equal(t, got, cal.FitStage(got, 240))
}
