// Pure shift-calendar arithmetic over absolute simulated minutes.
// Day length is fixed at 1440 minutes; shifts start at the day boundary and
// run back-to-back. Nothing here holds state.

package sim

// MinutesPerDay is the length of a simulated day.
const MinutesPerDay int64 = 1440

// ShiftCalendar answers "where in the shift pattern is minute t" questions
// for every other engine component.
type ShiftCalendar struct {
	ShiftsPerDay    int
	ShiftMinutes    int64
	WorkableMinutes int64
}

// NewShiftCalendar builds a calendar from a validated shift configuration.
func NewShiftCalendar(cfg ShiftConfig) ShiftCalendar {
	return ShiftCalendar{
		ShiftsPerDay:    cfg.ShiftsPerDay,
		ShiftMinutes:    cfg.ShiftMinutes,
		WorkableMinutes: cfg.WorkableMinutes,
	}
}

// DayIndex returns the day number containing minute t.
func (c ShiftCalendar) DayIndex(t int64) int64 {
	return t / MinutesPerDay
}

// WithinDay returns the offset of minute t inside its day.
func (c ShiftCalendar) WithinDay(t int64) int64 {
	return t % MinutesPerDay
}

func (c ShiftCalendar) scheduledPerDay() int64 {
	return int64(c.ShiftsPerDay) * c.ShiftMinutes
}

// IsWorkingTime reports whether work may be in progress at minute t, i.e.
// t falls inside the workable window of some scheduled shift. The
// shift-change window and the off-shift remainder of the day are not
// working time.
func (c ShiftCalendar) IsWorkingTime(t int64) bool {
	off := c.WithinDay(t)
	if off >= c.scheduledPerDay() {
		return false
	}
	return off%c.ShiftMinutes < c.WorkableMinutes
}

// NextShiftBoundary returns the smallest minute >= t that is a shift start.
// Off-shift times roll over to the next day's first shift start.
func (c ShiftCalendar) NextShiftBoundary(t int64) int64 {
	day := c.DayIndex(t) * MinutesPerDay
	off := t - day
	k := (off + c.ShiftMinutes - 1) / c.ShiftMinutes
	if k >= int64(c.ShiftsPerDay) {
		return day + MinutesPerDay
	}
	return day + k*c.ShiftMinutes
}

// ShiftEndTime returns the scheduled end boundary of the shift containing t,
// or the end of the next day's first shift when t is off-shift.
func (c ShiftCalendar) ShiftEndTime(t int64) int64 {
	day := c.DayIndex(t) * MinutesPerDay
	off := t - day
	if off >= c.scheduledPerDay() {
		return day + MinutesPerDay + c.ShiftMinutes
	}
	return day + (off/c.ShiftMinutes+1)*c.ShiftMinutes
}

// shiftStart returns the start of the shift containing t. Callers must only
// pass on-shift times (off < scheduledPerDay).
func (c ShiftCalendar) shiftStart(t int64) int64 {
	day := c.DayIndex(t) * MinutesPerDay
	off := t - day
	return day + (off/c.ShiftMinutes)*c.ShiftMinutes
}

// FitStage returns t unchanged when [t, t+d) lies entirely inside the
// workable window of the shift containing t; otherwise it returns the next
// shift-start boundary. Stages never straddle a boundary: a stage that would
// cross is deferred whole. Callers re-check the returned time, since the
// next shift may not accommodate the stage either.
func (c ShiftCalendar) FitStage(t, d int64) int64 {
	if !c.IsWorkingTime(t) {
		return c.NextShiftBoundary(t)
	}
	start := c.shiftStart(t)
	if t+d <= start+c.WorkableMinutes {
		return t
	}
	return c.NextShiftBoundary(start + c.ShiftMinutes)
}
