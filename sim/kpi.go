// KPI aggregation: reduces final heading states and resource-pool accounting
// into the throughput and utilization record returned to the caller.

package sim

import "fmt"

// Metrics is the KPI record for one run.
type Metrics struct {
	HorizonDays    int
	HorizonMinutes int64

	RoundsTotal  int
	MetresTotal  float64
	RoundsPerDay float64
	MetresPerDay float64

	RoundsPerHeading      []int
	MetresPerHeading      []float64
	BusyMinutesPerHeading []int64
	UtilizationPerHeading []float64

	// HeadingUtilization is busy-minutes ÷ horizon-minutes averaged across
	// headings, clamped to [0, 1].
	HeadingUtilization float64

	// MinutesPerRound is horizon minutes per completed round, averaged over
	// headings that completed at least one round. Zero when no rounds
	// completed.
	MinutesPerRound float64

	ResourceBusyMinutes map[ResourceKind]int64
	// ResourceUtilization is busy-minutes ÷ (capacity × horizon-minutes),
	// reported only for kinds with a finite positive capacity.
	ResourceUtilization map[ResourceKind]float64
}

// AggregateKPIs folds the end-of-run simulator state into a Metrics record.
func AggregateKPIs(s *Simulator) *Metrics {
	horizon := s.Horizon
	days := float64(horizon) / float64(MinutesPerDay)

	m := &Metrics{
		HorizonDays:         int(horizon / MinutesPerDay),
		HorizonMinutes:      horizon,
		ResourceBusyMinutes: make(map[ResourceKind]int64),
		ResourceUtilization: make(map[ResourceKind]float64),
	}

	producing := 0
	var utilSum float64
	for _, h := range s.Headings {
		m.RoundsTotal += h.Rounds
		m.MetresTotal += h.Metres
		m.RoundsPerHeading = append(m.RoundsPerHeading, h.Rounds)
		m.MetresPerHeading = append(m.MetresPerHeading, h.Metres)
		m.BusyMinutesPerHeading = append(m.BusyMinutesPerHeading, h.BusyMinutes)
		util := clamp01(float64(h.BusyMinutes) / float64(horizon))
		m.UtilizationPerHeading = append(m.UtilizationPerHeading, util)
		utilSum += util
		if h.Rounds > 0 {
			producing++
		}
	}
	if n := len(s.Headings); n > 0 {
		m.HeadingUtilization = clamp01(utilSum / float64(n))
	}
	m.RoundsPerDay = float64(m.RoundsTotal) / days
	m.MetresPerDay = m.MetresTotal / days
	if m.RoundsTotal > 0 {
		m.MinutesPerRound = float64(horizon) * float64(producing) / float64(m.RoundsTotal)
	}

	for _, kind := range ResourceKinds {
		busy := s.Pool.BusyMinutes(kind)
		m.ResourceBusyMinutes[kind] = busy
		if n := s.Pool.Capacity(kind); n > 0 {
			m.ResourceUtilization[kind] = clamp01(float64(busy) / (float64(n) * float64(horizon)))
		}
	}
	return m
}

// TotalBusyMinutes sums busy minutes across all headings.
func (m *Metrics) TotalBusyMinutes() int64 {
	var total int64
	for _, b := range m.BusyMinutesPerHeading {
		total += b
	}
	return total
}

// Print displays the aggregated KPIs at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Production KPIs ===")
	fmt.Printf("Horizon              : %d days (%d min)\n", m.HorizonDays, m.HorizonMinutes)
	fmt.Printf("Rounds completed     : %d (%.2f/day)\n", m.RoundsTotal, m.RoundsPerDay)
	fmt.Printf("Metres advanced      : %.1f (%.2f/day)\n", m.MetresTotal, m.MetresPerDay)
	fmt.Printf("Heading utilization  : %.1f%%\n", m.HeadingUtilization*100)
	if m.RoundsTotal > 0 {
		fmt.Printf("Minutes per round    : %.0f\n", m.MinutesPerRound)
	}
	for i := range m.RoundsPerHeading {
		fmt.Printf("  heading %-2d         : rounds=%d metres=%.1f util=%.1f%%\n",
			i, m.RoundsPerHeading[i], m.MetresPerHeading[i], m.UtilizationPerHeading[i]*100)
	}
	if len(m.ResourceUtilization) > 0 {
		fmt.Println("Resource utilization :")
		for _, kind := range ResourceKinds {
			if util, ok := m.ResourceUtilization[kind]; ok {
				fmt.Printf("  %-19s: %.1f%%\n", kind, util*100)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
