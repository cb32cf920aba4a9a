// Event-based resource pool: each kind has N independently tracked units,
// each with a next-free minute. Allocation is deterministic: earliest
// next-free unit wins, ties broken by lowest unit index, so identical
// scenarios always produce identical schedules.

package sim

import "fmt"

// Pool tracks unit reservations and aggregate busy minutes per resource
// kind for one simulation run. It is owned exclusively by the engine loop
// and never shared across runs.
type Pool struct {
	units map[ResourceKind][]int64 // next-free minute per unit
	caps  map[ResourceKind]int     // -1 = unbounded
	busy  map[ResourceKind]int64
}

// NewPool builds a pool from a resource configuration. A nil cfg means
// every kind is unconstrained.
func NewPool(cfg *ResourceConfig) *Pool {
	p := &Pool{
		units: make(map[ResourceKind][]int64, len(ResourceKinds)),
		caps:  make(map[ResourceKind]int, len(ResourceKinds)),
		busy:  make(map[ResourceKind]int64, len(ResourceKinds)),
	}
	for _, kind := range ResourceKinds {
		if cfg == nil {
			p.caps[kind] = -1
			continue
		}
		n := cfg.Capacity(kind)
		p.caps[kind] = n
		p.units[kind] = make([]int64, n)
	}
	return p
}

// Probe returns the unit index and the earliest minute >= earliest at which
// one unit of kind is free, without reserving it. ok is false when the kind
// has zero configured capacity and can never be acquired. Unbounded kinds
// report unit -1 and are free immediately.
func (p *Pool) Probe(kind ResourceKind, earliest int64) (unit int, freeAt int64, ok bool) {
	if p.caps[kind] < 0 {
		return -1, earliest, true
	}
	us := p.units[kind]
	if len(us) == 0 {
		return 0, 0, false
	}
	best := 0
	for i := 1; i < len(us); i++ {
		if us[i] < us[best] {
			best = i
		}
	}
	at := us[best]
	if earliest > at {
		at = earliest
	}
	return best, at, true
}

// Reserve marks unit of kind busy for [start, end) and charges its busy
// minutes. Reserving a unit that is still held is a programming error.
func (p *Pool) Reserve(kind ResourceKind, unit int, start, end int64) {
	if end < start {
		panic(fmt.Sprintf("Reserve: end %d before start %d for %s", end, start, kind))
	}
	p.busy[kind] += end - start
	if p.caps[kind] < 0 {
		return
	}
	if p.units[kind][unit] > start {
		panic(fmt.Sprintf("Reserve: %s unit %d still held until %d, cannot start at %d",
			kind, unit, p.units[kind][unit], start))
	}
	p.units[kind][unit] = end
}

// BusyMinutes returns the aggregate minutes all units of kind were held.
func (p *Pool) BusyMinutes(kind ResourceKind) int64 {
	return p.busy[kind]
}

// Capacity returns the configured capacity of kind, -1 when unbounded.
func (p *Pool) Capacity(kind ResourceKind) int {
	return p.caps[kind]
}
