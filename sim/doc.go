// Package sim provides the core discrete-event simulation engine for the
// drift-sim development-mining production estimator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - heading.go: HeadingState lifecycle (DRILL → CHARGE → BLAST_READY → MUCK → [SUPPORT]) and round counters
//   - calendar.go: shift-calendar arithmetic every other component leans on
//   - simulator.go: the event-dispatch loop that commits stage intervals
//
// # Architecture
//
// A run is a closed-form deterministic computation: Scenario + RunOptions go
// in through Run (result.go), a KPI record and an optional stage-occupancy
// timeline come out. There is no I/O, no randomness, and no execution
// concurrency during a run; headings only interact through the shared
// resource pool (resources.go) and the shift calendar.
//
//   - scenario.go: the one canonical configuration schema and its validator
//   - stage.go: stage and resource-kind enumerations, stage→resource table
//   - blast.go: the blast policy gate (immediate vs end-of-shift firing)
//   - kpi.go: throughput and utilization aggregation
//   - sim/trace: timeline interval recording for the external Gantt renderer
//
// Legacy scenario field names never reach this package; the cmd package owns
// that normalization.
package sim
