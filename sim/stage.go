// Defines the stage and resource-kind enumerations and the explicit
// stage→resource mapping. Resource requirements are an enumerated table,
// never inferred from stage identifiers.

package sim

// Stage identifies one phase of the development round cycle.
// DRILL, CHARGE, MUCK and SUPPORT are work stages that occupy a resource
// unit for their whole duration. BLAST_READY, REENTRY and WAITING_FOR_BLAST
// are gate/lockout phases that occupy nothing. WAITING_FOR_RESOURCE and
// OFF_SHIFT/IDLE only ever appear in recorded timelines, never as a stored
// heading stage.
type Stage string

const (
	StageDrill        Stage = "DRILL"
	StageCharge       Stage = "CHARGE"
	StageBlastReady   Stage = "BLAST_READY"
	StageReentry      Stage = "REENTRY"
	StageWaitingBlast Stage = "WAITING_FOR_BLAST"
	StageMuck         Stage = "MUCK"
	StageSupport      Stage = "SUPPORT"

	// Reported-only pseudo-stages for timeline gaps.
	StageWaitingResource Stage = "WAITING_FOR_RESOURCE"
	StageOffShift        Stage = "OFF_SHIFT"
	StageIdle            Stage = "IDLE"
)

// ResourceKind identifies a shared, finite crew/equipment pool.
type ResourceKind string

const (
	ResourceDrillRig    ResourceKind = "DRILL_RIG"
	ResourceChargeCrew  ResourceKind = "CHARGE_CREW"
	ResourceLoader      ResourceKind = "LOADER"
	ResourceSupportCrew ResourceKind = "SUPPORT_CREW"
)

// ResourceKinds lists every kind in a fixed order for deterministic iteration.
var ResourceKinds = []ResourceKind{
	ResourceDrillRig,
	ResourceChargeCrew,
	ResourceLoader,
	ResourceSupportCrew,
}

// IsWork reports whether s is a work stage that requires a resource unit.
func (s Stage) IsWork() bool {
	switch s {
	case StageDrill, StageCharge, StageMuck, StageSupport:
		return true
	}
	return false
}

// WorkStageResource returns the resource kind a work stage occupies.
// When jumboBolting is set, SUPPORT is performed by the drill jumbo and
// consumes drill-rig capacity instead of a dedicated support crew.
func WorkStageResource(s Stage, jumboBolting bool) ResourceKind {
	switch s {
	case StageDrill:
		return ResourceDrillRig
	case StageCharge:
		return ResourceChargeCrew
	case StageMuck:
		return ResourceLoader
	case StageSupport:
		if jumboBolting {
			return ResourceDrillRig
		}
		return ResourceSupportCrew
	}
	panic("WorkStageResource: " + string(s) + " is not a work stage")
}
