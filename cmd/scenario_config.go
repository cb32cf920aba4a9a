// Loads YAML scenario files and normalizes the legacy field names older
// scenario editors emitted. The fallback chains live here and only here:
// the sim package sees exactly one strict schema, and conflicting aliases
// fail loudly instead of being silently resolved.

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/drift-sim/drift-sim/sim"
)

// scenarioFile mirrors sim.Scenario with YAML tags plus the tolerated
// legacy aliases.
type scenarioFile struct {
	SimDays        int                  `yaml:"sim_days"`
	TickMinutes    int64                `yaml:"tick_minutes"`
	Headings       int                  `yaml:"headings"`
	MetresPerRound float64              `yaml:"metres_per_round"`
	Shifts         shiftFileConfig      `yaml:"shifts"`
	Durations      durationsFileConfig  `yaml:"durations"`
	ReentryMinutes *int64               `yaml:"reentry_minutes"`
	JumboBolting   bool                 `yaml:"jumbo_bolting"`
	Resources      *resourcesFileConfig `yaml:"resources"`

	// Legacy flat fields from the historical scenario editors.
	AdvancePerRound       float64 `yaml:"advance_per_round"`
	JumboMinutes          int64   `yaml:"jumbo_minutes"`
	ChargeMinutesPerRound int64   `yaml:"charge_minutes_per_round"`
	BoggingMinutes        int64   `yaml:"bogging_minutes"`
}

type shiftFileConfig struct {
	ShiftsPerDay    int    `yaml:"shifts_per_day"`
	ShiftMinutes    int64  `yaml:"shift_minutes"`
	WorkableMinutes int64  `yaml:"workable_minutes"`
	BlastPolicy     string `yaml:"blast_policy"`
}

type durationsFileConfig struct {
	Drill   int64 `yaml:"drill"`
	Charge  int64 `yaml:"charge"`
	Muck    int64 `yaml:"muck"`
	Support int64 `yaml:"support"`
}

type resourcesFileConfig struct {
	DrillRigs    int `yaml:"drill_rigs"`
	ChargeCrews  int `yaml:"charge_crews"`
	Loaders      int `yaml:"loaders"`
	SupportCrews int `yaml:"support_crews"`
}

// defaultReentryMinutes applies when a scenario file omits reentry_minutes.
const defaultReentryMinutes int64 = 30

// LoadScenario reads a YAML scenario file into the canonical schema.
// Unknown fields are an error; legacy aliases are mapped with a deprecation
// warning and rejected when they conflict with the canonical field.
func LoadScenario(path string) (sim.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.Scenario{}, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var file scenarioFile
	if err := dec.Decode(&file); err != nil {
		return sim.Scenario{}, fmt.Errorf("parsing scenario file: %w", err)
	}
	return file.normalize()
}

// normalize resolves aliases and defaults and produces the strict schema.
func (file *scenarioFile) normalize() (sim.Scenario, error) {
	if err := mergeInt64("durations.drill", "jumbo_minutes", &file.Durations.Drill, file.JumboMinutes); err != nil {
		return sim.Scenario{}, err
	}
	if err := mergeInt64("durations.charge", "charge_minutes_per_round", &file.Durations.Charge, file.ChargeMinutesPerRound); err != nil {
		return sim.Scenario{}, err
	}
	if err := mergeInt64("durations.muck", "bogging_minutes", &file.Durations.Muck, file.BoggingMinutes); err != nil {
		return sim.Scenario{}, err
	}
	if err := mergeFloat64("metres_per_round", "advance_per_round", &file.MetresPerRound, file.AdvancePerRound); err != nil {
		return sim.Scenario{}, err
	}

	if file.TickMinutes == 0 {
		file.TickMinutes = 1
	}
	reentry := defaultReentryMinutes
	if file.ReentryMinutes != nil {
		reentry = *file.ReentryMinutes
	}
	policy := sim.BlastPolicy(file.Shifts.BlastPolicy)
	if policy == "" {
		policy = sim.BlastImmediate
	}

	sc := sim.Scenario{
		SimDays:        file.SimDays,
		TickMinutes:    file.TickMinutes,
		Headings:       file.Headings,
		MetresPerRound: file.MetresPerRound,
		Shifts: sim.ShiftConfig{
			ShiftsPerDay:    file.Shifts.ShiftsPerDay,
			ShiftMinutes:    file.Shifts.ShiftMinutes,
			WorkableMinutes: file.Shifts.WorkableMinutes,
			BlastPolicy:     policy,
		},
		Durations: sim.StageDurations{
			Drill:   file.Durations.Drill,
			Charge:  file.Durations.Charge,
			Muck:    file.Durations.Muck,
			Support: file.Durations.Support,
		},
		ReentryMinutes: reentry,
		JumboBolting:   file.JumboBolting,
	}
	if file.Resources != nil {
		sc.Resources = &sim.ResourceConfig{
			DrillRigs:    file.Resources.DrillRigs,
			ChargeCrews:  file.Resources.ChargeCrews,
			Loaders:      file.Resources.Loaders,
			SupportCrews: file.Resources.SupportCrews,
		}
	}
	return sc, nil
}

func mergeInt64(name, legacyName string, canonical *int64, legacy int64) error {
	if legacy == 0 {
		return nil
	}
	if *canonical != 0 && *canonical != legacy {
		return fmt.Errorf("conflicting values for %s (%d) and legacy %s (%d)", name, *canonical, legacyName, legacy)
	}
	logrus.Warnf("scenario field %s is deprecated; use %s", legacyName, name)
	*canonical = legacy
	return nil
}

func mergeFloat64(name, legacyName string, canonical *float64, legacy float64) error {
	if legacy == 0 {
		return nil
	}
	if *canonical != 0 && *canonical != legacy {
		return fmt.Errorf("conflicting values for %s (%v) and legacy %s (%v)", name, *canonical, legacyName, legacy)
	}
	logrus.Warnf("scenario field %s is deprecated; use %s", legacyName, name)
	*canonical = legacy
	return nil
}
