package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/drift-sim/drift-sim/sim"
)

var (
	// CLI flags for the run
	scenarioPath string // Path to a YAML scenario file (empty = built-in defaults)
	logLevel     string // Log verbosity level
	horizonDays  int    // Simulation horizon override (days)
	headings     int    // Number of headings override
	timelineOut  string // Path to write the timeline JSON (empty = no timeline)

	// Resource capacity overrides (-1 = keep the scenario's value)
	drillRigs    int
	chargeCrews  int
	loaders      int
	supportCrews int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "drift-sim",
	Short: "Discrete-event production simulator for development-mining headings",
}

// loadAndOverride assembles the effective scenario from the file (or
// defaults) and the flag overrides.
func loadAndOverride() sim.Scenario {
	sc := sim.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario %s: %v", scenarioPath, err)
		}
		sc = loaded
	}
	if headings > 0 {
		sc.Headings = headings
	}
	if drillRigs >= 0 || chargeCrews >= 0 || loaders >= 0 || supportCrews >= 0 {
		caps := sim.ResourceConfig{}
		if sc.Resources != nil {
			caps = *sc.Resources
		} else {
			logrus.Warn("scenario is unconstrained; unset resource flags default to capacity 0")
		}
		if drillRigs >= 0 {
			caps.DrillRigs = drillRigs
		}
		if chargeCrews >= 0 {
			caps.ChargeCrews = chargeCrews
		}
		if loaders >= 0 {
			caps.Loaders = loaders
		}
		if supportCrews >= 0 {
			caps.SupportCrews = supportCrews
		}
		sc.Resources = &caps
	}
	return sc
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the production simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc := loadAndOverride()
		opts := sim.RunOptions{
			HorizonDays:    horizonDays,
			RecordTimeline: timelineOut != "",
		}

		logrus.Infof("Starting simulation: %d headings, %d shifts/day × %d min, blast policy %s",
			sc.Headings, sc.Shifts.ShiftsPerDay, sc.Shifts.ShiftMinutes, sc.Shifts.BlastPolicy)

		startTime := time.Now()
		result, err := sim.Run(sc, opts)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		result.KPIs.Print()
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))

		if timelineOut != "" {
			data, err := json.MarshalIndent(result.Timeline, "", "  ")
			if err != nil {
				logrus.Fatalf("unable to encode timeline: %v", err)
			}
			if err := os.WriteFile(timelineOut, data, 0o644); err != nil {
				logrus.Fatalf("unable to write timeline to %s: %v", timelineOut, err)
			}
			logrus.Infof("Timeline written to %s (%d intervals).", timelineOut, len(result.Timeline.Intervals))
		}
	},
}

// validateCmd checks a scenario file without simulating
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file without running it",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("validate requires --scenario")
		}
		sc, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario %s: %v", scenarioPath, err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("scenario %s is invalid: %v", scenarioPath, err)
		}
		logrus.Infof("scenario %s is valid", scenarioPath)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (empty = built-in default scenario)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&horizonDays, "horizon-days", 0, "Simulation horizon in days (0 = scenario value)")
	runCmd.Flags().IntVar(&headings, "headings", 0, "Number of headings (0 = scenario value)")
	runCmd.Flags().StringVar(&timelineOut, "timeline-out", "", "Write the stage-occupancy timeline as JSON to this file")

	runCmd.Flags().IntVar(&drillRigs, "drill-rigs", -1, "Drill rig capacity (-1 = scenario value)")
	runCmd.Flags().IntVar(&chargeCrews, "charge-crews", -1, "Charge/blast crew capacity (-1 = scenario value)")
	runCmd.Flags().IntVar(&loaders, "loaders", -1, "Loader capacity (-1 = scenario value)")
	runCmd.Flags().IntVar(&supportCrews, "support-crews", -1, "Support crew capacity (-1 = scenario value)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
