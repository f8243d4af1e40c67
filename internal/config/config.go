// Package config holds the global settings for the cascade tools.
package config

const VERSION = "0.4.2"

// Config holds global application settings
type Config struct {
	Debug bool
	Quiet bool

	// Scheduler query binary (PBS qstat). Empty means look it up in PATH.
	QstatBin string

	// Layout of a simulation run directory.
	RlogSubdir     string // progress logs live here, relative to the run dir
	RlogExt        string // progress log extension
	FinishedMarker string // substring on the final rlog line of a completed run

	// Layout of a fault (array) directory.
	SubmissionLogsDir string   // sibling dir holding realisation map files
	MapFilePatterns   []string // candidate map file globs, tried in order
	EstimateYamlName  string   // per-fault resource estimate file
}

// Global holds the singleton configuration instance
var Global Config

// LoadDefaults resets Global to the built-in defaults. Viper values and
// command-line flags are layered on top afterwards.
func LoadDefaults() {
	Global = Config{
		Debug: false,
		Quiet: false,

		QstatBin: "",

		RlogSubdir:     "LF/Rlog",
		RlogExt:        ".rlog",
		FinishedMarker: "PROGRAM emod3d-mpi IS FINISHED",

		SubmissionLogsDir: "Logs_Submission",
		MapFilePatterns:   []string{"*_realisations.map*", "*.map"},
		EstimateYamlName:  "emod3d_estimate.yaml",
	}
}
