package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CASCADE_*)
// 3. User config file (~/.config/cascade/config.yaml)
// 4. System config file (/etc/cascade/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	// Set config search paths (order matters)
	// User config (highest priority)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "cascade"))
	}

	// Home directory fallback
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".cascade"))
	}

	// System-wide config (lower priority)
	viper.AddConfigPath("/etc/cascade")

	// Current directory (for development)
	viper.AddConfigPath(".")

	// Environment variables
	viper.SetEnvPrefix("CASCADE")
	viper.AutomaticEnv()

	// Set defaults (lowest priority)
	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults apply
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("qstat_bin", "")
	viper.SetDefault("debug", false)
	viper.SetDefault("quiet", false)

	// Run directory layout
	viper.SetDefault("rlog_subdir", "LF/Rlog")
	viper.SetDefault("rlog_ext", ".rlog")
	viper.SetDefault("finished_marker", "PROGRAM emod3d-mpi IS FINISHED")

	// Fault directory layout
	viper.SetDefault("submission_logs_dir", "Logs_Submission")
	viper.SetDefault("map_file_patterns", []string{"*_realisations.map*", "*.map"})
	viper.SetDefault("estimate_yaml_name", "emod3d_estimate.yaml")
}

// BindFlags wires command-line flags into Viper so flags win over the config
// file and environment. Cobra registers its flags as a pflag set.
func BindFlags(flags *pflag.FlagSet) {
	if f := flags.Lookup("debug"); f != nil {
		_ = viper.BindPFlag("debug", f)
	}
	if f := flags.Lookup("quiet"); f != nil {
		_ = viper.BindPFlag("quiet", f)
	}
	if f := flags.Lookup("qstat"); f != nil {
		_ = viper.BindPFlag("qstat_bin", f)
	}
}

// LoadFromViper copies resolved Viper values into the Global config.
func LoadFromViper() {
	Global.Debug = viper.GetBool("debug")
	Global.Quiet = viper.GetBool("quiet")
	Global.QstatBin = viper.GetString("qstat_bin")

	Global.RlogSubdir = viper.GetString("rlog_subdir")
	Global.RlogExt = viper.GetString("rlog_ext")
	Global.FinishedMarker = viper.GetString("finished_marker")

	Global.SubmissionLogsDir = viper.GetString("submission_logs_dir")
	if patterns := viper.GetStringSlice("map_file_patterns"); len(patterns) > 0 {
		Global.MapFilePatterns = patterns
	}
	Global.EstimateYamlName = viper.GetString("estimate_yaml_name")
}

// GetUserConfigPath returns the path to the user config file
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".cascade", ConfigFilename+"."+ConfigType), nil
	}

	return filepath.Join(userConfigDir, "cascade", ConfigFilename+"."+ConfigType), nil
}
