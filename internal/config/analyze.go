package config

import "github.com/spf13/pflag"

// AnalyzeConfig holds configuration for the analyze command.
type AnalyzeConfig struct {
	In       string
	LogLevel string
}

// LoadAnalyze merges config file, environment variables, and flags into AnalyzeConfig.
func LoadAnalyze(cfgFile string, flags *pflag.FlagSet) (AnalyzeConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return AnalyzeConfig{}, err
	}

	v.SetDefault("in", "./data/dex_data.json")
	v.SetDefault("log-level", "info")

	cfg := AnalyzeConfig{
		In:       v.GetString("in"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
