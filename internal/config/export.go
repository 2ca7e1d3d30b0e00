package config

import (
	"time"

	"github.com/spf13/pflag"
)

// ExportConfig holds configuration for the export command.
type ExportConfig struct {
	Out          string
	PGDSN        string
	UniswapURL   string
	SushiswapURL string
	QuickswapURL string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadExport merges config file, environment variables, and flags into ExportConfig.
func LoadExport(cfgFile string, flags *pflag.FlagSet) (ExportConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ExportConfig{}, err
	}

	v.SetDefault("out", "./data/dex_data.json")
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	cfg := ExportConfig{
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		UniswapURL:   v.GetString("uniswap-url"),
		SushiswapURL: v.GetString("sushiswap-url"),
		QuickswapURL: v.GetString("quickswap-url"),
		Timeout:      v.GetDuration("timeout"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}
