package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "dexscope",
		Short:        "DEX liquidity pool aggregator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pools REST API",
		RunE:  runServe,
	}

	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	addSourceFlags(serveCmd)
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(serveCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch all sources and write a snapshot file",
		RunE:  runExport,
	}

	exportCmd.Flags().String("out", "./data/dex_data.json", "output snapshot path")
	exportCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for snapshot upserts")
	addSourceFlags(exportCmd)
	exportCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(exportCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run analysis engines over a snapshot file",
		RunE:  runAnalyze,
	}

	analyzeCmd.Flags().String("in", "./data/dex_data.json", "input snapshot path")
	analyzeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("uniswap-url", "", "Uniswap V3 subgraph URL")
	cmd.Flags().String("sushiswap-url", "", "SushiSwap subgraph URL")
	cmd.Flags().String("quickswap-url", "", "QuickSwap subgraph URL")
	cmd.Flags().Duration("timeout", 15*time.Second, "subgraph request timeout")
	cmd.Flags().Int("max-retries", 3, "maximum retry attempts per subgraph query")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
