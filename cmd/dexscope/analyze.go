package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexScope/internal/config"
	"dexScope/internal/engine"
	"dexScope/internal/storage"
)

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAnalyze(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	snapshot := storage.NewSnapshotStore(cfg.In)
	data, err := snapshot.Read()
	if err != nil {
		return err
	}

	logger.Info("analyze start",
		zap.String("in", cfg.In),
		zap.Int("tokens", len(data.Tokens)),
		zap.Int("pools", len(data.Pools)),
	)

	executor := engine.NewExecutor(logger)
	executor.Add(engine.SummaryEngine{})
	executor.Add(engine.TopPoolEngine{})
	executor.Add(engine.ScoreEngine{})
	executor.Run(&data)

	return nil
}
