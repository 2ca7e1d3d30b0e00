package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexScope/internal/config"
	"dexScope/internal/storage"
	"dexScope/internal/storage/postgres"
	"dexScope/internal/subgraph"
)

func runExport(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadExport(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := subgraph.NewClient(subgraph.ClientConfig{
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	})

	sources := subgraph.BuildSources(subgraph.SourceURLs{
		Uniswap:   cfg.UniswapURL,
		Sushiswap: cfg.SushiswapURL,
		Quickswap: cfg.QuickswapURL,
	})

	fetcher := subgraph.NewFetcher(client, sources, logger)

	logger.Info("export start", zap.Int("sources", len(sources)), zap.String("out", cfg.Out))

	data, err := fetcher.FetchAll(ctx)
	if err != nil {
		return err
	}

	snapshot := storage.NewSnapshotStore(cfg.Out)
	if err := snapshot.Write(data); err != nil {
		return err
	}

	logger.Info("snapshot written",
		zap.Int("tokens", len(data.Tokens)),
		zap.Int("pools", len(data.Pools)),
		zap.String("out", cfg.Out),
	)

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpsertTokens(ctx, data.Tokens); err != nil {
			return err
		}
		if err := store.UpsertPools(ctx, data.Pools); err != nil {
			return err
		}

		logger.Info("snapshot upserted to postgres",
			zap.Int("tokens", len(data.Tokens)),
			zap.Int("pools", len(data.Pools)),
		)
	}

	return nil
}
