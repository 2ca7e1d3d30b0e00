package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexScope/internal/api"
	"dexScope/internal/config"
	"dexScope/internal/query"
	"dexScope/internal/subgraph"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
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
	pipeline := query.NewPipeline(fetcher, logger)
	server := api.NewServer(cfg.Listen, pipeline, logger)

	logger.Info("serve start",
		zap.String("listen", cfg.Listen),
		zap.Int("sources", len(sources)),
		zap.Duration("timeout", cfg.Timeout),
	)

	return server.Run(ctx)
}
