package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ligun0805/epoch-claimer/internal/claim"
	"github.com/ligun0805/epoch-claimer/internal/config"
	"github.com/ligun0805/epoch-claimer/internal/eligibility"
	"github.com/ligun0805/epoch-claimer/internal/journal"
	"github.com/ligun0805/epoch-claimer/internal/metrics"
	"github.com/ligun0805/epoch-claimer/internal/runner"
	"github.com/ligun0805/epoch-claimer/internal/server"
)

type runCommand struct {
	app *app
}

func (c *runCommand) Execute(_ []string) error {
	opts := c.app.opts
	logger, cleanup, err := c.app.start()
	if err != nil {
		return err
	}
	defer cleanup()

	accounts, err := config.LoadAccounts(opts.AccountsFile)
	if err != nil {
		logger.Fatal("failed to load accounts", zap.String("file", opts.AccountsFile), zap.Error(err))
	}

	client, chainID, closeClient, err := c.app.connect(logger)
	if err != nil {
		logger.Fatal("failed to connect", zap.String("rpc", opts.RPCURL), zap.Error(err))
	}
	defer closeClient()
	printConfig(os.Stdout, opts, chainID, accounts)

	var reporter runner.Reporter
	sr, err := c.app.reporter()
	if err != nil {
		logger.Fatal("failed to init sentry", zap.Error(err))
	}
	if sr != nil {
		reporter = sr
		defer sr.Flush(2 * time.Second)
	}

	var jr runner.Journal
	if opts.JournalDir != "" {
		store, err := journal.Open(opts.JournalDir)
		if err != nil {
			logger.Fatal("failed to open journal", zap.String("dir", opts.JournalDir), zap.Error(err))
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("journal close", zap.Error(err))
			}
		}()
		jr = store
	}

	evaluator := eligibility.NewEvaluator(client, metrics.NewEligibility(), logger.Named("eligibility"), opts.ReadDelay())
	submitter := claim.NewSubmitter(client, opts.ClaimPolicy(), metrics.NewClaim(), logger.Named("claim"))
	r := runner.New(evaluator, submitter, jr, reporter, metrics.NewRunner(), runner.Config{
		AccountDelay: opts.AccountDelay(),
		ErrorDelay:   opts.ErrorDelay(),
		PassInterval: opts.PassInterval(),
		Cooldown:     opts.Cooldown,
		Concurrency:  opts.Concurrency,
	}, logger.Named("runner"))

	if opts.MetricsAddr != "" {
		server.New(opts.MetricsAddr, r, logger.Named("server")).Start(c.app.ctx)
	}

	logger.Info("claimer started",
		zap.Int("accounts", len(accounts)),
		zap.String("reward_contract", opts.RewardContract),
		zap.String("chain_id", chainID.String()),
	)
	err = r.RunForever(c.app.ctx, accounts)
	if errors.Is(err, context.Canceled) {
		logger.Info("shutting down")
		return nil
	}
	return err
}
