package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/ligun0805/epoch-claimer/internal/chain"
	"github.com/ligun0805/epoch-claimer/internal/config"
	"github.com/ligun0805/epoch-claimer/internal/metrics"
	"github.com/ligun0805/epoch-claimer/internal/retry"
)

// app carries what every command shares.
type app struct {
	ctx  context.Context
	opts *config.Settings
}

// start validates the settings and builds the logger.
func (a *app) start() (*zap.Logger, func(), error) {
	if err := a.opts.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return newLogger(a.opts.Verbose, a.opts.LogFile)
}

// connect dials the node, checks it answers with the expected chain id and
// returns the reward contract client.
func (a *app) connect(logger *zap.Logger) (*chain.Client, *big.Int, func(), error) {
	ec, err := chain.Dial(a.opts.RPCURL, a.opts.HTTPTimeout)
	if err != nil {
		return nil, nil, nil, err
	}
	chainID, err := verifyChainID(a.ctx, ec, a.opts.ChainIDBig())
	if err != nil {
		ec.Close()
		return nil, nil, nil, err
	}

	client := chain.NewClient(ec, chain.Config{
		RewardContract: common.HexToAddress(a.opts.RewardContract),
		TokenContract:  common.HexToAddress(a.opts.TokenContract),
		ChainID:        chainID,
		RateLimit:      a.opts.RPCRate,
		Retry:          retry.DefaultConfig(),
	}, metrics.NewRPCClient(), logger.Named("chain"))
	return client, chainID, ec.Close, nil
}

func verifyChainID(ctx context.Context, ec *ethclient.Client, want *big.Int) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	var got *big.Int
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var err error
		got, err = ec.ChainID(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("rpc endpoint unreachable: %w", err)
	}
	if want != nil && want.Cmp(got) != 0 {
		return nil, fmt.Errorf("chain id mismatch: configured %s, node reports %s", want, got)
	}
	return got, nil
}

// reporter returns nil when Sentry is not configured.
func (a *app) reporter() (*sentryReporter, error) {
	if a.opts.SentryDSN == "" {
		return nil, nil
	}
	return newSentryReporter(sentry.ClientOptions{
		Dsn:         a.opts.SentryDSN,
		Environment: a.opts.SentryEnv,
	})
}
