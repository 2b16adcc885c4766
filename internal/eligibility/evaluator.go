// Package eligibility decides whether a wallet may claim in the current epoch.
package eligibility

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/ligun0805/epoch-claimer/internal/clock"
	"github.com/ligun0805/epoch-claimer/internal/model"
)

const (
	ReasonGenesisNotClaimed = "genesis not claimed"
	ReasonEpochNotClaimed   = "epoch not claimed"
	ReasonAlreadyClaimed    = "already claimed"
)

// DefaultReadDelay is the randomized pause before each contract read.
var DefaultReadDelay = clock.Range{Min: time.Second, Max: 2 * time.Second}

// Decision is the result of one evaluation.
type Decision struct {
	Eligible bool
	Epoch    *big.Int
	State    model.ClaimState
	Reason   string
}

// Evaluator reads the claim state of a wallet and applies the eligibility rule.
// It never caches state between calls.
type Evaluator struct {
	reader  StateReader
	metrics Metrics
	logger  *zap.Logger
	delay   clock.Range
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewEvaluator builds an evaluator. metrics may be nil.
func NewEvaluator(reader StateReader, metrics Metrics, logger *zap.Logger, delay clock.Range) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !delay.Valid() {
		delay = DefaultReadDelay
	}
	return &Evaluator{
		reader:  reader,
		metrics: metrics,
		logger:  logger,
		delay:   delay,
		sleep:   clock.SleepWithContext,
	}
}

// Evaluate reads genesis status, current epoch and the epoch claim record of
// wallet, each after a randomized delay. Any read failure is returned and the
// wallet must be treated as not eligible for this cycle.
func (e *Evaluator) Evaluate(ctx context.Context, wallet common.Address) (Decision, error) {
	d, err := e.evaluate(ctx, wallet)
	if e.metrics != nil {
		e.metrics.ObserveDecision(d.Eligible, err)
	}
	if err != nil {
		e.logger.Warn("eligibility check failed",
			zap.String("wallet", wallet.Hex()),
			zap.Error(err),
		)
		return Decision{}, err
	}

	e.logger.Info("eligibility checked",
		zap.String("wallet", wallet.Hex()),
		zap.Bool("genesis_claimed", d.State.GenesisClaimed),
		zap.String("epoch", d.Epoch.String()),
		zap.Bool("epoch_claimed", d.State.CurrentEpochClaimed),
		zap.String("buffer", bufferString(d.State.BufferAmount)),
		zap.Bool("eligible", d.Eligible),
		zap.String("reason", d.Reason),
	)
	return d, nil
}

func (e *Evaluator) evaluate(ctx context.Context, wallet common.Address) (Decision, error) {
	if err := e.pause(ctx); err != nil {
		return Decision{}, err
	}
	genesis, err := e.reader.GenesisClaimStatus(ctx, wallet)
	if err != nil {
		return Decision{}, fmt.Errorf("read genesis claim status: %w", err)
	}

	if err := e.pause(ctx); err != nil {
		return Decision{}, err
	}
	epoch, err := e.reader.CurrentEpoch(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("read current epoch: %w", err)
	}

	if err := e.pause(ctx); err != nil {
		return Decision{}, err
	}
	rec, err := e.reader.ClaimStatus(ctx, wallet, epoch)
	if err != nil {
		return Decision{}, fmt.Errorf("read claim status for epoch %s: %w", epoch, err)
	}

	state := model.ClaimState{
		GenesisClaimed:      genesis,
		Epoch:               epoch,
		CurrentEpochClaimed: rec.Claimed,
		BufferAmount:        rec.BufferAmount,
	}
	return Decision{
		Eligible: state.Eligible(),
		Epoch:    epoch,
		State:    state,
		Reason:   reason(state),
	}, nil
}

func (e *Evaluator) pause(ctx context.Context) error {
	return e.sleep(ctx, e.delay.Pick())
}

func reason(s model.ClaimState) string {
	switch {
	case !s.GenesisClaimed:
		return ReasonGenesisNotClaimed
	case !s.CurrentEpochClaimed:
		return ReasonEpochNotClaimed
	default:
		return ReasonAlreadyClaimed
	}
}

func bufferString(x *big.Int) string {
	if x == nil {
		return "0"
	}
	return x.String()
}
