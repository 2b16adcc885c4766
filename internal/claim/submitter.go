// Package claim submits claimReward() transactions and drives them to a final state.
package claim

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/ligun0805/epoch-claimer/internal/clock"
	"github.com/ligun0805/epoch-claimer/internal/model"
)

var (
	ErrRetryBudgetExhausted = errors.New("retry budget exhausted")
	ErrReverted             = errors.New("transaction reverted")
	ErrConfirmTimeout       = errors.New("transaction not confirmed")
)

// Submitter builds, signs, sends and confirms claim transactions.
type Submitter struct {
	chain   Chain
	policy  Policy
	metrics Metrics
	logger  *zap.Logger
	sleep   func(ctx context.Context, d time.Duration) error
	now     func() time.Time
}

// NewSubmitter builds a submitter. Zero policy fields fall back to DefaultPolicy; metrics may be nil.
func NewSubmitter(chain Chain, policy Policy, metrics Metrics, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		chain:   chain,
		policy:  policy.withDefaults(),
		metrics: metrics,
		logger:  logger,
		sleep:   clock.SleepWithContext,
		now:     time.Now,
	}
}

// Submit claims the reward for acct. On collisions the gas price is escalated
// and the nonce bumped, up to Policy.MaxAttempts attempts. The returned error is
// nil only for a confirmed, successful transaction.
func (s *Submitter) Submit(ctx context.Context, acct model.Account) (Result, error) {
	started := s.now()
	res, err := s.submit(ctx, acct)
	if s.metrics != nil {
		s.metrics.ObserveSubmission(err, started)
	}
	return res, err
}

func (s *Submitter) submit(ctx context.Context, acct model.Account) (Result, error) {
	logger := s.logger.With(zap.String("wallet", acct.Address.Hex()))

	nonce, err := s.chain.PendingNonce(ctx, acct.Address)
	if err != nil {
		return Result{Reason: "nonce unavailable"}, err
	}
	gasPrice, err := s.chain.GasPrice(ctx)
	if err != nil {
		return Result{Reason: "gas price unavailable"}, err
	}

	var last Outcome
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		alog := logger.With(zap.Int("attempt", attempt), zap.Uint64("nonce", nonce), zap.String("gas_price", gasPrice.String()))

		last = s.attempt(ctx, alog, acct, nonce, gasPrice)
		if s.metrics != nil {
			s.metrics.ObserveAttempt(last.Kind.String())
		}

		res := Result{
			TxHash:   last.TxHash,
			Attempts: attempt,
			GasPrice: gasPrice,
			Nonce:    nonce,
			Receipt:  last.Receipt,
		}
		switch last.Kind {
		case OutcomeSuccess:
			res.Success = true
			res.Reward = s.chain.RewardAmount(last.Receipt, acct.Address)
			res.Reason = "claimed"
			alog.Info("claim state", zap.Stringer("state", StateSuccess),
				zap.String("tx", last.TxHash.Hex()),
				zap.String("reward", res.Reward.String()),
			)
			return res, nil
		case OutcomeFailed:
			res.Reason = last.Err.Error()
			alog.Warn("claim state", zap.Stringer("state", StateFailed), zap.Error(last.Err))
			return res, last.Err
		}

		alog.Info("claim state", zap.Stringer("state", StateRetry),
			zap.Error(last.Err),
			zap.String("next_gas_price", last.GasPrice.String()),
			zap.Uint64("next_nonce", last.Nonce),
		)
		if attempt == s.policy.MaxAttempts {
			break
		}
		if err := s.sleep(ctx, s.policy.RetryDelay); err != nil {
			return Result{Attempts: attempt, GasPrice: gasPrice, Nonce: nonce, Reason: "canceled"}, err
		}
		gasPrice, nonce = last.GasPrice, last.Nonce
	}

	err = fmt.Errorf("%w after %d attempts: %v", ErrRetryBudgetExhausted, s.policy.MaxAttempts, last.Err)
	logger.Warn("claim state", zap.Stringer("state", StateFailed), zap.Error(err))
	return Result{
		Attempts: s.policy.MaxAttempts,
		GasPrice: gasPrice,
		Nonce:    nonce,
		Reason:   ErrRetryBudgetExhausted.Error(),
	}, err
}

// attempt runs BUILD, SIGN, SEND and CONFIRM once.
func (s *Submitter) attempt(ctx context.Context, logger *zap.Logger, acct model.Account, nonce uint64, gasPrice *big.Int) Outcome {
	logger.Debug("claim state", zap.Stringer("state", StateBuild))
	gasLimit, err := s.chain.EstimateClaimGas(ctx, acct.Address, gasPrice)
	if err != nil {
		return failed(err)
	}
	tx := s.chain.NewClaimTx(nonce, gasPrice, gasLimit)

	logger.Debug("claim state", zap.Stringer("state", StateSign), zap.Uint64("gas", gasLimit))
	signed, err := s.chain.SignTx(ctx, tx, acct.Key)
	if err != nil {
		return failed(err)
	}

	logger.Debug("claim state", zap.Stringer("state", StateSend), zap.String("tx", signed.Hash().Hex()))
	if err := s.chain.SendTransaction(ctx, signed); err != nil {
		if IsCollision(err) {
			nextGas, nextNonce := s.policy.Escalate(gasPrice, nonce)
			return Outcome{Kind: OutcomeRetry, Err: err, GasPrice: nextGas, Nonce: nextNonce}
		}
		return failed(fmt.Errorf("send transaction: %w", err))
	}

	hash := signed.Hash()
	logger.Info("claim state", zap.Stringer("state", StateConfirm), zap.String("tx", hash.Hex()))
	receipt, err := s.confirm(ctx, logger, hash)
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Err: err, TxHash: hash}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Outcome{Kind: OutcomeFailed, Err: fmt.Errorf("%w: %s", ErrReverted, hash.Hex()), TxHash: hash, Receipt: receipt}
	}
	return Outcome{Kind: OutcomeSuccess, GasPrice: gasPrice, Nonce: nonce, TxHash: hash, Receipt: receipt}
}

// confirm polls for the receipt. Read errors count as a missed poll.
func (s *Submitter) confirm(ctx context.Context, logger *zap.Logger, hash common.Hash) (*types.Receipt, error) {
	for poll := 1; poll <= s.policy.ReceiptPolls; poll++ {
		receipt, err := s.chain.TransactionReceipt(ctx, hash)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			logger.Warn("receipt poll failed", zap.Int("poll", poll), zap.Error(err))
		case receipt != nil:
			return receipt, nil
		default:
			logger.Debug("waiting for receipt", zap.Int("poll", poll), zap.Int("of", s.policy.ReceiptPolls))
		}
		if poll == s.policy.ReceiptPolls {
			break
		}
		if err := s.sleep(ctx, s.policy.ReceiptPollInterval); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w after %d polls: %s", ErrConfirmTimeout, s.policy.ReceiptPolls, hash.Hex())
}

func failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}
