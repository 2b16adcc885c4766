// Package runner cycles over the configured accounts forever, evaluating and
// claiming each one and pausing between passes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ligun0805/epoch-claimer/internal/claim"
	"github.com/ligun0805/epoch-claimer/internal/clock"
	"github.com/ligun0805/epoch-claimer/internal/journal"
	"github.com/ligun0805/epoch-claimer/internal/model"
)

var (
	ErrNoAccounts = errors.New("no accounts configured")
	// ErrPassFailed is returned by RunPass when no account could be processed.
	ErrPassFailed = errors.New("every account failed")
)

// Config controls pacing of the runner.
type Config struct {
	AccountDelay clock.Range
	ErrorDelay   clock.Range
	PassInterval clock.Range
	Cooldown     time.Duration
	Concurrency  int
}

// DefaultConfig mirrors the six-hourly schedule.
func DefaultConfig() Config {
	return Config{
		AccountDelay: clock.Range{Min: 3 * time.Second, Max: 5 * time.Second},
		ErrorDelay:   clock.Range{Min: 5 * time.Second, Max: 8 * time.Second},
		PassInterval: clock.Range{Min: 21600 * time.Second, Max: 22000 * time.Second},
		Cooldown:     5 * time.Minute,
		Concurrency:  1,
	}
}

// Runner drives passes over all accounts.
type Runner struct {
	evaluator Evaluator
	submitter Submitter
	journal   Journal
	reporter  Reporter
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config
	clock     clockwork.Clock
	sleep     func(ctx context.Context, d time.Duration) error
	newPassID func() string

	mu     sync.RWMutex
	status Status
}

// New builds a runner. journal, reporter and metrics may be nil.
func New(
	evaluator Evaluator,
	submitter Submitter,
	journal Journal,
	reporter Reporter,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	clk := clockwork.NewRealClock()
	return &Runner{
		evaluator: evaluator,
		submitter: submitter,
		journal:   journal,
		reporter:  reporter,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		clock:     clk,
		sleep:     clock.NewSleeper(clk).Sleep,
		newPassID: uuid.NewString,
	}
}

// Status returns a copy of the latest pass snapshot.
func (r *Runner) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status.clone()
}

// RunForever runs passes until ctx is canceled. A failed or panicking pass is
// followed by the cooldown instead of the regular pass interval.
func (r *Runner) RunForever(ctx context.Context, accounts []model.Account) error {
	if len(accounts) == 0 {
		return ErrNoAccounts
	}

	for {
		err := r.safePass(ctx, accounts)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := r.cfg.PassInterval.Pick()
		if err != nil {
			wait = r.cfg.Cooldown
			r.logger.Error("pass failed, cooling down", zap.Error(err), zap.Duration("cooldown", wait))
			r.report(ctx, err, map[string]string{"scope": "pass"})
		}

		next := r.clock.Now().Add(wait)
		r.mu.Lock()
		r.status.NextPassAt = next
		r.mu.Unlock()
		r.logger.Info("next pass scheduled", zap.Time("at", next), zap.Duration("in", wait))

		if err := r.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (r *Runner) safePass(ctx context.Context, accounts []model.Account) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("pass panic: %v", p)
			r.logger.Error("pass panicked", zap.Any("panic", p), zap.Stack("stack"))
		}
	}()
	return r.RunPass(ctx, accounts)
}

// RunPass processes every account once. Per-account failures are isolated; the
// pass itself fails only on cancellation or when every account errored.
func (r *Runner) RunPass(ctx context.Context, accounts []model.Account) error {
	passID := r.newPassID()
	logger := r.logger.With(zap.String("pass_id", passID))
	started := r.clock.Now()

	r.mu.Lock()
	r.status = Status{
		PassID:     passID,
		Passes:     r.status.Passes + 1,
		Running:    true,
		StartedAt:  started,
		NextPassAt: time.Time{},
		Accounts:   make([]AccountResult, len(accounts)),
	}
	for i, acct := range accounts {
		r.status.Accounts[i] = AccountResult{Wallet: acct.Address.Hex(), Status: StatusSkipped}
	}
	r.mu.Unlock()

	logger.Info("pass started", zap.Int("accounts", len(accounts)), zap.Int("concurrency", r.cfg.Concurrency))

	var err error
	if r.cfg.Concurrency > 1 {
		err = r.runConcurrent(ctx, logger, passID, accounts)
	} else {
		err = r.runSequential(ctx, logger, passID, accounts)
	}
	if err == nil && r.allErrored() {
		err = ErrPassFailed
	}

	finished := r.clock.Now()
	r.mu.Lock()
	r.status.Running = false
	r.status.FinishedAt = finished
	r.status.LastError = ""
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.ObservePass(err, len(accounts), started)
	}
	logger.Info("pass finished", zap.Duration("took", finished.Sub(started)), zap.Error(err))
	return err
}

func (r *Runner) runSequential(ctx context.Context, logger *zap.Logger, passID string, accounts []model.Account) error {
	for i, acct := range accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := r.processAccount(ctx, logger, passID, acct)
		r.setResult(i, res)

		if i == len(accounts)-1 {
			break
		}
		if err := r.sleep(ctx, r.delayAfter(res)); err != nil {
			return err
		}
	}
	return nil
}

// runConcurrent processes accounts as independent tasks. Every account keeps its
// own nonce sequence, so tasks share nothing but the status snapshot.
func (r *Runner) runConcurrent(ctx context.Context, logger *zap.Logger, passID string, accounts []model.Account) error {
	var g errgroup.Group
	g.SetLimit(r.cfg.Concurrency)

	for i, acct := range accounts {
		if ctx.Err() != nil {
			break
		}
		i, acct := i, acct
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			res := r.processAccount(ctx, logger, passID, acct)
			r.setResult(i, res)
			// the slot stays taken for the account delay
			_ = r.sleep(ctx, r.delayAfter(res))
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

func (r *Runner) delayAfter(res AccountResult) time.Duration {
	if res.Status == StatusError {
		return r.cfg.ErrorDelay.Pick()
	}
	return r.cfg.AccountDelay.Pick()
}

// processAccount evaluates and, when eligible, claims for one account. It never
// panics and never returns an error; failures land in the result.
func (r *Runner) processAccount(ctx context.Context, logger *zap.Logger, passID string, acct model.Account) (res AccountResult) {
	wallet := acct.Address.Hex()
	logger = logger.With(zap.String("wallet", wallet))
	res = AccountResult{Wallet: wallet}

	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("account panic: %v", p)
			logger.Error("account processing panicked", zap.Any("panic", p), zap.Stack("stack"))
			r.report(ctx, err, map[string]string{"scope": "account", "wallet": wallet, "pass_id": passID})
			res = AccountResult{Wallet: wallet, Status: StatusError, Reason: err.Error()}
		}
		res.At = r.clock.Now()
		if r.metrics != nil {
			r.metrics.ObserveAccount(res.Status)
		}
	}()

	decision, err := r.evaluator.Evaluate(ctx, acct.Address)
	if err != nil {
		logger.Warn("skipping account this cycle", zap.Error(err))
		if ctx.Err() == nil {
			r.report(ctx, err, map[string]string{"scope": "eligibility", "wallet": wallet, "pass_id": passID})
		}
		res.Status = StatusError
		res.Reason = err.Error()
		return res
	}
	if decision.Epoch != nil {
		res.Epoch = decision.Epoch.String()
	}
	if !decision.Eligible {
		res.Status = StatusNotEligible
		res.Reason = decision.Reason
		return res
	}

	logger.Info("claiming", zap.String("epoch", res.Epoch), zap.String("reason", decision.Reason))
	result, err := r.submitter.Submit(ctx, acct)
	r.record(ctx, logger, passID, acct, res.Epoch, result)

	if err != nil {
		logger.Warn("claim failed", zap.Error(err), zap.Int("attempts", result.Attempts))
		if ctx.Err() == nil {
			r.report(ctx, err, map[string]string{"scope": "claim", "wallet": wallet, "pass_id": passID})
		}
		res.Status = StatusClaimFailed
		res.Reason = err.Error()
		return res
	}

	res.Status = StatusClaimed
	res.TxHash = result.TxHash.Hex()
	if result.Reward != nil {
		res.Reward = result.Reward.String()
	}
	logger.Info("claimed", zap.String("tx", res.TxHash), zap.String("reward", res.Reward), zap.Int("attempts", result.Attempts))
	return res
}

func (r *Runner) record(ctx context.Context, logger *zap.Logger, passID string, acct model.Account, epoch string, result claim.Result) {
	if r.journal == nil {
		return
	}
	e := journal.Entry{
		PassID:   passID,
		Wallet:   acct.Address,
		Epoch:    epoch,
		Success:  result.Success,
		Attempts: result.Attempts,
		Nonce:    result.Nonce,
		Reason:   result.Reason,
		At:       r.clock.Now(),
	}
	if result.Success {
		e.TxHash = result.TxHash.Hex()
	}
	if result.GasPrice != nil {
		e.GasPrice = result.GasPrice.String()
	}
	if result.Reward != nil {
		e.Reward = result.Reward.String()
	}
	// recorded even when the pass was canceled mid-claim
	if err := r.journal.Record(context.WithoutCancel(ctx), e); err != nil {
		logger.Warn("journal write failed", zap.Error(err))
	}
}

func (r *Runner) report(ctx context.Context, err error, tags map[string]string) {
	if r.reporter == nil || err == nil {
		return
	}
	r.reporter.Report(ctx, err, tags)
}

func (r *Runner) setResult(i int, res AccountResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < len(r.status.Accounts) {
		r.status.Accounts[i] = res
	}
}

func (r *Runner) allErrored() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.status.Accounts) == 0 {
		return false
	}
	for _, a := range r.status.Accounts {
		if a.Status != StatusError {
			return false
		}
	}
	return true
}
