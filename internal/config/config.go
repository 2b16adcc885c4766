// Package config holds the claimer settings and the accounts file loader.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ligun0805/epoch-claimer/internal/claim"
	"github.com/ligun0805/epoch-claimer/internal/clock"
)

// Settings keeps all configuration options. Every option can come from a flag,
// from the environment or from a .env file loaded into the environment.
type Settings struct {
	RPCURL         string        `long:"rpc-url" env:"RPC_URL" description:"JSON-RPC endpoint" default:"https://rpc.testnet.humanity.org"`
	ChainID        int64         `long:"chain-id" env:"CHAIN_ID" description:"chain id, 0 asks the node" default:"1942999413"`
	RewardContract string        `long:"reward-contract" env:"REWARD_CONTRACT" description:"epoch reward contract" default:"0xa18f6FCB2Fd4884436d10610E69DB7BFa1bFe8C7"`
	TokenContract  string        `long:"token-contract" env:"TOKEN_CONTRACT" description:"reward token contract" default:"0x693cb8de384f00a5c2580d544b38013bfb496529"`
	AccountsFile   string        `long:"accounts" env:"ACCOUNTS_FILE" description:"accounts JSON file" default:"config.json"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPCRate        float64       `long:"rpc-rate" env:"RPC_RATE" description:"max RPC requests per second, 0 disables" default:"5"`

	ReadDelayMin    time.Duration `long:"read-delay-min" env:"READ_DELAY_MIN" description:"min pause before each contract read" default:"1s"`
	ReadDelayMax    time.Duration `long:"read-delay-max" env:"READ_DELAY_MAX" description:"max pause before each contract read" default:"2s"`
	AccountDelayMin time.Duration `long:"account-delay-min" env:"ACCOUNT_DELAY_MIN" description:"min pause between accounts" default:"3s"`
	AccountDelayMax time.Duration `long:"account-delay-max" env:"ACCOUNT_DELAY_MAX" description:"max pause between accounts" default:"5s"`
	ErrorDelayMin   time.Duration `long:"error-delay-min" env:"ERROR_DELAY_MIN" description:"min pause after a failed account" default:"5s"`
	ErrorDelayMax   time.Duration `long:"error-delay-max" env:"ERROR_DELAY_MAX" description:"max pause after a failed account" default:"8s"`
	PassIntervalMin time.Duration `long:"pass-interval-min" env:"PASS_INTERVAL_MIN" description:"min wait between passes" default:"6h"`
	PassIntervalMax time.Duration `long:"pass-interval-max" env:"PASS_INTERVAL_MAX" description:"max wait between passes" default:"6h6m40s"`
	Cooldown        time.Duration `long:"cooldown" env:"COOLDOWN" description:"wait after a failed pass" default:"5m"`

	MaxAttempts     int           `long:"max-attempts" env:"MAX_ATTEMPTS" description:"max send attempts per claim" default:"15"`
	GasEscalation   string        `long:"gas-escalation" env:"GAS_ESCALATION" description:"gas price multiplier on collisions" default:"3.2"`
	RetryDelay      time.Duration `long:"retry-delay" env:"RETRY_DELAY" description:"wait between send attempts" default:"5s"`
	ReceiptPolls    int           `long:"receipt-polls" env:"RECEIPT_POLLS" description:"receipt polls before giving up" default:"30"`
	ReceiptInterval time.Duration `long:"receipt-interval" env:"RECEIPT_INTERVAL" description:"wait between receipt polls" default:"2s"`

	Concurrency int    `long:"concurrency" env:"CONCURRENCY" description:"accounts processed in parallel" default:"1"`
	MetricsAddr string `long:"metrics-addr" env:"METRICS_ADDR" description:"ops server address, empty disables" default:":2112"`
	JournalDir  string `long:"journal-dir" env:"JOURNAL_DIR" description:"claim journal directory, empty disables" default:"data/journal"`
	SentryDSN   string `long:"sentry-dsn" env:"SENTRY_DSN" description:"Sentry DSN, empty disables"`
	SentryEnv   string `long:"sentry-env" env:"SENTRY_ENVIRONMENT" description:"Sentry environment" default:"production"`
	LogFile     string `long:"log-file" env:"LOG_FILE" description:"extra JSON log file"`
	Verbose     bool   `short:"v" long:"verbose" env:"VERBOSE" description:"debug logging"`
}

// Validate checks values that flag parsing cannot.
func (s *Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.RPCURL) == "" {
		errs = append(errs, errors.New("rpc-url is required"))
	}
	if s.ChainID < 0 {
		errs = append(errs, fmt.Errorf("chain-id must not be negative, got %d", s.ChainID))
	}
	if !common.IsHexAddress(s.RewardContract) {
		errs = append(errs, fmt.Errorf("bad reward-contract %q", s.RewardContract))
	}
	if !common.IsHexAddress(s.TokenContract) {
		errs = append(errs, fmt.Errorf("bad token-contract %q", s.TokenContract))
	}
	if s.RPCRate < 0 {
		errs = append(errs, errors.New("rpc-rate must not be negative"))
	}
	for name, r := range map[string]clock.Range{
		"read-delay":    s.ReadDelay(),
		"account-delay": s.AccountDelay(),
		"error-delay":   s.ErrorDelay(),
		"pass-interval": s.PassInterval(),
	} {
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("%s: min %s must be >= 0 and <= max %s", name, r.Min, r.Max))
		}
	}
	if s.Cooldown < 0 || s.RetryDelay < 0 || s.ReceiptInterval < 0 {
		errs = append(errs, errors.New("cooldown, retry-delay and receipt-interval must not be negative"))
	}
	if s.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max-attempts must be >= 1, got %d", s.MaxAttempts))
	}
	if s.ReceiptPolls < 1 {
		errs = append(errs, fmt.Errorf("receipt-polls must be >= 1, got %d", s.ReceiptPolls))
	}
	if f, err := s.escalation(); err != nil {
		errs = append(errs, err)
	} else if f.Cmp(big.NewRat(1, 1)) <= 0 {
		errs = append(errs, fmt.Errorf("gas-escalation must be > 1, got %s", s.GasEscalation))
	}
	if s.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be >= 1, got %d", s.Concurrency))
	}
	return errors.Join(errs...)
}

func (s *Settings) escalation() (*big.Rat, error) {
	f, ok := new(big.Rat).SetString(strings.TrimSpace(s.GasEscalation))
	if !ok {
		return nil, fmt.Errorf("bad gas-escalation %q", s.GasEscalation)
	}
	return f, nil
}

func (s *Settings) ReadDelay() clock.Range {
	return clock.Range{Min: s.ReadDelayMin, Max: s.ReadDelayMax}
}

func (s *Settings) AccountDelay() clock.Range {
	return clock.Range{Min: s.AccountDelayMin, Max: s.AccountDelayMax}
}

func (s *Settings) ErrorDelay() clock.Range {
	return clock.Range{Min: s.ErrorDelayMin, Max: s.ErrorDelayMax}
}

func (s *Settings) PassInterval() clock.Range {
	return clock.Range{Min: s.PassIntervalMin, Max: s.PassIntervalMax}
}

// ClaimPolicy converts the retry knobs. Call Validate first.
func (s *Settings) ClaimPolicy() claim.Policy {
	f, err := s.escalation()
	if err != nil {
		f = nil
	}
	return claim.Policy{
		MaxAttempts:         s.MaxAttempts,
		Escalation:          f,
		RetryDelay:          s.RetryDelay,
		ReceiptPolls:        s.ReceiptPolls,
		ReceiptPollInterval: s.ReceiptInterval,
	}
}

// ChainIDBig returns nil when the chain id should be read from the node.
func (s *Settings) ChainIDBig() *big.Int {
	if s.ChainID <= 0 {
		return nil
	}
	return big.NewInt(s.ChainID)
}
