package runner

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ligun0805/epoch-claimer/internal/claim"
	"github.com/ligun0805/epoch-claimer/internal/eligibility"
	"github.com/ligun0805/epoch-claimer/internal/journal"
	"github.com/ligun0805/epoch-claimer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Evaluator interface {
		Evaluate(ctx context.Context, wallet common.Address) (eligibility.Decision, error)
	}
	Submitter interface {
		Submit(ctx context.Context, acct model.Account) (claim.Result, error)
	}
	Journal interface {
		Record(ctx context.Context, e journal.Entry) error
	}
	Reporter interface {
		Report(ctx context.Context, err error, tags map[string]string)
	}
	Metrics interface {
		ObservePass(err error, accounts int, started time.Time)
		ObserveAccount(status string)
	}
)
