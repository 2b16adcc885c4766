package eligibility

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ligun0805/epoch-claimer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StateReader interface {
		GenesisClaimStatus(ctx context.Context, wallet common.Address) (bool, error)
		CurrentEpoch(ctx context.Context) (*big.Int, error)
		ClaimStatus(ctx context.Context, wallet common.Address, epoch *big.Int) (model.ClaimRecord, error)
	}
	Metrics interface {
		ObserveDecision(eligible bool, err error)
	}
)
