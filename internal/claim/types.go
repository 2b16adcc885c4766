package claim

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Chain is the slice of the reward client the submitter drives.
	Chain interface {
		PendingNonce(ctx context.Context, wallet common.Address) (uint64, error)
		GasPrice(ctx context.Context) (*big.Int, error)
		EstimateClaimGas(ctx context.Context, wallet common.Address, gasPrice *big.Int) (uint64, error)
		NewClaimTx(nonce uint64, gasPrice *big.Int, gasLimit uint64) *types.Transaction
		SignTx(ctx context.Context, tx *types.Transaction, key *ecdsa.PrivateKey) (*types.Transaction, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
		RewardAmount(receipt *types.Receipt, wallet common.Address) *big.Int
	}
	Metrics interface {
		ObserveAttempt(outcome string)
		ObserveSubmission(err error, started time.Time)
	}
)
