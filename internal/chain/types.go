package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend is the subset of *ethclient.Client the reward client needs.
	Backend interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
		SendTransaction(ctx context.Context, tx *types.Transaction) error
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		ChainID(ctx context.Context) (*big.Int, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
