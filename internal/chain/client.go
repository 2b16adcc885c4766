// Package chain talks to the epoch reward contract over a go-ethereum backend.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ligun0805/epoch-claimer/internal/model"
	"github.com/ligun0805/epoch-claimer/internal/retry"
)

// Config describes the contracts and pacing of a Client.
type Config struct {
	RewardContract common.Address
	TokenContract  common.Address
	// ChainID of zero or nil is resolved from the node on first use.
	ChainID *big.Int
	// RateLimit is the number of RPC requests per second; zero disables pacing.
	RateLimit float64
	Retry     retry.Config
}

// Client exposes the reward contract operations used by the claimer.
type Client struct {
	backend Backend
	cfg     Config
	metrics Metrics
	logger  *zap.Logger
	limiter *rate.Limiter

	mu      sync.Mutex
	chainID *big.Int
}

// NewClient wraps backend. metrics may be nil.
func NewClient(backend Backend, cfg Config, metrics Metrics, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.DefaultConfig()
	}
	c := &Client{
		backend: backend,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if cfg.ChainID != nil && cfg.ChainID.Sign() > 0 {
		c.chainID = new(big.Int).Set(cfg.ChainID)
	}
	return c
}

// Dial connects to an HTTP(S) JSON-RPC endpoint with a bounded request timeout.
func Dial(rpcURL string, timeout time.Duration) (*ethclient.Client, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	rpcClient, err := rpc.DialHTTPWithClient(rpcURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}
	return ethclient.NewClient(rpcClient), nil
}

// RewardContract returns the configured reward contract address.
func (c *Client) RewardContract() common.Address {
	return c.cfg.RewardContract
}

// GenesisClaimStatus reports whether wallet already claimed its genesis reward.
func (c *Client) GenesisClaimStatus(ctx context.Context, wallet common.Address) (bool, error) {
	out, err := c.call(ctx, methodGenesisClaimStatus, wallet)
	if err != nil {
		return false, err
	}
	claimed, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("%s: unexpected output %T", methodGenesisClaimStatus, out[0])
	}
	return claimed, nil
}

// CurrentEpoch returns the contract's current epoch.
func (c *Client) CurrentEpoch(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, methodCurrentEpoch)
	if err != nil {
		return nil, err
	}
	epoch, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output %T", methodCurrentEpoch, out[0])
	}
	return epoch, nil
}

// ClaimStatus returns the claim record of wallet for epoch.
func (c *Client) ClaimStatus(ctx context.Context, wallet common.Address, epoch *big.Int) (model.ClaimRecord, error) {
	out, err := c.call(ctx, methodClaimStatus, wallet, epoch)
	if err != nil {
		return model.ClaimRecord{}, err
	}
	if len(out) != 2 {
		return model.ClaimRecord{}, fmt.Errorf("%s: expected 2 outputs, got %d", methodClaimStatus, len(out))
	}
	buffer, ok1 := out[0].(*big.Int)
	claimed, ok2 := out[1].(bool)
	if !ok1 || !ok2 {
		return model.ClaimRecord{}, fmt.Errorf("%s: unexpected outputs %T, %T", methodClaimStatus, out[0], out[1])
	}
	return model.ClaimRecord{BufferAmount: buffer, Claimed: claimed}, nil
}

func (c *Client) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := rewardABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	to := c.cfg.RewardContract
	msg := ethereum.CallMsg{To: &to, Data: data}

	var ret []byte
	err = c.read(ctx, "eth_call."+method, func() error {
		var callErr error
		ret, callErr = c.backend.CallContract(ctx, msg, nil)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	out, err := rewardABI.Unpack(method, ret)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return out, nil
}

// PendingNonce returns the next nonce of wallet including pending transactions.
func (c *Client) PendingNonce(ctx context.Context, wallet common.Address) (uint64, error) {
	var nonce uint64
	err := c.read(ctx, "eth_getTransactionCount", func() error {
		var err error
		nonce, err = c.backend.PendingNonceAt(ctx, wallet)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("pending nonce: %w", err)
	}
	return nonce, nil
}

// GasPrice returns the node's suggested legacy gas price.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var price *big.Int
	err := c.read(ctx, "eth_gasPrice", func() error {
		var err error
		price, err = c.backend.SuggestGasPrice(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gas price: %w", err)
	}
	return price, nil
}

// EstimateClaimGas estimates gas of claimReward() sent by wallet at gasPrice.
func (c *Client) EstimateClaimGas(ctx context.Context, wallet common.Address, gasPrice *big.Int) (uint64, error) {
	to := c.cfg.RewardContract
	msg := ethereum.CallMsg{
		From:     wallet,
		To:       &to,
		GasPrice: gasPrice,
		Value:    big.NewInt(0),
		Data:     ClaimRewardData(),
	}
	var gas uint64
	err := c.read(ctx, "eth_estimateGas", func() error {
		var err error
		gas, err = c.backend.EstimateGas(ctx, msg)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, nil
}

// NewClaimTx builds an unsigned legacy claimReward() transaction.
func (c *Client) NewClaimTx(nonce uint64, gasPrice *big.Int, gasLimit uint64) *types.Transaction {
	to := c.cfg.RewardContract
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: new(big.Int).Set(gasPrice),
		Gas:      gasLimit,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     ClaimRewardData(),
	})
}

// SignTx signs tx with the latest signer for the client's chain id.
func (c *Client) SignTx(ctx context.Context, tx *types.Transaction, key *ecdsa.PrivateKey) (*types.Transaction, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	signer := types.LatestSignerForChainID(chainID)
	signed, err := types.SignTx(tx, signer, key)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	return signed, nil
}

// SendTransaction broadcasts a signed transaction. Send errors are returned
// unwrapped by retry so callers can classify them.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	started := time.Now()
	err := c.backend.SendTransaction(ctx, tx)
	c.observe("eth_sendRawTransaction", err, started)
	return err
}

// TransactionReceipt returns the receipt of hash, or nil when it is not mined yet.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.read(ctx, "eth_getTransactionReceipt", func() error {
		var err error
		receipt, err = c.backend.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			receipt = nil
			return nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("receipt %s: %w", hash.Hex(), err)
	}
	return receipt, nil
}

// RewardAmount sums the token Transfer logs paid to wallet in receipt.
func (c *Client) RewardAmount(receipt *types.Receipt, wallet common.Address) *big.Int {
	total := new(big.Int)
	if receipt == nil {
		return total
	}
	want := addressTopic(wallet)
	for _, l := range receipt.Logs {
		if l == nil || l.Address != c.cfg.TokenContract {
			continue
		}
		if len(l.Topics) != 3 || l.Topics[0] != transferTopic || l.Topics[2] != want {
			continue
		}
		total.Add(total, new(big.Int).SetBytes(l.Data))
	}
	return total
}

// ChainID returns the configured chain id or asks the node once.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}
	var id *big.Int
	err := c.read(ctx, "eth_chainId", func() error {
		var err error
		id, err = c.backend.ChainID(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	c.chainID = id
	return id, nil
}

// read paces, retries and observes a single RPC read.
func (c *Client) read(ctx context.Context, op string, fn func() error) error {
	return retry.Do(ctx, c.cfg.Retry, func() error {
		if err := c.wait(ctx); err != nil {
			return err
		}
		started := time.Now()
		err := fn()
		c.observe(op, err, started)
		if err != nil && retry.IsRetryable(err) {
			c.logger.Debug("transient rpc error", zap.String("op", op), zap.Error(err))
		}
		return err
	})
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) observe(op string, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(op, err, started)
}
