package claim

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// State is a step of the submission state machine.
type State int

const (
	StateBuild State = iota
	StateSign
	StateSend
	StateConfirm
	StateSuccess
	StateFailed
	StateRetry
)

func (s State) String() string {
	switch s {
	case StateBuild:
		return "BUILD"
	case StateSign:
		return "SIGN"
	case StateSend:
		return "SEND"
	case StateConfirm:
		return "CONFIRM"
	case StateSuccess:
		return "SUCCESS"
	case StateFailed:
		return "FAILED"
	case StateRetry:
		return "RETRY"
	default:
		return "UNKNOWN"
	}
}

// OutcomeKind is how a single attempt resolved.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailed
	OutcomeRetry
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Outcome is the resolution of one build/sign/send/confirm attempt.
// For OutcomeRetry, GasPrice and Nonce hold the escalated values for the next attempt.
type Outcome struct {
	Kind     OutcomeKind
	Err      error
	GasPrice *big.Int
	Nonce    uint64
	TxHash   common.Hash
	Receipt  *types.Receipt
}

// Result summarizes a whole Submit call.
type Result struct {
	Success  bool
	TxHash   common.Hash
	Attempts int
	GasPrice *big.Int
	Nonce    uint64
	Receipt  *types.Receipt
	Reward   *big.Int
	Reason   string
}
