package claim

import (
	"math/big"
	"strings"
	"time"
)

// Policy bounds the submission retries.
type Policy struct {
	MaxAttempts         int
	Escalation          *big.Rat
	RetryDelay          time.Duration
	ReceiptPolls        int
	ReceiptPollInterval time.Duration
}

// DefaultPolicy: 15 attempts, gas x3.2 per collision, 5s between attempts,
// receipt polled 30 times every 2s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:         15,
		Escalation:          big.NewRat(16, 5),
		RetryDelay:          5 * time.Second,
		ReceiptPolls:        30,
		ReceiptPollInterval: 2 * time.Second,
	}
}

func (p Policy) withDefaults() Policy {
	d := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if p.Escalation == nil || p.Escalation.Sign() <= 0 {
		p.Escalation = d.Escalation
	}
	if p.RetryDelay < 0 {
		p.RetryDelay = d.RetryDelay
	}
	if p.ReceiptPolls <= 0 {
		p.ReceiptPolls = d.ReceiptPolls
	}
	if p.ReceiptPollInterval < 0 {
		p.ReceiptPollInterval = d.ReceiptPollInterval
	}
	return p
}

// Escalate returns ceil(gasPrice * Escalation) and nonce+1.
func (p Policy) Escalate(gasPrice *big.Int, nonce uint64) (*big.Int, uint64) {
	factor := p.Escalation
	if factor == nil {
		factor = DefaultPolicy().Escalation
	}
	num := new(big.Int).Mul(gasPrice, factor.Num())
	den := factor.Denom()
	q, m := new(big.Int).QuoRem(num, den, new(big.Int))
	if m.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q, nonce + 1
}

var collisionMarkers = []string{
	"already known",
	"already_exists",
	"replacement transaction underpriced",
}

// IsCollision reports whether a send error means a transaction with the same
// nonce is already pending (duplicate or underpriced replacement).
func IsCollision(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	for _, m := range collisionMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
