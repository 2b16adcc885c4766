// Package model holds the domain types shared by the claimer packages.
package model

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Account is a configured wallet. It is immutable after startup.
type Account struct {
	Address common.Address
	Key     *ecdsa.PrivateKey
}

// ClaimRecord is the per-epoch claim entry stored by the reward contract.
type ClaimRecord struct {
	BufferAmount *big.Int
	Claimed      bool
}

// ClaimState is the freshly read on-chain claim state of one wallet.
type ClaimState struct {
	GenesisClaimed      bool
	Epoch               *big.Int
	CurrentEpochClaimed bool
	BufferAmount        *big.Int
}

// Eligible reports whether a claim may be attempted: a wallet that never did its
// genesis claim is always eligible, otherwise only while the current epoch is unclaimed.
func (s ClaimState) Eligible() bool {
	return !s.GenesisClaimed || !s.CurrentEpochClaimed
}
