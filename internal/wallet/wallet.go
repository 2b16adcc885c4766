package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/ligun0805/epoch-claimer/internal/model"
)

var ErrEmptyKey = errors.New("empty private key")

// Parse hex ECDSA private key (with / without 0x).
func ParseKey(s string) (*ecdsa.PrivateKey, error) {
	h := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if len(h) == 0 {
		return nil, ErrEmptyKey
	}
	return gethcrypto.HexToECDSA(h)
}

// NewAccount derives the account from a hex key. When expected is not empty it
// must match the derived address.
func NewAccount(keyHex, expected string) (model.Account, error) {
	prv, err := ParseKey(keyHex)
	if err != nil {
		return model.Account{}, fmt.Errorf("parse private key: %w", err)
	}
	addr := gethcrypto.PubkeyToAddress(prv.PublicKey)

	expected = strings.TrimSpace(expected)
	if expected != "" {
		if !common.IsHexAddress(expected) {
			return model.Account{}, fmt.Errorf("bad wallet address %q", expected)
		}
		if common.HexToAddress(expected) != addr {
			return model.Account{}, fmt.Errorf("wallet address %s does not match key (derived %s)", expected, addr.Hex())
		}
	}
	return model.Account{Address: addr, Key: prv}, nil
}

// Mask hides the middle of a secret for log output.
func Mask(h string) string {
	h = strings.TrimSpace(h)
	if len(h) <= 10 {
		return "***"
	}
	return h[:6] + "…" + h[len(h)-4:]
}
