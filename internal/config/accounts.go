package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ligun0805/epoch-claimer/internal/model"
	"github.com/ligun0805/epoch-claimer/internal/wallet"
)

var (
	ErrNoAccounts      = errors.New("no accounts in config")
	ErrMissingAccounts = errors.New("config is missing the accounts field")
)

type accountsFile struct {
	Accounts *[]accountEntry `json:"accounts"`
}

type accountEntry struct {
	WalletAddress string `json:"wallet_address"`
	PrivateKey    string `json:"private_key"`
}

// LoadAccounts reads {"accounts":[{"wallet_address","private_key"}]} from path.
// Any problem with the file or with a single entry is an error.
func LoadAccounts(path string) ([]model.Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	return ParseAccounts(raw)
}

// ParseAccounts decodes the accounts JSON document.
func ParseAccounts(raw []byte) ([]model.Account, error) {
	var f accountsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("malformed accounts file: %w", err)
	}
	if f.Accounts == nil {
		return nil, ErrMissingAccounts
	}
	if len(*f.Accounts) == 0 {
		return nil, ErrNoAccounts
	}

	out := make([]model.Account, 0, len(*f.Accounts))
	seen := make(map[string]int, len(*f.Accounts))
	for i, e := range *f.Accounts {
		acct, err := wallet.NewAccount(e.PrivateKey, e.WalletAddress)
		if err != nil {
			return nil, fmt.Errorf("account #%d: %w", i+1, err)
		}
		if j, dup := seen[acct.Address.Hex()]; dup {
			return nil, fmt.Errorf("account #%d: duplicate of account #%d (%s)", i+1, j, acct.Address.Hex())
		}
		seen[acct.Address.Hex()] = i + 1
		out = append(out, acct)
	}
	return out, nil
}
