// Package journal keeps an append-only badger log of claim submissions.
// It is an audit trail only; eligibility is always read from the chain.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
)

const keyPrefix = "claim/"

// Entry is one recorded submission.
type Entry struct {
	PassID   string         `json:"pass_id"`
	Wallet   common.Address `json:"wallet"`
	Epoch    string         `json:"epoch"`
	Success  bool           `json:"success"`
	TxHash   string         `json:"tx_hash,omitempty"`
	Attempts int            `json:"attempts"`
	GasPrice string         `json:"gas_price,omitempty"`
	Nonce    uint64         `json:"nonce"`
	Reward   string         `json:"reward,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	At       time.Time      `json:"at"`
}

// Store is a badger-backed journal.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the journal in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a journal that lives only for the process lifetime.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends e. A zero At is set to the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	key := entryKey(e.Wallet, e.At)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, val))
	})
	if err != nil {
		return fmt.Errorf("write journal entry: %w", err)
	}
	return nil
}

// List returns entries oldest first. A nil wallet lists every wallet; limit <= 0
// means no limit and otherwise keeps the newest limit entries.
func (s *Store) List(ctx context.Context, wallet *common.Address, limit int) ([]Entry, error) {
	prefix := []byte(keyPrefix)
	if wallet != nil {
		prefix = walletPrefix(*wallet)
	}

	var out []Entry
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var e Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func walletPrefix(wallet common.Address) []byte {
	return []byte(keyPrefix + strings.ToLower(wallet.Hex()) + "/")
}

// claim/<wallet>/<zero padded unix nanos>
func entryKey(wallet common.Address, at time.Time) []byte {
	return append(walletPrefix(wallet), []byte(fmt.Sprintf("%020d", at.UnixNano()))...)
}
