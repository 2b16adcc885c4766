package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ligun0805/epoch-claimer/internal/config"
	"github.com/ligun0805/epoch-claimer/internal/model"
	"github.com/ligun0805/epoch-claimer/internal/wallet"
)

func printConfig(w io.Writer, cfg *config.Settings, chainID *big.Int, accounts []model.Account) {
	fmt.Fprintln(w, "=== CONFIG ===")
	fmt.Fprintln(w, "RPC_URL           :", cfg.RPCURL)
	fmt.Fprintln(w, "CHAIN_ID          :", chainID.String())
	fmt.Fprintln(w, "REWARD_CONTRACT   :", cfg.RewardContract)
	fmt.Fprintln(w, "TOKEN_CONTRACT    :", cfg.TokenContract)
	fmt.Fprintln(w, "ACCOUNTS_FILE     :", cfg.AccountsFile)
	fmt.Fprintln(w, "  -> accounts     :", len(accounts))
	for i, a := range accounts {
		fmt.Fprintf(w, "     #%-3d %s\n", i+1, a.Address.Hex())
	}
	fmt.Fprintln(w, "Pass interval     :", cfg.PassIntervalMin, "-", cfg.PassIntervalMax)
	fmt.Fprintln(w, "Max attempts      :", cfg.MaxAttempts)
	fmt.Fprintln(w, "Gas escalation    :", cfg.GasEscalation)
	fmt.Fprintln(w, "Concurrency       :", cfg.Concurrency)
	if cfg.JournalDir != "" {
		fmt.Fprintln(w, "Journal           :", cfg.JournalDir)
	}
	if cfg.SentryDSN != "" {
		fmt.Fprintln(w, "SENTRY_DSN        :", wallet.Mask(cfg.SentryDSN))
	}
	fmt.Fprintln(w, "==============")
}
