package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ligun0805/epoch-claimer/internal/journal"
)

type historyCommand struct {
	app *app

	Wallet string `long:"wallet" description:"only entries of this wallet"`
	Limit  int    `long:"limit" description:"newest N entries, 0 for all" default:"50"`
}

func (c *historyCommand) Execute(_ []string) error {
	opts := c.app.opts
	if opts.JournalDir == "" {
		return errors.New("journal is disabled (empty --journal-dir)")
	}
	var filter *common.Address
	if c.Wallet != "" {
		if !common.IsHexAddress(c.Wallet) {
			return fmt.Errorf("bad wallet address %q", c.Wallet)
		}
		addr := common.HexToAddress(c.Wallet)
		filter = &addr
	}

	store, err := journal.Open(opts.JournalDir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(c.app.ctx, filter, c.Limit)
	if err != nil {
		return err
	}
	return writeHistoryTable(os.Stdout, entries)
}

func writeHistoryTable(out io.Writer, entries []journal.Entry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tWALLET\tEPOCH\tRESULT\tATTEMPTS\tNONCE\tGAS (gwei)\tREWARD\tTX / REASON")
	for _, e := range entries {
		result, detail := "failed", e.Reason
		if e.Success {
			result, detail = "claimed", e.TxHash
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			e.At.Local().Format(time.DateTime),
			e.Wallet.Hex(),
			e.Epoch,
			result,
			e.Attempts,
			e.Nonce,
			gweiString(e.GasPrice),
			formatEtherString(e.Reward),
			detail,
		)
	}
	return w.Flush()
}
