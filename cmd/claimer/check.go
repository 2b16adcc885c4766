package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/ligun0805/epoch-claimer/internal/config"
	"github.com/ligun0805/epoch-claimer/internal/eligibility"
	"github.com/ligun0805/epoch-claimer/internal/metrics"
	"github.com/ligun0805/epoch-claimer/internal/model"
)

type checkCommand struct {
	app *app
}

func (c *checkCommand) Execute(_ []string) error {
	opts := c.app.opts
	logger, cleanup, err := c.app.start()
	if err != nil {
		return err
	}
	defer cleanup()

	accounts, err := config.LoadAccounts(opts.AccountsFile)
	if err != nil {
		logger.Fatal("failed to load accounts", zap.String("file", opts.AccountsFile), zap.Error(err))
	}
	client, _, closeClient, err := c.app.connect(logger)
	if err != nil {
		logger.Fatal("failed to connect", zap.String("rpc", opts.RPCURL), zap.Error(err))
	}
	defer closeClient()

	evaluator := eligibility.NewEvaluator(client, metrics.NewEligibility(), logger.Named("eligibility"), opts.ReadDelay())
	rows := make([]checkRow, 0, len(accounts))
	for _, acct := range accounts {
		d, err := evaluator.Evaluate(c.app.ctx, acct.Address)
		if c.app.ctx.Err() != nil {
			return c.app.ctx.Err()
		}
		rows = append(rows, checkRow{acct: acct, decision: d, err: err})
	}
	return writeCheckTable(os.Stdout, rows)
}

type checkRow struct {
	acct     model.Account
	decision eligibility.Decision
	err      error
}

func writeCheckTable(out io.Writer, rows []checkRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WALLET\tGENESIS\tEPOCH\tEPOCH CLAIMED\tBUFFER\tELIGIBLE\tREASON")
	for _, r := range rows {
		if r.err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\tno\terror: %v\n", r.acct.Address.Hex(), r.err)
			continue
		}
		s := r.decision.State
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.acct.Address.Hex(),
			yesNo(s.GenesisClaimed),
			s.Epoch.String(),
			yesNo(s.CurrentEpochClaimed),
			formatEther(s.BufferAmount),
			yesNo(r.decision.Eligible),
			r.decision.Reason,
		)
	}
	return w.Flush()
}
