package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/ligun0805/epoch-claimer/internal/config"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts config.Settings
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	a := &app{ctx: ctx, opts: &opts}
	run := &runCommand{app: a}
	mustAddCommand(parser, "run", "Run the claim daemon (default)", "Evaluates every account and claims when eligible, forever.", run)
	mustAddCommand(parser, "check", "Evaluate all accounts once", "Prints the on-chain claim state of every account without sending transactions.", &checkCommand{app: a})
	mustAddCommand(parser, "history", "Print the claim journal", "Lists recorded claim submissions, oldest first.", &historyCommand{app: a})

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if parser.Active == nil {
		if err := run.Execute(nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func mustAddCommand(p *flags.Parser, name, short, long string, data any) {
	if _, err := p.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}
