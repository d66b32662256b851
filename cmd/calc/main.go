// Command calc is the interactive calculator.
//
//	calc              one expression per line, with history and memory
//	calc -mode operands
//	                  prompts for a number, an operator and a second number
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/console"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/session"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	modeName := flag.String("mode", string(console.ModeExpression), "input mode: expr or operands")
	history := flag.Int("history", cfg.HistoryLimit, "number of history entries to keep")
	flag.Parse()

	mode, err := console.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, session.New(session.WithHistoryLimit(*history)), logger)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, mode) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		// The reader may be blocked on stdin; leave it behind.
		fmt.Fprintln(os.Stdout)
	}
	if err != nil {
		logger.Error("console failed", zap.Error(err))
		os.Exit(1)
	}
}
