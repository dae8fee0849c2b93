// Command keybench times the key matching strategies of jrpcdec against a large response.
//
// Usage:
//
//	keybench run [--input corpus.json] [--iterations 1000] [--rounds 0] [--strategies key,cow]
//	keybench gen [--fields 35650] [--output corpus.json]
//	keybench strategies
//
// Every run flag can also be set in a YAML config file passed with --config, or through
// KEYBENCH_* environment variables, e.g. KEYBENCH_GENERATE_FIELDS=1000.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("keybench failed")
		return 1
	}

	return 0
}
