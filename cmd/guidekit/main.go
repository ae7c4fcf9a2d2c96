package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/guidekit/internal/cli"
	gkerrors "github.com/matzehuels/guidekit/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes bad input (2) from other failures (1).
func exitCode(err error) int {
	if gkerrors.IsInvalid(err) || gkerrors.Is(err, gkerrors.ErrCodeFileNotFound) {
		return 2
	}
	return 1
}
