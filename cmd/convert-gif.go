package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	cmdgif "github.com/jlrickert/cmd-convert-gif"
	"github.com/jlrickert/cmd-convert-gif/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	logger.SetLogger(logger.FromEnv())
	err := cmdgif.Run(ctx, os.Args)
	if err != nil {
		var uerr *cmdgif.UsageError
		if !errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		cancel()
		os.Exit(cmdgif.ExitCode(err))
	}

}
