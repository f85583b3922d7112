// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/irdiff/internal/command"
	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(w io.Writer, args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stdout io.Writer, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app init failed")
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		// Usage was already printed.
		if errors.Is(err, command.ErrUsage) {
			return 1
		}
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app run failed")
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(os.Stdout, args) {
		return 0
	}

	return initAndRunApp(args, os.Stdout, os.Stderr)
}
