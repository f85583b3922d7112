// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/irdiff/internal/config"
	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/meta"
)

// InitApp builds the irdiff command. The config file named by --config, or
// found in the standard locations, is loaded first so it can back flag
// defaults.
func InitApp(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) (*cli.Command, error) {
	cfgPath := ConfigPathFromArgs(args)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		if cfgPath != "" {
			return nil, err
		}
		// No config file in the standard locations is fine.
		log.Debugf("no config loaded: err=%v", err)
	} else {
		log.Debugf("config loaded: source=%s", config.Source())
	}

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	app := diffCommandBuilder(meta, cfg.Source)
	app.Writer = stdout
	app.ErrWriter = stderr

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
