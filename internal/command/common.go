// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/irdiff/internal/meta"
	"github.com/tfctl/irdiff/internal/output"
)

// DumpSchemaIfRequested writes the report field list to stdout when --schema
// is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(GetMeta(cmd).Stdout)
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value with os.Stdout and
// os.Stderr as writers.
func GetMeta(cmd *cli.Command) meta.Meta {
	m := meta.Meta{}
	if cmd != nil && cmd.Metadata != nil {
		if mm, ok := cmd.Metadata["meta"].(meta.Meta); ok {
			m = mm
		}
	}
	if m.Stdout == nil {
		m.Stdout = os.Stdout
	}
	if m.Stderr == nil {
		m.Stderr = os.Stderr
	}
	return m
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr irdiff` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			m := GetMeta(cmd)
			c := exec.CommandContext(ctx, "tldr", "irdiff")
			c.Stdout = m.Stdout
			c.Stderr = m.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
