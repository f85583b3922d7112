// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/irdiff/internal/config"
	"github.com/tfctl/irdiff/internal/grouper"
	"github.com/tfctl/irdiff/internal/log"
	"github.com/tfctl/irdiff/internal/meta"
	"github.com/tfctl/irdiff/internal/output"
	"github.com/tfctl/irdiff/internal/report"
	"github.com/tfctl/irdiff/internal/segment"
)

// ErrUsage is returned when the command was not given exactly two files. The
// usage text has already been printed.
var ErrUsage = errors.New("usage")

const usageText = `
Usage:
   irdiff [flags] input.mlir after_all.mlir

Where:
   1) input.mlir
      is the input IR (which passes ran on)
   2) after_all.mlir
      is the dump from running the MLIR passes with flags:
       --mlir-print-ir-after-all
       --mlir-print-ir-module-scope
       --mlir-disable-threading
`

// diffCommandAction is the action handler of the root command. It segments
// the dump, builds the report and writes it to stdout.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", cmd.Args().Slice())

	if ShortCircuitTLDR(ctx, cmd) || DumpSchemaIfRequested(cmd) {
		return nil
	}

	if cmd.Args().Len() != 2 {
		fmt.Fprint(meta.Stdout, usageText)
		return ErrUsage
	}

	snaps, truncated, err := loadSnapshots(cmd.Args().Get(0), cmd.Args().Get(1), segment.Options{
		Marker:        segment.DefaultMarker,
		MaxLineLength: limitSetting(cmd, "max-line-length"),
	})
	if err != nil {
		return err
	}
	if truncated != nil {
		fmt.Fprintf(meta.Stderr, "irdiff: %v; reporting the passes read so far\n", truncated)
	}

	opts := report.Options{
		Grouping: grouper.Options{
			Enabled: cmd.Bool("group"),
			Cleanup: grouper.NewSet(cleanupPasses(cmd)...),
		},
		MaxLines: limitSetting(cmd, "max-lines"),
	}
	if opts.Grouping.Enabled {
		log.Debugf("grouping enabled: cleanup=%v", opts.Grouping.Cleanup.Names())
	}

	r := report.Build(snaps, opts)
	r.Truncated = truncated != nil

	format := cmd.String("output")
	style := output.PlainStyle()
	if cmd.Bool("color") && isTerminal(meta.Stdout) {
		style = output.ColorStyle()
	}

	if format == "text" {
		fmt.Fprintln(meta.Stdout, output.Summary(r))
	}

	return output.Write(meta.Stdout, r, format, style)
}

// loadSnapshots opens both inputs and segments them. A dump that stops
// decoding is not an error; the *segment.DecodeError comes back as truncated
// alongside the partial snapshots.
func loadSnapshots(baselinePath string, dumpPath string, opts segment.Options) ([]segment.Snapshot, *segment.DecodeError, error) {
	baseline, err := os.Open(baselinePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input IR: %w", err)
	}
	defer baseline.Close()

	dump, err := os.Open(dumpPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open pass dump: %w", err)
	}
	defer dump.Close()

	snaps, err := segment.Load(baseline, dump, opts)

	var decodeErr *segment.DecodeError
	if errors.As(err, &decodeErr) {
		return snaps, decodeErr, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return snaps, nil, nil
}

// cleanupPasses resolves the cleanup set: --cleanup, then the "cleanup" list in
// the config file, then the built-in default.
func cleanupPasses(cmd *cli.Command) []string {
	if v := cmd.String("cleanup"); v != "" {
		return splitList(v)
	}

	names, err := config.GetStringSlice("cleanup", grouper.DefaultCleanup)
	if err != nil {
		log.Warnf("ignoring config cleanup list: %v", err)
		return grouper.DefaultCleanup
	}
	return names
}

// limitSetting resolves a numeric limit: the flag or its top-level config key,
// then the same key under "limits" in the config file, then the flag default.
func limitSetting(cmd *cli.Command, name string) int {
	if cmd.IsSet(name) {
		return cmd.Int(name)
	}

	v, err := config.GetInt("limits."+name, cmd.Int(name))
	if err != nil || v < 0 {
		log.Warnf("ignoring config limits.%s: value=%v err=%v", name, v, err)
		return cmd.Int(name)
	}
	return v
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// diffCommandBuilder constructs the root command.
func diffCommandBuilder(meta meta.Meta, cfgPath string) *cli.Command {
	return &cli.Command{
		Name:      "irdiff",
		Usage:     "noise-reduced diff across IR dumps of successive compiler passes",
		UsageText: "irdiff [flags] input.mlir after_all.mlir",
		Metadata:  map[string]any{"meta": meta},
		Flags:     NewDiffFlags(cfgPath),
		Action:    diffCommandAction,
	}
}
