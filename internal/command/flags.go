// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/irdiff/internal/differ"
	"github.com/tfctl/irdiff/internal/segment"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the fields of the json/yaml report",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

// NewDiffFlags builds the flags of the diff command. cfgPath is the YAML config
// file that backs flag defaults; it may be empty.
func NewDiffFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cleanup",
			Usage: "comma-separated cleanup pass names folded into the preceding pass by --group",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output when stdout is a terminal",
			Value:   false,
			Sources: ValueChainFromConfigFile("color", cfgPath),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file providing flag defaults",
			Value: cfgPath,
		},
		&cli.BoolFlag{
			Name:    "group",
			Aliases: []string{"g"},
			Usage:   "report cleanup passes together with the pass before them",
			Value:   false,
			Sources: ValueChainFromConfigFile("group", cfgPath),
		},
		&cli.IntFlag{
			Name:    "max-line-length",
			Usage:   "truncate IR lines longer than this; 0 disables",
			Value:   segment.DefaultMaxLineLength,
			Sources: ValueChainFromConfigFile("max-line-length", cfgPath),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.IntFlag{
			Name:    "max-lines",
			Usage:   "stop diffing once this many body lines were processed; 0 disables",
			Value:   differ.DefaultMaxLines,
			Sources: ValueChainFromConfigFile("max-lines", cfgPath),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: ValueChainFromConfigFile("output", cfgPath),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		schemaFlag,
		tldrFlag,
	}
}

// ValueChainFromConfigFile returns a source chain that reads key from the YAML
// file at path. An empty path yields an empty chain.
func ValueChainFromConfigFile(key string, path string) cli.ValueSourceChain {
	if path == "" {
		return cli.ValueSourceChain{}
	}
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.StringSourcer(path)))
}

// ConfigPathFromArgs finds a --config value in args before flags are parsed,
// so the file can back flag defaults.
func ConfigPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "--":
			return ""
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case a == "--config" && i+1 < len(args):
			return args[i+1]
		}
	}
	return ""
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pathHas checks if the given executable is on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
