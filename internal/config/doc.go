// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for irdiff's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/irdiff.yaml or $HOME/.config/irdiff.yaml
//   - macOS: $HOME/Library/Application Support/irdiff.yaml
//   - Windows: %APPDATA%/irdiff.yaml
//
// IRDIFF_CFG_FILE, or the --config flag, overrides the location.
package config
