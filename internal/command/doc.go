// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the irdiff CLI. It wires flags, validators and the
// action that turns a baseline and a pass dump into a report.
package command
