// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle and routes the command line ("create" or "view <link>") to the
// right flow.
package client
