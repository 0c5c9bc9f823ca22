// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bookshelf command-line client.
//
// It wires the cobra command tree to an [adapter.ServerAdapter] and prints
// every result as indented JSON on stdout. Logs go to stderr.
package client
