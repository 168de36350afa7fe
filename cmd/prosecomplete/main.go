// Copyright 2025 The Prose-Complete Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the prose completion server and CLI [DBG] application.

Prose-Complete keeps a vocabulary of words and phrases in a prefix tree and
answers "what could this be completed to" with a short, sorted, de-cluttered
list: among the matches only those that are not extensions of another match
are kept, so "cat" hides "catalog" but "car" and "cat" both survive.

# Usage

Serve completions to an editor over stdin/stdout:

	prosecomplete serve

Use a custom word list and enable debug logs:

	prosecomplete serve --words ~/notes/prose.words --debug

Try the vocabulary interactively or answer a single query:

	prosecomplete repl
	prosecomplete lookup ca

# Vocabulary

A vocabulary file is plain UTF-8 text, one entry per line. Entries may contain
spaces. Empty lines are skipped. Without --words the built-in English list is
used.

# Configuration

Runtime configuration is read from a TOML file, created with defaults when
missing:

	[index]
	backend = "patricia"

	[query]
	limit = 1000
	policy = "always"

	[server]
	format = "msgpack"
	max_query = 256

	[cli]
	min_len = 1
	max_len = 64
	no_filter = false

Invalid sections fall back to their defaults with a warning.

# IPC Protocol

See package server for the message shapes. Logs always go to stderr.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const (
	Version = "1.0.0"
	AppName = "prosecomplete"
	gh      = "https://github.com/bastiangx/prosecomplete"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	if err := NewRootCmd(Version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}
