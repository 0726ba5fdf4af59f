// Package main is the entry point for the bcce-onboard CLI.
//
// bcce-onboard provisions enterprise developers for BCCE: a Cognito
// identity in the right department group, a personal workflow bucket,
// an encryption key, a log group, and an individual cost budget, plus
// the local configuration files the developer needs to get started.
//
// Commands: onboard, init, doctor, budgets, scenarios.
//
// For detailed usage information, run:
//
//	bcce-onboard --help
package main

import (
	"fmt"
	"os"

	"github.com/bcce/onboard/cmd/bcce-onboard/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
