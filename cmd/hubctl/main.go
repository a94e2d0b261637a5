// Package main is the entry point for the hubctl CLI.
//
// hubctl provisions Azure IoT Hubs interactively, keeps the active
// hub connection string in local configuration, and generates
// time-limited shared access tokens for the hub or for individual
// devices.
//
// For detailed usage information, run:
//
//	hubctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/hubctl/cmd/hubctl/commands"
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
