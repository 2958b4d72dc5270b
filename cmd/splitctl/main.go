// Package main is the entry point for the splitctl CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/splitledger/cmd/splitctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
