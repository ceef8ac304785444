// claude-notify - stacking desktop alerts for finished agent tasks
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-notify

package main

import (
	"os"

	"github.com/ariel-frischer/claude-notify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
