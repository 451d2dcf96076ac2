// Command intercomctl is a local control and diagnostics tool for an
// intercom mixing core: it validates topology configuration, runs one-shot
// smoke ticks, applies routing matrix updates from a file, and renders a
// snapshot dashboard. It does not run a daemon or open any network port;
// every subcommand constructs its own in-process Core.
package main

import (
	"fmt"
	"os"

	"github.com/agh-skylink/intercom/cmd/intercomctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "intercomctl:", err)
		os.Exit(1)
	}
}
