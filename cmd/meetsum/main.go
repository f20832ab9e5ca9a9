// Command meetsum runs the meeting summary API server and its maintenance
// tasks.
//
// Usage:
//
//	meetsum serve
//	meetsum migrate
//	meetsum cleanup-tokens
//	meetsum meetings list --email dana@example.com
//
// Configuration comes from --config (or CONFIG_PATH) and the environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
