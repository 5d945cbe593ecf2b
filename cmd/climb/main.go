// Command climb runs the hill-climbing engine on one of the bundled problems
// and prints the final best score.
//
//	climb phrase "Hello, world!"
//	climb onemax --size 10000
//	climb onemax --config climb.yaml --verbose
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
