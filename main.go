// inflation computes and projects the amount minted in every accounting era.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/socialnetwork/go-inflation/cmd"
	"github.com/socialnetwork/go-inflation/log"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch

	// os.Interrupt for all systems, syscall.SIGTERM is mainly for docker.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.NewRootCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		var fatal *log.FatalError
		if errors.As(err, &fatal) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fatal.Code, fatal)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
