// SPDX-License-Identifier: MIT

// Command hydrosim simulates microfluidic circuit snapshots.
//
//	hydrosim run   -f circuit.yaml [-pretty]      solve and print results as JSON
//	hydrosim reach -f circuit.yaml [-watch 1s]    print segments reachable from a pump
//	hydrosim serve                                start the HTTP API
//
// Settings come from HYDROSIM_* environment variables and an optional .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	exitFunc(code)
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "run":
		err = runCmd(ctx, rest, stdout, stderr)
	case "reach":
		err = reachCmd(ctx, rest, stdout, stderr)
	case "serve":
		err = serveCmd(ctx, rest, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cmd)
		printUsage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hydrosim: hydraulic network simulator")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hydrosim run   -f <snapshot> [-pretty]   solve and print results")
	fmt.Fprintln(w, "  hydrosim reach -f <snapshot> [-watch d]  print reachable segments")
	fmt.Fprintln(w, "  hydrosim serve                           start the HTTP API")
}
