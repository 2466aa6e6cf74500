package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/statement/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	if err := cmd.SetupLogger(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg)

	// exits when invoked by the shell for completion.
	complete.Complete(commander.Name(), cmd.Completion(commander))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
