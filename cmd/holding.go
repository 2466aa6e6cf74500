package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	cfg   *Config
	input inputFlags
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the holdings after the last event" }
func (*holdingCmd) Usage() string {
	return `stmt holding (-in <file> | -trades <file> -actions <file>)

  Displays the holdings and the dividend income once every event has been
  processed.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	c.input.register(f, c.cfg)
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	blocks, err := c.input.generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating statement: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(blocks) == 0 {
		fmt.Println("No event, nothing is held.")
		return subcommands.ExitSuccess
	}

	txt, err := renderer.Holding(blocks[len(blocks)-1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(txt)
	return subcommands.ExitSuccess
}
