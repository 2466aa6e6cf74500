package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors for flags whose values can be guessed, by flag name.
var predictors = map[string]complete.Predictor{
	"in":      predict.Files("*.json"),
	"trades":  predict.Files("*.jsonl"),
	"actions": predict.Files("*.jsonl"),
	"o":       predict.Files("*"),
	"format":  predict.Set(formats),
	"style":   predict.Set{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"},
	"c":       predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
}

// Completion describes the commands and flags of c for shell completion.
//
// Run the binary with COMP_INSTALL=1 to install the completion in the shell.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{Sub: make(map[string]*complete.Command)}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		cmd := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := predictors[f.Name]
			if !ok {
				p = predict.Set{}
			}
			cmd.Flags[f.Name] = p
		})
		root.Sub[sub.Name()] = cmd
	})
	return root
}
