// Package cmd implements the CLI application to generate trading statements.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/statement"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	c.Register(&generateCmd{cfg: cfg}, "statement")
	c.Register(&holdingCmd{cfg: cfg}, "statement")
	c.Register(&reviewCmd{cfg: cfg}, "statement")
}

// inputFlags holds the flags common to every command reading events.
type inputFlags struct {
	in          string
	trades      string
	actions     string
	tradesPath  string
	actionsPath string
	currency    string
}

func (f *inputFlags) register(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&f.in, "in", "", "JSON document holding both trades and corporate actions")
	fs.StringVar(&f.trades, "trades", "", "JSONL file of trades, one per line, used when -in is not set")
	fs.StringVar(&f.actions, "actions", "", "JSONL file of corporate actions, one per line, used when -in is not set")
	fs.StringVar(&f.tradesPath, "trades-path", cfg.TradesPath, "jsonpath of the trades list in the -in document")
	fs.StringVar(&f.actionsPath, "actions-path", cfg.ActionsPath, "jsonpath of the corporate actions list in the -in document")
	fs.StringVar(&f.currency, "c", cfg.Currency, "Currency of prices and dividends")
}

// decode reads the events from the files named by the flags.
func (f *inputFlags) decode() (statement.Input, error) {
	if err := statement.ValidateCurrency(f.currency); err != nil {
		return statement.Input{}, err
	}
	if f.in != "" {
		r, err := os.Open(f.in)
		if err != nil {
			return statement.Input{}, fmt.Errorf("cannot open %q for reading: %w", f.in, err)
		}
		defer r.Close()
		in, err := statement.DecodeDocument(r, f.currency, f.tradesPath, f.actionsPath)
		if err != nil {
			return statement.Input{}, fmt.Errorf("error in %q: %w", f.in, err)
		}
		return in, nil
	}
	if f.trades == "" && f.actions == "" {
		return statement.Input{}, errors.New("no input, use -in, or -trades and -actions")
	}

	var in statement.Input
	err := decodeFile(f.trades, func(r io.Reader) (err error) {
		in.Trades, err = statement.DecodeTrades(r, f.currency)
		return err
	})
	if err != nil {
		return statement.Input{}, err
	}
	err = decodeFile(f.actions, func(r io.Reader) (err error) {
		in.Actions, err = statement.DecodeCorporateActions(r, f.currency)
		return err
	})
	if err != nil {
		return statement.Input{}, err
	}
	return in, nil
}

// decodeFile opens filename and decodes it, an empty name is an empty stream.
func decodeFile(filename string, decode func(io.Reader) error) error {
	if filename == "" {
		return nil
	}
	r, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer r.Close()
	if err := decode(r); err != nil {
		return fmt.Errorf("error in %q: %w", filename, err)
	}
	return nil
}

// generate decodes the input and computes the statement blocks.
func (f *inputFlags) generate() ([]statement.Block, error) {
	in, err := f.decode()
	if err != nil {
		return nil, err
	}
	return statement.Generate(f.currency, in.Trades, in.Actions)
}

// writeOutput writes content to filename, or stdout if filename is empty.
func writeOutput(filename, content string) error {
	if filename == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(filename, []byte(content), 0644)
}
