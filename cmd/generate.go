package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement"
	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

// Formats supported by the generate command.
var formats = []string{"text", "markdown", "html", "pretty", "xlsx"}

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	cfg    *Config
	input  inputFlags
	format string
	output string
	style  string
	width  int
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate the trading statement" }
func (*generateCmd) Usage() string {
	return `stmt generate (-in <file> | -trades <file> -actions <file>) [-format <format>] [-o <file>]

  Generates the chronological statement of the trades and corporate actions:
  for each event, the holdings after the event and what happened.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	c.input.register(f, c.cfg)
	f.StringVar(&c.format, "format", c.cfg.Format, "Output format (text, markdown, html, pretty, xlsx)")
	f.StringVar(&c.output, "o", "", "Output file, defaults to stdout")
	f.StringVar(&c.style, "style", c.cfg.Style, "glamour style of the pretty format (dark, light, notty)")
	f.IntVar(&c.width, "width", c.cfg.Width, "Word wrap width of the pretty format")
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	blocks, err := c.input.generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating statement: %v\n", err)
		var eventErr *statement.EventError
		if errors.As(err, &eventErr) || errors.Is(err, statement.ErrMalformedInput) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitUsageError
	}

	content, err := render(blocks, c.format, c.style, c.width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering statement: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := writeOutput(c.output, content); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing statement: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// render renders blocks in one of the supported formats.
func render(blocks []statement.Block, format, style string, width int) (string, error) {
	switch format {
	case "text":
		return renderer.Text(blocks)
	case "markdown":
		return renderer.Markdown(blocks)
	case "html":
		return renderer.HTML(blocks)
	case "pretty":
		return renderer.Terminal(blocks, style, width)
	case "xlsx":
		b, err := renderer.Spreadsheet(blocks)
		return string(b), err
	default:
		return "", fmt.Errorf("unknown format %q, want one of %v", format, formats)
	}
}
