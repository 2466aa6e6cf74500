package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const reviewInstruction = `You are an accountant reviewing the trading statement of a single investor.
The statement lists, event by event, the holdings at their weighted average price,
the cumulative dividend income, and the trades or corporate actions of the day.
Profits are realized selling the cheapest lots first.

Write a short review in markdown:
  - the realized profits and losses per security,
  - the effect of splits and dividends on the holdings,
  - anything unusual in the trading pattern.
Only use figures present in the statement.`

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	cfg   *Config
	input inputFlags
	model string
	style string
	width int
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "ask Gemini to review the trading statement" }
func (*reviewCmd) Usage() string {
	return `stmt review (-in <file> | -trades <file> -actions <file>) [-model <model>]

  Generates the statement and asks a Gemini model to comment on it.
  The API key is read from GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	c.input.register(f, c.cfg)
	f.StringVar(&c.model, "model", c.cfg.GeminiModel, "Gemini model to use")
	f.StringVar(&c.style, "style", c.cfg.Style, "glamour style of the review")
	f.IntVar(&c.width, "width", c.cfg.Width, "Word wrap width of the review")
}

func (c *reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	blocks, err := c.input.generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating statement: %v\n", err)
		return subcommands.ExitFailure
	}
	md, err := renderer.Markdown(blocks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering statement: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	review, err := c.ask(ctx, client, md)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Review failed:", err)
		return subcommands.ExitFailure
	}

	out, err := renderer.Pretty(review, c.style, c.width)
	if err != nil {
		// Raw markdown is still readable.
		out = review
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}

// ask sends the statement to the model and returns its markdown review.
func (c *reviewCmd) ask(ctx context.Context, client *genai.Client, statement string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: reviewInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		return "", err
	}
	resp, err := chat.Send(ctx, &genai.Part{Text: statement})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", c.model)
	}
	var review string
	for _, part := range resp.Candidates[0].Content.Parts {
		review += part.Text
	}
	return review, nil
}
