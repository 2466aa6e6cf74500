// Package renderer turns statement blocks into text, markdown, HTML or
// styled terminal output.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/statement"
	"github.com/yuin/goldmark"
)

//go:embed templates/*
var embedded embed.FS

// templates is the root of the embedded templates.
var templates, _ = fs.Sub(embedded, "templates")

// Block renders a single statement block in the reference text layout.
func Block(b statement.Block) (string, error) {
	partials := map[string]string{
		"holding": "holding.txt",
	}
	return renderTemplate("block", "block.txt", partials, b)
}

// Holding renders only the account part of a block: holdings and dividend
// income.
func Holding(b statement.Block) (string, error) {
	return renderTemplate("holding", "holding.txt", nil, b)
}

// Text renders a statement: one block per event, separated by a blank line.
func Text(blocks []statement.Block) (string, error) {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		txt, err := Block(b)
		if err != nil {
			return "", err
		}
		texts = append(texts, txt)
	}
	return strings.Join(texts, "\n"), nil
}

// RenderStatement generates the statement of trades and corporate actions,
// in the reference text layout.
func RenderStatement(currency string, trades []statement.Trade, actions []statement.CorporateAction) (string, error) {
	blocks, err := statement.Generate(currency, trades, actions)
	if err != nil {
		return "", err
	}
	return Text(blocks)
}

// Markdown renders a statement as a markdown document.
func Markdown(blocks []statement.Block) (string, error) {
	partials := map[string]string{
		"block": "block.md",
	}
	return renderTemplate("statement", "statement.md", partials, blocks)
}

// HTML renders a statement as an HTML fragment.
func HTML(blocks []statement.Block) (string, error) {
	md, err := Markdown(blocks)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("error converting markdown to html: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders a statement as markdown styled for a terminal.
//
// style is a glamour standard style name ("dark", "light", "notty", ...),
// width is the word wrap limit.
func Terminal(blocks []statement.Block, style string, width int) (string, error) {
	md, err := Markdown(blocks)
	if err != nil {
		return "", err
	}
	return Pretty(md, style, width)
}

// Pretty styles any markdown document for a terminal.
func Pretty(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("error creating terminal renderer: %w", err)
	}
	return r.Render(md)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("error reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("error parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return "", fmt.Errorf("error reading partial template %q: %w", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("error parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("error executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
