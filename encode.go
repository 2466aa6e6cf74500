package statement

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/statement/date"
)

// Default paths of the event lists in a JSON document.
const (
	DefaultTradesPath  = "$.actions"
	DefaultActionsPath = "$.stock_actions"
)

// Trades and corporate actions are exchanged as JSON objects whose values
// are strings:
//
//	{"date": "1992/07/14 11:12:30", "action": "BUY", "price": "12.3", "ticker": "AAPL", "shares": "500"}
//	{"date": "1992/08/14", "dividend": "0.10", "split": "", "stock": "AAPL"}
//
// An empty "dividend" or "split" means there is none. JSON numbers are
// accepted in place of strings.

// Input holds the two event streams of a statement.
type Input struct {
	Trades  []Trade
	Actions []CorporateAction
}

// DecodeDocument reads a single JSON document and extracts the trades and
// corporate actions at the given jsonpath expressions.
func DecodeDocument(r io.Reader, currency, tradesPath, actionsPath string) (Input, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return Input{}, fmt.Errorf("%w: not a correct json document: %w", ErrMalformedInput, err)
	}

	var in Input
	trades, err := selectList(jobj, tradesPath)
	if err != nil {
		return Input{}, err
	}
	for i, jt := range trades {
		t, err := ParseTrade(jt, currency)
		if err != nil {
			return Input{}, fmt.Errorf("%s[%d]: %w", tradesPath, i, err)
		}
		in.Trades = append(in.Trades, t)
	}

	actions, err := selectList(jobj, actionsPath)
	if err != nil {
		return Input{}, err
	}
	for i, ja := range actions {
		a, err := ParseCorporateAction(ja, currency)
		if err != nil {
			return Input{}, fmt.Errorf("%s[%d]: %w", actionsPath, i, err)
		}
		in.Actions = append(in.Actions, a)
	}
	return in, nil
}

// selectList evaluates a jsonpath expression that must point to a list of
// objects.
func selectList(jobj any, path string) ([]map[string]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot select %q: %w", ErrMalformedInput, path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a list", ErrMalformedInput, path)
	}
	// wildcard expressions return a list of lists.
	if len(jlist) == 1 {
		if inner, ok := jlist[0].([]any); ok {
			jlist = inner
		}
	}
	list := make([]map[string]any, 0, len(jlist))
	for i, item := range jlist {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrMalformedInput, path, i)
		}
		list = append(list, m)
	}
	return list, nil
}

// DecodeTrades reads trades from a JSONL stream, one trade per line.
func DecodeTrades(r io.Reader, currency string) ([]Trade, error) {
	var trades []Trade
	err := decodeLines(r, func(line int, jobj map[string]any) error {
		t, err := ParseTrade(jobj, currency)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		trades = append(trades, t)
		return nil
	})
	return trades, err
}

// DecodeCorporateActions reads corporate actions from a JSONL stream, one
// action per line.
func DecodeCorporateActions(r io.Reader, currency string) ([]CorporateAction, error) {
	var actions []CorporateAction
	err := decodeLines(r, func(line int, jobj map[string]any) error {
		a, err := ParseCorporateAction(jobj, currency)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		actions = append(actions, a)
		return nil
	})
	return actions, err
}

// decodeLines calls f for each non empty line of r decoded as a JSON object.
func decodeLines(r io.Reader, f func(line int, jobj map[string]any) error) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		txt := scanner.Bytes()
		// Start simply ignoring empty lines.
		if len(bytes.TrimSpace(txt)) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(txt))
		dec.UseNumber()
		var jobj map[string]any
		if err := dec.Decode(&jobj); err != nil {
			return fmt.Errorf("%w: line %d: not a correct json object: %w", ErrMalformedInput, i, err)
		}
		if err := f(i, jobj); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ParseTrade parses a trade object.
func ParseTrade(jobj map[string]any, currency string) (Trade, error) {
	var t Trade
	fields, err := stringFields(jobj, "date", "action", "price", "ticker", "shares")
	if err != nil {
		return t, err
	}

	switch strings.ToUpper(fields["action"]) {
	case "BUY":
		t.Command = CmdBuy
	case "SELL":
		t.Command = CmdSell
	default:
		return t, fmt.Errorf("%w: unknown action %q, want BUY or SELL", ErrMalformedInput, fields["action"])
	}
	if t.Time, err = date.ParseTime(fields["date"]); err != nil {
		return t, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	t.Ticker = fields["ticker"]
	if t.Price, err = ParseMoney(fields["price"], currency); err != nil {
		return t, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if t.Shares, err = ParseQuantity(fields["shares"]); err != nil {
		return t, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return t, t.Validate()
}

// ParseCorporateAction parses a corporate action object.
func ParseCorporateAction(jobj map[string]any, currency string) (CorporateAction, error) {
	var c CorporateAction
	fields, err := stringFields(jobj, "date", "stock")
	if err != nil {
		return c, err
	}

	if c.Date, err = date.Parse(fields["date"]); err != nil {
		return c, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	c.Ticker = fields["stock"]
	if s := fields["dividend"]; s != "" {
		rate, err := ParseMoney(s, currency)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		c.Dividend = &rate
	}
	if s := fields["split"]; s != "" {
		factor, err := ParseQuantity(s)
		if err != nil {
			return c, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		c.Split = &factor
	}
	return c, c.Validate()
}

// stringFields returns every field of jobj as a string, and fails if one of
// the required fields is missing.
func stringFields(jobj map[string]any, required ...string) (map[string]string, error) {
	fields := make(map[string]string, len(jobj))
	for k, v := range jobj {
		switch jv := v.(type) {
		case string:
			fields[k] = strings.TrimSpace(jv)
		case json.Number:
			fields[k] = jv.String()
		case float64:
			fields[k] = fmt.Sprint(jv)
		case nil:
			fields[k] = ""
		default:
			return nil, fmt.Errorf("%w: property %q must be a string or a number, got %T", ErrMalformedInput, k, v)
		}
	}
	for _, k := range required {
		if _, ok := fields[k]; !ok {
			return nil, fmt.Errorf("%w: missing the property %q", ErrMalformedInput, k)
		}
	}
	return fields, nil
}
