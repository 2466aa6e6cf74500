package renderer

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/etnz/statement"
	"github.com/etnz/statement/date"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// referenceBlocks generates the statement of the reference document.
func referenceBlocks(t *testing.T) []statement.Block {
	t.Helper()
	r, err := os.Open("../testdata/reference.json")
	if err != nil {
		t.Fatalf("cannot open reference document: %v", err)
	}
	defer r.Close()
	in, err := statement.DecodeDocument(r, statement.DefaultCurrency, statement.DefaultTradesPath, statement.DefaultActionsPath)
	if err != nil {
		t.Fatalf("DecodeDocument() unexpected error: %v", err)
	}
	blocks, err := statement.Generate(statement.DefaultCurrency, in.Trades, in.Actions)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	return blocks
}

func TestText(t *testing.T) {
	const goldenFile = "testdata/reference.txt"
	got, err := Text(referenceBlocks(t))
	if err != nil {
		t.Fatalf("Text() unexpected error: %v", err)
	}

	want, err := os.ReadFile(goldenFile)
	if err != nil && !*fixGolden {
		t.Fatalf("cannot read golden file: %v", err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		if *fixGolden {
			if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
				t.Fatalf("failed to update golden file %s: %v", goldenFile, err)
			}
			t.Logf("updated golden file: %s", goldenFile)
			return
		}
		t.Errorf("Text() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderStatement(t *testing.T) {
	day := date.New(2024, 1, 2)
	trades := []statement.Trade{
		statement.NewBuy(day.Time().Add(10*time.Hour), "XYZ", statement.Q(10), statement.M(2.5, "USD")),
	}
	actions := []statement.CorporateAction{
		// same day as the buy, but applied before it: nothing held yet.
		statement.NewSplit(day, "XYZ", statement.Q(2)),
	}
	got, err := RenderStatement("USD", trades, actions)
	if err != nil {
		t.Fatalf("RenderStatement() unexpected error: %v", err)
	}
	want := `On 2024-01-02, you have:
    - 10 shares of XYZ at $2.50 per share
    - $0.00 of dividend income
  Transactions:
    - You bought 10 shares of XYZ at a price of $2.50 per share
`
	if got != want {
		t.Errorf("RenderStatement() = %q, want %q", got, want)
	}
}

func TestBlock(t *testing.T) {
	b := statement.Block{
		Date:           date.New(2024, 3, 4),
		DividendIncome: statement.M(0, "USD"),
		Transactions: []string{
			"XYZ split 2 to 1, and you have 20 shares",
			"XYZ paid out $0.125 dividend per share, and you have 20 shares",
		},
	}
	got, err := Block(b)
	if err != nil {
		t.Fatalf("Block() unexpected error: %v", err)
	}
	want := `On 2024-03-04, you have:
    - $0.00 of dividend income
  Transactions:
    - XYZ split 2 to 1, and you have 20 shares
    - XYZ paid out $0.125 dividend per share, and you have 20 shares
`
	if got != want {
		t.Errorf("Block() = %q, want %q", got, want)
	}
}

func TestHolding(t *testing.T) {
	blocks := referenceBlocks(t)
	got, err := Holding(blocks[len(blocks)-1])
	if err != nil {
		t.Fatalf("Holding() unexpected error: %v", err)
	}
	want := `On 1992-10-25, you have:
    - 1100 shares of AAPL at $4.10 per share
    - 500 shares of MSFT at $18.30 per share
    - $110.00 of dividend income
`
	if got != want {
		t.Errorf("Holding() = %q, want %q", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	got, err := Markdown(referenceBlocks(t))
	if err != nil {
		t.Fatalf("Markdown() unexpected error: %v", err)
	}
	for _, want := range []string{
		"# Trading Statement",
		"## On 1992-09-01",
		"| AAPL | 1500 | $4.10 |",
		"Dividend income: **$110.00**",
		"- You sold 600 shares of MSFT at a price of $18.20 per share for a profit of $-1580.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() does not contain %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ABC") {
		t.Errorf("Markdown() contains the skipped corporate action of ABC")
	}
}

func TestHTML(t *testing.T) {
	got, err := HTML(referenceBlocks(t))
	if err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}
	for _, want := range []string{
		"<h1>Trading Statement</h1>",
		"<h2>On 1992-07-14</h2>",
		"<strong>$50.00</strong>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q", want)
		}
	}
}

func TestTerminal(t *testing.T) {
	got, err := Terminal(referenceBlocks(t), "notty", 80)
	if err != nil {
		t.Fatalf("Terminal() unexpected error: %v", err)
	}
	if !strings.Contains(got, "1992-10-23") {
		t.Errorf("Terminal() does not contain the 1992-10-23 block, got:\n%s", got)
	}
}

func TestSpreadsheet(t *testing.T) {
	content, err := Spreadsheet(referenceBlocks(t))
	if err != nil {
		t.Fatalf("Spreadsheet() unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("cannot open the workbook: %v", err)
	}
	defer f.Close()

	if got, want := f.GetSheetList(), []string{"Transactions", "Holdings"}; !cmp.Equal(got, want) {
		t.Errorf("GetSheetList() = %v, want %v", got, want)
	}

	rows, err := f.GetRows("Transactions")
	if err != nil {
		t.Fatalf("GetRows() unexpected error: %v", err)
	}
	// header plus one row per transaction line.
	if got, want := len(rows), 1+11; got != want {
		t.Fatalf("Transactions has %d rows, want %d", got, want)
	}
	if got, want := rows[3][3], "AAPL split 3 to 1, and you have 1500 shares"; got != want {
		t.Errorf("Transactions!D4 = %q, want %q", got, want)
	}

	ticker, err := f.GetCellValue("Holdings", "C2")
	if err != nil {
		t.Fatalf("GetCellValue() unexpected error: %v", err)
	}
	if ticker != "AAPL" {
		t.Errorf("Holdings!C2 = %q, want %q", ticker, "AAPL")
	}
}
