package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/etnz/statement"
	"github.com/xuri/excelize/v2"
)

const (
	transactionsSheet = "Transactions"
	holdingsSheet     = "Holdings"
)

// Spreadsheet renders a statement as an xlsx workbook with two sheets: one
// row per transaction line, and one row per holding after each event.
func Spreadsheet(blocks []statement.Block) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing workbook", "err", err)
		}
	}()

	if err := fillTransactions(f, blocks); err != nil {
		return nil, err
	}
	if err := fillHoldings(f, blocks); err != nil {
		return nil, err
	}

	// the default sheet is left empty.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error deleting the default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func fillTransactions(f *excelize.File, blocks []statement.Block) error {
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("error creating sheet %q: %w", transactionsSheet, err)
	}
	if err := header(f, transactionsSheet, "Event", "Date", "Dividend income", "Transaction"); err != nil {
		return err
	}

	row := 2
	for i, b := range blocks {
		for _, tx := range b.Transactions {
			errs := errors.Join(
				f.SetCellValue(transactionsSheet, cell("A", row), i+1),
				f.SetCellStr(transactionsSheet, cell("B", row), b.Date.String()),
				f.SetCellValue(transactionsSheet, cell("C", row), b.DividendIncome.Decimal().InexactFloat64()),
				f.SetCellStr(transactionsSheet, cell("D", row), tx),
			)
			if errs != nil {
				return fmt.Errorf("error filling row %d of %q: %w", row, transactionsSheet, errs)
			}
			row++
		}
	}
	return f.SetColWidth(transactionsSheet, "D", "D", 90)
}

func fillHoldings(f *excelize.File, blocks []statement.Block) error {
	if _, err := f.NewSheet(holdingsSheet); err != nil {
		return fmt.Errorf("error creating sheet %q: %w", holdingsSheet, err)
	}
	if err := header(f, holdingsSheet, "Event", "Date", "Ticker", "Shares", "Average price"); err != nil {
		return err
	}

	row := 2
	for i, b := range blocks {
		for _, h := range b.Holdings {
			errs := errors.Join(
				f.SetCellValue(holdingsSheet, cell("A", row), i+1),
				f.SetCellStr(holdingsSheet, cell("B", row), b.Date.String()),
				f.SetCellStr(holdingsSheet, cell("C", row), h.Ticker),
				f.SetCellValue(holdingsSheet, cell("D", row), h.Shares.Decimal().IntPart()),
				f.SetCellValue(holdingsSheet, cell("E", row), h.Price.Decimal().Round(4).InexactFloat64()),
			)
			if errs != nil {
				return fmt.Errorf("error filling row %d of %q: %w", row, holdingsSheet, errs)
			}
			row++
		}
	}
	return nil
}

// header writes bold column titles on the first row of sheet.
func header(f *excelize.File, sheet string, titles ...string) error {
	for i, title := range titles {
		name, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, name, title); err != nil {
			return err
		}
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cfe2f3"}},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styleID)
}

func cell(col string, row int) string { return fmt.Sprintf("%s%d", col, row) }
