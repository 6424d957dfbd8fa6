package report

// Package report writes analysis results as CSV or XLSX. Both formats share
// the same columns: Sequence Name, Length, GC% (two decimals).

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/analysis"
)

var header = []string{"Sequence Name", "Length", "GC%"}

// WriteCSV writes rows to w in CSV form.
func WriteCSV(w io.Writer, rows []analysis.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{row.Name, fmt.Sprintf("%d", row.Length), fmt.Sprintf("%.2f", row.GCPercent)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes rows to a CSV file at path.
func SaveCSV(path string, rows []analysis.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}

// SaveXLSX writes rows to an XLSX workbook at path with a single
// "GC Content" sheet.
func SaveXLSX(path string, rows []analysis.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "GC Content"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	for i, row := range rows {
		values := []interface{}{row.Name, row.Length, fmt.Sprintf("%.2f", row.GCPercent)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
