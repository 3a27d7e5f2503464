package bulkfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one flat row parsed from an uploaded file. All values are raw
// strings; coercion and defaulting happen in the use case.
type Record struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	ImageURL    string
	Description string
	Status      string
}

// Parse reads a CSV or XLSX upload into records. The first row is the
// header; column names are matched case-insensitively.
func Parse(filename string, file io.Reader) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(file)
	case ".xlsx", ".xls":
		return parseXLSX(file)
	default:
		return nil, fmt.Errorf("unsupported file type: please upload a CSV or XLSX file")
	}
}

func parseCSV(file io.Reader) ([]Record, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return rowsToRecords(rows), nil
}

func parseXLSX(file io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	return rowsToRecords(rows), nil
}

func rowsToRecords(rows [][]string) []Record {
	if len(rows) < 2 {
		return nil
	}

	header := make(map[string]int)
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, column string) string {
		idx, ok := header[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Name:        cell(row, "name"),
			Price:       cell(row, "price"),
			Category:    cell(row, "category"),
			Stock:       cell(row, "stock"),
			ImageURL:    cell(row, "imageurl"),
			Description: cell(row, "description"),
			Status:      cell(row, "status"),
		}
		if rec == (Record{}) {
			continue
		}
		records = append(records, rec)
	}

	return records
}
