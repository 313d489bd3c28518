package imports

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	apperrors "orgbook-backend/internal/errors"

	"github.com/xuri/excelize/v2"
)

// ReadSheet reads the first sheet of a workbook (or a CSV file) into rows,
// using the first row as headers. The format is picked from the file extension.
// Rows without any value are dropped.
func ReadSheet(r io.Reader, filename string) ([]Row, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		records, err = readWorkbook(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, apperrors.NewMalformedImportError(filename, apperrors.ErrUnsupportedSheetType)
	}
	if err != nil {
		return nil, apperrors.NewMalformedImportError(filename, err)
	}

	return recordsToRows(records), nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func recordsToRows(records [][]string) []Row {
	if len(records) == 0 {
		return []Row{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		if row.IsBlank() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
