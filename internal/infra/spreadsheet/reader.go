// Package spreadsheet turns uploaded price-list bytes into a plain
// headers-plus-rows table. It knows nothing about what the columns mean.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseError reports a table that could not be read at all. Individual bad
// cell values are not errors at this layer.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses the uploaded file by extension. Headers come from the first
// row, trimmed; remaining rows are returned as-is and may be ragged.
func Read(data []byte, filename string) (headers []string, rows [][]string, err error) {
	var all [][]string
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		all, err = readCSV(data)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		all, err = readExcel(data)
	default:
		err = fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, nil, &ParseError{Filename: filename, Err: err}
	}
	if len(all) == 0 || len(all[0]) == 0 {
		return nil, nil, &ParseError{Filename: filename, Err: fmt.Errorf("table has no header row")}
	}

	headers = make([]string, len(all[0]))
	for i, h := range all[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, all[1:], nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func readExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}
