package fileread

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"shiprecon/internal/domain"
)

// Result holds the parsed contents of an uploaded tabular file. Columns is
// the ordered header row; Rows preserves the input row order, each row keyed
// by header name.
type Result struct {
	Columns []string
	Rows    []map[string]string
}

// Read parses a staged CSV or XLSX file. The first row is treated as the
// header row and headers are trimmed. Data rows whose field count does not
// match the header are silently dropped.
func Read(path string) (*Result, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch domain.AllowedUploadExtensions[ext] {
	case domain.UploadFormatCSV:
		return readCSV(path)
	case domain.UploadFormatXLSX:
		return readXLSX(path)
	default:
		return nil, domain.ErrUnsupportedFileType
	}
}

func readCSV(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fileread: opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fileread: reading csv header: %w", err)
	}
	columns := trimAll(header)

	result := &Result{Columns: columns}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fileread: reading csv row: %w", err)
		}
		if len(record) != len(columns) {
			continue
		}
		result.Rows = append(result.Rows, zip(columns, record))
	}
	return result, nil
}

func readXLSX(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileread: opening xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Result{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("fileread: reading xlsx rows: %w", err)
	}
	if len(rows) == 0 {
		return &Result{}, nil
	}

	columns := trimAll(rows[0])
	result := &Result{Columns: columns}
	for _, row := range rows[1:] {
		// excelize omits trailing empty cells; pad to header width so a row
		// with a blank last column is not lost.
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			row = padded
		}
		if len(row) != len(columns) {
			continue
		}
		result.Rows = append(result.Rows, zip(columns, row))
	}
	return result, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func zip(columns, record []string) map[string]string {
	row := make(map[string]string, len(columns))
	for i, col := range columns {
		row[col] = record[i]
	}
	return row
}
