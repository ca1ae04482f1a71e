package file

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaccination-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadTable читает первую строку как заголовок, остальные как данные.
// Поддерживаются .xlsx (первый лист) и .csv.
func ReadTable(path string) (*domain.RawTable, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported table format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	table := &domain.RawTable{Name: filepath.Base(path)}
	if len(rows) == 0 {
		return table, nil
	}

	table.Header = rows[0]
	for _, r := range rows[1:] {
		if isBlank(r) {
			continue
		}
		table.Rows = append(table.Rows, r)
	}

	return table, nil
}

func readXLSX(path string) ([][]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx %s has no sheets", path)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows of sheet %q in %s: %w", sheets[0], path, err)
	}

	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
