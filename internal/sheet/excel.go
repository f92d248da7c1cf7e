package sheet

import (
	"context"
	"os"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads the tabular input from one sheet of an .xlsx file.
// Cells arrive as strings, which is what excelize exposes; typing them is
// the normalizer's job.
type ExcelSource struct {
	path  string
	sheet string
}

func NewExcelSource(path, sheet string) *ExcelSource {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &ExcelSource{path: path, sheet: sheet}
}

func (s *ExcelSource) Load(ctx context.Context) ([][]any, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, ErrNoSheet
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		// лист с таким именем отсутствует
		return nil, ErrNoSheet
	}

	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out, nil
}
