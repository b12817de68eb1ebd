package excel

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("excel: sheet has no header row")

// Source reads the hotel dataset from a workbook. The first row of the sheet
// is the header.
type Source struct {
	path  string
	sheet string
}

// NewSource reads from path. An empty sheet selects the first sheet.
func NewSource(path, sheet string) *Source { return &Source{path: path, sheet: sheet} }

func (s *Source) Name() string { return s.path }

func (s *Source) Load(ctx context.Context) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	// raw values keep numbers free of the cell's display format
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptySheet
	}
	return rows[0], rows[1:], nil
}
