package workbook

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the tour workbook from a local .xlsx file.
type XLSXSource struct {
	path string
}

// NewXLSXSource creates a source for the workbook at path.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Kind() string { return "xlsx" }

// Open parses the file from disk. Formula cells yield their cached results.
func (s *XLSXSource) Open(ctx context.Context) (Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file %q: %w", s.path, err)
	}

	return &xlsxWorkbook{file: f}, nil
}

type xlsxWorkbook struct {
	file *excelize.File
}

// Sheet matches names exactly; excelize itself would accept any letter case.
func (w *xlsxWorkbook) Sheet(_ context.Context, name string) (Sheet, error) {
	for _, sheet := range w.file.GetSheetList() {
		if sheet == name {
			return &xlsxSheet{file: w.file, name: name}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

type xlsxSheet struct {
	file *excelize.File
	name string
}

func (s *xlsxSheet) Name() string { return s.name }

func (s *xlsxSheet) Values(ctx context.Context, r rounddomain.Range) ([][]any, error) {
	rows := make([][]any, 0, r.Rows())
	for row := r.MinRow; row <= r.MaxRow; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values := make([]any, 0, r.Cols())
		for col := r.MinCol; col <= r.MaxCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, fmt.Errorf("invalid cell at row %d, col %d: %w", row, col, err)
			}
			v, err := s.cellValue(cell)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		rows = append(rows, values)
	}
	return rows, nil
}

func (s *xlsxSheet) cellValue(cell string) (any, error) {
	raw, err := s.file.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s!%s: %w", s.name, cell, err)
	}
	if raw == "" {
		return nil, nil
	}

	typ, err := s.file.GetCellType(s.name, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to read type of %s!%s: %w", s.name, cell, err)
	}
	return typedValue(raw, typ), nil
}

// typedValue converts the raw XML value of a cell. Cells without an explicit
// type are numbers in OOXML, which is also how cached numeric formula
// results are stored.
func typedValue(raw string, typ excelize.CellType) any {
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		// ParseFloat also accepts "NaN" and "Inf", which JSON cannot carry.
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return raw
}
