package workbook

import (
	"context"
	"errors"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
)

// ErrSheetNotFound is returned when a workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Source opens the tour workbook. Every call to Open reads the backing
// spreadsheet again; nothing is cached between calls.
type Source interface {
	Open(ctx context.Context) (Workbook, error)
	// Kind names the backend, e.g. "xlsx" or "gsheets".
	Kind() string
}

// Workbook is one opened spreadsheet.
type Workbook interface {
	// Sheet returns the sheet with exactly the given name.
	Sheet(ctx context.Context, name string) (Sheet, error)
	Close() error
}

// Sheet reads blocks of typed cell values.
type Sheet interface {
	Name() string
	// Values returns the cells of r in row-major order. Cell values are
	// string, float64, bool or nil for an absent cell. Rows may be shorter
	// than r when trailing cells are absent.
	Values(ctx context.Context, r rounddomain.Range) ([][]any, error)
}
