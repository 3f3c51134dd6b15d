package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/Black-And-White-Club/frolf-tour-board/config"
)

// NewSource builds the workbook source selected in the configuration.
func NewSource(ctx context.Context, cfg config.WorkbookConfig) (Source, error) {
	switch strings.ToLower(cfg.Source) {
	case "", "xlsx":
		if cfg.Path == "" {
			return nil, fmt.Errorf("xlsx workbook source needs a path")
		}
		return NewXLSXSource(cfg.Path), nil
	case "gsheets":
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("gsheets workbook source needs a spreadsheet ID")
		}
		source, err := NewGSheetsSource(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			return nil, err
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unsupported workbook source: %s (must be xlsx or gsheets)", cfg.Source)
	}
}
