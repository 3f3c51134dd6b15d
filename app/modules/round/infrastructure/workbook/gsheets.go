package workbook

import (
	"context"
	"fmt"
	"strings"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GSheetsSource reads the tour workbook from a Google Sheets spreadsheet.
type GSheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewGSheetsSource creates a read-only Sheets client. An empty
// credentialsFile falls back to application default credentials.
func NewGSheetsSource(ctx context.Context, credentialsFile, spreadsheetID string, opts ...option.ClientOption) (*GSheetsSource, error) {
	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if credentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GSheetsSource{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *GSheetsSource) Kind() string { return "gsheets" }

// Open fetches the sheet titles. Cell data is fetched per range.
func (s *GSheetsSource) Open(ctx context.Context) (Workbook, error) {
	resp, err := s.service.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %q: %w", s.spreadsheetID, err)
	}

	titles := make(map[string]struct{}, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil {
			titles[sheet.Properties.Title] = struct{}{}
		}
	}

	return &gsheetsWorkbook{source: s, titles: titles}, nil
}

type gsheetsWorkbook struct {
	source *GSheetsSource
	titles map[string]struct{}
}

func (w *gsheetsWorkbook) Sheet(_ context.Context, name string) (Sheet, error) {
	if _, ok := w.titles[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &gsheetsSheet{source: w.source, name: name}, nil
}

func (w *gsheetsWorkbook) Close() error { return nil }

type gsheetsSheet struct {
	source *GSheetsSource
	name   string
}

func (s *gsheetsSheet) Name() string { return s.name }

func (s *gsheetsSheet) Values(ctx context.Context, r rounddomain.Range) ([][]any, error) {
	a1, err := a1Range(s.name, r)
	if err != nil {
		return nil, err
	}

	resp, err := s.source.service.Spreadsheets.Values.Get(s.source.spreadsheetID, a1).
		ValueRenderOption("UNFORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", a1, err)
	}

	rows := make([][]any, len(resp.Values))
	for i, row := range resp.Values {
		values := make([]any, len(row))
		for j, v := range row {
			// Sheets reports blank cells inside a row as "".
			if str, ok := v.(string); ok && str == "" {
				continue
			}
			values[j] = v
		}
		rows[i] = values
	}
	return rows, nil
}

// a1Range renders r in A1 notation, e.g. 'Round2'!A54:V65.
func a1Range(sheet string, r rounddomain.Range) (string, error) {
	first, err := excelize.CoordinatesToCellName(r.MinCol, r.MinRow)
	if err != nil {
		return "", fmt.Errorf("invalid range %s: %w", r, err)
	}
	last, err := excelize.CoordinatesToCellName(r.MaxCol, r.MaxRow)
	if err != nil {
		return "", fmt.Errorf("invalid range %s: %w", r, err)
	}
	return fmt.Sprintf("'%s'!%s:%s", strings.ReplaceAll(sheet, "'", "''"), first, last), nil
}
