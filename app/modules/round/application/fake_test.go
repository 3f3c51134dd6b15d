package roundservice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
)

// ------------------------
// Fake Workbook Source
// ------------------------

// FakeSource hands out a FakeWorkbook built from Sheets on every Open.
type FakeSource struct {
	trace []string

	Sheets  map[string]*FakeSheet
	OpenErr error
	OpenFn  func(ctx context.Context) (workbook.Workbook, error)
	Closed  int
}

func NewFakeSource() *FakeSource {
	return &FakeSource{Sheets: map[string]*FakeSheet{}}
}

func (f *FakeSource) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of calls made to the fake and its workbooks.
func (f *FakeSource) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSource) Kind() string { return "fake" }

func (f *FakeSource) Open(ctx context.Context) (workbook.Workbook, error) {
	f.record("Open")
	if f.OpenFn != nil {
		return f.OpenFn(ctx)
	}
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return &fakeWorkbook{source: f}, nil
}

type fakeWorkbook struct {
	source *FakeSource
}

func (w *fakeWorkbook) Sheet(_ context.Context, name string) (workbook.Sheet, error) {
	w.source.record("Sheet:" + name)
	sheet, ok := w.source.Sheets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", workbook.ErrSheetNotFound, name)
	}
	return sheet, nil
}

func (w *fakeWorkbook) Close() error {
	w.source.record("Close")
	w.source.Closed++
	return nil
}

// ------------------------
// Fake Sheet
// ------------------------

type cellRef struct{ row, col int }

// FakeSheet holds sparse cells addressed by 1-based row and column.
type FakeSheet struct {
	name      string
	cells     map[cellRef]any
	ValuesErr error
	PanicOn   *rounddomain.Range
}

func NewFakeSheet(name string) *FakeSheet {
	return &FakeSheet{name: name, cells: map[cellRef]any{}}
}

// Set stores v at (row, col) and returns the sheet for chaining.
func (s *FakeSheet) Set(row, col int, v any) *FakeSheet {
	s.cells[cellRef{row, col}] = v
	return s
}

// SetRow stores values left to right starting at (row, col).
func (s *FakeSheet) SetRow(row, col int, values ...any) *FakeSheet {
	for i, v := range values {
		s.cells[cellRef{row, col + i}] = v
	}
	return s
}

func (s *FakeSheet) Name() string { return s.name }

// Values trims trailing absent cells from every row, as real sources do.
func (s *FakeSheet) Values(_ context.Context, r rounddomain.Range) ([][]any, error) {
	if s.ValuesErr != nil {
		return nil, s.ValuesErr
	}
	if s.PanicOn != nil && *s.PanicOn == r {
		panic("sheet exploded")
	}

	rows := make([][]any, 0, r.Rows())
	for row := r.MinRow; row <= r.MaxRow; row++ {
		values := make([]any, r.Cols())
		last := -1
		for col := r.MinCol; col <= r.MaxCol; col++ {
			if v, ok := s.cells[cellRef{row, col}]; ok {
				values[col-r.MinCol] = v
				last = col - r.MinCol
			}
		}
		rows = append(rows, values[:last+1])
	}
	return rows, nil
}

// ------------------------
// Fake Metrics
// ------------------------

type FakeMetrics struct {
	mu        sync.Mutex
	Requests  map[string]int
	Opens     []string
	Unmatched map[int]int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{Requests: map[string]int{}, Unmatched: map[int]int{}}
}

func (m *FakeMetrics) RecordRoundRequest(round int, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[fmt.Sprintf("%d/%s", round, status)]++
}

func (m *FakeMetrics) RecordWorkbookOpen(source string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Opens = append(m.Opens, source)
}

func (m *FakeMetrics) RecordUnmatchedNames(round int, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unmatched[round] += n
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
