package roundservice

import (
	"context"
	"errors"
	"testing"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		sheet *FakeSheet
		r     rounddomain.Range
		want  rounddomain.Grid
	}{
		{
			name: "sparse cells become empty strings",
			sheet: NewFakeSheet("Round1").
				SetRow(6, 1, "PLACE", "PLAYER").
				Set(7, 2, "J. Smith").
				Set(7, 4, 54.0),
			r: rounddomain.Range{MinRow: 6, MaxRow: 8, MinCol: 1, MaxCol: 4},
			want: rounddomain.Grid{
				{"PLACE", "PLAYER", "", ""},
				{"", "J. Smith", "", 54.0},
				{"", "", "", ""},
			},
		},
		{
			name:  "offset origin",
			sheet: NewFakeSheet("Round1").Set(58, 5, "A. JONES").Set(58, 4, "ignored"),
			r:     rounddomain.Range{MinRow: 58, MaxRow: 58, MinCol: 5, MaxCol: 6},
			want:  rounddomain.Grid{{"A. JONES", ""}},
		},
		{
			name:  "booleans pass through",
			sheet: NewFakeSheet("Round1").SetRow(1, 1, true, false),
			r:     rounddomain.Range{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 2},
			want:  rounddomain.Grid{{true, false}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(ctx, tt.sheet, tt.r)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_ShapeOfEmptySheet(t *testing.T) {
	r := rounddomain.Range{MinRow: 22, MaxRow: 33, MinCol: 1, MaxCol: 23}

	got, err := Extract(context.Background(), NewFakeSheet("Round3"), r)
	require.NoError(t, err)
	require.Len(t, got, 12)
	for _, row := range got {
		require.Len(t, row, 23)
		for _, cell := range row {
			require.Equal(t, "", cell)
		}
	}
}

func TestExtract_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted range", func(t *testing.T) {
		_, err := Extract(ctx, NewFakeSheet("Round1"), rounddomain.Range{MinRow: 10, MaxRow: 5, MinCol: 1, MaxCol: 1})
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero column", func(t *testing.T) {
		_, err := Extract(ctx, NewFakeSheet("Round1"), rounddomain.Range{MinRow: 1, MaxRow: 1, MinCol: 0, MaxCol: 1})
		require.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("source error is returned unchanged", func(t *testing.T) {
		boom := errors.New("read timeout")
		sheet := NewFakeSheet("Round1")
		sheet.ValuesErr = boom

		_, err := Extract(ctx, sheet, rounddomain.Range{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 1})
		require.Equal(t, boom, err)
	})
}
