package roundservice

import (
	"testing"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	origin := rounddomain.Range{MinRow: 56, MaxRow: 59, MinCol: 4, MaxCol: 7}
	region := rounddomain.Range{MinRow: 58, MaxRow: 59, MinCol: 5, MaxCol: 7}
	scores := rounddomain.ScoreMap{
		"JSMITH": {1: 3, 2: 2, 3: 1},
		"AJONES": {1: 0, 2: 4, 3: 2},
	}
	display := rounddomain.Grid{
		{"", "J SMITH", "J SMITH", "J SMITH"}, // row 56: above the region
		{"", "", "", ""},
		{"J SMITH", "J. Smith", "j smith", "jsmith"}, // col 4 is left of the region
		{"", "A. Jones", "A. Jones", "A. Jones"},
	}

	got, misses := Colorize(display, origin, region, scores)
	require.Empty(t, misses)

	want := rounddomain.ColorGrid{
		{"", "", "", ""},
		{"", "", "", ""},
		{"", rounddomain.ColorGold, rounddomain.ColorSilver, rounddomain.ColorBronze},
		{"", "", "", rounddomain.ColorSilver},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Colorize() mismatch (-want +got):\n%s", diff)
	}
}

func TestColorize_Misses(t *testing.T) {
	r := rounddomain.Range{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 4}
	scores := rounddomain.ScoreMap{"JSMITH": {1: 3, 2: 3, 3: 3, 4: 3}}
	display := rounddomain.Grid{{"Q. Nobody", "q nobody", 17.0, "J Smith"}}

	got, misses := Colorize(display, r, r, scores)
	require.Equal(t, []string{"QNOBODY"}, misses)
	require.Equal(t, rounddomain.ColorGrid{{"", "", "", rounddomain.ColorGold}}, got)
}

func TestColorize_ShapeFollowsDisplay(t *testing.T) {
	faker := gofakeit.New(7)
	display := make(rounddomain.Grid, 12)
	for i := range display {
		row := make([]any, 22)
		for j := range row {
			row[j] = faker.Name()
		}
		display[i] = row
	}
	origin := rounddomain.Range{MinRow: 54, MaxRow: 65, MinCol: 1, MaxCol: 22}
	region := rounddomain.Range{MinRow: 58, MaxRow: 65, MinCol: 5, MaxCol: 22}

	got, _ := Colorize(display, origin, region, rounddomain.ScoreMap{})
	require.Len(t, got, 12)
	for _, row := range got {
		require.Len(t, row, 22)
		for _, tag := range row {
			require.Equal(t, rounddomain.ColorNone, tag)
		}
	}
}

func TestClosestName(t *testing.T) {
	scores := rounddomain.ScoreMap{"JSMITH": {}, "AJONES": {}, "BSMYTHE": {}}

	require.Equal(t, "JSMITH", closestName("JSMYTH", scores))
	require.Equal(t, "AJONES", closestName("AJONE", scores))
	require.Equal(t, "", closestName("JSMITH", rounddomain.ScoreMap{}))
}
