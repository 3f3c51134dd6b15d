package roundservice

import (
	"slices"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Colorize tags the cells of the matchplay display grid with the placing the
// named player scored on that hole. display starts at origin; only cells in
// region are coloured. The returned names are the normalized player names
// found in region that have no row in scores, each listed once.
func Colorize(display rounddomain.Grid, origin, region rounddomain.Range, scores rounddomain.ScoreMap) (rounddomain.ColorGrid, []string) {
	index := make(map[string]string, len(scores))
	for key := range scores {
		index[rounddomain.NormalizeName(key)] = key
	}

	colors := make(rounddomain.ColorGrid, len(display))
	var misses []string
	for i, row := range display {
		tags := make([]rounddomain.ColorTag, len(row))
		for j, cell := range row {
			r, c := origin.MinRow+i, origin.MinCol+j
			if !region.Contains(r, c) {
				continue
			}

			name := rounddomain.NormalizeName(cell)
			if name == "" {
				continue
			}
			key, ok := index[name]
			if !ok {
				if !slices.Contains(misses, name) {
					misses = append(misses, name)
				}
				continue
			}

			hole := c - region.MinCol + 1
			tags[j] = rounddomain.ColorForScore(scores[key][hole])
		}
		colors[i] = tags
	}

	return colors, misses
}

// closestName returns the score map key nearest to name by edit distance,
// or "" when scores is empty. Ties go to the alphabetically first key.
func closestName(name string, scores rounddomain.ScoreMap) string {
	keys := make([]string, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	best, bestDist := "", -1
	for _, key := range keys {
		d := fuzzy.LevenshteinDistance(name, key)
		if bestDist < 0 || d < bestDist {
			best, bestDist = key, d
		}
	}
	return best
}
