package rounddomain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// invisibles covers the spacing artifacts that spreadsheet exports leave in name cells.
var invisibles = strings.NewReplacer(
	"\u00A0", " ",
	"\u200B", "",
	"\uFEFF", "",
	"\t", " ",
	"\n", " ",
)

// NormalizeName reduces a raw cell value to the key used to match a player
// across tables. The key holds only the letters A-Z, so case, accents,
// punctuation, digits and invisible characters never affect a match.
// Absent or blank values normalize to "", which means "no player".
func NormalizeName(raw any) string {
	if isBlank(raw) {
		return ""
	}

	// cases.Caser keeps state between calls, so one is built per call.
	s := cases.Upper(language.Und).String(cellText(raw))
	s = norm.NFKD.String(s)
	s = invisibles.Replace(s)
	s = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(s)
}

func isBlank(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

// cellText renders a cell value the way it reads in the sheet.
func cellText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
