package errmsg

import (
	"fmt"

	"github.com/valtoio/valto/internal/strdist"
)

// DidYouMean suggests the closest accepted candidate for a received
// identifier, as a sentence fragment ("did you mean `sort`? ") or "" when
// nothing is plausibly close. The typo allowance scales with the length of
// the received string; short strings get no suggestion at all.
func DidYouMean(received string, accepted []string) string {
	var allowed int
	switch n := len(received); {
	case n <= 3:
		return ""
	case n <= 7:
		allowed = 1
	case n <= 12:
		allowed = 2
	case n <= 17:
		allowed = 3
	case n <= 24:
		allowed = 4
	default:
		allowed = 5
	}
	best := ""
	bestDist := allowed + 1
	for _, candidate := range accepted {
		if d := strdist.DamerauLevenshtein(received, candidate); d <= allowed && d <= bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean `%s`? ", best)
}
