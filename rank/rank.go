package rank

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// TieRule selects how equal scores are ranked.
type TieRule uint8

const (
	// Competition is standard competition ranking ("1224").
	Competition TieRule = iota
	// Dense is dense ranking ("1223").
	Dense
	// Ordinal gives distinct ranks, ties broken by original index ("1234").
	Ordinal
)

// ErrUnknownTieRule is returned by ParseTieRule for unrecognized names.
var ErrUnknownTieRule = errors.New("rank: unknown tie rule")

// String returns the lowercase name accepted by ParseTieRule.
func (r TieRule) String() string {
	switch r {
	case Competition:
		return "competition"
	case Dense:
		return "dense"
	case Ordinal:
		return "ordinal"
	default:
		return fmt.Sprintf("TieRule(%d)", uint8(r))
	}
}

// ParseTieRule maps "competition", "dense" or "ordinal" (case-insensitive)
// to a TieRule. The empty string yields Competition.
func ParseTieRule(s string) (TieRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "competition":
		return Competition, nil
	case "dense":
		return Dense, nil
	case "ordinal":
		return Ordinal, nil
	default:
		return Competition, fmt.Errorf("%w: %q", ErrUnknownTieRule, s)
	}
}

// Order returns the indices of scores sorted by descending score. Equal
// scores keep their input order.
// Complexity: O(n log n).
func Order(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	return idx
}

// Descending ranks scores from highest (rank 1) to lowest under rule.
// Scores tie only when exactly equal.
// Complexity: O(n log n).
func Descending(scores []float64, rule TieRule) []int {
	order := Order(scores)
	ranks := make([]int, len(scores))

	var prev, pos int
	for pos = 0; pos < len(order); pos++ {
		i := order[pos]
		tied := pos > 0 && scores[i] == scores[order[pos-1]]
		switch {
		case rule == Ordinal || !tied && rule == Competition:
			ranks[i] = pos + 1
		case tied:
			ranks[i] = prev
		default: // Dense, new score
			ranks[i] = prev + 1
		}
		prev = ranks[i]
	}

	return ranks
}
