package standings

import (
	"sort"
	"strconv"
	"strings"
)

// Sort orders rows descending by points, then win percentage, then goal
// differential. Values tolerate a leading "+" and unparseable values count
// as zero. The sort is stable, so ties beyond these keys retain input order.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := looseInt(rows[i].Pts), looseInt(rows[j].Pts)
		if pi != pj {
			return pi > pj
		}
		wi, wj := looseFloat(rows[i].WPct), looseFloat(rows[j].WPct)
		if wi != wj {
			return wi > wj
		}
		return looseInt(rows[i].Diff) > looseInt(rows[j].Diff)
	})
}

func looseInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, "+", ""))
	if err != nil {
		return 0
	}
	return n
}

func looseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, "+", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
