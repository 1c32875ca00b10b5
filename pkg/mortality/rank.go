package mortality

import "sort"

// RankCauses sums national deaths per cause for year and sorts the causes
// by total, largest first. Equal totals keep their first-appearance order.
func RankCauses(rows []USRow, nationalState string, year int) []CauseTotal {
	index := make(map[string]int)
	var ranking []CauseTotal

	for _, r := range rows {
		if r.State != nationalState || r.Year != year {
			continue
		}
		i, found := index[r.Cause]
		if !found {
			i = len(ranking)
			index[r.Cause] = i
			ranking = append(ranking, CauseTotal{Cause: r.Cause})
		}
		ranking[i].Deaths += r.Deaths
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Deaths > ranking[j].Deaths
	})
	return ranking
}

// SelectCauses drops excluded causes from ranking, keeps the first n and
// then removes the causes isHidden matches. Hidden causes are removed after
// truncation, so the result may hold fewer than n causes.
func SelectCauses(ranking []CauseTotal, exclude []string, n int, isHidden func(string) bool) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}

	var causes []string
	for _, c := range ranking {
		if excluded[c.Cause] {
			continue
		}
		if len(causes) == n {
			break
		}
		causes = append(causes, c.Cause)
	}

	visible := causes[:0]
	for _, c := range causes {
		if isHidden != nil && isHidden(c) {
			continue
		}
		visible = append(visible, c)
	}
	return visible
}
