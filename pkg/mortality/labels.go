package mortality

import "strings"

// LabelRule matches a cause label. Rules are tried in order by ResolveLabel.
type LabelRule struct {
	Name  string
	Match func(label string) bool
}

// ExactLabel matches s exactly.
func ExactLabel(s string) LabelRule {
	return LabelRule{
		Name:  "exact:" + s,
		Match: func(label string) bool { return label == s },
	}
}

// ContainsFold matches labels containing any keyword, ignoring case.
func ContainsFold(keywords ...string) LabelRule {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	return LabelRule{
		Name: "contains:" + strings.Join(keywords, "|"),
		Match: func(label string) bool {
			l := strings.ToLower(label)
			for _, k := range lowered {
				if strings.Contains(l, k) {
					return true
				}
			}
			return false
		},
	}
}

// ResolveLabel returns the first label matched by the earliest rule. Labels
// are scanned in the given order for each rule before the next rule is tried.
func ResolveLabel(labels []string, rules []LabelRule) (string, bool) {
	for _, r := range rules {
		for _, l := range labels {
			if r.Match(l) {
				return l, true
			}
		}
	}
	return "", false
}

// IsSuicideLabel reports whether a cause label names suicide on its own,
// so it can be kept out of the visible cause list.
func IsSuicideLabel(label string) bool {
	l := strings.ToLower(label)
	return l == "suicide" || strings.Contains(l, "self-harm")
}

// DistinctCauses returns the distinct causes of the national rows in
// first-appearance order.
func DistinctCauses(rows []USRow, nationalState string) []string {
	seen := make(map[string]bool)
	var causes []string

	for _, r := range rows {
		if r.State != nationalState || seen[r.Cause] {
			continue
		}
		seen[r.Cause] = true
		causes = append(causes, r.Cause)
	}
	return causes
}
