package catalog

import (
	"strings"
)

// DerivePattern summarizes a set of member names as their longest common
// prefix, a "*" wildcard, and their longest common suffix, using the first
// member as the reference. derive(["abc_1.csv","abc_2.csv"]) == "abc_*.csv".
//
// Prefix and suffix are grown independently; for very short or identical
// members they may overlap, so the pattern can repeat characters. Callers
// pass at least two members in practice.
func DerivePattern(members []string) string {
	if len(members) == 0 {
		return "*"
	}

	ref := members[0]

	prefix := ""
	for _, ch := range ref {
		candidate := prefix + string(ch)
		if !allHavePrefix(members, candidate) {
			break
		}
		prefix = candidate
	}

	suffix := ""
	for i := len(ref) - 1; i >= 0; i-- {
		candidate := string(ref[i]) + suffix
		if !allHaveSuffix(members, candidate) {
			break
		}
		suffix = candidate
	}

	return prefix + "*" + suffix
}

func allHavePrefix(members []string, prefix string) bool {
	for _, m := range members {
		if !strings.HasPrefix(m, prefix) {
			return false
		}
	}
	return true
}

func allHaveSuffix(members []string, suffix string) bool {
	for _, m := range members {
		if !strings.HasSuffix(m, suffix) {
			return false
		}
	}
	return true
}
