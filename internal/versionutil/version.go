package versionutil

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compare compares dotted version references like 4.2.5 and 4.3.7 and
// returns -1/0/1. Missing components count as zero, so 4.2 equals 4.2.0.
// References are opaque strings and are not required to be numeric; a
// non-numeric component makes the reference incomparable and returns an
// error.
func Compare(a string, b string) (int, error) {
	aParts, err := parseDotted(a)
	if err != nil {
		return 0, err
	}
	bParts, err := parseDotted(b)
	if err != nil {
		return 0, err
	}

	maxLen := len(aParts)
	if len(bParts) > maxLen {
		maxLen = len(bParts)
	}

	for i := 0; i < maxLen; i++ {
		aVal := 0
		if i < len(aParts) {
			aVal = aParts[i]
		}
		bVal := 0
		if i < len(bParts) {
			bVal = bParts[i]
		}

		if aVal < bVal {
			return -1, nil
		}
		if aVal > bVal {
			return 1, nil
		}
	}

	return 0, nil
}

func parseDotted(v string) ([]int, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil, fmt.Errorf("empty version reference")
	}

	parts := strings.Split(trimmed, ".")
	numbers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("non-numeric version reference %q", v)
		}
		numbers[i] = n
	}

	return numbers, nil
}

// SortNewestFirst orders version references in place, newest first,
// falling back to descending lexicographic order for references that are
// not plain dotted numbers.
func SortNewestFirst(refs []string) {
	sort.Slice(refs, func(i int, j int) bool {
		cmp, err := Compare(refs[i], refs[j])
		if err != nil {
			return refs[i] > refs[j]
		}
		return cmp > 0
	})
}
